package pli

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// Orienter applies preferred display rotations from a parts-list
// control file: an LDraw file of type-1 lines, one per part, whose
// rotation matrix says how that part should face in a list. Lookups
// are cached; parts without an entry keep the identity rotation.
type Orienter struct {
	// Path locates the control file. An empty path disables lookups.
	Path string

	mu    sync.Mutex
	cache map[string][9]float64
	// loaded is set once the file has been scanned.
	loaded bool
	err    error
}

var identity = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Orient returns the display line for a part: colour, zero offset, and
// the control file's rotation for the type (identity when absent).
func (o *Orienter) Orient(color, partType string) ldraw.PartLine {
	line := ldraw.PartLine{
		Color:  color,
		Matrix: identity,
		Type:   strings.ToLower(partType),
	}
	if o == nil || o.Path == "" {
		return line
	}
	if m, ok := o.rotation(line.Type); ok {
		line.Matrix = m
	}
	return line
}

// Err reports the control file read failure, if any.
func (o *Orienter) Err() error {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

func (o *Orienter) rotation(typeLower string) ([9]float64, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.loaded {
		o.load()
	}
	m, ok := o.cache[typeLower]
	return m, ok
}

// load scans the whole control file once; later lookups are map hits.
func (o *Orienter) load() {
	o.loaded = true
	o.cache = map[string][9]float64{}

	f, err := os.Open(o.Path)
	if err != nil {
		o.err = err
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		p, err := ldraw.ParsePartLine(strings.TrimSpace(sc.Text()))
		if err != nil {
			continue
		}
		key := strings.ToLower(p.Type)
		if _, seen := o.cache[key]; !seen {
			o.cache[key] = p.Matrix
		}
	}
	if err := sc.Err(); err != nil {
		o.err = err
	}
}
