package ldraw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	fileRE   = regexp.MustCompile(`(?i)^0\s+FILE\s+(.+)\s*$`)
	noFileRE = regexp.MustCompile(`(?i)^0\s+NOFILE\s*$`)
)

// Submodel is one named body of lines inside a document.
type Submodel struct {
	Name  string
	Lines []string
}

// Model is a loaded LDraw document. A multi-part (MPD) file contributes one
// submodel per "0 FILE" section; a plain .ldr/.dat file contributes a single
// submodel named after the file. The first submodel encountered is the top
// of the build.
type Model struct {
	Name      string
	Top       string
	submodels map[string]*Submodel
	order     []string
}

// Load reads and parses a model file from disk.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// Parse parses a model document. name is used for the document itself and,
// for single-model files, as the sole submodel name.
func Parse(r io.Reader, name string) (*Model, error) {
	m := &Model{
		Name:      name,
		submodels: make(map[string]*Submodel),
	}

	current := ""
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if match := fileRE.FindStringSubmatch(line); match != nil {
			current = strings.TrimSpace(match[1])
			m.addSubmodel(current)
			continue
		}
		if noFileRE.MatchString(line) {
			current = ""
			continue
		}

		if current == "" {
			// Plain .ldr content before any FILE marker.
			current = name
			m.addSubmodel(current)
		}
		sub := m.submodels[NormalizeName(current)]
		sub.Lines = append(sub.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	if len(m.order) == 0 {
		return nil, fmt.Errorf("model %q contains no content", name)
	}
	m.Top = m.order[0]
	return m, nil
}

func (m *Model) addSubmodel(name string) {
	key := NormalizeName(name)
	if _, ok := m.submodels[key]; ok {
		return
	}
	m.submodels[key] = &Submodel{Name: name}
	m.order = append(m.order, name)
}

// Submodels returns submodel names in document order.
func (m *Model) Submodels() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// IsSubmodel reports whether name refers to a submodel of this document.
func (m *Model) IsSubmodel(name string) bool {
	_, ok := m.submodels[NormalizeName(name)]
	return ok
}

// Lines returns the lines of the named submodel, or nil if absent.
func (m *Model) Lines(name string) []string {
	sub, ok := m.submodels[NormalizeName(name)]
	if !ok {
		return nil
	}
	return sub.Lines
}

// Line returns the raw line at a location, or "" when out of range.
func (m *Model) Line(w Where) string {
	lines := m.Lines(w.ModelName)
	if w.LineNumber < 0 || w.LineNumber >= len(lines) {
		return ""
	}
	return lines[w.LineNumber]
}

// References returns the distinct submodels referenced by type-1 lines of
// the named submodel, in first-use order. Part references that are not
// submodels of this document are skipped.
func (m *Model) References(name string) []string {
	lines := m.Lines(name)
	seen := make(map[string]bool)
	var refs []string
	for _, line := range lines {
		if TypeOf(line) != LineTypePart {
			continue
		}
		p, err := ParsePartLine(line)
		if err != nil {
			continue
		}
		key := NormalizeName(p.Type)
		if !m.IsSubmodel(p.Type) || seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, m.submodels[key].Name)
	}
	return refs
}
