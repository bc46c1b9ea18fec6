// Package parts resolves LDraw part names against a parts library.
//
// The layout engine only needs two facts about a part: whether it exists
// and its catalog description (the title line of its .dat file). The
// Library interface carries exactly that, with a directory-backed
// implementation for real LDraw library trees and a static map for
// tests and embedded fixtures.
package parts

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// Info describes one library part.
type Info struct {
	// Description is the part title, e.g. "Brick 2 x 4".
	Description string
	// Path is where the part file was found, empty for static entries.
	Path string
}

// Library resolves normalized part names.
type Library interface {
	// FindPart returns the part's info and whether the part exists.
	FindPart(name string) (Info, bool)
}

// DirLibrary resolves parts against one or more LDraw library roots.
// Lookups walk the conventional subdirectories (parts, p, models and
// their unofficial twins) and cache results, hit or miss.
type DirLibrary struct {
	roots []string

	mu    sync.Mutex
	cache map[string]cached
}

type cached struct {
	info Info
	ok   bool
}

// searchDirs are the library subdirectories tried for each root, in
// order. An empty entry means the root itself.
var searchDirs = []string{
	"parts",
	"p",
	"models",
	filepath.Join("unofficial", "parts"),
	filepath.Join("unofficial", "p"),
	"",
}

// NewDirLibrary creates a library over the given roots. Roots that do
// not exist are tolerated; lookups simply miss.
func NewDirLibrary(roots ...string) *DirLibrary {
	return &DirLibrary{
		roots: roots,
		cache: make(map[string]cached),
	}
}

// FindPart resolves a part name, case-insensitively, against the roots.
func (l *DirLibrary) FindPart(name string) (Info, bool) {
	key := ldraw.NormalizeName(name)

	l.mu.Lock()
	if c, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return c.info, c.ok
	}
	l.mu.Unlock()

	info, ok := l.lookup(key)

	l.mu.Lock()
	l.cache[key] = cached{info, ok}
	l.mu.Unlock()
	return info, ok
}

func (l *DirLibrary) lookup(key string) (Info, bool) {
	rel := filepath.FromSlash(key)
	for _, root := range l.roots {
		for _, dir := range searchDirs {
			path := filepath.Join(root, dir, rel)
			desc, err := readTitle(path)
			if err != nil {
				continue
			}
			return Info{Description: desc, Path: path}, true
		}
	}
	return Info{}, false
}

// readTitle returns the part description from the file's title line.
func readTitle(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New(errors.ErrCodePartNotFound, "empty part file %s", path)
	}
	title := strings.TrimSpace(scanner.Text())
	title = strings.TrimPrefix(title, "0")
	title = strings.TrimSpace(title)
	// Some part files carry "0 ~Moved to xxx" or "0 =xxx" titles; keep
	// them verbatim, the caller decides how to present them.
	return title, nil
}

// StaticLibrary is a fixed name-to-description map, primarily for tests.
type StaticLibrary map[string]string

// FindPart resolves against the map using normalized names.
func (l StaticLibrary) FindPart(name string) (Info, bool) {
	desc, ok := l[ldraw.NormalizeName(name)]
	if !ok {
		return Info{}, false
	}
	return Info{Description: desc}, true
}

// ModelLibrary layers a loaded document's submodels over another
// library, so submodels referenced as parts resolve to themselves.
type ModelLibrary struct {
	Model *ldraw.Model
	Next  Library
}

// FindPart resolves submodels first, then falls through to Next.
func (l ModelLibrary) FindPart(name string) (Info, bool) {
	if l.Model != nil && l.Model.IsSubmodel(name) {
		return Info{Description: ldraw.BaseName(name)}, true
	}
	if l.Next == nil {
		return Info{}, false
	}
	return l.Next.FindPart(name)
}
