// Package catalog supplies the lookup tables the parts-list engine
// consults while building annotations and element badges: colour-code
// abbreviations, title-annotation patterns, freeform annotations, fixed
// badge styles for Technic part classes, and part element ids (LEGO or
// BrickLink). Built-in defaults cover common parts; TOML files extend
// or override them.
package catalog

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
)

// Catalog bundles every table under one root. The zero value serves
// built-in defaults only.
type Catalog struct {
	Annotations *Annotator
	Styles      *StyleTable
	Elements    *ElementTable

	Logger *log.Logger
}

// New returns a catalog primed with the built-in tables.
func New() *Catalog {
	return &Catalog{
		Annotations: NewAnnotator(),
		Styles:      NewStyleTable(),
		Elements:    NewElementTable(),
	}
}

// catalogFile is the on-disk TOML shape shared by all table files.
type catalogFile struct {
	TitleAnnotations []string          `toml:"title_annotations"`
	Freeform         map[string]string `toml:"freeform"`
	Styles           []styleEntry      `toml:"styles"`
	Elements         []elementEntry    `toml:"elements"`
}

type styleEntry struct {
	Part     string `toml:"part"`
	Style    string `toml:"style"`
	Category string `toml:"category"`
}

type elementEntry struct {
	Part    string `toml:"part"`
	Color   string `toml:"color"`
	Element string `toml:"element"`
	Flavor  string `toml:"flavor"`
}

// LoadDir merges every *.toml file under dir into the catalog. Missing
// directories are not an error so a bare install still works.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeCatalog, err, "read catalog directory %s", dir)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile merges one TOML table file into the catalog.
func (c *Catalog) LoadFile(path string) error {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return errors.Wrap(errors.ErrCodeCatalog, err, "decode catalog file %s", path)
	}
	if c.Annotations == nil {
		c.Annotations = NewAnnotator()
	}
	if c.Styles == nil {
		c.Styles = NewStyleTable()
	}
	if c.Elements == nil {
		c.Elements = NewElementTable()
	}
	if err := c.Annotations.merge(file); err != nil {
		return errors.Wrap(errors.ErrCodeCatalog, err, "merge annotations from %s", path)
	}
	if err := c.Styles.merge(file.Styles); err != nil {
		return errors.Wrap(errors.ErrCodeCatalog, err, "merge styles from %s", path)
	}
	c.Elements.merge(file.Elements)
	if c.Logger != nil {
		c.Logger.Debug("loaded catalog file", "path", path,
			"title", len(file.TitleAnnotations), "freeform", len(file.Freeform),
			"styles", len(file.Styles), "elements", len(file.Elements))
	}
	return nil
}
