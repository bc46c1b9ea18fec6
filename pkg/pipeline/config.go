package pipeline

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
)

// ConfigFileName is the project file the CLI looks for next to a model.
const ConfigFileName = "lpub.toml"

// Config is the on-disk project configuration. Every field is
// optional; flags override whatever the file sets.
type Config struct {
	Model       string   `toml:"model"`
	Renderer    string   `toml:"renderer"`
	Resolution  float32  `toml:"resolution"`
	PageWidth   float32  `toml:"page_width"`
	Library     []string `toml:"library"`
	CatalogDir  string   `toml:"catalog_dir"`
	ImageDir    string   `toml:"image_dir"`
	ControlFile string   `toml:"control_file"`

	Bom   BomConfig   `toml:"bom"`
	Cache CacheConfig `toml:"cache"`
}

// BomConfig configures the bill of materials.
type BomConfig struct {
	Enabled   bool    `toml:"enabled"`
	Parts     int     `toml:"parts"` // split-BOM occurrence count
	Constrain string  `toml:"constrain"`
	Magnitude float32 `toml:"magnitude"`
	SortBy    string  `toml:"sort_by"`
}

// CacheConfig configures the layout cache backend.
type CacheConfig struct {
	Dir   string `toml:"dir"`   // file cache directory; empty uses the default
	Redis string `toml:"redis"` // redis address; set for shared deployments
}

// LoadConfig decodes a project file. Unknown keys fail the load so
// typos surface instead of silently disabling options.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err,
			"decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// FindConfig looks for the project file in dir, then in dir's parents,
// stopping at the filesystem root.
func FindConfig(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Options converts the configuration into pipeline options. Zero
// values stay zero so ValidateAndSetDefaults fills the defaults.
func (c Config) Options() Options {
	return Options{
		Model:       c.Model,
		LibraryDirs: c.Library,
		CatalogDir:  c.CatalogDir,
		ImageDir:    c.ImageDir,
		ControlFile: c.ControlFile,
		Renderer:    c.Renderer,
		Resolution:  c.Resolution,
		PageWidth:   c.PageWidth,
		Bom:         c.Bom.Enabled,
		BomParts:    c.Bom.Parts,
		Constrain:   c.Bom.Constrain,
		Magnitude:   c.Bom.Magnitude,
		SortBy:      c.Bom.SortBy,
	}
}

// Merge overlays non-zero fields of o on top of the config's options.
// Used by the CLI so flags win over the project file.
func (c Config) Merge(o Options) Options {
	out := c.Options()
	if o.Model != "" {
		out.Model = o.Model
	}
	if o.ModelSource != "" {
		out.ModelSource = o.ModelSource
	}
	if o.Strict {
		out.Strict = true
	}
	if len(o.LibraryDirs) > 0 {
		out.LibraryDirs = o.LibraryDirs
	}
	if o.CatalogDir != "" {
		out.CatalogDir = o.CatalogDir
	}
	if o.ImageDir != "" {
		out.ImageDir = o.ImageDir
	}
	if o.ControlFile != "" {
		out.ControlFile = o.ControlFile
	}
	if o.Renderer != "" {
		out.Renderer = o.Renderer
	}
	if o.Resolution != 0 {
		out.Resolution = o.Resolution
	}
	if o.PageWidth != 0 {
		out.PageWidth = o.PageWidth
	}
	if o.Bom {
		out.Bom = true
	}
	if o.BomParts != 0 {
		out.BomParts = o.BomParts
	}
	if o.Constrain != "" {
		out.Constrain = o.Constrain
	}
	if o.Magnitude != 0 {
		out.Magnitude = o.Magnitude
	}
	if o.SortBy != "" {
		out.SortBy = o.SortBy
	}
	if o.Sheet {
		out.Sheet = true
	}
	if o.Refresh {
		out.Refresh = true
	}
	if o.Logger != nil {
		out.Logger = o.Logger
	}
	return out
}
