// Package cli implements the lpub3dnext command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/trevorsandy/lpub3dNext/pkg/buildinfo"
	"github.com/trevorsandy/lpub3dNext/pkg/cache"
	"github.com/trevorsandy/lpub3dNext/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "lpub3dnext"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "LPub3D Next builds instruction parts lists from LDraw models",
		Long:         `LPub3D Next interprets LPub directives embedded in LDraw models and packs per-step parts lists (PLI) and bills of materials (BOM) into print-ready layouts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.docCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.structureCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the layout cache directory using the XDG standard
// (~/.cache/lpub3dnext/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// imageDir returns the rendered part image directory. It lives beside
// the layout cache so "cache clear" wipes both.
func imageDir() (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "images"), nil
}

// =============================================================================
// Config Discovery
// =============================================================================

// loadProjectOptions finds the nearest lpub.toml and merges the given
// flag options over it. Flags win; an absent config is not an error.
func (c *CLI) loadProjectOptions(flags pipeline.Options) (pipeline.Options, error) {
	wd, err := os.Getwd()
	if err != nil {
		return flags, nil
	}
	path, ok := pipeline.FindConfig(wd)
	if !ok {
		return flags, nil
	}
	cfg, err := pipeline.LoadConfig(path)
	if err != nil {
		return flags, err
	}
	c.Logger.Debug("using project config", "path", path)
	return cfg.Merge(flags), nil
}
