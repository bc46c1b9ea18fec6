package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trevorsandy/lpub3dNext/pkg/cache"
	"github.com/trevorsandy/lpub3dNext/pkg/pipeline"
	"github.com/trevorsandy/lpub3dNext/pkg/server"
	"github.com/trevorsandy/lpub3dNext/pkg/session"
)

// serveCommand creates the serve command for running the preview API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		redisAddr  string
		sessionDir string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview HTTP API",
		Long: `Run the preview HTTP API.

Endpoints:
  POST /api/parse    interpret an uploaded model
  GET  /api/doc      directive grammar reference
  POST /api/layout   pack parts lists, returns layout JSON
  GET  /healthz      liveness check

Layouts are cached locally by default; --redis switches the cache to a
shared Redis instance for multi-replica deployments. Sessions live in
memory unless --session-dir points at a directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, sessionDir, noCache, opts)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared layout cache")
	cmd.Flags().StringVar(&sessionDir, "session-dir", "", "persist sessions as files in this directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().StringSliceVar(&opts.LibraryDirs, "library", nil, "LDraw parts library root (repeatable)")
	cmd.Flags().StringVar(&opts.CatalogDir, "catalog", "", "annotation/element catalog directory")
	cmd.Flags().StringVar(&opts.Renderer, "renderer", "", "part renderer: native (default), ldview")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr, sessionDir string, noCache bool, opts pipeline.Options) error {
	layoutCache, err := c.serveCache(ctx, redisAddr, noCache)
	if err != nil {
		return err
	}

	store, err := serveSessions(sessionDir)
	if err != nil {
		return err
	}

	if opts.ImageDir == "" {
		if dir, err := imageDir(); err == nil {
			opts.ImageDir = dir
		}
	}

	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	defer runner.Close()

	srv := server.New(runner, store, opts, c.Logger)
	return srv.ListenAndServe(ctx, addr)
}

func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", redisAddr, err)
		}
		c.Logger.Info("using redis layout cache", "addr", redisAddr)
		return rc, nil
	}
	return newCache(noCache)
}

func serveSessions(dir string) (session.Store, error) {
	if dir == "" {
		return session.NewMemoryStore(), nil
	}
	return session.NewFileStore(dir)
}
