package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/trevorsandy/lpub3dNext/pkg/cache"
	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)
	meta.SetResolution(opts.Resolution)

	model, raw, err := loadModel(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{ModelHash: cache.Hash(raw)}
	hooks := observability.Pipeline()

	// Stage 1: Parse
	parseStart := time.Now()
	hooks.OnParseStart(ctx, opts.Model)
	doc, err := ParseDocument(model, opts.Strict, opts.Logger)
	result.Stats.ParseTime = time.Since(parseStart)
	if doc != nil {
		result.Stats.Lines = doc.Lines
		result.Stats.Directives = doc.Directives
		hooks.OnParseComplete(ctx, opts.Model, doc.Lines, doc.Directives,
			result.Stats.ParseTime, err)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "parse %s", opts.Model)
	}
	result.Document = doc
	result.Stats.Steps = doc.StepCount

	r.Logger.Info("parsed model",
		"lines", doc.Lines,
		"directives", doc.Directives,
		"steps", doc.StepCount,
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, layoutList(opts), len(doc.Bom))
	layouts, hit, err := r.BuildLayoutsWithCacheInfo(ctx, doc, result.ModelHash, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, layoutList(opts), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Layouts = layouts
	result.CacheInfo.LayoutHit = hit
	for _, sl := range layouts.Pli {
		result.Stats.Parts += len(sl.Layout.Parts)
	}
	for _, b := range layouts.Bom {
		result.Stats.Parts += len(b.Parts)
	}

	r.Logger.Info("packed layouts",
		"pli", len(layouts.Pli),
		"bom", len(layouts.Bom),
		"parts", result.Stats.Parts,
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	if opts.Sheet {
		renderStart := time.Now()
		sheets, err := RenderSheets(layouts)
		result.Stats.RenderTime = time.Since(renderStart)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render sheets")
		}
		result.Sheets = sheets

		r.Logger.Info("rendered sheets",
			"count", len(sheets),
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// Parse loads the model and runs the interpreter walk only.
func (r *Runner) Parse(ctx context.Context, opts Options) (*Document, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	meta.SetResolution(opts.Resolution)

	model, _, err := loadModel(opts)
	if err != nil {
		return nil, err
	}
	return ParseDocument(model, opts.Strict, opts.Logger)
}

// BuildLayoutsWithCacheInfo packs the document's lists, consulting the
// layout cache first, and reports whether the cache served the result.
func (r *Runner) BuildLayoutsWithCacheInfo(ctx context.Context, doc *Document, modelHash string, opts Options) (Layouts, bool, error) {
	key := r.Keyer.LayoutKey(modelHash, opts.LayoutKeyOpts(layoutList(opts)))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached Layouts
			if json.Unmarshal(data, &cached) == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// Corrupt entry; recompute below.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	layouts, err := BuildLayouts(ctx, doc, opts)
	if err != nil {
		return Layouts{}, false, err
	}

	if data, err := json.Marshal(layouts); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}
	return layouts, false, nil
}

// BuildLayouts is a convenience wrapper discarding the cache hit info.
func (r *Runner) BuildLayouts(ctx context.Context, doc *Document, modelHash string, opts Options) (Layouts, error) {
	layouts, _, err := r.BuildLayoutsWithCacheInfo(ctx, doc, modelHash, opts)
	return layouts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// layoutList names the list bundle for cache keys and hook events.
func layoutList(opts Options) string {
	if opts.Bom {
		return fmt.Sprintf("pli+bom/%d", opts.BomParts)
	}
	return "pli"
}

// loadModel reads the model from disk, or from the inline source when
// the options carry one.
func loadModel(opts Options) (*ldraw.Model, []byte, error) {
	if opts.ModelSource != "" {
		raw := []byte(opts.ModelSource)
		model, err := ldraw.Parse(strings.NewReader(opts.ModelSource), opts.Model)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidModel, err,
				"parse inline model %s", opts.Model)
		}
		return model, raw, nil
	}

	raw, err := os.ReadFile(opts.Model)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err,
			"read model %s", opts.Model)
	}
	name := filepath.Base(opts.Model)
	model, err := ldraw.Parse(strings.NewReader(string(raw)), name)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidModel, err,
			"parse model %s", opts.Model)
	}
	return model, raw, nil
}
