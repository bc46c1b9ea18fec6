// Package pipeline orchestrates the document build: model file in,
// packed parts-list layouts out.
//
// This package implements the complete parse → layout → render flow
// that CLI and server share. By centralizing this logic we ensure
// consistent behavior across entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Walk the model through the meta interpreter, collecting
//     the part occurrences of every step plus the bill of materials
//  2. Layout: Aggregate, sort and pack each parts list
//  3. Render: Optionally draw a PNG sheet of each packed layout
//
// Each stage can be run independently or as part of the complete
// pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Model: "pyramid.mpd",
//	    Bom:   true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, step := range result.Layouts.Pli {
//	    fmt.Println(step.Step, step.Layout.Width, step.Layout.Height)
//	}
//
// Run individual stages:
//
//	doc, err := runner.Parse(ctx, opts)
//	layouts, err := runner.BuildLayouts(ctx, doc, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/trevorsandy/lpub3dNext/pkg/cache"
	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/pli"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultRenderer is the renderer used when none is configured.
	// The native renderer needs no external binaries.
	DefaultRenderer = "native"

	// DefaultBomParts is the number of BOM occurrences the bill of
	// materials splits into.
	DefaultBomParts = 1
)

// DefaultResolution mirrors the interpreter's factory resolution.
const DefaultResolution = meta.DefaultResolution

// Renderer name constants.
const (
	RendererNative = "native"
	RendererLDView = "ldview"
)

// ValidRenderers is the set of supported renderer names.
var ValidRenderers = map[string]bool{
	RendererNative: true,
	RendererLDView: true,
}

// ValidConstraints maps CLI constraint names to interpreter constraint
// kinds.
var ValidConstraints = map[string]meta.Constrain{
	"area":    meta.ConstrainArea,
	"square":  meta.ConstrainSquare,
	"width":   meta.ConstrainWidth,
	"height":  meta.ConstrainHeight,
	"cols":    meta.ConstrainColumns,
	"columns": meta.ConstrainColumns,
}

// ValidSortBy maps CLI sort names to the interpreter's user-facing
// sort option names.
var ValidSortBy = map[string]string{
	"size":     meta.SortOptionName[meta.PartSize],
	"color":    meta.SortOptionName[meta.PartColour],
	"category": meta.SortOptionName[meta.PartCategory],
	"element":  meta.SortOptionName[meta.PartElement],
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the document pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Model       string `json:"model"`                  // path to the .ldr/.mpd file
	ModelSource string `json:"model_source,omitempty"` // inline model content; Model becomes its name
	Strict      bool   `json:"strict,omitempty"`       // malformed directives fail the parse

	// Collaborators
	LibraryDirs []string `json:"library_dirs,omitempty"` // LDraw parts library roots
	CatalogDir  string   `json:"catalog_dir,omitempty"`  // annotation/element TOML tables
	ImageDir    string   `json:"image_dir,omitempty"`    // rendered part image cache
	ControlFile string   `json:"control_file,omitempty"` // preferred part orientations

	// Layout options
	Renderer   string  `json:"renderer,omitempty"`
	Resolution float32 `json:"resolution,omitempty"`
	PageWidth  float32 `json:"page_width,omitempty"` // pixels; 0 derives from the page size meta
	Bom        bool    `json:"bom,omitempty"`
	BomParts   int     `json:"bom_parts,omitempty"` // split-BOM occurrence count
	Constrain  string  `json:"constrain,omitempty"` // override: area|square|width|height|cols
	Magnitude  float32 `json:"magnitude,omitempty"` // constraint magnitude for the override
	SortBy     string  `json:"sort_by,omitempty"`   // primary sort override: size|color|category|element

	// Render options
	Sheet bool `json:"sheet,omitempty"` // draw a PNG sheet per layout

	// Cache options
	Refresh bool `json:"refresh,omitempty"` // bypass the layout cache

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the parsed model with its per-step part occurrences.
	Document *Document

	// ModelHash is the content hash of the model file.
	ModelHash string

	// Layouts holds the packed parts lists.
	Layouts Layouts

	// Sheets contains rendered PNG sheets keyed by list name
	// ("step-3", "bom-1"), present only when opts.Sheet is set.
	Sheets map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Layouts collects the packed lists of one document: one PLI per step
// that added parts, plus the BOM occurrences.
type Layouts struct {
	Pli []StepLayout `json:"pli,omitempty"`
	Bom []pli.Layout `json:"bom,omitempty"`
}

// StepLayout is the packed PLI of one step.
type StepLayout struct {
	Step   int        `json:"step"`
	Layout pli.Layout `json:"layout"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Lines      int
	Directives int
	Steps      int
	Parts      int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the packed layouts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateRenderer checks that a renderer name is valid.
func ValidateRenderer(name string) error {
	if !ValidRenderers[name] {
		return errors.New(errors.ErrCodeInvalidRenderer,
			"invalid renderer: %q (must be one of: native, ldview)", name)
	}
	return nil
}

// ValidateConstraint checks that a constraint override name is valid.
func ValidateConstraint(name string) error {
	if _, ok := ValidConstraints[strings.ToLower(name)]; !ok {
		return errors.New(errors.ErrCodeInvalidConstraint,
			"invalid constraint: %q (must be one of: area, square, width, height, cols)", name)
	}
	return nil
}

// ValidateSortBy checks that a sort override name is valid.
func ValidateSortBy(name string) error {
	if _, ok := ValidSortBy[strings.ToLower(name)]; !ok {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid sort: %q (must be one of: size, color, category, element)", name)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults
// for the full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Model == "" {
		return errors.New(errors.ErrCodeInvalidInput, "model is required")
	}
	if o.Renderer == "" {
		o.Renderer = DefaultRenderer
	}
	if err := ValidateRenderer(o.Renderer); err != nil {
		return err
	}
	if o.Constrain != "" {
		if err := ValidateConstraint(o.Constrain); err != nil {
			return err
		}
	}
	if o.SortBy != "" {
		if err := ValidateSortBy(o.SortBy); err != nil {
			return err
		}
	}
	if o.Resolution == 0 {
		o.Resolution = DefaultResolution
	}
	if o.BomParts <= 0 {
		o.BomParts = DefaultBomParts
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ConstrainData resolves the constraint override, if any.
func (o *Options) ConstrainData() (meta.ConstrainData, bool) {
	kind, ok := ValidConstraints[strings.ToLower(o.Constrain)]
	if !ok {
		return meta.ConstrainData{}, false
	}
	return meta.ConstrainData{Type: kind, Constraint: o.Magnitude}, true
}

// LayoutKeyOpts returns cache key options for one packed list. The
// model hash covers the document's own directives; these options cover
// everything that changes a layout without changing the file.
func (o *Options) LayoutKeyOpts(list string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		List:       list,
		Constrain:  strings.ToLower(o.Constrain),
		Magnitude:  o.Magnitude,
		Resolution: o.Resolution,
		Renderer:   o.Renderer,
		SortOrder:  strings.ToLower(o.SortBy),
	}
}
