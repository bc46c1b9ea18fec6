package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/trevorsandy/lpub3dNext/pkg/catalog"
	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/parts"
	"github.com/trevorsandy/lpub3dNext/pkg/pli"
	"github.com/trevorsandy/lpub3dNext/pkg/render"
)

// BuildLayouts aggregates, sorts and packs every parts list of the
// document: one PLI per step that added parts, plus the configured BOM
// occurrences.
func BuildLayouts(ctx context.Context, doc *Document, opts Options) (Layouts, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Layouts{}, err
	}
	applyOverrides(doc.Meta, opts)

	pliOpts, err := collaborators(doc, opts)
	if err != nil {
		return Layouts{}, err
	}

	var out Layouts
	for _, step := range doc.Steps {
		layout, err := packList(ctx, &doc.Meta.LPub.Pli, pliOpts, step.Entries, false, 0, 0, opts)
		if err != nil {
			return Layouts{}, errors.Wrap(errors.ErrCodeLayout, err,
				"pack step %d parts list", step.Index)
		}
		if len(layout.Parts) == 0 {
			continue
		}
		out.Pli = append(out.Pli, StepLayout{Step: step.Index, Layout: layout})
	}

	if opts.Bom && len(doc.Bom) > 0 {
		for occ := 1; occ <= opts.BomParts; occ++ {
			layout, err := packList(ctx, &doc.Meta.LPub.Bom.PliMeta, pliOpts,
				doc.Bom, true, occ, opts.BomParts, opts)
			if err != nil {
				return Layouts{}, errors.Wrap(errors.ErrCodeLayout, err,
					"pack bill of materials %d/%d", occ, opts.BomParts)
			}
			out.Bom = append(out.Bom, layout)
		}
	}
	return out, nil
}

// packList builds and packs one parts list. Empty lists return an
// empty layout rather than an error.
func packList(ctx context.Context, pm *meta.PliMeta, pliOpts pli.Options,
	entries []pli.Entry, bom bool, occurrence, count int, opts Options) (pli.Layout, error) {

	p := pli.New(pm, pliOpts)
	if bom {
		p.BomOccurrence = occurrence
		p.BomCount = count
	}
	if err := p.SetParts(ctx, entries, nil, bom, count > 1); err != nil {
		return pli.Layout{}, err
	}
	if len(p.Parts) == 0 {
		return pli.Layout{}, nil
	}
	if err := p.SizePli(ctx); err != nil {
		return pli.Layout{}, err
	}
	for _, e := range p.Errs {
		if opts.Logger != nil {
			opts.Logger.Warn("parts list degraded", "err", e)
		}
	}
	return p.BuildLayout(), nil
}

// applyOverrides pushes CLI-level overrides into the interpreter state
// so both PLI and BOM branches see them.
func applyOverrides(m *meta.Meta, opts Options) {
	if cd, ok := opts.ConstrainData(); ok {
		m.LPub.Pli.Constrain.SetValue(cd)
		m.LPub.Pli.Constrain.SetDefault(false)
		m.LPub.Bom.Constrain.SetValue(cd)
		m.LPub.Bom.Constrain.SetDefault(false)
	}
	if name, ok := ValidSortBy[strings.ToLower(opts.SortBy)]; ok {
		m.LPub.Pli.SortOrder.Primary.SetValue(name)
		m.LPub.Pli.Sort.SetValue(true)
		m.LPub.Bom.SortOrder.Primary.SetValue(name)
	}
}

// collaborators wires the parts-list engine's dependencies from the
// pipeline options: part library, catalog, renderer, image cache and
// orientation control.
func collaborators(doc *Document, opts Options) (pli.Options, error) {
	var base parts.Library
	if len(opts.LibraryDirs) > 0 {
		base = parts.NewDirLibrary(opts.LibraryDirs...)
	} else {
		base = parts.StaticLibrary{}
	}
	library := parts.ModelLibrary{Model: doc.Model, Next: base}

	cat := catalog.New()
	if opts.CatalogDir != "" {
		if err := cat.LoadDir(opts.CatalogDir); err != nil {
			return pli.Options{}, errors.Wrap(errors.ErrCodeCatalog, err,
				"load catalog %s", opts.CatalogDir)
		}
	}

	imageDir := opts.ImageDir
	if imageDir == "" {
		cacheRoot, err := os.UserCacheDir()
		if err != nil {
			cacheRoot = os.TempDir()
		}
		imageDir = filepath.Join(cacheRoot, "lpub3dnext", "images")
	}
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return pli.Options{}, errors.Wrap(errors.ErrCodeInvalidPath, err,
			"create image dir %s", imageDir)
	}

	var renderer render.Renderer
	switch opts.Renderer {
	case RendererLDView:
		ldrawRoot := ""
		if len(opts.LibraryDirs) > 0 {
			ldrawRoot = opts.LibraryDirs[0]
		}
		renderer = render.LDView{LibraryPath: ldrawRoot}
	default:
		renderer = render.Native{BaseDPI: opts.Resolution}
	}

	var orienter *pli.Orienter
	if opts.ControlFile != "" {
		orienter = &pli.Orienter{Path: opts.ControlFile}
	}

	pageWidth := opts.PageWidth
	if pageWidth == 0 {
		size := doc.Meta.LPub.Page.Size.Value()
		pageWidth = meta.ToPixels(size.SizeW, meta.DPI)
	}

	return pli.Options{
		Library:   library,
		Catalog:   cat,
		Renderer:  renderer,
		ImageDir:  imageDir,
		Orienter:  orienter,
		PageWidth: pageWidth,
		Logger:    opts.Logger,
	}, nil
}
