package pli

import (
	"context"
	"fmt"
	"image"
	"os"
	"sort"
	"time"

	"github.com/disintegration/imaging"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/fonts"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/observability"
	"github.com/trevorsandy/lpub3dNext/pkg/render"
)

// partSize renders (or reuses) every part image and derives the packing
// geometry: composite size, silhouette edges and sort size. Parts whose
// type cannot be resolved are dropped with a notice. Render failures
// fall back to the native placeholder and accumulate in Errs.
func (p *Pli) partSize(ctx context.Context) error {
	p.widestPart = 0
	p.tallestPart = 0

	keys := make([]string, 0, len(p.Parts))
	for k := range p.Parts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Resolve part types, dropping what the library does not know.
	resolved := keys[:0]
	for _, key := range keys {
		part := p.Parts[key]
		if p.opts.Library != nil {
			if _, ok := p.opts.Library.FindPart(part.Type); !ok {
				if p.logger() != nil {
					p.logger().Warn("part not found, removed from list", "part", part.Type)
				}
				delete(p.Parts, key)
				continue
			}
		}
		// Colour 16 is "current colour"; render parts in black.
		if part.Color == "16" {
			part.Color = "0"
		}
		resolved = append(resolved, key)
	}
	keys = resolved

	if err := p.renderMissing(ctx, keys); err != nil {
		return err
	}

	for _, key := range keys {
		if err := p.sizePart(p.Parts[key]); err != nil {
			return err
		}
	}
	return nil
}

// renderMissing produces every absent part image. A BatchRenderer gets
// all missing parts in one invocation; failures degrade per part to the
// native placeholder so the layout can proceed.
func (p *Pli) renderMissing(ctx context.Context, keys []string) error {
	if p.opts.Renderer == nil {
		return errors.New(errors.ErrCodeRender, "parts list has no renderer")
	}

	var specs []render.PartSpec
	var paths []string
	var missing []*Part
	for _, key := range keys {
		part := p.Parts[key]
		if _, err := os.Stat(part.ImageName); err == nil {
			continue
		}
		specs = append(specs, p.renderSpec(part))
		paths = append(paths, part.ImageName)
		missing = append(missing, part)
	}
	if len(missing) == 0 {
		return nil
	}

	hooks := observability.Pipeline()
	name := p.opts.Renderer.Name()
	hooks.OnRenderStart(ctx, name, len(missing))
	start := time.Now()

	if batch, ok := p.opts.Renderer.(render.BatchRenderer); ok && len(missing) > 1 {
		if err := batch.RenderParts(ctx, specs, paths); err == nil {
			hooks.OnRenderComplete(ctx, name, time.Since(start), nil)
			return nil
		} else if p.logger() != nil {
			p.logger().Warn("batch render failed, rendering per part", "err", err)
		}
	}

	for i, part := range missing {
		partStart := time.Now()
		err := p.opts.Renderer.RenderPart(ctx, specs[i], paths[i])
		hooks.OnRenderPart(ctx, name, part.NameKey, time.Since(partStart), err)
		if err != nil {
			if ctx.Err() != nil {
				hooks.OnRenderComplete(ctx, name, time.Since(start), ctx.Err())
				return ctx.Err()
			}
			p.Errs = append(p.Errs,
				errors.Wrap(errors.ErrCodeRender, err, "render part %s", part.Type))
			if fbErr := (render.Native{}).RenderPart(ctx, specs[i], paths[i]); fbErr != nil {
				hooks.OnRenderComplete(ctx, name, time.Since(start), fbErr)
				return fbErr
			}
		}
	}
	hooks.OnRenderComplete(ctx, name, time.Since(start), nil)
	return nil
}

func (p *Pli) renderSpec(part *Part) render.PartSpec {
	line := p.opts.Orienter.Orient(part.Color, part.Type)
	return render.PartSpec{
		Type:         part.Type,
		Color:        part.Color,
		NameKey:      part.NameKey,
		ModelScale:   part.ModelScale,
		CameraFoV:    part.CameraFoV,
		CameraAngles: part.CameraAngles,
		Target:       part.Target,
		Rotation:     part.Rotation,
		Transform:    part.Transform,
		Parms:        p.Meta.LdviewParms.Value(),
		Line:         &line,
	}
}

// sizePart derives the composite geometry for one part: annotation rows
// on top, the image silhouette, then the instance text (and BOM element
// id) slid up into the silhouette's bottom-left whitespace.
func (p *Pli) sizePart(part *Part) error {
	img, err := imaging.Open(part.ImageName)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLayout, err, "read part image %s", part.ImageName)
	}

	dpi := meta.Resolution()

	part.PixmapWidth = img.Bounds().Dx()
	part.PixmapHeight = img.Bounds().Dy()
	part.Width = part.PixmapWidth
	part.LeftEdge = part.LeftEdge[:0]
	part.RightEdge = part.RightEdge[:0]

	// Instance count text.
	descr := fmt.Sprintf("%dx", len(part.Instances))
	textWidth, textHeight := fonts.Measure(descr, p.Meta.Instance.Font.Points(), dpi)
	part.TextWidth = textWidth
	part.TextHeight = textHeight
	if textWidth > part.Width {
		part.Width = textWidth
	}

	// Annotation badge.
	styled := part.style.badge == meta.BadgeCircle ||
		part.style.badge == meta.BadgeSquare ||
		part.style.badge == meta.BadgeRectangle
	part.Annotation = p.annotation(part.Type, part.Color, part.Description, styled)

	if part.Annotation != "" {
		aw, ah := fonts.Measure(part.Annotation, part.style.fontPoints, dpi)
		// Circle and square badges have a fixed minimum footprint.
		if part.style.badge == meta.BadgeCircle || part.style.badge == meta.BadgeSquare {
			if part.style.sizeX > aw {
				aw = part.style.sizeX
			}
			if part.style.sizeY > ah {
				ah = part.style.sizeY
			}
		}
		part.AnnotWidth = aw
		part.AnnotHeight = ah
		if aw > part.Width {
			part.Width = aw
		}
		part.PartTopMargin = part.style.marginY
		hMax := ah + part.PartTopMargin
		for h := 0; h < hMax; h++ {
			part.LeftEdge = append(part.LeftEdge, part.Width-aw)
			part.RightEdge = append(part.RightEdge, part.Width)
		}
	} else {
		part.AnnotWidth = 0
		part.AnnotHeight = 0
		part.PartTopMargin = 0
	}

	part.TopMargin = part.csiMargin[1]
	scanEdges(img, &part.LeftEdge, &part.RightEdge)

	// Slide the instance text up into bottom-left whitespace.
	part.TextMargin = part.instanceMargin[1]
	overlap := p.slideUp(part, textWidth, textHeight)
	hMax := textHeight + part.TextMargin
	for h := overlap; h < hMax; h++ {
		part.LeftEdge = append(part.LeftEdge, 0)
		part.RightEdge = append(part.RightEdge, textWidth)
	}

	// BOM element badge below the instance text.
	if p.Bom && p.Meta.PartElements.Display.Value() && part.Element != "" {
		var elementFontPoints float32
		var elementMargin int
		if p.Meta.Annotation.ElementStyle.Value() {
			elementFontPoints = p.Meta.ElementStyle.Font.Points()
			elementMargin = p.Meta.ElementStyle.Margin.ValuePixels(1)
		} else {
			elementFontPoints = p.Meta.Annotate.Font.Points()
			elementMargin = p.Meta.Annotate.Margin.ValuePixels(1)
		}
		ew, eh := fonts.Measure(part.Element, elementFontPoints, dpi)
		part.ElementWidth = ew
		part.ElementHeight = eh
		if ew > part.Width {
			part.Width = ew
		}
		overlap = p.slideUp(part, ew, eh)
		part.PartBotMargin = elementMargin
		hMax = eh + part.PartBotMargin
		for h := overlap; h < hMax; h++ {
			part.LeftEdge = append(part.LeftEdge, 0)
			part.RightEdge = append(part.RightEdge, ew)
		}
	} else {
		part.ElementWidth = 0
		part.ElementHeight = 0
		part.PartBotMargin = part.TextMargin
	}

	part.Height = len(part.LeftEdge)
	part.setSortSize()

	if part.Width > p.widestPart {
		p.widestPart = part.Width
	}
	if part.Height > p.tallestPart {
		p.tallestPart = part.Height
	}
	return nil
}

// slideUp finds how far a box of the given size can ride up into the
// current silhouette's bottom-left corner before bumping an opaque
// pixel. The returned overlap counts rows already covered.
func (p *Pli) slideUp(part *Part, boxWidth, boxHeight int) int {
	overlapped := false
	overlap := 1
	for ; overlap < boxHeight && !overlapped; overlap++ {
		idx := len(part.LeftEdge) - overlap
		if idx < 0 {
			break
		}
		if part.LeftEdge[idx] < boxWidth {
			overlapped = true
		}
	}
	return overlap
}

// scanEdges appends one left and right silhouette edge per scanline.
// A scanline with no opaque pixel reports width-1 / 0, matching how
// a fully transparent row packs.
func scanEdges(img image.Image, left, right *[]int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		x := b.Min.X
		for ; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				break
			}
		}
		if x == b.Max.X {
			*left = append(*left, b.Dx()-1)
		} else {
			*left = append(*left, x-b.Min.X)
		}

		x = b.Max.X - 1
		for ; x >= b.Min.X; x-- {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				break
			}
		}
		if x < b.Min.X {
			*right = append(*right, 0)
		} else {
			*right = append(*right, x-b.Min.X)
		}
	}
}
