// Package pli assembles and lays out LDraw parts lists: the per-step
// part callout and the bill of materials. Parts aggregate by base name
// and colour, sort on configurable keys, and pack into columns against
// a size constraint using the rendered images' alpha silhouettes.
package pli

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/trevorsandy/lpub3dNext/pkg/catalog"
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/parts"
	"github.com/trevorsandy/lpub3dNext/pkg/render"
)

// Options wires the collaborators a parts list needs to size itself.
type Options struct {
	Library  parts.Library
	Catalog  *catalog.Catalog
	Renderer render.Renderer
	// ImageDir caches rendered part images; an existing image is
	// reused rather than re-rendered.
	ImageDir string
	// Orienter supplies preferred display rotations; nil leaves parts
	// in the identity rotation.
	Orienter *Orienter
	// PageWidth is the page width in pixels, folded into the image
	// name key so resizes invalidate cached images.
	PageWidth float32
	// Logger may be nil for silence.
	Logger *log.Logger
}

// Pli is one parts list. Populate it with SetParts, then SizePli (or
// SortPli + ResizePli) to pack it, then BuildLayout for the result.
type Pli struct {
	Meta     *meta.PliMeta
	Bom      bool
	SplitBom bool

	// BomOccurrence and BomCount drive split-BOM windowing: this list
	// is occurrence N of M.
	BomOccurrence int
	BomCount      int

	Parts      map[string]*Part
	SortedKeys []string

	// Size and Cols hold the packed extent after sizing.
	Size [2]int
	Cols int

	opts        Options
	widestPart  int
	tallestPart int

	// Errs accumulates non-fatal failures (render fallbacks, element
	// lookup misses) for the caller to report.
	Errs []error
}

// New returns an empty list bound to its meta branch.
func New(m *meta.PliMeta, opts Options) *Pli {
	return &Pli{
		Meta:  m,
		Parts: make(map[string]*Part),
		opts:  opts,
	}
}

// Clear drops the aggregated parts.
func (p *Pli) Clear() {
	p.Parts = make(map[string]*Part)
	p.SortedKeys = nil
	p.Size = [2]int{}
	p.Cols = 0
}

func (p *Pli) logger() *log.Logger { return p.opts.Logger }

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// partClassRx splits a description into its leading class word and the
// following token.
var partClassRx = regexp.MustCompile(`^(\w+)\s+([0-9a-zA-Z]+).*$`)

// PartClass derives the sort category from a part description: the
// first word, with the second token appended for Technic parts so axles
// and beams group by kind. Descriptions with no class sort as "NoCat".
func PartClass(description string) string {
	if description != "" {
		if m := partClassRx.FindStringSubmatch(description); m != nil {
			class := m[1]
			if class == "Technic" {
				class += m[2]
			}
			return class
		}
	}
	return "NoCat"
}

// Annotation resolves the annotation text for a part according to the
// source toggles: fixed style annotations come from the title patterns,
// then title, title-and-freeform, or freeform cascade. The colour
// abbreviation table backs freeform lookups with no explicit entry.
func (p *Pli) annotation(partType, color, description string, styled bool) string {
	ann := p.Meta.Annotation
	if !ann.Display.Value() {
		return ""
	}
	cat := p.opts.Catalog
	if cat == nil || cat.Annotations == nil {
		return ""
	}
	freeform := func() string {
		if s := cat.Annotations.FreeformAnnotation(partType); s != "" {
			return s
		}
		return catalog.ColorAbbreviation(color)
	}
	title := ann.TitleAnnotation.Value()
	useFreeform := ann.FreeformAnnotation.Value()
	both := ann.TitleAndFreeformAnnotation.Value()

	if styled || title || both {
		if s, ok := cat.Annotations.TitleAnnotation(description); ok {
			return s
		}
		if styled || both {
			return freeform()
		}
		return ""
	}
	if useFreeform {
		return freeform()
	}
	return ""
}

// badgeStyle resolves which badge a part gets: fixed shape styles when
// the part's category toggle is on, else the extended rectangle style,
// else the plain annotate styling.
func (p *Pli) badgeStyle(partType string) styleSnapshot {
	ann := p.Meta.Annotation

	plain := styleSnapshot{
		badge:      meta.BadgeNone,
		fontPoints: p.Meta.Annotate.Font.Points(),
		color:      p.Meta.Annotate.Color.Value(),
		marginX:    p.Meta.Annotate.Margin.ValuePixels(0),
		marginY:    p.Meta.Annotate.Margin.ValuePixels(1),
	}

	if !ann.Display.Value() || !ann.EnableStyle.Value() {
		return plain
	}

	fromMeta := func(sm *meta.StyleMeta) styleSnapshot {
		return styleSnapshot{
			badge:      sm.BadgeStyle(),
			fontPoints: sm.Font.Points(),
			color:      sm.Color.Value(),
			marginX:    sm.Margin.ValuePixels(0),
			marginY:    sm.Margin.ValuePixels(1),
			sizeX:      sm.Size.ValuePixels(0),
			sizeY:      sm.Size.ValuePixels(1),
			border:     sm.Border.Value(),
			background: sm.Background.Value(),
		}
	}

	if ann.FixedAnnotations.Value() && p.opts.Catalog != nil && p.opts.Catalog.Styles != nil {
		shape, category, ok := p.opts.Catalog.Styles.Style(partType)
		if ok {
			enabled := false
			switch category {
			case catalog.CategoryAxle:
				enabled = ann.AxleStyle.Value()
			case catalog.CategoryBeam:
				enabled = ann.BeamStyle.Value()
			case catalog.CategoryCable:
				enabled = ann.CableStyle.Value()
			case catalog.CategoryConnector:
				enabled = ann.ConnectorStyle.Value()
			case catalog.CategoryHose:
				enabled = ann.HoseStyle.Value()
			case catalog.CategoryPanel:
				enabled = ann.PanelStyle.Value()
			}
			if enabled {
				switch shape {
				case catalog.ShapeCircle:
					return fromMeta(&p.Meta.CircleStyle)
				case catalog.ShapeSquare:
					return fromMeta(&p.Meta.SquareStyle)
				case catalog.ShapeRectangle:
					return fromMeta(&p.Meta.RectStyle)
				}
			} else if ann.ExtendedStyle.Value() {
				return fromMeta(&p.Meta.RectStyle)
			}
			return plain
		}
	}
	if ann.ExtendedStyle.Value() {
		return fromMeta(&p.Meta.RectStyle)
	}
	return plain
}

// SetParts aggregates the part occurrences into the list. Occurrences
// of the same base name, colour and variant fold into one entry whose
// instance count grows; substitutions override the camera attributes
// and extend the image name key. With Bom and SplitBom set, only this
// list's occurrence window of the sorted whole is kept.
func (p *Pli) SetParts(ctx context.Context, entries []Entry, groups []PartGroup, bom, split bool) error {
	p.Bom = bom
	p.SplitBom = bom && split

	target := p.Parts
	if p.SplitBom {
		target = make(map[string]*Part)
	}

	displayAnnotation := p.Meta.Annotation.Display.Value()
	displayElement := p.Meta.PartElements.Display.Value()
	legoElements := p.Meta.PartElements.LegoElements.Value()
	localLego := p.Meta.PartElements.LocalLegoElements.Value()

	for _, e := range entries {
		line, err := ldraw.ParsePartLine(e.Line)
		if err != nil {
			continue
		}
		color := line.Color
		partType := line.Type
		baseName := ldraw.BaseName(partType)
		key := baseName + "_" + color + e.Variant.keySuffix()

		if part, ok := target[key]; ok {
			part.Instances = append(part.Instances, e.Here)
			continue
		}

		description := ""
		if p.opts.Library != nil {
			if info, ok := p.opts.Library.FindPart(partType); ok {
				description = info.Description
			}
		}
		category := PartClass(description)

		part := &Part{
			Type:        partType,
			Color:       color,
			BaseName:    baseName,
			Description: description,
			Variant:     e.Variant,
			Instances:   []ldraw.Where{e.Here},
			ModelScale:  p.Meta.ModelScale.Value(),
			CameraFoV:   p.Meta.CameraFoV.Value(),
		}

		// ABS rotation steps zero the camera angles; the rotation
		// already encodes the full viewing orientation.
		if p.Meta.RotStep.Value().Type != "ABS" {
			part.CameraAngles = p.Meta.Angle.Value()
		}

		part.csiMargin = [2]int{
			p.Meta.Part.Margin.ValuePixels(0),
			p.Meta.Part.Margin.ValuePixels(1),
		}
		part.instanceMargin = [2]int{
			p.Meta.Instance.Margin.ValuePixels(0),
			p.Meta.Instance.Margin.ValuePixels(1),
		}

		// Part element id, BOM only.
		if displayAnnotation && bom && displayElement {
			part.Element = p.elementFor(ctx, e, baseName, color, legoElements, localLego)
		}

		part.style = p.badgeStyle(partType)

		// Substitute attribute overrides.
		suffix := ""
		if e.Sub != nil {
			part.SubType = e.Sub.Type
			part.SubOriginalType = e.SubOriginalType
			sub := e.Sub
			if sub.Type > meta.PliBeginSub2Rc {
				part.ModelScale = sub.ModelScale
			}
			if sub.Type > meta.PliBeginSub3Rc {
				part.CameraFoV = sub.CameraFoV
			}
			if sub.Type > meta.PliBeginSub4Rc {
				part.CameraAngles = sub.CameraAngles
			}
			if sub.Type > meta.PliBeginSub5Rc {
				part.Target = sub.Target
				suffix = fmt.Sprintf("_%s_%s_%s",
					formatFloat32(sub.Target[0]), formatFloat32(sub.Target[1]), formatFloat32(sub.Target[2]))
			}
			if sub.Type > meta.PliBeginSub6Rc {
				part.Rotation = sub.Rotation
				part.Transform = sub.Transform
				suffix = fmt.Sprintf("_%s_%s_%s_%s",
					formatFloat32(sub.Rotation[0]), formatFloat32(sub.Rotation[1]), formatFloat32(sub.Rotation[2]), sub.Transform)
			}
			if sub.Type > meta.PliBeginSub7Rc {
				suffix = fmt.Sprintf("_%s_%s_%s_%s_%s_%s_%s",
					formatFloat32(sub.Target[0]), formatFloat32(sub.Target[1]), formatFloat32(sub.Target[2]),
					formatFloat32(sub.Rotation[0]), formatFloat32(sub.Rotation[1]), formatFloat32(sub.Rotation[2]), sub.Transform)
			}
		}

		part.NameKey = p.nameKey(part, suffix)
		part.ImageName = filepath.Join(p.opts.ImageDir, part.NameKey+".png")
		part.setSortKeys(category, legoElements)
		part.GroupOffset = p.groupOffset(groups, key, bom)

		target[key] = part
	}

	if p.SplitBom {
		p.applySplitWindow(target)
	}
	return nil
}

// nameKey builds the image cache key: every attribute that changes the
// rendered pixels, in a fixed field order, plus any substitute or
// document target/rotation suffix.
func (p *Pli) nameKey(part *Part, subSuffix string) string {
	sizeField := p.opts.PageWidth
	if v := p.Meta.ImageSize.ValueInches()[0]; v > 0 {
		sizeField = v
	}
	unit := "DPI"
	if meta.ResolutionUnit() == meta.DPCM {
		unit = "DPCM"
	}
	key := strings.Join([]string{
		part.BaseName,
		part.Color,
		formatFloat32(sizeField),
		formatFloat32(meta.Resolution()),
		unit,
		formatFloat32(part.ModelScale),
		formatFloat32(part.CameraFoV),
		formatFloat32(part.CameraAngles[0]),
		formatFloat32(part.CameraAngles[1]),
	}, "_")
	if part.Variant != VariantNormal {
		key += "_" + part.Variant.String()
	}

	if part.SubType != 0 && subSuffix != "" {
		return key + subSuffix
	}
	if p.Meta.Target.IsPopulated() {
		key += fmt.Sprintf("_%s_%s_%s",
			formatFloat32(p.Meta.Target.X()), formatFloat32(p.Meta.Target.Y()), formatFloat32(p.Meta.Target.Z()))
	}
	if p.Meta.RotStep.IsPopulated() {
		rs := p.Meta.RotStep.Value()
		key += fmt.Sprintf("_%s_%s_%s_%s",
			strconv.FormatFloat(rs.Rots[0], 'g', -1, 64),
			strconv.FormatFloat(rs.Rots[1], 'g', -1, 64),
			strconv.FormatFloat(rs.Rots[2], 'g', -1, 64),
			rs.Type)
	}
	return key
}

func (p *Pli) elementFor(ctx context.Context, e Entry, baseName, color string, legoElements, localLego bool) string {
	if p.opts.Catalog == nil || p.opts.Catalog.Elements == nil {
		return ""
	}
	// Substituted parts look up under the original type when it maps
	// back to an LDraw part.
	typeID := baseName
	if e.SubOriginalType != "" {
		orig := strings.SplitN(e.SubOriginalType, ":", 2)[0]
		if orig != "undefined" && orig != "" {
			typeID = ldraw.BaseName(orig)
		}
	}
	flavor := catalog.FlavorBrickLink
	if legoElements || localLego {
		flavor = catalog.FlavorLEGO
	}
	element, err := p.opts.Catalog.Elements.Element(ctx, typeID, color, flavor)
	if err != nil {
		if p.logger() != nil {
			p.logger().Debug("no element id", "part", typeID, "color", color, "flavor", flavor)
		}
		return ""
	}
	return element
}

func (p *Pli) groupOffset(groups []PartGroup, key string, bom bool) [2]float32 {
	if !p.Meta.EnableGroups.Value() {
		return [2]float32{}
	}
	for _, g := range groups {
		if g.Key == key && (!bom || g.Bom) {
			return g.Offset
		}
	}
	return [2]float32{}
}

// applySplitWindow keeps this list's share of a BOM spread over several
// placements. Parts are walked in sorted key order; each occurrence
// takes size/count entries and the last also takes the remainder.
func (p *Pli) applySplitWindow(temp map[string]*Part) {
	keys := make([]string, 0, len(temp))
	for k := range temp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	boms := p.BomCount
	occurrence := p.BomOccurrence
	if boms < 1 {
		boms = 1
	}
	if occurrence < 1 {
		occurrence = 1
	}

	quotient := len(keys) / boms
	remainder := len(keys) % boms

	var startIndex, maxParts int
	if occurrence == boms {
		maxParts = occurrence*quotient + remainder
		startIndex = maxParts - quotient - remainder
	} else {
		maxParts = occurrence * quotient
		startIndex = maxParts - quotient
	}

	for i, key := range keys {
		if i >= startIndex && i < maxParts {
			p.Parts[key] = temp[key]
		}
	}
}
