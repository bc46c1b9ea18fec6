package pli

import (
	"fmt"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
)

// Variant distinguishes the display treatments a part line can carry.
// Variants of the same part and colour aggregate separately.
type Variant int

const (
	VariantNormal Variant = iota
	VariantFade
	VariantHighlight
)

func (v Variant) String() string {
	switch v {
	case VariantFade:
		return "fade"
	case VariantHighlight:
		return "highlight"
	}
	return "normal"
}

// keySuffix is appended to the aggregation key so variants stay apart.
func (v Variant) keySuffix() string {
	if v == VariantNormal {
		return ""
	}
	return ";" + v.String()
}

// Entry is one part occurrence handed to SetParts: the raw type-1 line,
// where it came from, and any active substitution.
type Entry struct {
	Line    string
	Here    ldraw.Where
	Sub     *meta.SubData
	// SubOriginalType is the part the substitution replaced, when known.
	SubOriginalType string
	Variant         Variant
}

// PartGroup carries a per-part drag offset keyed the same way parts
// aggregate. Offsets are in units and shift the part in the final
// layout.
type PartGroup struct {
	Key    string
	Bom    bool
	Offset [2]float32
	Here   ldraw.Where
}

// styleSnapshot freezes the badge styling resolved for a part while the
// list was assembled, so later re-layout does not depend on meta state.
type styleSnapshot struct {
	badge      meta.BadgeStyle
	fontPoints float32
	color      string
	marginX    int
	marginY    int
	sizeX      int
	sizeY      int
	border     meta.BorderData
	background meta.BackgroundData
}

// Part is one aggregated parts-list entry with its rendering geometry.
type Part struct {
	Type        string
	Color       string
	BaseName    string
	Description string
	Element     string
	Annotation  string

	SubType         meta.Rc
	SubOriginalType string
	Variant         Variant

	// Camera attributes the image was (or will be) rendered with.
	ModelScale   float32
	CameraFoV    float32
	CameraAngles [2]float32
	Target       [3]float32
	Rotation     [3]float32
	Transform    string

	NameKey   string
	ImageName string

	Instances []ldraw.Where

	// GroupOffset shifts the part in the final layout, in units.
	GroupOffset [2]float32

	style styleSnapshot

	// Margins in pixels, frozen at aggregation time.
	csiMargin      [2]int
	instanceMargin [2]int

	// Sort keys, fixed width so string comparison orders correctly.
	SortColour   string
	SortCategory string
	SortElement  string
	SortSize     string

	// Geometry, all pixels. LeftEdge[i] is the leftmost opaque column
	// of scanline i; RightEdge[i] the rightmost. Both run the full
	// composite height: annotation rows, image rows, then instance and
	// element rows.
	Width, Height               int
	PixmapWidth, PixmapHeight   int
	AnnotWidth, AnnotHeight     int
	TextWidth, TextHeight       int
	ElementWidth, ElementHeight int
	PartTopMargin               int
	TopMargin                   int
	TextMargin                  int
	PartBotMargin               int
	LeftEdge, RightEdge         []int

	// Placement state written by PlacePli.
	Left, Bot, Col int
	Placed         bool
}

// maxMargin is the widest horizontal margin the part needs against a
// neighbor: instance text, image, and badge when one is present.
func (p *Part) maxMargin() int {
	m := p.instanceMargin[0]
	if p.csiMargin[0] > m {
		m = p.csiMargin[0]
	}
	if (p.style.badge != meta.BadgeNone || p.AnnotWidth > 0) && p.style.marginX > m {
		m = p.style.marginX
	}
	return m
}

// setSortKeys fixes the comparison strings. Colour pads to 5 with
// zeros; category to 80 with spaces; the element id to 12 zeros for
// LEGO ids or 20 spaces for BrickLink; size is width then height, each
// 8 digits.
func (p *Part) setSortKeys(category string, legoElements bool) {
	p.SortColour = padLeft(p.Color, 5, '0')
	p.SortCategory = fmt.Sprintf("%80s", category)
	if legoElements {
		p.SortElement = padLeft(p.Element, 12, '0')
	} else {
		p.SortElement = fmt.Sprintf("%20s", p.Element)
	}
}

func padLeft(s string, width int, pad byte) string {
	for len(s) < width {
		s = string(pad) + s
	}
	return s
}

func (p *Part) setSortSize() {
	p.SortSize = fmt.Sprintf("%08d%08d", p.Width, p.Height)
}
