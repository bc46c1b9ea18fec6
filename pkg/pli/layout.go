package pli

import (
	"strconv"

	"github.com/trevorsandy/lpub3dNext/pkg/meta"
)

// Rect is an absolute pixel box in the layout, origin top-left.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Badge is a positioned text adornment: the instance count, an
// annotation, or a part element id.
type Badge struct {
	Text  string `json:"text"`
	Rect  Rect   `json:"rect"`
	Style string `json:"style,omitempty"`
	Color string `json:"color,omitempty"`
}

// PlacedPart is one laid-out parts-list entry.
type PlacedPart struct {
	Type        string `json:"type"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	Instances   int    `json:"instances"`
	Column      int    `json:"column"`
	Variant     string `json:"variant,omitempty"`

	Image      Rect   `json:"image"`
	ImagePath  string `json:"imagePath,omitempty"`
	Instance   Badge  `json:"instance"`
	Annotation *Badge `json:"annotation,omitempty"`
	Element    *Badge `json:"element,omitempty"`
}

// Layout is the packed result: overall extent plus every part with its
// absolute child positions. It is plain data; callers draw or serialize
// it however they like.
type Layout struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Cols   int          `json:"cols"`
	Parts  []PlacedPart `json:"parts"`
}

func badgeStyleName(s meta.BadgeStyle) string {
	switch s {
	case meta.BadgeCircle:
		return "circle"
	case meta.BadgeSquare:
		return "square"
	case meta.BadgeRectangle:
		return "rectangle"
	case meta.BadgeElement:
		return "element"
	}
	return ""
}

// BuildLayout converts the packed parts into absolute positions. Parts
// anchor bottom-up: a part's bot measures from the layout's bottom
// edge, so y = height - bot locates its baseline. Group offsets (in
// units) shift individual parts.
func (p *Pli) BuildLayout() Layout {
	layout := Layout{
		Width:  p.Size[0],
		Height: p.Size[1],
		Cols:   p.Cols,
		Parts:  make([]PlacedPart, 0, len(p.SortedKeys)),
	}
	height := p.Size[1]

	for _, key := range p.SortedKeys {
		part, ok := p.Parts[key]
		if !ok {
			continue
		}

		showElement := p.Bom && p.Meta.PartElements.Display.Value() && part.ElementHeight > 0

		x := part.Left + int(meta.ToPixels(part.GroupOffset[0], meta.DPI))
		y := height - part.Bot + int(meta.ToPixels(part.GroupOffset[1], meta.DPI))

		placed := PlacedPart{
			Type:        part.Type,
			Color:       part.Color,
			Description: part.Description,
			Instances:   len(part.Instances),
			Column:      part.Col,
			ImagePath:   part.ImageName,
		}
		if part.Variant != VariantNormal {
			placed.Variant = part.Variant.String()
		}

		placed.Image = Rect{
			X:      x,
			Y:      y - part.Height + part.AnnotHeight + part.PartTopMargin,
			Width:  part.PixmapWidth,
			Height: part.PixmapHeight,
		}

		instanceY := y - part.TextHeight
		if showElement {
			instanceY = y - (part.TextHeight + part.ElementHeight - part.TextMargin)
		}
		placed.Instance = Badge{
			Text: instanceText(len(part.Instances)),
			Rect: Rect{X: x, Y: instanceY, Width: part.TextWidth, Height: part.TextHeight},
		}

		if part.Annotation != "" {
			placed.Annotation = &Badge{
				Text:  part.Annotation,
				Style: badgeStyleName(part.style.badge),
				Color: part.style.color,
				Rect: Rect{
					X:      x + part.Width - part.AnnotWidth,
					Y:      y - part.Height,
					Width:  part.AnnotWidth,
					Height: part.AnnotHeight,
				},
			}
		}

		if showElement {
			placed.Element = &Badge{
				Text:  part.Element,
				Style: "element",
				Rect: Rect{
					X:      x,
					Y:      y - part.ElementHeight,
					Width:  part.ElementWidth,
					Height: part.ElementHeight,
				},
			}
		}

		layout.Parts = append(layout.Parts, placed)
	}
	return layout
}

func instanceText(n int) string {
	// Matches the instance string measured during sizing.
	return strconv.Itoa(n) + "x"
}
