package meta

import (
	"fmt"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// BorderMeta holds a frame description: NONE with a line style, SQUARE
// with line style, color and thickness, or ROUND which adds a corner
// radius. An optional trailing MARGINS clause carries the two margin
// lengths. A failed parse leaves the stored value untouched.
type BorderMeta struct {
	leaf[BorderData]
}

func (m *BorderMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.value[0] = DefaultBorderData()
	m.value[1] = m.value[0]
}

func (m *BorderMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	rc := FailureRc
	size := len(argv)
	v := m.value[m.pushed]

	switch {
	case index < size && argv[index] == "NONE" && size-index >= 2:
		if line, ok := parseInt(argv[index+1]); ok {
			v.Type = BdrNone
			v.Line = line
			index += 2
			rc = OkRc
		}
	case index < size && argv[index] == "SQUARE" && size-index >= 4:
		line, ok0 := parseInt(argv[index+1])
		thickness, ok1 := parseFloat(argv[index+3])
		if ok0 && ok1 {
			v.Type = BdrSquare
			v.Line = line
			v.Color = argv[index+2]
			v.Thickness = thickness
			index += 4
			rc = OkRc
		}
	case index < size && argv[index] == "ROUND" && size-index >= 5:
		line, ok0 := parseInt(argv[index+1])
		thickness, ok1 := parseFloat(argv[index+3])
		radius, ok2 := parseInt(argv[index+4])
		if ok0 && ok1 && ok2 {
			v.Type = BdrRound
			v.Line = line
			v.Color = argv[index+2]
			v.Thickness = thickness
			v.Radius = float32(radius)
			index += 5
			rc = OkRc
		}
	}

	// A three token tail must be the margins clause. Any other tail
	// length is ignored.
	if rc == OkRc && size-index == 3 {
		if argv[index] == "MARGINS" {
			mx, ok0 := parseFloat(argv[index+1])
			my, ok1 := parseFloat(argv[index+2])
			if ok0 && ok1 {
				v.Margin = [2]float32{mx, my}
			} else {
				rc = FailureRc
			}
		} else {
			rc = FailureRc
		}
	}

	if rc == OkRc {
		m.value[m.pushed] = v
		m.here[m.pushed] = here
	}
	return rc
}

func (m *BorderMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	var suffix string
	switch v.Type {
	case BdrNone:
		suffix = fmt.Sprintf("NONE %d", v.Line)
	case BdrSquare:
		suffix = fmt.Sprintf("SQUARE %d %s %s", v.Line, v.Color, ftoa(v.Thickness))
	default:
		suffix = fmt.Sprintf("ROUND %d %s %s %s", v.Line, v.Color, ftoa(v.Thickness), ftoa(v.Radius))
	}
	suffix += fmt.Sprintf(" MARGINS %s %s", ftoa(v.Margin[0]), ftoa(v.Margin[1]))
	return m.fmtPrefix(local, global) + suffix
}

func (m *BorderMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (NONE <line> |SQUARE <line> <color> <thickness>|ROUND <line> <color> <thickness> <radius>) MARGINS <x> <y>")
}

// ValuePixels projects the thickness, radius and margins to pixels at
// the current resolution.
func (m *BorderMeta) ValuePixels() BorderData {
	v := m.value[m.pushed]
	v.Thickness = v.Thickness * Resolution()
	v.Margin[0] = v.Margin[0] * Resolution()
	v.Margin[1] = v.Margin[1] * Resolution()
	return v
}

// Text renders a short human description of the border.
func (m *BorderMeta) Text() string {
	v := m.value[m.pushed]
	switch v.Type {
	case BdrNone:
		return "No Border"
	case BdrSquare:
		return fmt.Sprintf("Square Corners, thickness %.3f", v.Thickness)
	default:
		return fmt.Sprintf("Round Corners, thickness %.3f", v.Thickness)
	}
}
