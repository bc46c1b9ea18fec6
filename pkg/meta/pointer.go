package meta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// PointerMeta holds one callout, divider, illustration or page pointer.
// The first token places the pointer base on a corner or a side of its
// owner; side placements carry a fractional location along that side.
// Single-segment forms give just the tip, multi-segment forms add the
// base, mid base and mid tip control points plus a segment count, and
// page pointers append the base rectangle placement.
type PointerMeta struct {
	leaf[PointerData]
}

func (m *PointerMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.value[0] = DefaultPointerData()
	m.value[1] = m.value[0]
}

func pointerCorner(s string) bool {
	switch s {
	case "TOP_LEFT", "TOP_RIGHT", "BOTTOM_LEFT", "BOTTOM_RIGHT":
		return true
	}
	return false
}

func pointerSide(s string) bool {
	switch s {
	case "TOP", "BOTTOM", "LEFT", "RIGHT", "CENTER":
		return true
	}
	return false
}

func (m *PointerMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	var (
		loc, x1, y1, x2, y2 float32
		x3, y3, x4, y4      float32
		base                float32 = -1
		segments                    = 1
		bRect               RectPlacement
	)
	nTokens := len(argv) - index
	fail := true
	pagePointer := false

	// Parses n consecutive floats starting at token at.
	floats := func(at, n int) ([]float32, bool) {
		out := make([]float32, n)
		for i := 0; i < n; i++ {
			v, ok := parseFloat(argv[at+i])
			if !ok {
				return nil, false
			}
			out[i] = v
		}
		return out, true
	}

	if nTokens > 0 {
		pagePointer = len(argv) > 1 && argv[1] == "PAGE_POINTER"

		switch first := argv[index]; {
		case pointerCorner(first) && nTokens == 4:
			if f, ok := floats(index+1, 3); ok {
				x1, y1, base = f[0], f[1], f[2]
				fail = false
			}
		case pointerCorner(first) && nTokens == 3:
			if f, ok := floats(index+1, 2); ok {
				x1, y1 = f[0], f[1]
				fail = false
			}
		case pointerCorner(first) && ((pagePointer && nTokens == 12) || (!pagePointer && nTokens == 11)):
			f, fok := floats(index+1, 9)
			n, nok := parseInt(argv[index+10])
			if fok && nok {
				x1, y1, x2, y2 = f[0], f[1], f[2], f[3]
				x3, y3, x4, y4 = f[4], f[5], f[6], f[7]
				base = f[8]
				segments = n
				if pagePointer {
					code, _ := TokenCode(argv[index+11])
					bRect = RectPlacement(code)
				}
				fail = false
			}
		case pointerCorner(first) && ((pagePointer && nTokens == 11) || (!pagePointer && nTokens == 10)):
			f, fok := floats(index+1, 8)
			n, nok := parseInt(argv[index+9])
			if fok && nok {
				x1, y1, x2, y2 = f[0], f[1], f[2], f[3]
				x3, y3, x4, y4 = f[4], f[5], f[6], f[7]
				segments = n
				if pagePointer {
					code, _ := TokenCode(argv[index+10])
					bRect = RectPlacement(code)
				}
				fail = false
			}
		case pointerSide(first) && nTokens == 5:
			if f, ok := floats(index+1, 4); ok {
				loc, x1, y1, base = f[0], f[1], f[2], f[3]
				fail = false
			}
		case pointerSide(first) && nTokens == 4:
			if f, ok := floats(index+1, 3); ok {
				loc, x1, y1 = f[0], f[1], f[2]
				fail = false
			}
		case pointerSide(first) && ((pagePointer && nTokens == 13) || (!pagePointer && nTokens == 12)):
			f, fok := floats(index+1, 10)
			n, nok := parseInt(argv[index+11])
			if fok && nok {
				loc = f[0]
				x1, y1, x2, y2 = f[1], f[2], f[3], f[4]
				x3, y3, x4, y4 = f[5], f[6], f[7], f[8]
				base = f[9]
				segments = n
				if pagePointer {
					code, _ := TokenCode(argv[index+12])
					bRect = RectPlacement(code)
				}
				fail = false
			}
		case pointerSide(first) && ((pagePointer && nTokens == 12) || (!pagePointer && nTokens == 11)):
			f, fok := floats(index+1, 9)
			n, nok := parseInt(argv[index+10])
			if fok && nok {
				loc = f[0]
				x1, y1, x2, y2 = f[1], f[2], f[3], f[4]
				x3, y3, x4, y4 = f[5], f[6], f[7], f[8]
				segments = n
				if pagePointer {
					code, _ := TokenCode(argv[index+11])
					bRect = RectPlacement(code)
				}
				fail = false
			}
		}
	}

	if fail {
		return FailureRc
	}

	v := &m.value[m.pushed]
	code, _ := TokenCode(argv[index])
	v.Placement = PlacementEnc(code)
	v.Loc = loc
	v.X1, v.Y1 = x1, y1
	v.X2, v.Y2 = x2, y2
	v.X3, v.Y3 = x3, y3
	v.X4, v.Y4 = x4, y4
	v.Segments = segments
	if pagePointer {
		v.RectPlacement = bRect
	}
	if base > 0 {
		v.Base = base
	} else if v.Base == 0 {
		v.Base = 1.0 / 8
	}
	m.here[0] = here
	m.here[1] = here

	if len(argv) > 1 {
		switch argv[1] {
		case "CALLOUT":
			return CalloutPointerRc
		case "PAGE_POINTER":
			return PagePointerRc
		case "DIVIDER":
			return DividerPointerRc
		case "ILLUSTRATION":
			return IllustrationPointerRc
		}
	}
	return OkRc
}

func (m *PointerMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	pagePointer := strings.Contains(m.preamble, " PAGE_POINTER ")

	tail := ftoa(v.Base) + " " + strconv.Itoa(v.Segments)
	if pagePointer {
		tail += " " + RectPlacementName(v.RectPlacement)
	}

	var suffix string
	switch v.Placement {
	case TopLeft, TopRight, BottomRight, BottomLeft:
		suffix = fmt.Sprintf("%s %.3f %.3f %.3f %.3f %.3f %.3f %.3f %.3f %s",
			PlacementName(v.Placement),
			v.X1, v.Y1, v.X2, v.Y2, v.X3, v.Y3, v.X4, v.Y4, tail)
	default:
		suffix = fmt.Sprintf("%s %.3f %.3f %.3f %.3f %.3f %.3f %.3f %.3f %.3f %s",
			PlacementName(v.Placement),
			v.Loc, v.X1, v.Y1, v.X2, v.Y2, v.X3, v.Y3, v.X4, v.Y4, tail)
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *PointerMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (TOP_LEFT|TOP_RIGHT|BOTTOM_LEFT|BOTTOM_RIGHT) <floatLoc> <floatX1> <floatY1>"+
		" [<floatX2> <floatY2> <floatX3> <floatY3> <floatX4> <floatY4>] <floatBase> [intSegments]"+
		" [(TOP|BOTTOM|LEFT|RIGHT)]")
}
