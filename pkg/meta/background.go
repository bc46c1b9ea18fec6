package meta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// BackgroundMeta holds a fill directive. The token count selects the
// variant: one token for transparent, submodel color, or a bare picture
// path; two for COLOR or PICTURE; three for a stretched picture; nine
// for a gradient.
type BackgroundMeta struct {
	leaf[BackgroundData]
}

func (m *BackgroundMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

func (m *BackgroundMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	rc := FailureRc
	v := &m.value[m.pushed]

	switch len(argv) - index {
	case 1:
		switch argv[index] {
		case "TRANS", "TRANSPARENT":
			v.Type = BgTransparent
			rc = OkRc
		case "SUBMODEL_BACKGROUND_COLOR":
			v.Type = BgSubmodelColor
			rc = OkRc
		default:
			v.Type = BgImage
			v.Value = argv[index]
			v.Stretch = false
			rc = OkRc
		}
	case 2:
		switch argv[index] {
		case "COLOR":
			v.Type = BgColor
			v.Value = argv[index+1]
			rc = OkRc
		case "PICTURE":
			v.Type = BgImage
			v.Value = argv[index+1]
			v.Stretch = false
			rc = OkRc
		}
	case 3:
		if argv[index] == "PICTURE" && argv[index+2] == "STRETCH" {
			v.Type = BgImage
			v.Value = argv[index+1]
			v.Stretch = true
			rc = OkRc
		}
	case 9:
		if argv[index] == "GRADIENT" {
			rc = m.parseGradient(argv, index)
		}
	}

	if rc == OkRc {
		m.here[m.pushed] = here
		return rc
	}
	return FailureRc
}

func (m *BackgroundMeta) parseGradient(argv []string, index int) Rc {
	gmode, ok0 := parseInt(argv[index+1])
	gspread, ok1 := parseInt(argv[index+2])
	gtype, ok2 := parseInt(argv[index+3])
	sizeX, ok3 := parseFloat(argv[index+4])
	sizeY, ok4 := parseFloat(argv[index+5])
	angle, ok5 := parseFloat(argv[index+6])
	if !(ok0 && ok1 && ok2 && ok3 && ok4 && ok5) {
		return FailureRc
	}

	var gpoints []PointF
	for _, field := range strings.Split(argv[index+7], "|") {
		x, okx := parseFloat(pointSection(field, 0))
		y, oky := parseFloat(pointSection(field, 1))
		if !okx || !oky {
			return FailureRc
		}
		gpoints = append(gpoints, PointF{X: float64(x), Y: float64(y)})
	}

	var gstops []GradientStop
	for _, field := range strings.Split(argv[index+8], "|") {
		pos, okp := parseFloat(pointSection(field, 0))
		rgba, okc := parseHexColor(pointSection(field, 1))
		if !okp || !okc {
			return FailureRc
		}
		gstops = append(gstops, GradientStop{Pos: float64(pos), Color: rgba})
	}

	v := &m.value[m.pushed]
	v.Type = BgGradient
	switch gmode {
	case 0:
		v.GMode = LogicalMode
	case 1:
		v.GMode = StretchToDeviceMode
	case 2:
		v.GMode = ObjectBoundingMode
	}
	switch gspread {
	case 0:
		v.GSpread = PadSpread
	case 1:
		v.GSpread = RepeatSpread
	case 2:
		v.GSpread = ReflectSpread
	}
	switch gtype {
	case 0:
		v.GType = LinearGradient
	case 1:
		v.GType = RadialGradient
	case 2:
		v.GType = ConicalGradient
	}
	v.GSize = [2]float64{float64(sizeX), float64(sizeY)}
	v.GAngle = float64(angle)
	v.GPoints = gpoints
	v.GStops = gstops
	return OkRc
}

// pointSection returns the nth comma-separated section of s, "" when
// missing.
func pointSection(s string, n int) string {
	fields := strings.Split(s, ",")
	if n >= len(fields) {
		return ""
	}
	return fields[n]
}

// parseHexColor reads an AARRGGBB hex colour with or without a 0x
// prefix.
func parseHexColor(s string) (uint32, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func (m *BackgroundMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	var suffix string
	switch v.Type {
	case BgTransparent:
		suffix = "TRANSPARENT"
	case BgSubmodelColor:
		suffix = "SUBMODEL_BACKGROUND_COLOR"
	case BgColor:
		suffix = `COLOR "` + v.Value + `"`
	case BgGradient:
		points := make([]string, len(v.GPoints))
		for i, p := range v.GPoints {
			points[i] = ftoa64(p.X) + "," + ftoa64(p.Y)
		}
		stops := make([]string, len(v.GStops))
		for i, s := range v.GStops {
			// Alpha is forced opaque on the way out.
			stops[i] = fmt.Sprintf("%s,0xff%06x", ftoa64(s.Pos), s.Color&0xffffff)
		}
		suffix = fmt.Sprintf("GRADIENT %d %d %d %s %s %s \"%s\" \"%s\"",
			v.GMode, v.GSpread, v.GType,
			ftoa64(v.GSize[0]), ftoa64(v.GSize[1]), ftoa64(v.GAngle),
			strings.Join(points, "|"), strings.Join(stops, "|"))
	case BgImage:
		suffix = `PICTURE "` + v.Value + `"`
		if v.Stretch {
			suffix += " STRETCH"
		}
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *BackgroundMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+` (TRANSPARENT|SUBMODEL_BACKGROUND_COLOR|COLOR <"color">|GRADIENT <mode spread type size[0] size[1] angle "points" "stops">|PICTURE (STRETCH) <"picture">)`)
}

// Text describes the background for display.
func (m *BackgroundMeta) Text() string {
	v := m.value[m.pushed]
	switch v.Type {
	case BgTransparent:
		return "Transparent"
	case BgImage:
		return "Picture " + v.Value
	case BgColor:
		return "Color " + v.Value
	case BgGradient:
		return "Gradient " + v.Value
	}
	return "Submodel level color"
}
