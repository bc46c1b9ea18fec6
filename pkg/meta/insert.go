package meta

import (
	"fmt"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// InsertMeta parses content inserts: pictures with an optional scale,
// text blocks, arrows, BOM markers, rotate icons, and the page and
// cover page directives. Inserts are document content rather than
// scoped settings, so the stored value has a single slot.
type InsertMeta struct {
	abstractMeta
	value InsertData
	here  [2]ldraw.Where
}

func (m *InsertMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.value = DefaultInsertData()
}

// Value returns the last parsed insert.
func (m *InsertMeta) Value() InsertData { return m.value }

// SetValue replaces the stored insert.
func (m *InsertMeta) SetValue(v InsertData) { m.value = v }

// Here returns where the insert was last seen.
func (m *InsertMeta) Here() ldraw.Where { return m.here[0] }

func (m *InsertMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if index >= len(argv) {
		return FailureRc
	}
	data := DefaultInsertData()
	rc := OkRc
	size := len(argv)

	if size-index == 1 {
		switch argv[index] {
		case "PAGE":
			return InsertPageRc
		case "MODEL":
			return InsertFinalModelRc
		case "COVER_PAGE":
			return InsertCoverPageRc
		}
	} else if size-index == 2 {
		if argv[index] == "COVER_PAGE" {
			return InsertCoverPageRc
		}
	}

	switch {
	case size-index > 1 && argv[index] == "PICTURE":
		data.Type = InsertPicture
		data.PicName = argv[index+1]
		index += 2
		if size-index >= 2 && argv[index] == "SCALE" {
			v, ok := parseFloat(argv[index+1])
			data.PicScale = float64(v)
			index += 2
			if !ok {
				rc = FailureRc
			}
		}
	case size-index > 3 && argv[index] == "TEXT":
		data.Type = InsertText
		data.Text = argv[index+1]
		data.TextFont = argv[index+2]
		data.TextColor = argv[index+3]
		index += 4
	case argv[index] == "ROTATE_ICON":
		data.Type = InsertRotateIcon
		index++
	case size-index >= 8 && argv[index] == "ARROW":
		data.Type = InsertArrow
		var f [7]float32
		good := true
		for i := range f {
			v, ok := parseFloat(argv[index+1+i])
			f[i] = v
			good = good && ok
		}
		data.ArrowHead = PointF{X: float64(f[0]), Y: float64(f[1])}
		data.ArrowTail = PointF{X: float64(f[2]), Y: float64(f[3])}
		data.HaftingDepth = float64(f[4])
		data.HaftingTip = PointF{X: float64(f[5]), Y: float64(f[6])}
		if !good {
			rc = FailureRc
		}
		index += 8
	case argv[index] == "BOM":
		data.Type = InsertBom
		index++
	}

	if rc == OkRc {
		if size-index == 3 && argv[index] == "OFFSET" {
			v0, ok0 := parseFloat(argv[index+1])
			v1, ok1 := parseFloat(argv[index+2])
			data.Offsets = [2]float32{v0, v1}
			if !ok0 || !ok1 {
				rc = FailureRc
			}
		} else if size-index > 0 {
			rc = FailureRc
		}
	}

	if rc != OkRc {
		return FailureRc
	}
	m.value = data
	m.here[0] = here
	return InsertRc
}

func (m *InsertMeta) Format(local, global bool) string {
	v := m.value
	var suffix string
	switch v.Type {
	case InsertPicture:
		suffix = `PICTURE "` + v.PicName + `"`
		if v.PicScale != 0 {
			suffix += " SCALE " + ftoa64(v.PicScale)
		}
	case InsertText:
		suffix = fmt.Sprintf(`TEXT "%s" "%s" "%s"`, v.Text, v.TextFont, v.TextColor)
	case InsertRotateIcon:
		suffix = "ROTATE_ICON"
	case InsertArrow:
		suffix = fmt.Sprintf("ARROW %s %s %s %s %s %s %s",
			ftoa64(v.ArrowHead.X), ftoa64(v.ArrowHead.Y),
			ftoa64(v.ArrowTail.X), ftoa64(v.ArrowTail.Y),
			ftoa64(v.HaftingDepth),
			ftoa64(v.HaftingTip.X), ftoa64(v.HaftingTip.Y))
	case InsertBom:
		suffix = "BOM"
	}
	if v.Offsets[0] != 0 || v.Offsets[1] != 0 {
		suffix += fmt.Sprintf(" OFFSET %s %s", ftoa(v.Offsets[0]), ftoa(v.Offsets[1]))
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *InsertMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+` (PAGE|MODEL|COVER_PAGE|PICTURE "name" [SCALE <s>]|TEXT "text" "font" "color"|ARROW <hx> <hy> <tx> <ty> <hd> <hfx> <hfy>|BOM|ROTATE_ICON) [OFFSET <x> <y>]`)
}

func (m *InsertMeta) Pop() { m.pushed = 0 }
