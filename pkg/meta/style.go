package meta

import (
	"fmt"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// BadgeStyle selects the shape drawn behind a part annotation badge.
type BadgeStyle int

const (
	BadgeNone BadgeStyle = iota
	BadgeCircle
	BadgeSquare
	BadgeRectangle
	BadgeElement
)

// StyleMeta bundles the look of one annotation badge style: frame, fill,
// text face and color, margins, fixed size and the badge shape itself.
type StyleMeta struct {
	BranchMeta
	Border     BorderMeta
	Background BackgroundMeta
	Font       FontMeta
	Color      StringMeta
	Margin     MarginsMeta
	Size       UnitsMeta
	Style      IntMeta
}

func (m *StyleMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Font.Init(&m.BranchMeta, "FONT")
	m.Color.Init(&m.BranchMeta, "COLOR")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Size.Init(&m.BranchMeta, "SIZE")
	m.Style.Init(&m.BranchMeta, "STYLE")
	m.Style.SetRange(int(BadgeNone), int(BadgeElement))
	m.Size.SetRange(0.1, 8)
}

// BadgeStyle returns the badge shape held by the STYLE leaf.
func (m *StyleMeta) BadgeStyle() BadgeStyle {
	return BadgeStyle(m.Style.Value())
}

// setStyleDefaults primes one badge style with its factory look.
func (m *StyleMeta) setStyleDefaults(style BadgeStyle, fill string, size float32) {
	m.Style.SetValue(int(style))
	borderType := BdrSquare
	if style == BadgeCircle {
		borderType = BdrRound
	}
	m.Border.SetValue(BorderData{
		Type:      borderType,
		Line:      BdrLnSolid,
		Color:     "#3a3938",
		Thickness: DefaultThickness,
		Radius:    10,
	})
	m.Background.SetValue(BackgroundData{Type: BgColor, Value: fill})
	m.Font.SetValue("Arial,20,-1,5,50,0,0,0,0,0")
	m.Color.SetValue("#34699d")
	m.Margin.SetValues(0.03, 0.03)
	m.Size.SetValues(size, size)
}

// SortOrderMeta holds the three part-list sort key slots and their
// directions. Values are the user-facing option names so formatted
// directives read the way the dialogs show them.
type SortOrderMeta struct {
	BranchMeta
	Primary            StringMeta
	PrimaryDirection   StringMeta
	Secondary          StringMeta
	SecondaryDirection StringMeta
	Tertiary           StringMeta
	TertiaryDirection  StringMeta
}

func (m *SortOrderMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Primary.Init(&m.BranchMeta, "PRIMARY")
	m.PrimaryDirection.Init(&m.BranchMeta, "PRIMARY_DIRECTION")
	m.Secondary.Init(&m.BranchMeta, "SECONDARY")
	m.SecondaryDirection.Init(&m.BranchMeta, "SECONDARY_DIRECTION")
	m.Tertiary.Init(&m.BranchMeta, "TERTIARY")
	m.TertiaryDirection.Init(&m.BranchMeta, "TERTIARY_DIRECTION")

	m.Primary.SetValue(SortOptionName[PartSize])
	m.PrimaryDirection.SetValue(SortDirectionName[SortAscending])
	m.Secondary.SetValue(SortOptionName[PartColour])
	m.SecondaryDirection.SetValue(SortDirectionName[SortAscending])
	m.Tertiary.SetValue(SortOptionName[PartCategory])
	m.TertiaryDirection.SetValue(SortDirectionName[SortAscending])
}

// PartElementMeta controls the catalog element badge on BOM entries:
// whether it shows, and whether codes come from the LEGO table, the
// BrickLink table, or a locally supplied LEGO table.
type PartElementMeta struct {
	BranchMeta
	Display           BoolMeta
	LegoElements      BoolMeta
	BricklinkElements BoolMeta
	LocalLegoElements BoolMeta
}

func (m *PartElementMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Display.Init(&m.BranchMeta, "DISPLAY")
	m.LegoElements.Init(&m.BranchMeta, "LEGO")
	m.BricklinkElements.Init(&m.BranchMeta, "BRICKLINK")
	m.LocalLegoElements.Init(&m.BranchMeta, "LOCAL_LEGO")
	m.BricklinkElements.SetValue(true)
}

// FloatXYZMeta holds a 3-component vector leaf, typically a camera
// target. IsPopulated distinguishes "never set" from an explicit origin.
type FloatXYZMeta struct {
	leaf[[3]float32]
	rc        Rc
	populated [2]bool
}

func (m *FloatXYZMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
}

// IsPopulated reports whether the active slot has been assigned.
func (m *FloatXYZMeta) IsPopulated() bool { return m.populated[m.pushed] }

// SetValues assigns all three components of the active slot.
func (m *FloatXYZMeta) SetValues(x, y, z float32) {
	m.value[m.pushed] = [3]float32{x, y, z}
	m.populated[m.pushed] = true
}

// X returns the first component of the active slot.
func (m *FloatXYZMeta) X() float32 { return m.value[m.pushed][0] }

// Y returns the second component of the active slot.
func (m *FloatXYZMeta) Y() float32 { return m.value[m.pushed][1] }

// Z returns the third component of the active slot.
func (m *FloatXYZMeta) Z() float32 { return m.value[m.pushed][2] }

func (m *FloatXYZMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index == 3 {
		var v [3]float32
		for i := 0; i < 3; i++ {
			f, ok := parseFloat(argv[index+i])
			if !ok {
				return FailureRc
			}
			v[i] = f
		}
		m.value[m.pushed] = v
		m.populated[m.pushed] = true
		m.here[m.pushed] = here
		return m.rc
	}
	return FailureRc
}

func (m *FloatXYZMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	suffix := fmt.Sprintf("%s %s %s", ftoa(v[0]), ftoa(v[1]), ftoa(v[2]))
	return m.fmtPrefix(local, global) + suffix
}

func (m *FloatXYZMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <x> <y> <z>")
}

func (m *FloatXYZMeta) Pop() {
	m.pushed = 0
}
