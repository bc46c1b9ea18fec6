package meta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// ftoa renders a float the way plain placeholder substitution does:
// shortest form, no forced precision.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func ftoa64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseFloat is a full-string float conversion.
func parseFloat(s string) (float32, bool) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ===== RcMeta =====

// RcMeta is an action keyword with no payload. Parsing one records the
// location and returns the configured result code; any trailing tokens
// are ignored.
type RcMeta struct {
	abstractMeta
	here [2]ldraw.Where
	rc   Rc
}

func (m *RcMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
}

func (m *RcMeta) Parse(_ []string, _ int, here ldraw.Where) Rc {
	m.here[m.pushed] = here
	return m.rc
}

// Here returns where the keyword was last seen.
func (m *RcMeta) Here() ldraw.Where { return m.here[m.pushed] }

func (m *RcMeta) Format(local, global bool) string {
	return m.fmtPrefix(local, global)
}

func (m *RcMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble)
}

func (m *RcMeta) Pop() { m.pushed = 0 }

// ===== IntMeta =====

// IntMeta holds a whole number, optionally range-checked.
type IntMeta struct {
	leaf[int]
	rc       Rc
	min, max int
	bounded  bool
	base     int
}

func (m *IntMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
	if m.base == 0 {
		m.base = 10
	}
}

// SetRange bounds accepted values to [min, max].
func (m *IntMeta) SetRange(min, max int) {
	m.min = min
	m.max = max
	m.bounded = true
}

func (m *IntMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if index == len(argv)-1 {
		if v, ok := parseInt(argv[index]); ok {
			if m.bounded && (v < m.min || v > m.max) {
				return RangeErrorRc
			}
			m.value[m.pushed] = v
			m.here[m.pushed] = here
			return m.rc
		}
	}
	return FailureRc
}

func (m *IntMeta) Format(local, global bool) string {
	base := m.base
	if base == 0 {
		base = 10
	}
	return m.fmtPrefix(local, global) + strconv.FormatInt(int64(m.value[m.pushed]), base)
}

func (m *IntMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <integer>")
}

// ===== FloatMeta =====

// FloatMeta holds a float, optionally range-checked, formatted with a
// fixed field width and precision.
type FloatMeta struct {
	leaf[float32]
	rc         Rc
	min, max   float32
	bounded    bool
	fieldWidth int
	precision  int
}

func (m *FloatMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
	if m.fieldWidth == 0 && m.precision == 0 {
		m.fieldWidth = 6
		m.precision = 4
	}
}

// SetRange bounds accepted values to [min, max].
func (m *FloatMeta) SetRange(min, max float32) {
	m.min = min
	m.max = max
	m.bounded = true
}

// SetFormats adjusts the formatted field width and precision.
func (m *FloatMeta) SetFormats(fieldWidth, precision int) {
	m.fieldWidth = fieldWidth
	m.precision = precision
}

func (m *FloatMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if index == len(argv)-1 {
		if v, ok := parseFloat(argv[index]); ok {
			if m.bounded && (v < m.min || v > m.max) {
				return RangeErrorRc
			}
			m.value[m.pushed] = v
			m.here[m.pushed] = here
			return m.rc
		}
	}
	return FailureRc
}

func (m *FloatMeta) Format(local, global bool) string {
	suffix := fmt.Sprintf("%*.*f", m.fieldWidth, m.precision, m.value[m.pushed])
	return m.fmtPrefix(local, global) + suffix
}

func (m *FloatMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <float>")
}

// ===== UnitMeta =====

// UnitMeta is a FloatMeta holding a physical length in units.
type UnitMeta struct {
	FloatMeta
}

// ValueInches returns the stored length.
func (m *UnitMeta) ValueInches() float32 { return m.value[m.pushed] }

// SetValueInches assigns the stored length.
func (m *UnitMeta) SetValueInches(v float32) { m.value[m.pushed] = v }

// ValuePixels projects the length to pixels at the current resolution.
func (m *UnitMeta) ValuePixels() int {
	return int(m.value[m.pushed] * Resolution())
}

// ===== FloatPairMeta =====

// FloatPairMeta holds two floats sharing one range check.
type FloatPairMeta struct {
	leaf[[2]float32]
	rc         Rc
	min, max   float32
	bounded    bool
	fieldWidth int
	precision  int
}

func (m *FloatPairMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
	if m.fieldWidth == 0 && m.precision == 0 {
		m.fieldWidth = 6
		m.precision = 4
	}
}

// SetRange bounds both accepted values to [min, max].
func (m *FloatPairMeta) SetRange(min, max float32) {
	m.min = min
	m.max = max
	m.bounded = true
}

// SetFormats adjusts the formatted field width and precision.
func (m *FloatPairMeta) SetFormats(fieldWidth, precision int) {
	m.fieldWidth = fieldWidth
	m.precision = precision
}

// SetValues assigns both components of the active slot.
func (m *FloatPairMeta) SetValues(v0, v1 float32) {
	m.value[m.pushed][0] = v0
	m.value[m.pushed][1] = v1
}

func (m *FloatPairMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index == 2 {
		v0, ok0 := parseFloat(argv[index])
		v1, ok1 := parseFloat(argv[index+1])
		if ok0 && ok1 {
			if m.bounded && (v0 < m.min || v0 > m.max || v1 < m.min || v1 > m.max) {
				return RangeErrorRc
			}
			m.value[m.pushed] = [2]float32{v0, v1}
			m.here[m.pushed] = here
			return m.rc
		}
	}
	return FailureRc
}

func (m *FloatPairMeta) Format(local, global bool) string {
	suffix := fmt.Sprintf("%*.*f %*.*f",
		m.fieldWidth, m.precision, m.value[m.pushed][0],
		m.fieldWidth, m.precision, m.value[m.pushed][1])
	return m.fmtPrefix(local, global) + suffix
}

func (m *FloatPairMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <float> <float>")
}

// ===== UnitsMeta =====

// UnitsMeta is a FloatPairMeta holding two physical lengths.
type UnitsMeta struct {
	FloatPairMeta
}

// ValueInches returns the stored pair.
func (m *UnitsMeta) ValueInches() [2]float32 { return m.value[m.pushed] }

// ValuePixels projects one component to pixels at the current
// resolution.
func (m *UnitsMeta) ValuePixels(which int) int {
	return int(m.value[m.pushed][which] * Resolution())
}

// MarginsMeta is a UnitsMeta whose factory value is the standard margin.
type MarginsMeta struct {
	UnitsMeta
}

func (m *MarginsMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	m.UnitsMeta.Init(parent, name, rc...)
	m.value[0] = [2]float32{DefaultMargin, DefaultMargin}
	m.value[1] = m.value[0]
}

// ===== StringMeta =====

// StringMeta holds a single token verbatim; quoting is restored when
// formatting.
type StringMeta struct {
	leaf[string]
	rc    Rc
	delim string
}

func (m *StringMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
	if m.delim == "" {
		m.delim = `"`
	}
}

func (m *StringMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index == 1 {
		m.value[m.pushed] = argv[index]
		m.here[m.pushed] = here
		return m.rc
	}
	return FailureRc
}

func (m *StringMeta) Format(local, global bool) string {
	return m.fmtPrefix(local, global) + m.delim + m.value[m.pushed] + m.delim
}

func (m *StringMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+` <"string">`)
}

// ===== StringListMeta =====

// StringListMeta consumes every remaining token.
type StringListMeta struct {
	leaf[[]string]
	rc    Rc
	delim string
}

func (m *StringListMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
	if m.delim == "" {
		m.delim = `"`
	}
}

func (m *StringListMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	m.value[m.pushed] = append([]string(nil), argv[index:]...)
	m.here[m.pushed] = here
	return m.rc
}

func (m *StringListMeta) Format(local, global bool) string {
	var b strings.Builder
	for _, v := range m.value[m.pushed] {
		b.WriteString(m.delim)
		b.WriteString(v)
		b.WriteString(m.delim)
		b.WriteString(" ")
	}
	return m.fmtPrefix(local, global) + b.String()
}

func (m *StringListMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+` <"string"> <"string"> .....`)
}

// ===== BoolMeta =====

// BoolMeta holds TRUE or FALSE, accepted only as the final token.
type BoolMeta struct {
	leaf[bool]
}

func (m *BoolMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

func (m *BoolMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if index == len(argv)-1 && (argv[index] == "TRUE" || argv[index] == "FALSE") {
		m.value[m.pushed] = argv[index] == "TRUE"
		m.here[m.pushed] = here
		return OkRc
	}
	return FailureRc
}

func (m *BoolMeta) Format(local, global bool) string {
	suffix := "FALSE"
	if m.value[m.pushed] {
		suffix = "TRUE"
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *BoolMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <TRUE|FALSE>")
}

// ===== FontMeta =====

// FontMeta stores a font description string of comma-separated fields,
// family first and point size second, matching the host toolkit's font
// serialization.
type FontMeta struct {
	StringMeta
}

// Family returns the font family name.
func (m *FontMeta) Family() string {
	fields := strings.Split(m.value[m.pushed], ",")
	return fields[0]
}

// Points returns the font point size, or 0 when unparseable.
func (m *FontMeta) Points() float32 {
	fields := strings.Split(m.value[m.pushed], ",")
	if len(fields) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

// SetPoints rewrites the point-size field, preserving the others.
func (m *FontMeta) SetPoints(points float32) {
	fields := strings.Split(m.value[m.pushed], ",")
	for len(fields) < 2 {
		fields = append(fields, "")
	}
	fields[1] = strconv.FormatFloat(float64(points), 'f', -1, 32)
	m.value[m.pushed] = strings.Join(fields, ",")
}

// SizePixels projects the point size to pixels at the current
// resolution (points are 1/72 inch).
func (m *FontMeta) SizePixels() int {
	return int(m.Points() / 72.0 * Resolution())
}

// ===== AlignmentMeta =====

// AlignmentMeta holds a horizontal text alignment. An unrecognized
// token is ignored but still accepted, keeping the previous value.
type AlignmentMeta struct {
	leaf[Alignment]
}

func (m *AlignmentMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

func (m *AlignmentMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index != 1 {
		return FailureRc
	}
	switch argv[index] {
	case "LEFT":
		m.value[m.pushed] = AlignLeft
	case "CENTER":
		m.value[m.pushed] = AlignCenter
	case "RIGHT":
		m.value[m.pushed] = AlignRight
	}
	m.here[m.pushed] = here
	return OkRc
}

func (m *AlignmentMeta) Format(local, global bool) string {
	var suffix string
	switch m.value[m.pushed] {
	case AlignLeft:
		suffix = "LEFT"
	case AlignCenter:
		suffix = "CENTER"
	default:
		suffix = "RIGHT"
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *AlignmentMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (LEFT|CENTER|RIGHT)")
}

// ===== ArrowHeadMeta =====

// ArrowHeadMeta holds the four profile coordinates of a divider arrow
// head: tip x, hafting inside x, hafting outside x and y.
type ArrowHeadMeta struct {
	leaf[[4]float32]
}

func (m *ArrowHeadMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

func (m *ArrowHeadMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index != 4 {
		return FailureRc
	}
	var head [4]float32
	for i := 0; i < 4; i++ {
		v, ok := parseFloat(argv[index+i])
		if !ok {
			return FailureRc
		}
		head[i] = v
	}
	m.value[m.pushed] = head
	m.here[m.pushed] = here
	return OkRc
}

func (m *ArrowHeadMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	suffix := fmt.Sprintf("%s %s %s %s", ftoa(v[0]), ftoa(v[1]), ftoa(v[2]), ftoa(v[3]))
	return m.fmtPrefix(local, global) + suffix
}

func (m *ArrowHeadMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <tipX> <haftingInsideX> <haftingOutsideX> <haftingOutsideY>")
}

// ===== ArrowEndMeta =====

// ArrowEndMeta holds the arrow end cap shape, round when true.
type ArrowEndMeta struct {
	leaf[bool]
}

func (m *ArrowEndMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

func (m *ArrowEndMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index != 1 {
		return FailureRc
	}
	switch argv[index] {
	case "SQUARE":
		m.value[m.pushed] = false
	case "ROUND":
		m.value[m.pushed] = true
	default:
		return FailureRc
	}
	m.here[m.pushed] = here
	return OkRc
}

func (m *ArrowEndMeta) Format(local, global bool) string {
	suffix := "SQUARE"
	if m.value[m.pushed] {
		suffix = "ROUND"
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *ArrowEndMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (SQUARE|ROUND)")
}
