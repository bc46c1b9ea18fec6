package meta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// ===== FreeFormMeta =====

// FreeFormMeta switches an element between anchored placement and free
// positioning relative to a base side of its owner.
type FreeFormMeta struct {
	leaf[FreeFormData]
}

func (m *FreeFormMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

func (m *FreeFormMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	rc := FailureRc
	v := m.value[m.pushed]
	if len(argv)-index == 1 && argv[index] == "FALSE" {
		v.Mode = false
		rc = OkRc
	} else if len(argv)-index == 2 {
		switch argv[index] {
		case "STEP_NUMBER", "ASSEM", "PLI", "ROTATE_ICON":
			switch argv[index+1] {
			case "LEFT", "RIGHT", "TOP", "BOTTOM", "CENTER":
				base, _ := TokenCode(argv[index])
				just, _ := TokenCode(argv[index+1])
				v.Mode = true
				v.Base = PlacementEnc(base)
				v.Justification = PlacementEnc(just)
				rc = OkRc
			}
		}
	}
	if rc == OkRc {
		m.value[m.pushed] = v
		m.here[m.pushed] = here
	}
	return rc
}

func (m *FreeFormMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	var suffix string
	if v.Mode {
		suffix = RelativeName(PlacementType(v.Base)) + " " + PlacementName(v.Justification)
	} else {
		suffix = "FALSE"
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *FreeFormMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (FALSE|(STEP_NUMBER|ASSEM|PLI|ROTATE_ICON) (LEFT|RIGHT|TOP|BOTTOM|CENTER))")
}

// ===== ConstrainMeta =====

// ConstrainMeta holds the layout constraint for a parts list: bound by
// area, squareness, width, height or column count. The default flag
// reports whether a document has overridden the factory constraint.
type ConstrainMeta struct {
	leaf[ConstrainData]
	dflt bool
}

func (m *ConstrainMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.value[0].Type = ConstrainArea
	m.value[1] = m.value[0]
	m.dflt = true
}

// IsDefault reports whether the constraint is still the factory one.
func (m *ConstrainMeta) IsDefault() bool { return m.dflt }

// SetDefault marks the constraint as program chosen rather than coming
// from the document.
func (m *ConstrainMeta) SetDefault(d bool) { m.dflt = d }

func (m *ConstrainMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	rc := FailureRc
	switch len(argv) - index {
	case 1:
		switch argv[index] {
		case "AREA", "SQUARE":
			code, _ := TokenCode(argv[index])
			m.value[m.pushed].Type = Constrain(code)
			rc = OkRc
		}
	case 2:
		if v, ok := parseFloat(argv[index+1]); ok {
			switch argv[index] {
			case "WIDTH", "HEIGHT", "COLS":
				code, _ := TokenCode(argv[index])
				m.value[m.pushed].Type = Constrain(code)
				m.value[m.pushed].Constraint = v
				rc = OkRc
			}
		}
	}
	if rc == OkRc {
		m.here[m.pushed] = here
		m.dflt = false
	}
	return rc
}

func (m *ConstrainMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	var suffix string
	switch v.Type {
	case ConstrainArea:
		suffix = "AREA"
	case ConstrainSquare:
		suffix = "SQUARE"
	case ConstrainWidth:
		suffix = "WIDTH " + ftoa(v.Constraint)
	case ConstrainHeight:
		suffix = "HEIGHT " + ftoa(v.Constraint)
	default:
		suffix = "COLS " + ftoa(v.Constraint)
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *ConstrainMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (AREA|SQUARE|(WIDTH|HEIGHT|COLS) <integer>)")
}

// ===== AllocMeta =====

// AllocMeta selects whether ranges of steps are allocated across the
// page or down it.
type AllocMeta struct {
	leaf[AllocEnc]
}

func (m *AllocMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.value[0] = Vertical
	m.value[1] = Vertical
}

func (m *AllocMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index == 1 {
		switch argv[index] {
		case "HORIZONTAL", "VERTICAL":
			code, _ := TokenCode(argv[index])
			m.value[m.pushed] = AllocEnc(code)
			m.here[m.pushed] = here
			return OkRc
		}
	}
	return FailureRc
}

func (m *AllocMeta) Format(local, global bool) string {
	suffix := "VERTICAL"
	if m.value[m.pushed] == Horizontal {
		suffix = "HORIZONTAL"
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *AllocMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (HORIZONTAL|VERTICAL)")
}

// ===== PageOrientationMeta =====

// PageOrientationMeta holds the page orientation.
type PageOrientationMeta struct {
	leaf[OrientationEnc]
}

func (m *PageOrientationMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.value[0] = Landscape
	m.value[1] = Landscape
}

func (m *PageOrientationMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index == 1 {
		switch argv[index] {
		case "PORTRAIT", "LANDSCAPE":
			code, _ := TokenCode(argv[index])
			m.value[m.pushed] = OrientationEnc(code)
			m.here[m.pushed] = here
			return PageOrientationRc
		}
	}
	return FailureRc
}

func (m *PageOrientationMeta) Format(local, global bool) string {
	suffix := "LANDSCAPE"
	if m.value[m.pushed] == Portrait {
		suffix = "PORTRAIT"
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *PageOrientationMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" (PORTRAIT|LANDSCAPE)")
}

// ===== PageSizeMeta =====

// PageSizeMeta holds the page dimensions in units plus the named size
// they correspond to; unnamed dimensions are recorded as Custom.
type PageSizeMeta struct {
	leaf[PageSizeData]
	rc         Rc
	min, max   float32
	bounded    bool
	fieldWidth int
	precision  int
}

func (m *PageSizeMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
	if m.fieldWidth == 0 && m.precision == 0 {
		m.fieldWidth = 6
		m.precision = 4
	}
}

// SetRange bounds both accepted dimensions to [min, max].
func (m *PageSizeMeta) SetRange(min, max float32) {
	m.min = min
	m.max = max
	m.bounded = true
}

func (m *PageSizeMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index >= 2 {
		v0, ok0 := parseFloat(argv[index])
		v1, ok1 := parseFloat(argv[index+1])
		if ok0 && ok1 {
			if m.bounded && (v0 < m.min || v0 > m.max || v1 < m.min || v1 > m.max) {
				return RangeErrorRc
			}
			m.value[m.pushed].SizeW = v0
			m.value[m.pushed].SizeH = v1
			if len(argv)-index == 3 {
				m.value[m.pushed].SizeID = argv[index+2]
			} else {
				m.value[m.pushed].SizeID = "Custom"
			}
			m.here[m.pushed] = here
			return PageSizeRc
		}
	}
	return FailureRc
}

func (m *PageSizeMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	suffix := fmt.Sprintf("%*.*f %*.*f %s",
		m.fieldWidth, m.precision, v.SizeW,
		m.fieldWidth, m.precision, v.SizeH,
		v.SizeID)
	return m.fmtPrefix(local, global) + suffix
}

func (m *PageSizeMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <float> <float> <page size id>")
}

// ===== SepMeta =====

// SepMeta holds the separator rule drawn between grouped step columns:
// thickness, color and the two margins.
type SepMeta struct {
	leaf[SepData]
}

func (m *SepMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.value[0].Thickness = DefaultThickness
	m.value[0].Color = "black"
	m.value[0].Margin = [2]float32{DefaultMargin, DefaultMargin}
	m.value[1] = m.value[0]
}

func (m *SepMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index == 4 {
		thickness, ok0 := parseFloat(argv[index])
		mx, ok1 := parseFloat(argv[index+2])
		my, ok2 := parseFloat(argv[index+3])
		if ok0 && ok1 && ok2 {
			v := &m.value[m.pushed]
			v.Thickness = thickness
			v.Color = argv[index+1]
			v.Margin = [2]float32{mx, my}
			m.here[m.pushed] = here
			return OkRc
		}
	}
	return FailureRc
}

func (m *SepMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	suffix := fmt.Sprintf("%s %s %s %s",
		ftoa(v.Thickness), v.Color, ftoa(v.Margin[0]), ftoa(v.Margin[1]))
	return m.fmtPrefix(local, global) + suffix
}

func (m *SepMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <intThickness> <color> <marginX> <marginY>")
}

// ===== RotStepMeta =====

// RotStepMeta is the viewing angle change applied at a step: three axis
// rotations plus ABS, REL or ADD, or END to clear a pending rotation.
// Rotation state is step content rather than a scoped setting, so the
// stored value has a single slot.
type RotStepMeta struct {
	abstractMeta
	value RotStepData
	here  [2]ldraw.Where
}

func (m *RotStepMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

// Value returns the pending rotation.
func (m *RotStepMeta) Value() RotStepData { return m.value }

// SetValue replaces the pending rotation.
func (m *RotStepMeta) SetValue(v RotStepData) { m.value = v }

// Clear discards any pending rotation.
func (m *RotStepMeta) Clear() { m.value = RotStepData{} }

// IsPopulated reports whether a rotation is pending.
func (m *RotStepMeta) IsPopulated() bool { return m.value.Type != "" }

func (m *RotStepMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if index+4 == len(argv) {
		r0, ok0 := parseFloat(argv[index])
		r1, ok1 := parseFloat(argv[index+1])
		r2, ok2 := parseFloat(argv[index+2])
		if ok0 && ok1 && ok2 {
			switch argv[index+3] {
			case "ABS", "REL", "ADD":
				m.value.Rots = [3]float64{float64(r0), float64(r1), float64(r2)}
				m.value.Type = argv[index+3]
				m.here[0] = here
				m.here[1] = here
				return RotStepRc
			}
		}
	} else if len(argv)-index == 1 && argv[index] == "END" {
		m.value = RotStepData{}
		m.here[0] = here
		m.here[1] = here
		return RotStepRc
	}
	return FailureRc
}

func (m *RotStepMeta) Format(local, global bool) string {
	if m.value.Type == "" {
		return m.fmtPrefix(local, global) + "END"
	}
	suffix := fmt.Sprintf("%s %s %s %s",
		ftoa64(m.value.Rots[0]), ftoa64(m.value.Rots[1]), ftoa64(m.value.Rots[2]),
		m.value.Type)
	return m.fmtPrefix(local, global) + suffix
}

func (m *RotStepMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <rotX> <rotY> <rotZ> <ABS|REL|ADD>")
}

func (m *RotStepMeta) Pop() { m.pushed = 0 }

// ===== BuffExchgMeta =====

// BuffExchgMeta is a buffer exchange: a single letter buffer name plus
// STORE or RETRIEVE.
type BuffExchgMeta struct {
	abstractMeta
	value BuffExchgData
	here  [2]ldraw.Where
}

func (m *BuffExchgMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

// Value returns the last buffer exchange.
func (m *BuffExchgMeta) Value() BuffExchgData { return m.value }

func (m *BuffExchgMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if index+2 == len(argv) {
		buffer := argv[index]
		action := argv[index+1]
		if len(buffer) == 1 && buffer[0] >= 'A' && buffer[0] <= 'Z' &&
			(action == "STORE" || action == "RETRIEVE") {
			m.value.Buffer = buffer
			m.value.Type = action
			m.here[0] = here
			m.here[1] = here
			if action == "RETRIEVE" {
				return BufferLoadRc
			}
			return BufferStoreRc
		}
	}
	return FailureRc
}

func (m *BuffExchgMeta) Format(local, global bool) string {
	return m.fmtPrefix(local, global) + m.value.Buffer + " " + m.value.Type
}

func (m *BuffExchgMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <bufferName> <STORE|RETRIEVE>")
}

func (m *BuffExchgMeta) Pop() { m.pushed = 0 }

// ===== SubMeta =====

// SubMeta is a part substitution, in eight levels of increasing detail:
// part, color, model scale, camera field of view, camera angles, a
// camera target, and a rotation with its transform keyword. Level 7
// carries both target and rotation; level 8 carries the rotation alone.
type SubMeta struct {
	abstractMeta
	value SubData
	here  [2]ldraw.Where
}

func (m *SubMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

// Value returns the last substitution.
func (m *SubMeta) Value() SubData { return m.value }

func validTransform(s string) bool {
	return s == "ABS" || s == "REL" || s == "ADD"
}

func (m *SubMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	rc := FailureRc
	argc := len(argv) - index
	v := SubData{}

	// Parses n consecutive floats starting at token at.
	floats := func(at, n int) ([]float32, bool) {
		out := make([]float32, n)
		for i := 0; i < n; i++ {
			f, ok := parseFloat(argv[at+i])
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}

	switch argc {
	case 1:
		v.Part = argv[index]
		rc = PliBeginSub1Rc
	case 2:
		v.Part = argv[index]
		v.Color = argv[index+1]
		rc = PliBeginSub2Rc
	case 3:
		if f, ok := floats(index+2, 1); ok {
			v.Part = argv[index]
			v.Color = argv[index+1]
			v.ModelScale = f[0]
			rc = PliBeginSub3Rc
		}
	case 4:
		if f, ok := floats(index+2, 2); ok {
			v.Part = argv[index]
			v.Color = argv[index+1]
			v.ModelScale = f[0]
			v.CameraFoV = f[1]
			rc = PliBeginSub4Rc
		}
	case 6:
		if f, ok := floats(index+2, 4); ok {
			v.Part = argv[index]
			v.Color = argv[index+1]
			v.ModelScale = f[0]
			v.CameraFoV = f[1]
			v.CameraAngles = [2]float32{f[2], f[3]}
			rc = PliBeginSub5Rc
		}
	case 9:
		if f, ok := floats(index+2, 7); ok {
			v.Part = argv[index]
			v.Color = argv[index+1]
			v.ModelScale = f[0]
			v.CameraFoV = f[1]
			v.CameraAngles = [2]float32{f[2], f[3]}
			v.Target = [3]float32{f[4], f[5], f[6]}
			rc = PliBeginSub6Rc
		}
	case 10:
		f, ok := floats(index+2, 7)
		if ok && validTransform(argv[index+9]) {
			v.Part = argv[index]
			v.Color = argv[index+1]
			v.ModelScale = f[0]
			v.CameraFoV = f[1]
			v.CameraAngles = [2]float32{f[2], f[3]}
			v.Rotation = [3]float32{f[4], f[5], f[6]}
			v.Transform = argv[index+9]
			rc = PliBeginSub8Rc
		}
	case 13:
		f, ok := floats(index+2, 10)
		if ok && validTransform(argv[index+12]) {
			v.Part = argv[index]
			v.Color = argv[index+1]
			v.ModelScale = f[0]
			v.CameraFoV = f[1]
			v.CameraAngles = [2]float32{f[2], f[3]}
			v.Target = [3]float32{f[4], f[5], f[6]}
			v.Rotation = [3]float32{f[7], f[8], f[9]}
			v.Transform = argv[index+12]
			rc = PliBeginSub7Rc
		}
	}

	if rc != FailureRc {
		v.Type = rc
		m.value = v
		m.here[0] = here
		m.here[1] = here
	}
	return rc
}

func (m *SubMeta) Format(local, global bool) string {
	v := m.value
	fields := []string{v.Part}
	appendFloats := func(fs ...float32) {
		for _, f := range fs {
			fields = append(fields, ftoa(f))
		}
	}
	switch v.Type {
	case PliBeginSub2Rc:
		fields = append(fields, v.Color)
	case PliBeginSub3Rc:
		fields = append(fields, v.Color)
		appendFloats(v.ModelScale)
	case PliBeginSub4Rc:
		fields = append(fields, v.Color)
		appendFloats(v.ModelScale, v.CameraFoV)
	case PliBeginSub5Rc:
		fields = append(fields, v.Color)
		appendFloats(v.ModelScale, v.CameraFoV, v.CameraAngles[0], v.CameraAngles[1])
	case PliBeginSub6Rc:
		fields = append(fields, v.Color)
		appendFloats(v.ModelScale, v.CameraFoV, v.CameraAngles[0], v.CameraAngles[1],
			v.Target[0], v.Target[1], v.Target[2])
	case PliBeginSub7Rc:
		fields = append(fields, v.Color)
		appendFloats(v.ModelScale, v.CameraFoV, v.CameraAngles[0], v.CameraAngles[1],
			v.Target[0], v.Target[1], v.Target[2],
			v.Rotation[0], v.Rotation[1], v.Rotation[2])
		fields = append(fields, v.Transform)
	case PliBeginSub8Rc:
		fields = append(fields, v.Color)
		appendFloats(v.ModelScale, v.CameraFoV, v.CameraAngles[0], v.CameraAngles[1],
			v.Rotation[0], v.Rotation[1], v.Rotation[2])
		fields = append(fields, v.Transform)
	}
	return m.fmtPrefix(local, global) + strings.Join(fields, " ")
}

func (m *SubMeta) Doc(out []string, preamble string) []string {
	out = append(out, preamble+" <part>")
	out = append(out, preamble+" <part> <color>")
	out = append(out, preamble+" <part> <color> <modelScale> [<cameraFoV> [<cameraAngleX> <cameraAngleY>"+
		" [<targetX> <targetY> <targetZ>] [<rotX> <rotY> <rotZ> <ABS|REL|ADD>]]]")
	return out
}

func (m *SubMeta) Pop() { m.pushed = 0 }

// ===== NoStepMeta =====

// NoStepMeta is a bare action keyword that tolerates no payload at all.
type NoStepMeta struct {
	abstractMeta
	rc Rc
}

func (m *NoStepMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
}

func (m *NoStepMeta) Parse(argv []string, index int, _ ldraw.Where) Rc {
	if index == len(argv) {
		return m.rc
	}
	return FailureRc
}

func (m *NoStepMeta) Format(local, global bool) string {
	return m.fmtPrefix(local, global)
}

func (m *NoStepMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble)
}

func (m *NoStepMeta) Pop() { m.pushed = 0 }

// ===== ResolutionMeta =====

// ResolutionMeta sets the document resolution. The value lives in
// package state rather than the tree, so lengths parsed before and
// after a RESOLUTION directive project consistently.
type ResolutionMeta struct {
	abstractMeta
	here [2]ldraw.Where
}

func (m *ResolutionMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
}

// Here returns where the resolution was last changed.
func (m *ResolutionMeta) Here() ldraw.Where { return m.here[0] }

func (m *ResolutionMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if len(argv)-index != 2 {
		return FailureRc
	}
	res, ok := parseFloat(argv[index])
	if !ok {
		return FailureRc
	}
	switch argv[index+1] {
	case "DPI":
		m.here[0] = here
		SetResolution(res)
		SetResolutionUnit(DPI)
	case "DPCM":
		m.here[0] = here
		SetResolution(res)
		SetResolutionUnit(DPCM)
	default:
		return FailureRc
	}
	return ResolutionRc
}

func (m *ResolutionMeta) Format(local, global bool) string {
	unit := "DPI"
	if ResolutionUnit() == DPCM {
		unit = "DPCM"
	}
	suffix := strconv.FormatFloat(float64(Resolution()), 'f', 0, 32) + " " + unit
	return m.fmtPrefix(local, global) + suffix
}

func (m *ResolutionMeta) Doc(out []string, preamble string) []string {
	return append(out, preamble+" <integer> (DPI|DPCM)")
}

func (m *ResolutionMeta) Pop() { m.pushed = 0 }
