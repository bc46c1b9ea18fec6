package meta

import (
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// RotateIconMeta controls the rotate icon shown when the viewing angle
// changes between steps.
type RotateIconMeta struct {
	BranchMeta
	Size       UnitsMeta
	Arrow      BorderMeta
	Placement  PlacementMeta
	Border     BorderMeta
	Background BackgroundMeta
	Margin     MarginsMeta
	Display    BoolMeta
	PicScale   FloatMeta
	// SubModelColor has no keyword; it only carries the factory fill
	// colors per submodel depth.
	SubModelColor StringListMeta
}

func (m *RotateIconMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Size.Init(&m.BranchMeta, "SIZE")
	m.Arrow.Init(&m.BranchMeta, "ARROW")
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Display.Init(&m.BranchMeta, "DISPLAY")
	m.PicScale.Init(&m.BranchMeta, "SCALE")

	m.Placement.SetValue(RightOutside, CsiType)
	m.Border.SetValue(BorderData{
		Type:      BdrRound,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    10,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Background.SetValue(BackgroundData{Type: BgTransparent})
	m.Margin.SetValues(0, 0)
	m.Arrow.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Blue",
		Thickness: DefaultThickness,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Display.SetValue(true)
	m.Size.SetValues(0.52, 0.52)
	m.Size.SetRange(1, 1000)
	m.PicScale.SetRange(-10000, 10000)
	m.PicScale.SetFormats(7, 4)
	m.PicScale.SetValue(1.0)
	m.SubModelColor.SetValue([]string{"#ffffff", "#ffffcc", "#ffcccc", "#ccccff"})
}

// PagePointerMeta frames a pointer anchored to a page edge.
type PagePointerMeta struct {
	BranchMeta
	Placement     PlacementMeta
	Border        BorderMeta
	Background    BackgroundMeta
	Margin        MarginsMeta
	SubModelColor StringListMeta
	Pointer       PointerMeta
}

func (m *PagePointerMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")
	m.Pointer.Init(&m.BranchMeta, "POINTER")

	m.Placement.SetValue(LeftInside, PageType)
	m.Background.SetValue(BackgroundData{Type: BgColor, Value: "#ffffff"})
	m.Border.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    15,
	})
	m.Margin.SetValues(0, 0)
	m.SubModelColor.SetValue([]string{"#ffffff"})
}

// PartIDMeta boxes the part identification aid beside a step.
type PartIDMeta struct {
	PagePointerMeta
	Freeform   FreeFormMeta
	Alloc      AllocMeta
	Show       BoolMeta
	ModelScale FloatMeta
	Angle      FloatPairMeta
}

func (m *PartIDMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Freeform.Init(&m.BranchMeta, "FREEFORM")
	m.Alloc.Init(&m.BranchMeta, "ALLOC")
	m.Show.Init(&m.BranchMeta, "SHOW")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")
	m.Pointer.Init(&m.BranchMeta, "POINTER")
	m.ModelScale.Init(&m.BranchMeta, "MODEL_SCALE")
	m.Angle.Init(&m.BranchMeta, "VIEW_ANGLE")

	m.Placement.SetValue(BottomRightOutside, CsiType)
	m.Background.SetValue(BackgroundData{Type: BgColor, Value: "#ffffff"})
	m.Border.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    15,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Margin.SetValues(DefaultMargin, DefaultMargin)
	m.SubModelColor.SetValue([]string{"#ffffff"})
	m.ModelScale.SetRange(-10000, 10000)
	m.ModelScale.SetFormats(7, 4)
	m.ModelScale.SetValue(1.0)
	m.Angle.SetRange(-360, 360)
	m.Angle.SetFormats(6, 4)
	m.Angle.SetValues(23, 45)
}

// IllustrationMeta boxes a freestanding illustration with its own
// camera and layout constraint.
type IllustrationMeta struct {
	PagePointerMeta
	Constrain  ConstrainMeta
	Freeform   FreeFormMeta
	Alloc      AllocMeta
	Show       BoolMeta
	ModelScale FloatMeta
	Angle      FloatPairMeta
	Distance   FloatMeta
	FoV        FloatMeta
	ZNear      FloatMeta
	ZFar       FloatMeta
}

func (m *IllustrationMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Constrain.Init(&m.BranchMeta, "CONSTRAIN")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Freeform.Init(&m.BranchMeta, "FREEFORM")
	m.Alloc.Init(&m.BranchMeta, "ALLOC")
	m.Show.Init(&m.BranchMeta, "SHOW")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")
	m.Pointer.Init(&m.BranchMeta, "POINTER")
	m.ModelScale.Init(&m.BranchMeta, "MODEL_SCALE")
	m.Angle.Init(&m.BranchMeta, "VIEW_ANGLE")
	m.Distance.Init(&m.BranchMeta, "VIEW_DISTANCE")
	m.FoV.Init(&m.BranchMeta, "VIEW_FOV")
	m.ZNear.Init(&m.BranchMeta, "VIEW_ZNEAR")
	m.ZFar.Init(&m.BranchMeta, "VIEW_ZFAR")

	m.Placement.SetValue(TopRightOutside, CsiType)
	m.Background.SetValue(BackgroundData{Type: BgColor, Value: "#ffffff"})
	m.Border.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    15,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Margin.SetValues(DefaultMargin, DefaultMargin)
	m.SubModelColor.SetValue([]string{"#ffffff"})
	m.ModelScale.SetRange(-10000, 10000)
	m.ModelScale.SetFormats(7, 4)
	m.ModelScale.SetValue(1.0)
	m.Angle.SetRange(-360, 360)
	m.Angle.SetFormats(6, 4)
	m.Angle.SetValues(23, 45)
	m.FoV.SetRange(0, 360)
	m.FoV.SetValue(30)
	m.ZNear.SetValue(25)
	m.ZFar.SetValue(12500)
}

// StickerMeta boxes the sticker application aid beside a step.
type StickerMeta struct {
	PagePointerMeta
	Freeform   FreeFormMeta
	Alloc      AllocMeta
	Show       BoolMeta
	ModelScale FloatMeta
	Angle      FloatPairMeta
	Distance   FloatMeta
	FoV        FloatMeta
	ZNear      FloatMeta
	ZFar       FloatMeta
}

func (m *StickerMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Freeform.Init(&m.BranchMeta, "FREEFORM")
	m.Alloc.Init(&m.BranchMeta, "ALLOC")
	m.Show.Init(&m.BranchMeta, "SHOW")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")
	m.Pointer.Init(&m.BranchMeta, "POINTER")
	m.ModelScale.Init(&m.BranchMeta, "MODEL_SCALE")
	m.Angle.Init(&m.BranchMeta, "VIEW_ANGLE")
	m.Distance.Init(&m.BranchMeta, "VIEW_DISTANCE")
	m.FoV.Init(&m.BranchMeta, "VIEW_FOV")
	m.ZNear.Init(&m.BranchMeta, "VIEW_ZNEAR")
	m.ZFar.Init(&m.BranchMeta, "VIEW_ZFAR")

	m.Placement.SetValue(BottomRightOutside, CsiType)
	m.Background.SetValue(BackgroundData{Type: BgColor, Value: "#ffffff"})
	m.Border.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    15,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Margin.SetValues(DefaultMargin, DefaultMargin)
	m.SubModelColor.SetValue([]string{"#ffffff"})
	m.ModelScale.SetRange(-10000, 10000)
	m.ModelScale.SetFormats(7, 4)
	m.ModelScale.SetValue(1.0)
	m.Angle.SetRange(-360, 360)
	m.Angle.SetFormats(6, 4)
	m.Angle.SetValues(23, 45)
	m.FoV.SetRange(0, 360)
	m.FoV.SetValue(30)
	m.ZNear.SetValue(25)
	m.ZFar.SetValue(12500)
}

// CalloutBeginMeta opens a callout span and records how the callout
// shows its submodel. The mode is span content rather than a scoped
// setting, so it is stored once.
type CalloutBeginMeta struct {
	abstractMeta
	mode CalloutMode
	here [2]ldraw.Where
	rc   Rc
}

func (m *CalloutBeginMeta) Init(parent *BranchMeta, name string, rc ...Rc) {
	parent.add(name, m)
	if len(rc) > 0 {
		m.rc = rc[0]
	}
}

// Value returns the recorded callout mode.
func (m *CalloutBeginMeta) Value() CalloutMode { return m.mode }

// SetValue records the callout mode.
func (m *CalloutBeginMeta) SetValue(v CalloutMode) { m.mode = v }

// Here returns where the span opened.
func (m *CalloutBeginMeta) Here() ldraw.Where { return m.here[0] }

func (m *CalloutBeginMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	rc := FailureRc
	switch len(argv) - index {
	case 0:
		m.mode = CalloutUnassembled
		rc = m.rc
	case 1:
		switch argv[index] {
		case "ASSEMBLED":
			m.mode = CalloutAssembled
			rc = m.rc
		case "ROTATED":
			m.mode = CalloutRotated
			rc = m.rc
		}
	}
	if rc != FailureRc {
		m.here[0] = here
		m.here[1] = here
	}
	return rc
}

func (m *CalloutBeginMeta) Format(local, global bool) string {
	var suffix string
	switch m.mode {
	case CalloutAssembled:
		suffix = "ASSEMBLED"
	case CalloutRotated:
		suffix = "ROTATED"
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *CalloutBeginMeta) Doc(out []string, preamble string) []string {
	out = append(out, preamble)
	return append(out, preamble+" (ASSEMBLED|ROTATED)")
}

func (m *CalloutBeginMeta) Pop() {}

// CalloutMeta controls a callout: the boxed mini sequence building a
// submodel, pointed at the spot where the submodel is used.
type CalloutMeta struct {
	BranchMeta
	Margin            MarginsMeta
	StepNum           NumberPlacementMeta
	Sep               SepMeta
	Border            BorderMeta
	SubModelFont      StringListMeta
	Instance          NumberPlacementMeta
	Background        BackgroundMeta
	SubModelColor     StringListMeta
	SubModelFontColor StringListMeta
	Placement         PlacementMeta
	Freeform          FreeFormMeta
	Alloc             AllocMeta
	Pointer           PointerMeta
	Begin             CalloutBeginMeta
	Divider           RcMeta
	End               RcMeta
	Csi               CalloutCsiMeta
	Pli               CalloutPliMeta
	RotateIcon        RotateIconMeta
	OneToOne          OneToOneMeta
	PartID            PartIDMeta
	SubModel          SubModelMeta
	Sticker           StickerMeta
	RightWrong        RightWrongMeta
	Illustration      IllustrationMeta
}

func (m *CalloutMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.StepNum.Init(&m.BranchMeta, "STEP_NUMBER")
	m.Sep.Init(&m.BranchMeta, "SEPARATOR")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.SubModelFont.Init(&m.BranchMeta, "SUBMODEL_FONT")
	m.Instance.Init(&m.BranchMeta, "INSTANCE_COUNT")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")
	m.SubModelFontColor.Init(&m.BranchMeta, "SUBMODEL_FONT_COLOR")
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Freeform.Init(&m.BranchMeta, "FREEFORM")
	m.Alloc.Init(&m.BranchMeta, "ALLOC")
	m.Pointer.Init(&m.BranchMeta, "POINTER")
	m.Begin.Init(&m.BranchMeta, "BEGIN", CalloutBeginRc)
	m.Divider.Init(&m.BranchMeta, "DIVIDER", CalloutDividerRc)
	m.End.Init(&m.BranchMeta, "END", CalloutEndRc)
	m.Csi.Init(&m.BranchMeta, "ASSEM")
	m.Pli.Init(&m.BranchMeta, "PLI")
	m.RotateIcon.Init(&m.BranchMeta, "ROTATE_ICON")
	m.OneToOne.Init(&m.BranchMeta, "ONETOONE")
	m.PartID.Init(&m.BranchMeta, "PARTID")
	m.SubModel.Init(&m.BranchMeta, "SUBMODEL")
	m.Sticker.Init(&m.BranchMeta, "STICKER")
	m.RightWrong.Init(&m.BranchMeta, "RIGHT_WRONG")
	m.Illustration.Init(&m.BranchMeta, "ILLUSTRATION")

	m.StepNum.Font.SetValue("Arial,36,-1,255,75,0,0,0,0,0")
	m.StepNum.Color.SetValue("black")
	m.StepNum.Placement.SetValue(LeftTopOutside, PartsListType)
	m.Sep.SetValue(SepData{
		Thickness: DefaultThickness,
		Color:     "Black",
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Border.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    15,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Instance.Font.SetValue("Arial,24,-1,255,75,0,0,0,0,0")
	m.Instance.Color.SetValue("black")
	m.Instance.Placement.SetValue(RightBottomOutside, CalloutType)
	m.Background.SetValue(BackgroundData{Type: BgSubmodelColor})
	m.SubModelColor.SetValue([]string{"#ffffff", "#ffffcc", "#ffcccc", "#ccccff"})
	m.SubModelFontColor.SetValue([]string{"black"})
	m.Placement.SetValue(RightOutside, CsiType)
	m.Alloc.SetValue(Vertical)
	m.Pli.Placement.SetValue(TopLeftOutside, CsiType)
	m.Pli.PerStep.SetValue(true)
	m.RotateIcon.Placement.SetValue(RightOutside, CsiType)
}

// MultiStepMeta controls step groups: several steps sharing one page
// with dividers between the ranges.
type MultiStepMeta struct {
	BranchMeta
	Margin            MarginsMeta
	StepNum           NumberPlacementMeta
	Placement         PlacementMeta
	Sep               SepMeta
	SubModelFont      StringListMeta
	SubModelFontColor StringListMeta
	Freeform          FreeFormMeta
	Alloc             AllocMeta
	Csi               CalloutCsiMeta
	Pli               CalloutPliMeta
	RotateIcon        RotateIconMeta
	Begin             RcMeta
	Divider           RcMeta
	End               RcMeta
	OneToOne          OneToOneMeta
	PartID            PartIDMeta
	SubModel          SubModelMeta
	Sticker           StickerMeta
	RightWrong        RightWrongMeta
	Illustration      IllustrationMeta
}

func (m *MultiStepMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.StepNum.Init(&m.BranchMeta, "STEP_NUMBER")
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Sep.Init(&m.BranchMeta, "SEPARATOR")
	m.SubModelFont.Init(&m.BranchMeta, "SUBMODEL_FONT")
	m.SubModelFontColor.Init(&m.BranchMeta, "SUBMODEL_FONT_COLOR")
	m.Freeform.Init(&m.BranchMeta, "FREEFORM")
	m.Alloc.Init(&m.BranchMeta, "ALLOC")
	m.Csi.Init(&m.BranchMeta, "ASSEM")
	m.Pli.Init(&m.BranchMeta, "PLI")
	m.RotateIcon.Init(&m.BranchMeta, "ROTATE_ICON")
	m.Begin.Init(&m.BranchMeta, "BEGIN", StepGroupBeginRc)
	m.Divider.Init(&m.BranchMeta, "DIVIDER", StepGroupDividerRc)
	m.End.Init(&m.BranchMeta, "END", StepGroupEndRc)
	m.OneToOne.Init(&m.BranchMeta, "ONETOONE")
	m.PartID.Init(&m.BranchMeta, "PARTID")
	m.SubModel.Init(&m.BranchMeta, "SUBMODEL")
	m.Sticker.Init(&m.BranchMeta, "STICKER")
	m.RightWrong.Init(&m.BranchMeta, "RIGHT_WRONG")
	m.Illustration.Init(&m.BranchMeta, "ILLUSTRATION")

	m.StepNum.Placement.SetValue(LeftTopOutside, PartsListType)
	m.StepNum.Color.SetValue("black")
	m.Placement.SetValue(CenterCenter, PageType)
	m.Sep.SetValue(SepData{
		Thickness: DefaultThickness,
		Color:     "black",
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.SubModelFontColor.SetValue([]string{"black"})
	m.Alloc.SetValue(Vertical)
	m.Pli.Placement.SetValue(LeftTopOutside, CsiType)
	m.Pli.PerStep.SetValue(true)
	m.RotateIcon.Placement.SetValue(RightOutside, CsiType)
}
