package meta

// PliMeta controls a parts list: framing, camera, per-part margins,
// instance counts and annotations, exclusion and substitution spans,
// and the sort order. The same branch shape serves the per-step list,
// the bill of materials and the comparison lists, differing only in
// their factory values and terminating return codes.
type PliMeta struct {
	BranchMeta
	Placement     PlacementMeta
	Constrain     ConstrainMeta
	Border        BorderMeta
	Background    BackgroundMeta
	Margin        MarginsMeta
	Instance      NumberPlacementMeta
	Annotate      NumberPlacementMeta
	ModelScale    FloatMeta
	Angle         FloatPairMeta
	Show          BoolMeta
	LdviewParms   StringMeta
	LdgliteParms  StringMeta
	L3pParms      StringMeta
	PovrayParms   StringMeta
	IncludeSubs   BoolMeta
	SubModelColor StringListMeta
	Part          PartMeta
	Begin         PliBeginMeta
	End           RcMeta
	Sort          BoolMeta
	SortBy        StringMeta
	SortOrder     SortOrderMeta
	Annotation    PliAnnotationMeta
	PartElements  PartElementMeta
	CircleStyle   StyleMeta
	SquareStyle   StyleMeta
	RectStyle     StyleMeta
	ElementStyle  StyleMeta
	CameraFoV     FloatMeta
	RotStep       RotStepMeta
	Target        FloatXYZMeta
	ImageSize     UnitsMeta
	EnableGroups  BoolMeta
	// Pack has no keyword; it carries the factory packing mode read by
	// the layout engine.
	Pack BoolMeta
}

// initChildren registers the shared child set. Each list variant calls
// this against its own embedded branch so keyword preambles stay
// correct, then re-primes the factory values it differs on.
func (m *PliMeta) initChildren(endRc Rc) {
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Constrain.Init(&m.BranchMeta, "CONSTRAIN")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Instance.Init(&m.BranchMeta, "INSTANCE_COUNT")
	m.Annotate.Init(&m.BranchMeta, "ANNOTATE")
	m.ModelScale.Init(&m.BranchMeta, "MODEL_SCALE")
	m.Angle.Init(&m.BranchMeta, "VIEW_ANGLE")
	m.Show.Init(&m.BranchMeta, "SHOW")
	m.LdviewParms.Init(&m.BranchMeta, "LDVIEW_PARMS")
	m.LdgliteParms.Init(&m.BranchMeta, "LDGLITE_PARMS")
	m.L3pParms.Init(&m.BranchMeta, "L3P_PARMS")
	m.PovrayParms.Init(&m.BranchMeta, "POVRAY_PARMS")
	m.IncludeSubs.Init(&m.BranchMeta, "INCLUDE_SUBMODELS")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")
	m.Part.Init(&m.BranchMeta, "PART")
	m.Begin.Init(&m.BranchMeta, "BEGIN")
	m.End.Init(&m.BranchMeta, "END", endRc)
	m.Sort.Init(&m.BranchMeta, "SORT")
	m.SortBy.Init(&m.BranchMeta, "SORT_BY")
	m.SortOrder.Init(&m.BranchMeta, "SORT_ORDER")
	m.Annotation.Init(&m.BranchMeta, "ANNOTATION")
	m.PartElements.Init(&m.BranchMeta, "PART_ELEMENTS")
	m.CircleStyle.Init(&m.BranchMeta, "CIRCLE_STYLE")
	m.SquareStyle.Init(&m.BranchMeta, "SQUARE_STYLE")
	m.RectStyle.Init(&m.BranchMeta, "RECTANGLE_STYLE")
	m.ElementStyle.Init(&m.BranchMeta, "ELEMENT_STYLE")
	m.CameraFoV.Init(&m.BranchMeta, "CAMERA_FOV")
	m.RotStep.Init(&m.BranchMeta, "ROTSTEP")
	m.Target.Init(&m.BranchMeta, "TARGET")
	m.ImageSize.Init(&m.BranchMeta, "IMAGE_SIZE")
	m.EnableGroups.Init(&m.BranchMeta, "PART_GROUP")
}

func (m *PliMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.initChildren(PliEndRc)
	m.applyDefaults()
}

// applyDefaults primes the per-step list factory settings. The derived
// lists re-prime afterwards with their own values.
func (m *PliMeta) applyDefaults() {
	m.Placement.SetValue(RightTopOutside, StepNumberType)
	m.Border.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    15,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Background.SetValue(BackgroundData{Type: BgColor, Value: "#ffffff"})
	m.ModelScale.SetRange(-10000, 10000)
	m.ModelScale.SetFormats(7, 4)
	m.ModelScale.SetValue(1.0)
	m.Angle.SetValues(23, -45)
	m.Angle.SetRange(-360, 360)
	m.Angle.SetFormats(6, 4)
	m.Show.SetValue(true)
	m.LdgliteParms.SetValue("-fh -w1")
	m.L3pParms.SetValue("-q4 -sw2")
	m.PovrayParms.SetValue("+A")
	m.SubModelColor.SetValue([]string{"#ffffff", "#ffffcc", "#ffcccc", "#ccccff"})
	m.Part.Margin.SetValues(0.05, 0.03)
	m.Instance.Font.SetValue("Arial,36,-1,255,75,0,0,0,0,0")
	m.Instance.Margin.SetValues(0, 0)
	m.Annotate.Font.SetValue("Arial,24,-1,5,50,0,0,0,0,0")
	m.Annotate.Color.SetValue("#3a3938")
	m.Annotate.Margin.SetValues(0, 0)
	m.Margin.SetValues(DefaultMargin, DefaultMargin)
	m.CircleStyle.setStyleDefaults(BadgeCircle, "#ffffff", 0.28)
	m.SquareStyle.setStyleDefaults(BadgeSquare, "#ffffff", 0.28)
	m.RectStyle.setStyleDefaults(BadgeRectangle, "#ffffff", 0.28)
	m.ElementStyle.setStyleDefaults(BadgeElement, "#ffffff", 0.28)
	m.CameraFoV.SetRange(0, 360)
	m.CameraFoV.SetValue(0.01)
	m.ImageSize.SetRange(0, 1000)
	m.Pack.SetValue(true)
	m.Sort.SetValue(false)
	m.SortBy.SetValue(SortOptionName[PartSize])
}

// BomMeta is the bill-of-materials list: page-centered, unpacked and
// sorted by color out of the box, with the element badge enabled.
type BomMeta struct {
	PliMeta
}

func (m *BomMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.initChildren(BomEndRc)
	m.Begin.Ignore.rc = BomBeginIgnRc

	m.applyDefaults()
	m.Placement.SetValue(CenterCenter, PageType)
	m.Margin.SetValues(0, 0)
	m.Instance.Font.SetValue("Arial,24,-1,255,75,0,0,0,0,0")
	m.Annotate.Font.SetValue("Arial,18,-1,5,50,0,0,0,0,0")
	m.Pack.SetValue(false)
	m.Sort.SetValue(true)
	m.SortBy.SetValue(SortOptionName[PartColour])
	m.SortOrder.Primary.SetValue(SortOptionName[PartCategory])
	m.SortOrder.Secondary.SetValue(SortOptionName[PartColour])
	m.SortOrder.Tertiary.SetValue(SortOptionName[PartSize])
	m.Annotation.Display.SetValue(true)
}

// OneToOneMeta is the life-size one-to-one list shown beside a step.
type OneToOneMeta struct {
	PliMeta
}

func (m *OneToOneMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.initChildren(OneToOneEndRc)

	m.applyDefaults()
	m.Placement.SetValue(RightOutside, PartsListType)
	m.Show.SetValue(false)
}

// RightWrongMeta is the correct-versus-incorrect comparison list. It
// adds the callout-style pointer, layout and camera fields.
type RightWrongMeta struct {
	PliMeta
	Pointer  PointerMeta
	Freeform FreeFormMeta
	Alloc    AllocMeta
	Distance FloatMeta
	FoV      FloatMeta
	ZNear    FloatMeta
	ZFar     FloatMeta
}

func (m *RightWrongMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.initChildren(RightWrongEndRc)
	m.Pointer.Init(&m.BranchMeta, "POINTER")
	m.Freeform.Init(&m.BranchMeta, "FREEFORM")
	m.Alloc.Init(&m.BranchMeta, "ALLOC")
	m.Distance.Init(&m.BranchMeta, "VIEW_DISTANCE")
	m.FoV.Init(&m.BranchMeta, "VIEW_FOV")
	m.ZNear.Init(&m.BranchMeta, "VIEW_ZNEAR")
	m.ZFar.Init(&m.BranchMeta, "VIEW_ZFAR")

	m.applyDefaults()
	m.Placement.SetValue(RightTopOutside, PartsListType)
	m.FoV.SetRange(0, 360)
	m.FoV.SetValue(30)
	m.ZNear.SetValue(25)
	m.ZFar.SetValue(12500)
}
