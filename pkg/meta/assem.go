package meta

// AssemMeta controls the assembly (construction step) image: placement,
// camera, and the argument strings handed to each renderer.
type AssemMeta struct {
	BranchMeta
	Margin         MarginsMeta
	Placement      PlacementMeta
	ModelScale     FloatMeta
	Angle          FloatPairMeta
	Distance       FloatMeta
	FoV            FloatMeta
	ZNear          FloatMeta
	ZFar           FloatMeta
	LdgliteParms   StringMeta
	LdviewParms    StringMeta
	L3pParms       StringMeta
	PovrayParms    StringMeta
	ShowStepNumber BoolMeta
}

func (m *AssemMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.ModelScale.Init(&m.BranchMeta, "MODEL_SCALE")
	m.Angle.Init(&m.BranchMeta, "VIEW_ANGLE")
	m.Distance.Init(&m.BranchMeta, "VIEW_DISTANCE")
	m.FoV.Init(&m.BranchMeta, "VIEW_FOV")
	m.ZNear.Init(&m.BranchMeta, "VIEW_ZNEAR")
	m.ZFar.Init(&m.BranchMeta, "VIEW_ZFAR")
	// The two renderer keys are crossed; documents written against the
	// crossed keys round-trip unchanged.
	m.LdviewParms.Init(&m.BranchMeta, "LDGLITE_PARMS")
	m.LdgliteParms.Init(&m.BranchMeta, "LDVIEW_PARMS")
	m.L3pParms.Init(&m.BranchMeta, "L3P_PARMS")
	m.PovrayParms.Init(&m.BranchMeta, "POVRAY_PARMS")
	m.ShowStepNumber.Init(&m.BranchMeta, "SHOW_STEP_NUMBER")

	m.Placement.SetValue(CenterCenter, PageType)
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
	m.LdgliteParms.SetValue("-fh")
	m.L3pParms.SetValue("-q4 -sw2")
	m.PovrayParms.SetValue("+A")
	m.ShowStepNumber.SetValue(true)
}

// SubModelMeta controls the boxed preview of a submodel shown where it
// is first used. It carries the assembly camera settings plus its own
// frame, size and visibility.
type SubModelMeta struct {
	AssemMeta
	Size          UnitsMeta
	Constrain     ConstrainMeta
	Border        BorderMeta
	Background    BackgroundMeta
	Display       BoolMeta
	SubModelColor StringListMeta
}

func (m *SubModelMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Size.Init(&m.BranchMeta, "SIZE")
	m.Constrain.Init(&m.BranchMeta, "CONSTRAIN")
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.ModelScale.Init(&m.BranchMeta, "MODEL_SCALE")
	m.Display.Init(&m.BranchMeta, "DISPLAY")
	m.Angle.Init(&m.BranchMeta, "VIEW_ANGLE")
	m.Distance.Init(&m.BranchMeta, "VIEW_DISTANCE")
	m.FoV.Init(&m.BranchMeta, "VIEW_FOV")
	m.ZNear.Init(&m.BranchMeta, "VIEW_ZNEAR")
	m.ZFar.Init(&m.BranchMeta, "VIEW_ZFAR")
	m.LdviewParms.Init(&m.BranchMeta, "LDGLITE_PARMS")
	m.LdgliteParms.Init(&m.BranchMeta, "LDVIEW_PARMS")
	m.L3pParms.Init(&m.BranchMeta, "L3P_PARMS")
	m.PovrayParms.Init(&m.BranchMeta, "POVRAY_PARMS")
	m.ShowStepNumber.Init(&m.BranchMeta, "SHOW_STEP_NUMBER")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")

	m.Placement.SetValue(TopOutside, PartsListType)
	m.Border.SetValue(BorderData{
		Type:      BdrSquare,
		Line:      BdrLnSolid,
		Color:     "Black",
		Thickness: DefaultThickness,
		Radius:    15,
		Margin:    [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Background.SetValue(BackgroundData{Type: BgColor, Value: "#ffffff"})
	m.Size.SetValues(0.05, 0.05)
	m.Size.SetRange(1, 1000)
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
	m.LdgliteParms.SetValue("-fh")
	m.L3pParms.SetValue("-q4 -sw2")
	m.PovrayParms.SetValue("+A")
	m.ShowStepNumber.SetValue(true)
}
