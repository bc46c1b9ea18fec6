package meta

// Small composite branches shared by the page, assembly, callout and
// parts-list subtrees. Each branch registers its children in Init and
// then applies its factory values, so a branch embedded in a larger one
// can still be re-primed by its owner afterwards.

// NumberMeta styles a rendered number: font, color and margins.
type NumberMeta struct {
	BranchMeta
	Color  StringMeta
	Font   FontMeta
	Margin MarginsMeta
}

func (m *NumberMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Color.Init(&m.BranchMeta, "FONT_COLOR")
	m.Font.Init(&m.BranchMeta, "FONT")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Color.SetValue("black")
}

// NumberPlacementMeta is a NumberMeta that can also be placed.
type NumberPlacementMeta struct {
	NumberMeta
	Placement PlacementMeta
}

func (m *NumberPlacementMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Color.Init(&m.BranchMeta, "FONT_COLOR")
	m.Font.Init(&m.BranchMeta, "FONT")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Color.SetValue("black")
}

// PageAttributeTextMeta is one textual page attribute such as the title
// or author line. Type records which attribute this branch carries; it
// is fixed by the owning page branch, never parsed.
type PageAttributeTextMeta struct {
	BranchMeta
	Type      PlacementType
	TextFont  FontMeta
	TextColor StringMeta
	Margin    MarginsMeta
	Placement PlacementMeta
	Content   StringMeta
	Display   BoolMeta
}

func (m *PageAttributeTextMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.TextFont.Init(&m.BranchMeta, "FONT")
	m.TextColor.Init(&m.BranchMeta, "COLOR")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Content.Init(&m.BranchMeta, "CONTENT")
	m.Display.Init(&m.BranchMeta, "DISPLAY")
	m.TextColor.SetValue("black")
}

// PageAttributePictureMeta is one pictorial page attribute such as a
// logo or the cover image.
type PageAttributePictureMeta struct {
	BranchMeta
	Type      PlacementType
	Placement PlacementMeta
	Margin    MarginsMeta
	PicScale  FloatMeta
	File      StringMeta
	Display   BoolMeta
	Stretch   BoolMeta
	Tile      BoolMeta
}

func (m *PageAttributePictureMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.PicScale.Init(&m.BranchMeta, "SCALE")
	m.File.Init(&m.BranchMeta, "FILE")
	m.Display.Init(&m.BranchMeta, "DISPLAY")
	m.Stretch.Init(&m.BranchMeta, "STRETCH")
	m.Tile.Init(&m.BranchMeta, "TILE")
	m.Margin.SetValues(0, 0)
	m.PicScale.SetRange(-10000, 10000)
	m.PicScale.SetFormats(7, 4)
	m.PicScale.SetValue(1.0)
}

// PageHeaderMeta reserves the band across the top of each page.
type PageHeaderMeta struct {
	BranchMeta
	Placement PlacementMeta
	Size      UnitsMeta
}

func (m *PageHeaderMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Size.Init(&m.BranchMeta, "SIZE")
	m.Placement.setDefaults(TopInside, PageType)
	m.Size.SetRange(0.1, 1000)
	m.Size.SetValues(8.3, 0.3)
}

// PageFooterMeta reserves the band across the bottom of each page.
type PageFooterMeta struct {
	BranchMeta
	Placement PlacementMeta
	Size      UnitsMeta
}

func (m *PageFooterMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Size.Init(&m.BranchMeta, "SIZE")
	m.Placement.setDefaults(BottomInside, PageType)
	m.Size.SetRange(0.1, 1000)
	m.Size.SetValues(8.3, 0.3)
}

// FadeStepMeta fades the parts of earlier steps to the fade color.
type FadeStepMeta struct {
	BranchMeta
	FadeColor StringMeta
	FadeStep  BoolMeta
}

func (m *FadeStepMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.FadeColor.Init(&m.BranchMeta, "FADE_COLOR")
	m.FadeStep.Init(&m.BranchMeta, "FADE")
	m.FadeColor.SetValue("Very_Light_Bluish_Gray")
}

// RemoveMeta strips previously seen lines from the model by group,
// part type or part name.
type RemoveMeta struct {
	BranchMeta
	Group StringMeta
	Part  StringMeta
	Name  StringMeta
}

func (m *RemoveMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Group.Init(&m.BranchMeta, "GROUP", RemoveGroupRc)
	m.Part.Init(&m.BranchMeta, "PART", RemovePartRc)
	m.Name.Init(&m.BranchMeta, "NAME", RemoveNameRc)
}

// PartMeta carries the margins around one part image.
type PartMeta struct {
	BranchMeta
	Margin MarginsMeta
}

func (m *PartMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Margin.Init(&m.BranchMeta, "MARGINS")
}

// PliBeginMeta opens a parts-list exclusion or substitution span.
type PliBeginMeta struct {
	BranchMeta
	Ignore RcMeta
	Sub    SubMeta
}

func (m *PliBeginMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Ignore.Init(&m.BranchMeta, "IGN", PliBeginIgnRc)
	m.Sub.Init(&m.BranchMeta, "SUB")
}

// PartBeginMeta opens a part exclusion span.
type PartBeginMeta struct {
	BranchMeta
	Ignore RcMeta
}

func (m *PartBeginMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Ignore.Init(&m.BranchMeta, "IGN", PartBeginIgnRc)
}

// PartIgnMeta brackets lines excluded from the assembly image.
type PartIgnMeta struct {
	BranchMeta
	Begin PartBeginMeta
	End   RcMeta
}

func (m *PartIgnMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Begin.Init(&m.BranchMeta, "BEGIN")
	m.End.Init(&m.BranchMeta, "END", PartEndRc)
}

// CalloutCsiMeta places the assembly image inside a callout.
type CalloutCsiMeta struct {
	BranchMeta
	Placement PlacementMeta
	Margin    MarginsMeta
}

func (m *CalloutCsiMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
}

// CalloutPliMeta places the parts list inside a callout, either once
// per callout or once per step.
type CalloutPliMeta struct {
	BranchMeta
	Placement PlacementMeta
	PerStep   BoolMeta
	Margin    MarginsMeta
}

func (m *CalloutPliMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Placement.Init(&m.BranchMeta, "PLACEMENT")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.PerStep.Init(&m.BranchMeta, "PER_STEP")
	m.Placement.setDefaults(TopOutside, CsiType)
	m.PerStep.SetValue(true)
}

// StepPliMeta shows or hides the parts list of a single step.
type StepPliMeta struct {
	BranchMeta
	PerStep BoolMeta
}

func (m *StepPliMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.PerStep.Init(&m.BranchMeta, "PER_STEP")
	m.PerStep.SetValue(true)
}

// PliAnnotationMeta selects which annotation source decorates listed
// parts, and which fixed badge styles are in play. The category toggles
// gate the fixed styles per part family so a document can badge axles
// but leave panels plain.
type PliAnnotationMeta struct {
	BranchMeta
	TitleAnnotation            BoolMeta
	FreeformAnnotation         BoolMeta
	TitleAndFreeformAnnotation BoolMeta
	Display                    BoolMeta
	EnableStyle                BoolMeta
	ExtendedStyle              BoolMeta
	FixedAnnotations           BoolMeta
	AxleStyle                  BoolMeta
	BeamStyle                  BoolMeta
	CableStyle                 BoolMeta
	ConnectorStyle             BoolMeta
	HoseStyle                  BoolMeta
	PanelStyle                 BoolMeta
	ElementStyle               BoolMeta
}

func (m *PliAnnotationMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.TitleAnnotation.Init(&m.BranchMeta, "USE_TITLE")
	m.FreeformAnnotation.Init(&m.BranchMeta, "USE_FREE_FORM")
	m.TitleAndFreeformAnnotation.Init(&m.BranchMeta, "USE_TITLE_AND_FREE_FORM")
	m.Display.Init(&m.BranchMeta, "DISPLAY")
	m.EnableStyle.Init(&m.BranchMeta, "ENABLE_STYLE")
	m.ExtendedStyle.Init(&m.BranchMeta, "EXTENDED_STYLE")
	m.FixedAnnotations.Init(&m.BranchMeta, "FIXED_ANNOTATIONS")
	m.AxleStyle.Init(&m.BranchMeta, "AXLE_STYLE")
	m.BeamStyle.Init(&m.BranchMeta, "BEAM_STYLE")
	m.CableStyle.Init(&m.BranchMeta, "CABLE_STYLE")
	m.ConnectorStyle.Init(&m.BranchMeta, "CONNECTOR_STYLE")
	m.HoseStyle.Init(&m.BranchMeta, "HOSE_STYLE")
	m.PanelStyle.Init(&m.BranchMeta, "PANEL_STYLE")
	m.ElementStyle.Init(&m.BranchMeta, "ELEMENT_STYLE")
	m.TitleAnnotation.SetValue(true)
	m.EnableStyle.SetValue(true)
	m.FixedAnnotations.SetValue(true)
	m.AxleStyle.SetValue(true)
	m.BeamStyle.SetValue(true)
	m.CableStyle.SetValue(true)
	m.ConnectorStyle.SetValue(true)
	m.HoseStyle.SetValue(true)
	m.PanelStyle.SetValue(true)
}

// TextMeta styles inserted free text.
type TextMeta struct {
	BranchMeta
	Font      FontMeta
	Color     StringMeta
	Alignment AlignmentMeta
}

func (m *TextMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Font.Init(&m.BranchMeta, "FONT")
	m.Color.Init(&m.BranchMeta, "COLOR")
	m.Alignment.Init(&m.BranchMeta, "ALIGNMENT")
}
