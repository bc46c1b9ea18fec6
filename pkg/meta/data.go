package meta

// Compound values carried by the richer leaf nodes. Each mirrors the token
// shape of its directive closely enough that parse and format stay simple
// field walks.

// Factory spacing constants shared by the composite defaults, in units.
const (
	DefaultMargin    float32 = 0.05
	DefaultThickness float32 = 1.0 / 32.0
)

// PointF is a float point used by gradient geometry and arrow inserts.
type PointF struct {
	X float64
	Y float64
}

// PlacementData anchors one page element relative to another. Placement,
// justification, and preposition are the parsed triple; RectPlacement is
// the zone the triple resolves to in the 25-entry decode table. Offsets
// are fractional nudges applied after anchoring.
type PlacementData struct {
	Placement     PlacementEnc
	Justification PlacementEnc
	RelativeTo    PlacementType
	Preposition   PrepositionEnc
	RectPlacement RectPlacement

	Offsets [2]float32
}

// BackgroundType tags the active variant in a BackgroundData.
type BackgroundType int

const (
	BgTransparent BackgroundType = iota
	BgColor
	BgGradient
	BgImage
	BgSubmodelColor
)

// GradientMode controls how gradient coordinates map onto the target.
type GradientMode int

const (
	LogicalMode GradientMode = iota
	StretchToDeviceMode
	ObjectBoundingMode
)

// GradientSpread controls what happens outside the gradient area.
type GradientSpread int

const (
	PadSpread GradientSpread = iota
	RepeatSpread
	ReflectSpread
)

// GradientType selects the gradient geometry.
type GradientType int

const (
	LinearGradient GradientType = iota
	RadialGradient
	ConicalGradient
	NoGradient
)

// GradientStop pins a colour at a fractional position along a gradient.
// Color is packed AARRGGBB.
type GradientStop struct {
	Pos   float64
	Color uint32
}

// BackgroundData describes a fill: transparent, named color, stretched or
// tiled picture, inherited submodel color, or a gradient. Value holds the
// color name for BgColor and the picture path for BgImage.
type BackgroundData struct {
	Type    BackgroundType
	Value   string
	Stretch bool

	GMode   GradientMode
	GSpread GradientSpread
	GType   GradientType
	GStops  []GradientStop
	GPoints []PointF
	GSize   [2]float64
	GAngle  float64
}

// DefaultBackgroundData returns a transparent background primed with the
// stock gradient stops a gradient picker starts from.
func DefaultBackgroundData() BackgroundData {
	return BackgroundData{
		Type:    BgTransparent,
		GMode:   LogicalMode,
		GSpread: RepeatSpread,
		GType:   LinearGradient,
		GStops: []GradientStop{
			{0.00, 0x00000000},
			{0.04, 0xff131360},
			{0.08, 0xff202ccc},
			{0.42, 0xff93d3f9},
			{0.51, 0xffb3e6ff},
			{0.73, 0xffffffec},
			{0.92, 0xff5353d9},
			{0.96, 0xff262666},
			{1.00, 0x00000000},
		},
	}
}

// BorderType tags the border shape.
type BorderType int

const (
	BdrNone BorderType = iota
	BdrSquare
	BdrRound
)

// Border line styles. Stored as a plain int in BorderData because the
// directive carries the style as a bare integer token.
const (
	BdrLnNone = iota
	BdrLnSolid
	BdrLnDash
	BdrLnDot
	BdrLnDashDot
	BdrLnDashDotDot
)

// BorderData describes a frame drawn around an element. Thickness,
// radius, and margins are in units (inches unless the document says
// otherwise).
type BorderData struct {
	Type      BorderType
	Line      int
	Color     string
	Thickness float32
	Radius    float32
	Margin    [2]float32
}

// DefaultBorderData returns the factory border: none drawn, but black,
// 1/8 unit thick and radius 15 should one be switched on.
func DefaultBorderData() BorderData {
	return BorderData{
		Type:      BdrNone,
		Line:      BdrLnNone,
		Color:     "Black",
		Thickness: 0.125,
		Radius:    15,
	}
}

// PointerData describes a callout or page pointer: where its base sits,
// the tip and base control points, and how many segments the shaft has.
// Loc is the fraction along the base side; Base is the base width in
// units.
type PointerData struct {
	RectPlacement RectPlacement
	Placement     PlacementEnc
	Loc           float32
	Base          float32
	Segments      int
	X1, Y1        float32 // tip
	X2, Y2        float32 // base
	X3, Y3        float32 // mid base
	X4, Y4        float32 // mid tip
}

// DefaultPointerData centers a single-segment pointer with a 1/8 unit
// base.
func DefaultPointerData() PointerData {
	return PointerData{
		RectPlacement: TopLeftOutsideCorner,
		Placement:     TopLeft,
		Base:          0.125,
		Segments:      1,
		X1:            0.5,
		Y1:            0.5,
		X2:            0.5,
		Y2:            0.5,
		X3:            0.5,
		Y3:            0.5,
		X4:            0.5,
		Y4:            0.5,
	}
}

// RotStepData is a viewing angle change: three axis rotations plus the
// mode keyword (ABS, REL, ADD). An empty Type means no rotation pending.
type RotStepData struct {
	Rots [3]float64
	Type string
}

// BuffExchgData records a buffer exchange: the single-letter buffer name
// and whether the model state is stored to or retrieved from it.
type BuffExchgData struct {
	Buffer string
	Type   string
}

// PageSizeData is a page size in units plus the named size it matches
// ("A4", "Letter", "Custom", ...).
type PageSizeData struct {
	SizeW  float32
	SizeH  float32
	SizeID string
}

// InsertType tags the active variant in an InsertData.
type InsertType int

const (
	InsertPicture InsertType = iota
	InsertText
	InsertArrow
	InsertBom
	InsertRotateIcon
)

// InsertData is the payload of a content insert: a picture, a block of
// text, an arrow, a BOM, or a rotate icon, each placed by fractional
// page offsets.
type InsertData struct {
	Type InsertType

	PicName  string
	PicScale float64

	Text      string
	TextFont  string
	TextColor string

	ArrowHead    PointF
	ArrowTail    PointF
	HaftingDepth float64
	HaftingTip   PointF

	Offsets [2]float32
}

// DefaultInsertData returns an insert centered on the page with the
// stock text face.
func DefaultInsertData() InsertData {
	return InsertData{
		PicScale:  1.0,
		TextFont:  "Arial,48,-1,255,75,0,0,0,0,0",
		TextColor: "Black",
		Offsets:   [2]float32{0.5, 0.5},
	}
}

// SubData is a part substitution: the replacement part plus the
// optional color, camera and rotation attributes, tagged with the
// substitution level they were given at.
type SubData struct {
	Color        string
	Part         string
	ModelScale   float32
	CameraFoV    float32
	CameraAngles [2]float32
	Target       [3]float32
	Rotation     [3]float32
	Transform    string
	Type         Rc
}

// FreeFormData turns free-form placement on for an element and records
// which base side and justification the free position is relative to.
type FreeFormData struct {
	Mode          bool
	Base          PlacementEnc
	Justification PlacementEnc
}

// Constrain selects which dimension bounds a parts-list layout.
type Constrain int

const (
	ConstrainArea Constrain = iota
	ConstrainSquare
	ConstrainWidth
	ConstrainHeight
	ConstrainColumns
)

// ConstrainData is a layout constraint plus its magnitude. Magnitude is
// ignored for area and square constraints.
type ConstrainData struct {
	Type       Constrain
	Constraint float32
}

// SepData describes the separator rule drawn between callout steps.
type SepData struct {
	Thickness  float32
	Color      string
	Margin     [2]float32
	HasPointer bool
}

// DefaultSepData returns the factory separator, a 1/8 unit rule.
func DefaultSepData() SepData {
	return SepData{Thickness: 0.125}
}

// CalloutMode is how a callout displays its submodel: step by step,
// fully assembled, or assembled and rotated.
type CalloutMode int

const (
	CalloutUnassembled CalloutMode = iota
	CalloutAssembled
	CalloutRotated
)

// AnnotationStyle selects which annotation source decorates a part.
type AnnotationStyle int

const (
	TitleAnnotation AnnotationStyle = iota
	FreeFormAnnotation
	TitleAndFreeFormAnnotation
	NumAnnotationStyles
)

// PliType distinguishes the four flavours of parts list.
type PliType int

const (
	TypePli PliType = iota
	TypeBom
	TypeOneToOne
	TypeRightWrong
)

// PageKind classifies a generated page.
type PageKind int

const (
	ContentPage PageKind = iota
	FrontCoverPage
	BackCoverPage
)

// ViewPoint names a standard orthographic viewing direction.
type ViewPoint int

const (
	ViewTop ViewPoint = iota
	ViewBottom
	ViewFront
	ViewBack
	ViewLeft
	ViewRight
)

// RightWrongData pairs the two viewpoints of a right/wrong comparison
// image for a part.
type RightWrongData struct {
	PartName       string
	RightViewPoint ViewPoint
	WrongViewPoint ViewPoint
}

// StickerData ties a sticker identifier to the part it is applied to.
type StickerData struct {
	PartName  string
	StickerID string
}

// PlacementName returns the directive keyword for a placement anchor.
func PlacementName(p PlacementEnc) string {
	if p < 0 || p >= NumPlacements {
		return ""
	}
	return placementNames[p]
}

// RelativeName returns the directive keyword for a placement-relative
// element type, or "" for internal-only types.
func RelativeName(t PlacementType) string {
	if t < 0 || t >= NumRelatives {
		return ""
	}
	return relativeNames[t]
}

// RectPlacementName returns the name of a rectangular zone.
func RectPlacementName(r RectPlacement) string {
	if r < 0 || r >= NumSpots {
		return ""
	}
	return rectPlacementNames[r]
}

// PrepositionName returns INSIDE or OUTSIDE.
func PrepositionName(p PrepositionEnc) string {
	if p < Inside || p > Outside {
		return ""
	}
	return prepositionNames[p]
}
