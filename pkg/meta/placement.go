package meta

// PlacementEnc names one of the eight compass anchors plus center.
type PlacementEnc int

const (
	TopLeft PlacementEnc = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
	Center
	NumPlacements
)

// PrepositionEnc distinguishes anchoring inside a region from hanging
// outside its edge.
type PrepositionEnc int

const (
	Inside PrepositionEnc = iota
	Outside
)

// RectPlacement is one of the 25 rectangular zones surrounding and
// covering a reference rectangle: a 5x5 grid of corner, edge, and center
// spots, inside and outside.
type RectPlacement int

const (
	TopLeftOutsideCorner RectPlacement = iota
	TopLeftOutside
	TopOutside
	TopRightOutside
	TopRightOutsideCorner

	LeftTopOutside
	TopLeftInsideCorner // "Page Top Left"
	TopInside           // "Page Top"
	TopRightInsideCorner
	RightTopOutside

	LeftOutside
	LeftInside
	CenterCenter
	RightInside
	RightOutside

	LeftBottomOutside
	BottomLeftInsideCorner
	BottomInside
	BottomRightInsideCorner
	RightBottomOutside

	BottomLeftOutsideCorner
	BottomLeftOutside
	BottomOutside
	BottomRightOutside
	BottomRightOutsideCorner

	NumSpots
)

// PlacementType identifies what kind of page element a placement is
// expressed relative to.
type PlacementType int

const (
	PageType PlacementType = iota
	CsiType
	StepGroupType
	StepNumberType
	PartsListType
	CalloutType
	PageNumberType

	PageTitleType
	PageModelNameType
	PageAuthorType
	PageURLType
	PageModelDescType
	PagePublishDescType
	PageCopyrightType
	PageEmailType
	PageDisclaimerType
	PagePiecesType
	PagePlugType
	PageCategoryType
	PageDocumentLogoType
	PageCoverImageType
	PagePlugImageType
	PageHeaderType
	PageFooterType
	RotateIconType
	PagePointerType

	OneToOneType
	PartIDType
	SubModelType
	IllustrationType
	RightWrongType
	StickerType

	SingleStepType
	SubmodelInstanceCountType

	StepType
	RangeType
	ReserveType
	BomType
	CoverPageType
	NumRelatives
)

// AllocEnc selects whether ranges of steps are laid out across or down.
type AllocEnc int

const (
	Horizontal AllocEnc = iota
	Vertical
)

// OrientationEnc is the page orientation.
type OrientationEnc int

const (
	Portrait OrientationEnc = iota
	Landscape
	InvalidOrientation
)

// Alignment is a horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// SortOption indexes the part-list sort vocabularies.
type SortOption int

const (
	PartSize SortOption = iota
	PartColour
	PartCategory
	PartElement
	SortByType
	// NoSort disables a sort key slot.
	NoSort
)

// SortOptionName maps SortOption values to their user-facing names.
var SortOptionName = [SortByType]string{
	"Part Size",
	"Part Color",
	"Part Category",
	"Part Element",
}

// SortOptionCode resolves a user-facing sort option name. Unknown names
// disable the slot.
func SortOptionCode(name string) SortOption {
	for i, n := range SortOptionName {
		if n == name {
			return SortOption(i)
		}
	}
	return NoSort
}

// SortDirection orders one sort key slot.
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

// SortDirectionName maps SortDirection values to their user-facing names.
var SortDirectionName = [2]string{
	"Ascending",
	"Descending",
}

// SortDirectionCode resolves a user-facing sort direction name. Unknown
// names sort ascending.
func SortDirectionCode(name string) SortDirection {
	if name == SortDirectionName[SortDescending] {
		return SortDescending
	}
	return SortAscending
}

// relativeNames renders PlacementType values back into directive keywords.
// Entries past StickerType are internal-only types that never appear in a
// formatted line.
var relativeNames = [NumRelatives]string{
	"PAGE", "ASSEM", "MULTI_STEP", "STEP_NUMBER", "PLI", "CALLOUT", "PAGE_NUMBER",
	"DOCUMENT_TITLE", "MODEL_ID", "DOCUMENT_AUTHOR", "PUBLISH_URL", "MODEL_DESCRIPTION",
	"PUBLISH_DESCRIPTION", "PUBLISH_COPYRIGHT", "PUBLISH_EMAIL", "LEGO_DISCLAIMER",
	"MODEL_PIECES", "APP_PLUG", "MODEL_CATEGORY", "DOCUMENT_LOGO", "DOCUMENT_COVER_IMAGE",
	"APP_PLUG_IMAGE", "PAGE_HEADER", "PAGE_FOOTER", "ROTATE_ICON", "PAGE_POINTER",
	"ONETOONE", "PARTID", "SUBMODEL", "ILLUSTRATION", "RIGHTWRONG", "STICKER",
}

var placementNames = [NumPlacements]string{
	"TOP_LEFT", "TOP", "TOP_RIGHT", "RIGHT",
	"BOTTOM_RIGHT", "BOTTOM", "BOTTOM_LEFT", "LEFT", "CENTER",
}

var prepositionNames = [2]string{
	"INSIDE", "OUTSIDE",
}

var rectPlacementNames = [NumSpots]string{
	"TopLeftOutsideCorner", "TopLeftOutside", "TopOutside", "TopRightOutside", "TopRightOutsideCorner",
	"LeftTopOutside", "BASE_TOP_LEFT", "BASE_TOP", "BASE_TOP_RIGHT", "RightTopOutside",
	"LeftOutside", "BASE_LEFT", "BASE_CENTER", "BASE_RIGHT", "RightOutside",
	"LeftBottomOutside", "BASE_BOTTOM_LEFT", "BASE_BOTTOM", "BASE_BOTTOM_RIGHT", "RightBottomOutside",
	"BottomLeftOutsideCorner", "BottomLeftOutside", "BottomOutside", "BottomRightOutside", "BottomRightOutsideCorner",
}

// placementOptions is the token vocabulary for each of the 25 rectangular
// zones: placement keyword, optional justification keyword, preposition.
// A parsed (placement, justification, preposition) triple is matched
// against this table to recover the zone index.
var placementOptions = [NumSpots][3]string{
	{"TOP_LEFT", "", "OUTSIDE"},
	{"TOP", "LEFT", "OUTSIDE"},
	{"TOP", "CENTER", "OUTSIDE"},
	{"TOP", "RIGHT", "OUTSIDE"},
	{"TOP_RIGHT", "", "OUTSIDE"},

	{"LEFT", "TOP", "OUTSIDE"},
	{"TOP_LEFT", "", "INSIDE"},
	{"TOP", "", "INSIDE"},
	{"TOP_RIGHT", "", "INSIDE"},
	{"RIGHT", "TOP", "OUTSIDE"},

	{"LEFT", "CENTER", "OUTSIDE"},
	{"LEFT", "", "INSIDE"},
	{"CENTER", "", "INSIDE"},
	{"RIGHT", "", "INSIDE"},
	{"RIGHT", "CENTER", "OUTSIDE"},

	{"LEFT", "BOTTOM", "OUTSIDE"},
	{"BOTTOM_LEFT", "", "INSIDE"},
	{"BOTTOM", "", "INSIDE"},
	{"BOTTOM_RIGHT", "", "INSIDE"},
	{"RIGHT", "BOTTOM", "OUTSIDE"},

	{"BOTTOM_LEFT", "", "OUTSIDE"},
	{"BOTTOM", "LEFT", "OUTSIDE"},
	{"BOTTOM", "CENTER", "OUTSIDE"},
	{"BOTTOM", "RIGHT", "OUTSIDE"},
	{"BOTTOM_RIGHT", "", "OUTSIDE"},
}

// placementDecode expands each rectangular zone into its canonical
// (placement, justification, preposition) triple.
var placementDecode = [NumSpots]struct {
	placement     PlacementEnc
	justification PlacementEnc
	preposition   PrepositionEnc
}{
	{TopLeft, Center, Outside},
	{Top, Left, Outside},
	{Top, Center, Outside},
	{Top, Right, Outside},
	{TopRight, Center, Outside},

	{Left, Top, Outside},
	{TopLeft, Center, Inside},
	{Top, Center, Inside},
	{TopRight, Center, Inside},
	{Right, Top, Outside},

	{Left, Center, Outside},
	{Left, Center, Inside},
	{Center, Center, Inside},
	{Right, Center, Inside},
	{Right, Center, Outside},

	{Left, Bottom, Outside},
	{BottomLeft, Center, Inside},
	{Bottom, Center, Inside},
	{BottomRight, Center, Inside},
	{Right, Bottom, Outside},

	{BottomLeft, Center, Outside},
	{Bottom, Left, Outside},
	{Bottom, Center, Outside},
	{Bottom, Right, Outside},
	{BottomRight, Center, Outside},
}

// tokenCodes maps every placement-vocabulary keyword to its enum code.
// Built once at package load and never written afterward; the zero result
// for an unknown keyword deliberately mirrors a missing-key lookup so
// callers that pre-validate with a regexp stay cheap.
var tokenCodes = buildTokenCodes()

func buildTokenCodes() map[string]int {
	t := make(map[string]int, 96)

	t["TOP_LEFT"] = int(TopLeft)
	t["TOP"] = int(Top)
	t["TOP_RIGHT"] = int(TopRight)
	t["RIGHT"] = int(Right)
	t["BOTTOM_RIGHT"] = int(BottomRight)
	t["BOTTOM"] = int(Bottom)
	t["BOTTOM_LEFT"] = int(BottomLeft)
	t["LEFT"] = int(Left)
	t["CENTER"] = int(Center)

	t["INSIDE"] = int(Inside)
	t["OUTSIDE"] = int(Outside)

	t["PAGE"] = int(PageType)
	t["ASSEM"] = int(CsiType)
	t["MULTI_STEP"] = int(StepGroupType)
	t["STEP_GROUP"] = int(StepGroupType)
	t["STEP_NUMBER"] = int(StepNumberType)
	t["PLI"] = int(PartsListType)
	t["PAGE_NUMBER"] = int(PageNumberType)
	t["CALLOUT"] = int(CalloutType)

	t["SORT_BY"] = int(SortByType)
	t["ANNOTATION"] = int(NumAnnotationStyles)
	t["ROTATE_ICON"] = int(RotateIconType)
	t["PAGE_POINTER"] = int(PagePointerType)

	t["DOCUMENT_TITLE"] = int(PageTitleType)
	t["MODEL_ID"] = int(PageModelNameType)
	t["DOCUMENT_AUTHOR"] = int(PageAuthorType)
	t["PUBLISH_URL"] = int(PageURLType)
	t["MODEL_DESCRIPTION"] = int(PageModelDescType)
	t["PUBLISH_DESCRIPTION"] = int(PagePublishDescType)
	t["PUBLISH_COPYRIGHT"] = int(PageCopyrightType)
	t["PUBLISH_EMAIL"] = int(PageEmailType)
	t["LEGO_DISCLAIMER"] = int(PageDisclaimerType)
	t["MODEL_PIECES"] = int(PagePiecesType)
	t["APP_PLUG"] = int(PagePlugType)
	t["MODEL_CATEGORY"] = int(PageCategoryType)
	t["DOCUMENT_LOGO"] = int(PageDocumentLogoType)
	t["DOCUMENT_COVER_IMAGE"] = int(PageCoverImageType)
	t["APP_PLUG_IMAGE"] = int(PagePlugImageType)
	t["PAGE_HEADER"] = int(PageHeaderType)
	t["PAGE_FOOTER"] = int(PageFooterType)

	t["ONETOONE"] = int(OneToOneType)
	t["PARTID"] = int(PartIDType)
	t["SUBMODEL"] = int(SubModelType)
	t["ILLUSTRATION"] = int(IllustrationType)
	t["RIGHTWRONG"] = int(RightWrongType)
	t["STICKER"] = int(StickerType)

	t["AREA"] = int(ConstrainArea)
	t["SQUARE"] = int(ConstrainSquare)
	t["WIDTH"] = int(ConstrainWidth)
	t["HEIGHT"] = int(ConstrainHeight)
	t["COLS"] = int(ConstrainColumns)

	t["HORIZONTAL"] = int(Horizontal)
	t["VERTICAL"] = int(Vertical)

	t["PORTRAIT"] = int(Portrait)
	t["LANDSCAPE"] = int(Landscape)

	t["BASE_TOP_LEFT"] = int(TopLeftInsideCorner)
	t["BASE_TOP"] = int(TopInside)
	t["BASE_TOP_RIGHT"] = int(TopRightInsideCorner)
	t["BASE_LEFT"] = int(LeftInside)
	t["BASE_CENTER"] = int(CenterCenter)
	t["BASE_RIGHT"] = int(RightInside)
	t["BASE_BOTTOM_LEFT"] = int(BottomLeftInsideCorner)
	t["BASE_BOTTOM"] = int(BottomInside)
	t["BASE_BOTTOM_RIGHT"] = int(BottomRightInsideCorner)

	// Outside-zone rect names appear in formatted page pointer lines, so
	// the reverse lookup must resolve them too.
	for rp := TopLeftOutsideCorner; rp < NumSpots; rp++ {
		name := rectPlacementNames[rp]
		if _, dup := t[name]; !dup {
			t[name] = int(rp)
		}
	}

	return t
}

// TokenCode resolves a directive keyword to its enum code. The boolean is
// false when the keyword is not part of the placement vocabulary.
func TokenCode(keyword string) (int, bool) {
	c, ok := tokenCodes[keyword]
	return c, ok
}
