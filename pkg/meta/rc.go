package meta

// Rc is the result of parsing one directive line. Most successful parses
// return OkRc; action codes tell the caller a structural event occurred
// (step boundary, callout begin, buffer exchange) that plain configuration
// updates do not.
type Rc int

const (
	// OkRc accepts a line without requiring caller action. Lines that are
	// not directives at all also return OkRc so unknown vocabularies pass
	// through untouched.
	OkRc Rc = iota

	// FailureRc marks a recognized keyword with a malformed payload.
	FailureRc

	// RangeErrorRc marks a numeric payload that parsed cleanly but falls
	// outside the leaf's configured bounds.
	RangeErrorRc

	StepRc
	ClearRc
	RotStepRc
	BufferStoreRc
	BufferLoadRc

	StepGroupBeginRc
	StepGroupDividerRc
	StepGroupEndRc

	CalloutBeginRc
	CalloutDividerRc
	CalloutEndRc

	CalloutPointerRc
	PagePointerRc
	DividerPointerRc
	IllustrationPointerRc

	InsertRc
	InsertPageRc
	InsertCoverPageRc
	InsertFinalModelRc

	PliBeginIgnRc
	PliBeginSub1Rc
	PliBeginSub2Rc
	PliBeginSub3Rc
	PliBeginSub4Rc
	PliBeginSub5Rc
	PliBeginSub6Rc
	PliBeginSub7Rc
	PliBeginSub8Rc
	PliEndRc

	BomBeginIgnRc
	BomEndRc
	OneToOneEndRc
	RightWrongEndRc

	PartBeginIgnRc
	PartEndRc

	RemoveGroupRc
	RemovePartRc
	RemoveNameRc

	ReserveSpaceRc
	PageSizeRc
	PageOrientationRc
	ResolutionRc
	IncludeRc
	NoStepRc

	MLCadSkipBeginRc
	MLCadSkipEndRc
	MLCadGroupRc

	SynthBeginRc
	SynthEndRc
)

var rcNames = map[Rc]string{
	OkRc:                  "Ok",
	FailureRc:             "Failure",
	RangeErrorRc:          "RangeError",
	StepRc:                "Step",
	ClearRc:               "Clear",
	RotStepRc:             "RotStep",
	BufferStoreRc:         "BufferStore",
	BufferLoadRc:          "BufferLoad",
	StepGroupBeginRc:      "StepGroupBegin",
	StepGroupDividerRc:    "StepGroupDivider",
	StepGroupEndRc:        "StepGroupEnd",
	CalloutBeginRc:        "CalloutBegin",
	CalloutDividerRc:      "CalloutDivider",
	CalloutEndRc:          "CalloutEnd",
	CalloutPointerRc:      "CalloutPointer",
	PagePointerRc:         "PagePointer",
	DividerPointerRc:      "DividerPointer",
	IllustrationPointerRc: "IllustrationPointer",
	InsertRc:              "Insert",
	InsertPageRc:          "InsertPage",
	InsertCoverPageRc:     "InsertCoverPage",
	InsertFinalModelRc:    "InsertFinalModel",
	PliBeginIgnRc:         "PliBeginIgn",
	PliBeginSub1Rc:        "PliBeginSub1",
	PliBeginSub2Rc:        "PliBeginSub2",
	PliBeginSub3Rc:        "PliBeginSub3",
	PliBeginSub4Rc:        "PliBeginSub4",
	PliBeginSub5Rc:        "PliBeginSub5",
	PliBeginSub6Rc:        "PliBeginSub6",
	PliBeginSub7Rc:        "PliBeginSub7",
	PliBeginSub8Rc:        "PliBeginSub8",
	PliEndRc:              "PliEnd",
	BomBeginIgnRc:         "BomBeginIgn",
	BomEndRc:              "BomEnd",
	OneToOneEndRc:         "OneToOneEnd",
	RightWrongEndRc:       "RightWrongEnd",
	PartBeginIgnRc:        "PartBeginIgn",
	PartEndRc:             "PartEnd",
	RemoveGroupRc:         "RemoveGroup",
	RemovePartRc:          "RemovePart",
	RemoveNameRc:          "RemoveName",
	ReserveSpaceRc:        "ReserveSpace",
	PageSizeRc:            "PageSize",
	PageOrientationRc:     "PageOrientation",
	ResolutionRc:          "Resolution",
	IncludeRc:             "Include",
	NoStepRc:              "NoStep",
	MLCadSkipBeginRc:      "MLCadSkipBegin",
	MLCadSkipEndRc:        "MLCadSkipEnd",
	MLCadGroupRc:          "MLCadGroup",
	SynthBeginRc:          "SynthBegin",
	SynthEndRc:            "SynthEnd",
}

func (rc Rc) String() string {
	if s, ok := rcNames[rc]; ok {
		return s
	}
	return "Unknown"
}

// Failed reports whether rc is one of the two failure codes.
func (rc Rc) Failed() bool {
	return rc == FailureRc || rc == RangeErrorRc
}
