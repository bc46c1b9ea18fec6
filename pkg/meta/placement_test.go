package meta

import (
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// Every zone must render to directive text that parses back to the same
// zone, so placements survive a document rewrite.
func TestPlacementFormatParse_AllZones(t *testing.T) {
	for zone := TopLeftOutsideCorner; zone < NumSpots; zone++ {
		src := New()
		src.LPub.Pli.Placement.SetValue(zone, PageType)
		line := src.LPub.Pli.Placement.Format(false, false)

		dst := New()
		if rc := dst.Parse(line, ldraw.Where{}, false); rc != OkRc {
			t.Errorf("%s: Parse(%q) = %v, want Ok", rectPlacementNames[zone], line, rc)
			continue
		}
		v := dst.LPub.Pli.Placement.Value()
		if v.RectPlacement != zone {
			t.Errorf("%s: round-tripped to %s via %q",
				rectPlacementNames[zone], rectPlacementNames[v.RectPlacement], line)
		}
		if v.RelativeTo != PageType {
			t.Errorf("%s: RelativeTo = %d, want PageType", rectPlacementNames[zone], v.RelativeTo)
		}
	}
}

func TestPlacementParse_InsideJustification(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		zone          RectPlacement
		justification PlacementEnc
		relativeTo    PlacementType
		offsets       [2]float32
	}{
		{
			"top left page inside with offsets",
			"0 !LPUB PLI PLACEMENT TOP LEFT PAGE INSIDE 0.1 0.2",
			TopInside, Left, PageType, [2]float32{0.1, 0.2},
		},
		{
			"right bottom assem inside",
			"0 !LPUB PLI PLACEMENT RIGHT BOTTOM ASSEM INSIDE",
			RightInside, Bottom, CsiType, [2]float32{},
		},
		{
			"inside center collapses to plain edge",
			"0 !LPUB PLI PLACEMENT LEFT CENTER PAGE INSIDE",
			LeftInside, Center, PageType, [2]float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			if rc := m.Parse(tt.line, ldraw.Where{}, false); rc != OkRc {
				t.Fatalf("Parse(%q) = %v, want Ok", tt.line, rc)
			}
			v := m.LPub.Pli.Placement.Value()
			if v.RectPlacement != tt.zone {
				t.Errorf("RectPlacement = %s, want %s",
					rectPlacementNames[v.RectPlacement], rectPlacementNames[tt.zone])
			}
			if v.Justification != tt.justification {
				t.Errorf("Justification = %d, want %d", v.Justification, tt.justification)
			}
			if v.RelativeTo != tt.relativeTo {
				t.Errorf("RelativeTo = %d, want %d", v.RelativeTo, tt.relativeTo)
			}
			if v.Preposition != Inside {
				t.Errorf("Preposition = %d, want Inside", v.Preposition)
			}
			if v.Offsets != tt.offsets {
				t.Errorf("Offsets = %v, want %v", v.Offsets, tt.offsets)
			}
		})
	}
}

func TestPlacementParse_OffsetOnly(t *testing.T) {
	m := New()
	before := m.LPub.Pli.Placement.Value()

	rc := m.Parse("0 !LPUB PLI PLACEMENT OFFSET 0.25 -0.1", ldraw.Where{}, false)
	if rc != OkRc {
		t.Fatalf("Parse() = %v, want Ok", rc)
	}
	v := m.LPub.Pli.Placement.Value()
	if v.RectPlacement != before.RectPlacement {
		t.Errorf("RectPlacement changed from %s to %s",
			rectPlacementNames[before.RectPlacement], rectPlacementNames[v.RectPlacement])
	}
	if v.Offsets != [2]float32{0.25, -0.1} {
		t.Errorf("Offsets = %v, want [0.25 -0.1]", v.Offsets)
	}
}

func TestPlacementParse_MalformedLeavesValue(t *testing.T) {
	m := New()
	before := m.LPub.Pli.Placement.Value()

	tests := []string{
		"0 !LPUB PLI PLACEMENT SIDEWAYS PAGE",
		"0 !LPUB PLI PLACEMENT BOTTOM PAGE OUTSIDE",
		"0 !LPUB PLI PLACEMENT OFFSET 0.25",
	}
	for _, line := range tests {
		if rc := m.Parse(line, ldraw.Where{}, false); rc != FailureRc {
			t.Errorf("Parse(%q) = %v, want Failure", line, rc)
		}
	}
	if got := m.LPub.Pli.Placement.Value(); got != before {
		t.Errorf("value changed by failed parses: %+v", got)
	}
}

func TestPlacementDefaults(t *testing.T) {
	m := New()

	if v := m.LPub.Pli.Placement.Value(); v.RectPlacement != RightTopOutside || v.RelativeTo != StepNumberType {
		t.Errorf("PLI default = %s relative %d, want RightTopOutside relative StepNumberType",
			rectPlacementNames[v.RectPlacement], v.RelativeTo)
	}
	if v := m.LPub.Bom.Placement.Value(); v.RectPlacement != CenterCenter || v.RelativeTo != PageType {
		t.Errorf("BOM default = %s relative %d, want BASE_CENTER relative PageType",
			rectPlacementNames[v.RectPlacement], v.RelativeTo)
	}
	if v := m.LPub.Assem.Placement.Value(); v.RectPlacement != CenterCenter || v.RelativeTo != PageType {
		t.Errorf("ASSEM default = %s relative %d, want BASE_CENTER relative PageType",
			rectPlacementNames[v.RectPlacement], v.RelativeTo)
	}
	if v := m.LPub.StepNumber.Placement.Value(); v.RectPlacement != BottomLeftOutside || v.RelativeTo != PageHeaderType {
		t.Errorf("STEP_NUMBER default = %s relative %d, want BottomLeftOutside relative PageHeaderType",
			rectPlacementNames[v.RectPlacement], v.RelativeTo)
	}
}

func TestTokenCode(t *testing.T) {
	if code, ok := TokenCode("BASE_CENTER"); !ok || code != int(CenterCenter) {
		t.Errorf("TokenCode(BASE_CENTER) = %d, %v", code, ok)
	}
	if code, ok := TokenCode("MULTI_STEP"); !ok || code != int(StepGroupType) {
		t.Errorf("TokenCode(MULTI_STEP) = %d, %v", code, ok)
	}
	if _, ok := TokenCode("NOT_A_KEYWORD"); ok {
		t.Error("TokenCode(NOT_A_KEYWORD) reported ok")
	}
}
