package meta

import (
	"strings"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

func TestParseUnknownLinesPassThrough(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"part line", "1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat"},
		{"comment", "0 // just a note"},
		{"unknown root keyword", "0 GHOST 3005.dat"},
		{"empty", ""},
		{"bare zero", "0"},
	}
	m := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rc := m.Parse(tt.line, ldraw.Where{}, false); rc != OkRc {
				t.Errorf("Parse(%q) = %v, want Ok", tt.line, rc)
			}
		})
	}
}

// Formatted directives must parse back into a fresh tree with the same
// value, so a document rewrite never drifts.
func TestLeafFormatParseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		check func(t *testing.T, m *Meta)
	}{
		{
			name: "model scale",
			line: "0 !LPUB PLI MODEL_SCALE 0.75",
			check: func(t *testing.T, m *Meta) {
				if v := m.LPub.Pli.ModelScale.Value(); v != 0.75 {
					t.Errorf("ModelScale = %v, want 0.75", v)
				}
			},
		},
		{
			name: "show flag",
			line: "0 !LPUB PLI SHOW FALSE",
			check: func(t *testing.T, m *Meta) {
				if m.LPub.Pli.Show.Value() {
					t.Error("Show = true, want false")
				}
			},
		},
		{
			name: "constrain width",
			line: "0 !LPUB PLI CONSTRAIN WIDTH 400",
			check: func(t *testing.T, m *Meta) {
				v := m.LPub.Pli.Constrain.Value()
				if v.Type != ConstrainWidth || v.Constraint != 400 {
					t.Errorf("Constrain = %+v, want width 400", v)
				}
			},
		},
		{
			name: "constrain area",
			line: "0 !LPUB BOM CONSTRAIN AREA",
			check: func(t *testing.T, m *Meta) {
				if v := m.LPub.Bom.Constrain.Value(); v.Type != ConstrainArea {
					t.Errorf("Constrain type = %v, want area", v.Type)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := New()
			if rc := src.Parse(tt.line, ldraw.Where{}, false); rc.Failed() {
				t.Fatalf("Parse(%q) = %v", tt.line, rc)
			}
			tt.check(t, src)

			var formatted string
			switch {
			case strings.Contains(tt.line, "MODEL_SCALE"):
				formatted = src.LPub.Pli.ModelScale.Format(false, false)
			case strings.Contains(tt.line, "SHOW"):
				formatted = src.LPub.Pli.Show.Format(false, false)
			case strings.Contains(tt.line, "BOM"):
				formatted = src.LPub.Bom.Constrain.Format(false, false)
			default:
				formatted = src.LPub.Pli.Constrain.Format(false, false)
			}

			dst := New()
			if rc := dst.Parse(formatted, ldraw.Where{}, false); rc.Failed() {
				t.Fatalf("re-Parse(%q) = %v", formatted, rc)
			}
			tt.check(t, dst)
		})
	}
}

func TestBorderParse(t *testing.T) {
	m := New()
	line := `0 !LPUB PLI BORDER SQUARE 1 "Black" 0.125 MARGINS 0.1 0.1`
	if rc := m.Parse(line, ldraw.Where{}, false); rc.Failed() {
		t.Fatalf("Parse(%q) = %v", line, rc)
	}
	v := m.LPub.Pli.Border.Value()
	if v.Type != BdrSquare || v.Line != 1 || v.Color != "Black" {
		t.Errorf("border = %+v, want square line 1 Black", v)
	}
	if v.Thickness != 0.125 {
		t.Errorf("thickness = %v, want 0.125", v.Thickness)
	}
	if v.Margin != [2]float32{0.1, 0.1} {
		t.Errorf("margins = %v, want [0.1 0.1]", v.Margin)
	}

	// Formatted text parses back to the same value.
	formatted := m.LPub.Pli.Border.Format(false, false)
	dst := New()
	if rc := dst.Parse(formatted, ldraw.Where{}, false); rc.Failed() {
		t.Fatalf("re-Parse(%q) = %v", formatted, rc)
	}
	if got := dst.LPub.Pli.Border.Value(); got != v {
		t.Errorf("round trip drifted: %+v != %+v", got, v)
	}
}

// A malformed border line must leave the stored value exactly as it
// was, even when the failure is in the trailing margins clause.
func TestBorderParseMalformedLeavesValue(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bad thickness", `0 !LPUB PLI BORDER SQUARE 1 "Black" thick MARGINS 0.1 0.1`},
		{"bad margins", `0 !LPUB PLI BORDER SQUARE 1 "Black" 0.125 MARGINS x y`},
		{"wrong tail keyword", `0 !LPUB PLI BORDER SQUARE 1 "Black" 0.125 PADDING 0.1 0.1`},
		{"truncated round", `0 !LPUB PLI BORDER ROUND 1 "Black" 0.125`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			good := `0 !LPUB PLI BORDER ROUND 2 "Blue" 0.25 15 MARGINS 0.2 0.3`
			if rc := m.Parse(good, ldraw.Where{}, false); rc.Failed() {
				t.Fatalf("seed Parse = %v", rc)
			}
			want := m.LPub.Pli.Border.Value()

			if rc := m.Parse(tt.line, ldraw.Where{}, false); rc != FailureRc {
				t.Fatalf("Parse(%q) = %v, want Failure", tt.line, rc)
			}
			if got := m.LPub.Pli.Border.Value(); got != want {
				t.Errorf("failed parse changed value: %+v != %+v", got, want)
			}
		})
	}
}

func TestNumericBounds(t *testing.T) {
	m := New()
	if rc := m.Parse("0 !LPUB PLI MODEL_SCALE 20000", ldraw.Where{}, false); rc != RangeErrorRc {
		t.Fatalf("out-of-range scale: rc = %v, want RangeError", rc)
	}
	if v := m.LPub.Pli.ModelScale.Value(); v != 1.0 {
		t.Errorf("rejected value leaked in: ModelScale = %v, want 1", v)
	}
	if rc := m.Parse("0 !LPUB PLI MODEL_SCALE -10000", ldraw.Where{}, false); rc.Failed() {
		t.Errorf("boundary value rejected: rc = %v", rc)
	}
}

// LOCAL assignments live in their own slot and Pop restores the
// document-wide value across the whole tree.
func TestScopeStacking(t *testing.T) {
	m := New()
	here := ldraw.Where{ModelName: "a.ldr", LineNumber: 3}

	if rc := m.Parse("0 !LPUB PLI MODEL_SCALE LOCAL 2", here, false); rc.Failed() {
		t.Fatalf("local assignment failed: %v", rc)
	}
	if v := m.LPub.Pli.ModelScale.Value(); v != 2 {
		t.Fatalf("local ModelScale = %v, want 2", v)
	}
	if !m.LPub.Pli.ModelScale.Pushed() {
		t.Error("leaf not marked pushed after LOCAL")
	}

	m.Pop()
	if v := m.LPub.Pli.ModelScale.Value(); v != 1 {
		t.Errorf("ModelScale after Pop = %v, want factory 1", v)
	}

	if rc := m.Parse("0 !LPUB PLI MODEL_SCALE GLOBAL 3", here, false); rc.Failed() {
		t.Fatalf("global assignment failed: %v", rc)
	}
	if !m.LPub.Pli.ModelScale.Global() {
		t.Error("leaf not marked global after GLOBAL")
	}
	if v := m.LPub.Pli.ModelScale.Value(); v != 3 {
		t.Errorf("global ModelScale = %v, want 3", v)
	}
}

func TestLegacyAliases(t *testing.T) {
	t.Run("LPUB routes as !LPUB", func(t *testing.T) {
		m := New()
		if rc := m.Parse("0 LPUB PLI SHOW FALSE", ldraw.Where{}, false); rc.Failed() {
			t.Fatalf("rc = %v", rc)
		}
		if m.LPub.Pli.Show.Value() {
			t.Error("Show = true, want false")
		}
	})
	t.Run("PLIST routes into PLI", func(t *testing.T) {
		m := New()
		if rc := m.Parse("0 PLIST CONSTRAIN SQUARE", ldraw.Where{}, false); rc.Failed() {
			t.Fatalf("rc = %v", rc)
		}
		if v := m.LPub.Pli.Constrain.Value(); v.Type != ConstrainSquare {
			t.Errorf("Constrain type = %v, want square", v.Type)
		}
	})
	t.Run("MLCAD BTG keeps group name", func(t *testing.T) {
		m := New()
		rc := m.Parse("0 MLCAD BTG left tower wall", ldraw.Where{}, false)
		if rc != MLCadGroupRc {
			t.Fatalf("rc = %v, want MLCadGroup", rc)
		}
	})
}

func TestParseReportsDiagnostic(t *testing.T) {
	var got []string
	prev := SetDiagnostic(func(format string, args ...any) {
		got = append(got, format)
	})
	defer SetDiagnostic(prev)

	m := New()
	here := ldraw.Where{ModelName: "bad.ldr", LineNumber: 7}
	if rc := m.Parse("0 !LPUB PLI MODEL_SCALE banana", here, true); rc != FailureRc {
		t.Fatalf("rc = %v, want Failure", rc)
	}
	if len(got) != 1 {
		t.Fatalf("diagnostic called %d times, want 1", len(got))
	}

	got = nil
	if rc := m.Parse("0 !LPUB PLI MODEL_SCALE banana", here, false); rc != FailureRc {
		t.Fatalf("rc = %v, want Failure", rc)
	}
	if len(got) != 0 {
		t.Error("diagnostic fired with reporting off")
	}
}

func TestDoc(t *testing.T) {
	lines := New().Doc(nil)
	if len(lines) == 0 {
		t.Fatal("Doc returned nothing")
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "0 ") {
			t.Fatalf("grammar line %q missing directive prefix", line)
		}
	}
	// Root keywords come out in sorted order, !LPUB first.
	if !strings.HasPrefix(lines[0], "0 !LPUB ") {
		t.Errorf("first grammar line %q, want an !LPUB directive", lines[0])
	}
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, "0 SYNTH") {
		t.Errorf("last grammar line %q, want a SYNTH directive", last)
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"0 STEP", "CONSTRAIN", "MODEL_SCALE", "SORT_ORDER"} {
		if !strings.Contains(joined, want) {
			t.Errorf("grammar missing %q", want)
		}
	}
}

func TestRcString(t *testing.T) {
	tests := []struct {
		rc   Rc
		want string
	}{
		{OkRc, "Ok"},
		{FailureRc, "Failure"},
		{RangeErrorRc, "RangeError"},
		{StepRc, "Step"},
		{Rc(9999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.rc.String(); got != tt.want {
			t.Errorf("Rc(%d).String() = %q, want %q", tt.rc, got, tt.want)
		}
	}
}
