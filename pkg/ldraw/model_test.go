package ldraw

import (
	"strings"
	"testing"
)

const sampleMPD = `0 FILE pyramid.mpd
0 Name: pyramid.mpd
1 4 0 0 0 1 0 0 0 1 0 0 0 1 base.ldr
1 14 0 -24 0 1 0 0 0 1 0 0 0 1 3001.dat
0 STEP
1 4 0 -48 0 1 0 0 0 1 0 0 0 1 base.ldr
0 NOFILE
0 FILE base.ldr
1 4 0 0 0 1 0 0 0 1 0 0 0 1 3003.dat
1 4 20 0 0 1 0 0 0 1 0 0 0 1 3003.dat
0 NOFILE
`

func TestParseMPD(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleMPD), "pyramid.mpd")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Top != "pyramid.mpd" {
		t.Errorf("Top = %q, want %q", m.Top, "pyramid.mpd")
	}

	subs := m.Submodels()
	if len(subs) != 2 {
		t.Fatalf("Submodels() = %v, want 2 entries", subs)
	}

	if !m.IsSubmodel("BASE.LDR") {
		t.Error("IsSubmodel(BASE.LDR) = false, want true (case-insensitive)")
	}
	if m.IsSubmodel("3001.dat") {
		t.Error("IsSubmodel(3001.dat) = true, want false")
	}

	if got := len(m.Lines("base.ldr")); got != 2 {
		t.Errorf("len(Lines(base.ldr)) = %d, want 2", got)
	}
}

func TestParseSingleModel(t *testing.T) {
	src := "0 Name: tower.ldr\n1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat\n"
	m, err := Parse(strings.NewReader(src), "tower.ldr")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Top != "tower.ldr" {
		t.Errorf("Top = %q, want %q", m.Top, "tower.ldr")
	}
	if got := len(m.Lines("tower.ldr")); got != 2 {
		t.Errorf("len(Lines) = %d, want 2", got)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader(""), "empty.ldr"); err == nil {
		t.Error("Parse(empty) error = nil, want error")
	}
}

func TestReferences(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleMPD), "pyramid.mpd")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	refs := m.References("pyramid.mpd")
	if len(refs) != 1 || refs[0] != "base.ldr" {
		t.Errorf("References() = %v, want [base.ldr]", refs)
	}

	if refs := m.References("base.ldr"); len(refs) != 0 {
		t.Errorf("References(base.ldr) = %v, want none", refs)
	}
}

func TestLineAt(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleMPD), "pyramid.mpd")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := m.Line(Where{ModelName: "base.ldr", LineNumber: 0}); !strings.Contains(got, "3003.dat") {
		t.Errorf("Line() = %q, want a 3003.dat reference", got)
	}
	if got := m.Line(Where{ModelName: "base.ldr", LineNumber: 99}); got != "" {
		t.Errorf("Line(out of range) = %q, want empty", got)
	}
}
