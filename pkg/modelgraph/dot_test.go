package modelgraph

import (
	"strings"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

const structureMPD = `0 FILE castle.mpd
0 Castle
1 4 0 0 0 1 0 0 0 1 0 0 0 1 wall.ldr
1 4 80 0 0 1 0 0 0 1 0 0 0 1 wall.ldr
1 14 40 -24 0 1 0 0 0 1 0 0 0 1 tower.ldr
0 FILE wall.ldr
0 Wall
1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat
1 4 40 0 0 1 0 0 0 1 0 0 0 1 3001.dat
0 FILE tower.ldr
0 Tower
1 14 0 0 0 1 0 0 0 1 0 0 0 1 3005.dat
`

func parseFixture(t *testing.T) *ldraw.Model {
	t.Helper()
	m, err := ldraw.Parse(strings.NewReader(structureMPD), "castle.mpd")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func TestToDOT_Basic(t *testing.T) {
	m := parseFixture(t)
	dot := ToDOT(m, Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB",
		`"castle.mpd"`,
		`"wall.ldr"`,
		`"tower.ldr"`,
		`"castle.mpd" -> "wall.ldr" [label="2x"]`,
		`"castle.mpd" -> "tower.ldr";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "3001.dat") {
		t.Errorf("DOT should not include parts by default:\n%s", dot)
	}
}

func TestToDOT_TopHighlighted(t *testing.T) {
	m := parseFixture(t)
	dot := ToDOT(m, Options{})

	var topLine string
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, `"castle.mpd" [`) {
			topLine = line
			break
		}
	}
	if topLine == "" {
		t.Fatalf("no node line for top submodel:\n%s", dot)
	}
	if !strings.Contains(topLine, "fillcolor=lightyellow") {
		t.Errorf("top node not highlighted: %s", topLine)
	}
	if strings.Contains(dot, `"wall.ldr" [label="wall.ldr", fillcolor`) {
		t.Errorf("non-top node highlighted:\n%s", dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	m := parseFixture(t)
	dot := ToDOT(m, Options{Detailed: true})

	for _, want := range []string{
		`lines: 4\nparts: 3`,
		`lines: 3\nparts: 2`,
		`lines: 2\nparts: 1`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_Parts(t *testing.T) {
	m := parseFixture(t)
	dot := ToDOT(m, Options{Parts: true})

	for _, want := range []string{
		`"3001.dat"`,
		`"wall.ldr" -> "3001.dat" [label="2x", style=dashed]`,
		`"tower.ldr" -> "3005.dat" [label="1x", style=dashed]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="134pt" height="116pt" viewBox="0.00 0.00 134.00 116.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 134.00 116.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="134" height="116"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
	if strings.Contains(out, "134pt") {
		t.Errorf("original svg tag survived: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg></svg>")
	if got := string(normalizeViewBox(in)); got != "<svg></svg>" {
		t.Errorf("expected passthrough, got %s", got)
	}
}
