package pli

import (
	"context"
	"strings"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/catalog"
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/parts"
	"github.com/trevorsandy/lpub3dNext/pkg/render"
)

func testLibrary() parts.StaticLibrary {
	return parts.StaticLibrary{
		"3001.dat":  "Brick 2 x 4",
		"3020.dat":  "Plate 2 x 4",
		"3622.dat":  "Brick 1 x 3",
		"3704.dat":  "Technic Axle 2 Notched",
		"32062.dat": "Technic Axle 2 Notched",
	}
}

// newTestPli builds a per-step list with a fresh directive tree and the
// native renderer writing into a temp dir.
func newTestPli(t *testing.T, bom bool) *Pli {
	t.Helper()
	m := meta.New()
	pm := &m.LPub.Pli
	if bom {
		pm = &m.LPub.Bom.PliMeta
	}
	return New(pm, Options{
		Library:   testLibrary(),
		Catalog:   catalog.New(),
		Renderer:  render.Native{},
		ImageDir:  t.TempDir(),
		PageWidth: 816,
	})
}

func entry(line string, lineNo int) Entry {
	return Entry{Line: line, Here: ldraw.Where{ModelName: "main.ldr", LineNumber: lineNo}}
}

func TestSetPartsAggregates(t *testing.T) {
	p := newTestPli(t, false)
	err := p.SetParts(context.Background(), []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
		entry("1 4 10 0 0 1 0 0 0 1 0 0 0 1 3001.DAT", 2),
		entry("1 14 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 3),
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3020.dat", 4),
	}, nil, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(p.Parts))
	}
	part, ok := p.Parts["3001_4"]
	if !ok {
		t.Fatal("missing key 3001_4")
	}
	if len(part.Instances) != 2 {
		t.Errorf("instances = %d, want 2", len(part.Instances))
	}
	if part.Description != "Brick 2 x 4" {
		t.Errorf("description = %q", part.Description)
	}
	if got := p.Parts["3001_14"]; got == nil || len(got.Instances) != 1 {
		t.Errorf("colour 14 did not aggregate separately")
	}
}

func TestSetPartsVariantsStayApart(t *testing.T) {
	p := newTestPli(t, false)
	entries := []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
		{Line: "1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat",
			Here: ldraw.Where{ModelName: "main.ldr", LineNumber: 2}, Variant: VariantFade},
	}
	if err := p.SetParts(context.Background(), entries, nil, false, false); err != nil {
		t.Fatal(err)
	}
	if len(p.Parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(p.Parts))
	}
	faded := p.Parts["3001_4;fade"]
	if faded == nil {
		t.Fatal("missing faded entry")
	}
	if !strings.HasSuffix(faded.NameKey, "_fade") {
		t.Errorf("faded name key %q lacks variant suffix", faded.NameKey)
	}
}

func TestSetPartsSkipsMalformedLines(t *testing.T) {
	p := newTestPli(t, false)
	entries := []Entry{
		entry("0 WRITE not a part", 1),
		entry("1 4 0 0 0 3001.dat", 2),
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 3),
	}
	if err := p.SetParts(context.Background(), entries, nil, false, false); err != nil {
		t.Fatal(err)
	}
	if len(p.Parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(p.Parts))
	}
}

func TestNameKeyFields(t *testing.T) {
	p := newTestPli(t, false)
	if err := p.SetParts(context.Background(), []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
	}, nil, false, false); err != nil {
		t.Fatal(err)
	}
	part := p.Parts["3001_4"]
	fields := strings.Split(part.NameKey, "_")
	if len(fields) != 9 {
		t.Fatalf("name key %q has %d fields, want 9", part.NameKey, len(fields))
	}
	want := []string{"3001", "4", "816", "150", "DPI", "1", "0.01", "23", "-45"}
	for i, w := range want {
		if fields[i] != w {
			t.Errorf("field %d = %q, want %q", i, fields[i], w)
		}
	}
}

func TestSetPartsSubstitutes(t *testing.T) {
	base := "1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat"

	tests := []struct {
		name      string
		sub       meta.SubData
		wantScale float32
		wantFoV   float32
		suffix    string
	}{
		{
			name:      "scale only",
			sub:       meta.SubData{Type: meta.PliBeginSub3Rc, ModelScale: 2, CameraFoV: 25},
			wantScale: 2,
			wantFoV:   0.01,
		},
		{
			name:      "scale and fov",
			sub:       meta.SubData{Type: meta.PliBeginSub4Rc, ModelScale: 2, CameraFoV: 25},
			wantScale: 2,
			wantFoV:   25,
		},
		{
			name: "target suffix",
			sub: meta.SubData{Type: meta.PliBeginSub6Rc, ModelScale: 2, CameraFoV: 25,
				Target: [3]float32{1, 2, 3}},
			wantScale: 2,
			wantFoV:   25,
			suffix:    "_1_2_3",
		},
		{
			name: "rotation suffix",
			sub: meta.SubData{Type: meta.PliBeginSub7Rc, ModelScale: 2, CameraFoV: 25,
				Target: [3]float32{1, 2, 3}, Rotation: [3]float32{0, 90, 0}, Transform: "REL"},
			wantScale: 2,
			wantFoV:   25,
			suffix:    "_0_90_0_REL",
		},
		{
			name: "combined suffix",
			sub: meta.SubData{Type: meta.PliBeginSub8Rc, ModelScale: 2, CameraFoV: 25,
				Target: [3]float32{1, 2, 3}, Rotation: [3]float32{0, 90, 0}, Transform: "ABS"},
			wantScale: 2,
			wantFoV:   25,
			suffix:    "_1_2_3_0_90_0_ABS",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPli(t, false)
			sub := tt.sub
			err := p.SetParts(context.Background(), []Entry{
				{Line: base, Here: ldraw.Where{ModelName: "main.ldr", LineNumber: 1}, Sub: &sub},
			}, nil, false, false)
			if err != nil {
				t.Fatal(err)
			}
			part := p.Parts["3001_4"]
			if part.ModelScale != tt.wantScale {
				t.Errorf("scale = %v, want %v", part.ModelScale, tt.wantScale)
			}
			if part.CameraFoV != tt.wantFoV {
				t.Errorf("fov = %v, want %v", part.CameraFoV, tt.wantFoV)
			}
			if tt.suffix != "" && !strings.HasSuffix(part.NameKey, tt.suffix) {
				t.Errorf("name key %q lacks suffix %q", part.NameKey, tt.suffix)
			}
		})
	}
}

func TestPartClass(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Brick 2 x 4", "Brick"},
		{"Plate 2 x 4", "Plate"},
		{"Technic Axle 5", "TechnicAxle"},
		{"Technic Beam 1 x 5 Thick", "TechnicBeam"},
		{"", "NoCat"},
		{"~Moved to 3001", "NoCat"},
	}
	for _, tt := range tests {
		if got := PartClass(tt.description); got != tt.want {
			t.Errorf("PartClass(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}

func TestSplitBomWindows(t *testing.T) {
	lines := []string{
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p0.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p1.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p2.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p3.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p4.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p5.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p6.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p7.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p8.dat",
		"1 4 0 0 0 1 0 0 0 1 0 0 0 1 p9.dat",
	}
	var entries []Entry
	for i, l := range lines {
		entries = append(entries, entry(l, i+1))
	}

	// Ten parts over three lists: 3, 3 and the last takes the rest.
	wantSizes := []int{3, 3, 4}
	seen := map[string]int{}
	for occurrence := 1; occurrence <= 3; occurrence++ {
		p := newTestPli(t, true)
		p.BomOccurrence = occurrence
		p.BomCount = 3
		if err := p.SetParts(context.Background(), entries, nil, true, true); err != nil {
			t.Fatal(err)
		}
		if len(p.Parts) != wantSizes[occurrence-1] {
			t.Errorf("occurrence %d: got %d parts, want %d",
				occurrence, len(p.Parts), wantSizes[occurrence-1])
		}
		for key := range p.Parts {
			seen[key]++
		}
	}
	if len(seen) != len(lines) {
		t.Fatalf("windows cover %d distinct parts, want %d", len(seen), len(lines))
	}
	for key, n := range seen {
		if n != 1 {
			t.Errorf("part %s appears in %d windows", key, n)
		}
	}
}

func TestAnnotationCascade(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(ann *meta.PliAnnotationMeta)
		partType    string
		color       string
		description string
		styled      bool
		want        string
	}{
		{
			name:  "display off",
			setup: func(ann *meta.PliAnnotationMeta) { ann.Display.SetValue(false) },
			want:  "",
		},
		{
			name: "title match",
			setup: func(ann *meta.PliAnnotationMeta) {
				ann.Display.SetValue(true)
				ann.TitleAnnotation.SetValue(true)
			},
			partType:    "3704.dat",
			description: "Technic Axle 2 Notched",
			want:        "2",
		},
		{
			name: "title only no match",
			setup: func(ann *meta.PliAnnotationMeta) {
				ann.Display.SetValue(true)
				ann.TitleAnnotation.SetValue(true)
				ann.TitleAndFreeformAnnotation.SetValue(false)
			},
			partType:    "3001.dat",
			color:       "1",
			description: "Brick 2 x 4",
			want:        "",
		},
		{
			name: "freeform colour fallback",
			setup: func(ann *meta.PliAnnotationMeta) {
				ann.Display.SetValue(true)
				ann.FreeformAnnotation.SetValue(true)
			},
			partType:    "3001.dat",
			color:       "1",
			description: "Brick 2 x 4",
			want:        "B",
		},
		{
			name: "styled falls through to freeform",
			setup: func(ann *meta.PliAnnotationMeta) {
				ann.Display.SetValue(true)
			},
			partType:    "3001.dat",
			color:       "14",
			description: "Brick 2 x 4",
			styled:      true,
			want:        "Y",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPli(t, false)
			tt.setup(&p.Meta.Annotation)
			got := p.annotation(tt.partType, tt.color, tt.description, tt.styled)
			if got != tt.want {
				t.Errorf("annotation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBadgeStyleFixedAnnotations(t *testing.T) {
	p := newTestPli(t, true)
	ann := &p.Meta.Annotation
	ann.Display.SetValue(true)
	ann.EnableStyle.SetValue(true)
	ann.FixedAnnotations.SetValue(true)
	ann.AxleStyle.SetValue(true)

	style := p.badgeStyle("3704.dat")
	if style.badge != meta.BadgeCircle {
		t.Errorf("axle badge = %v, want circle", style.badge)
	}

	// Category toggle off drops back to extended or plain.
	ann.AxleStyle.SetValue(false)
	ann.ExtendedStyle.SetValue(false)
	style = p.badgeStyle("3704.dat")
	if style.badge != meta.BadgeNone {
		t.Errorf("disabled axle badge = %v, want none", style.badge)
	}

	// Parts without a fixed style get the rectangle when extended
	// styles are on.
	ann.ExtendedStyle.SetValue(true)
	style = p.badgeStyle("3001.dat")
	if style.badge != meta.BadgeRectangle {
		t.Errorf("extended badge = %v, want rectangle", style.badge)
	}
}
