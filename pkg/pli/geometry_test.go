package pli

import (
	"context"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/catalog"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
	"github.com/trevorsandy/lpub3dNext/pkg/render"
)

func TestScanEdges(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	opaque := color.NRGBA{0, 0, 0, 255}
	// Row 0 stays transparent, row 1 covers x 2..3, row 2 covers x 0.
	img.SetNRGBA(2, 1, opaque)
	img.SetNRGBA(3, 1, opaque)
	img.SetNRGBA(0, 2, opaque)

	var left, right []int
	scanEdges(img, &left, &right)

	wantLeft := []int{4, 2, 0}
	wantRight := []int{0, 3, 0}
	for i := range wantLeft {
		if left[i] != wantLeft[i] {
			t.Errorf("left[%d] = %d, want %d", i, left[i], wantLeft[i])
		}
		if right[i] != wantRight[i] {
			t.Errorf("right[%d] = %d, want %d", i, right[i], wantRight[i])
		}
	}
}

func TestSizePliEndToEnd(t *testing.T) {
	p := newTestPli(t, false)
	entries := []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
		entry("1 4 10 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 2),
		entry("1 14 0 0 0 1 0 0 0 1 0 0 0 1 3020.dat", 3),
	}
	if err := p.SetParts(context.Background(), entries, nil, false, false); err != nil {
		t.Fatal(err)
	}
	if err := p.SizePli(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(p.SortedKeys) != 2 {
		t.Fatalf("sorted keys = %v, want 2 entries", p.SortedKeys)
	}
	if p.Size[0] <= 0 || p.Size[1] <= 0 {
		t.Errorf("empty extent %v", p.Size)
	}
	if p.Cols < 1 {
		t.Errorf("cols = %d", p.Cols)
	}

	for key, part := range p.Parts {
		if _, err := os.Stat(part.ImageName); err != nil {
			t.Errorf("part %s image missing: %v", key, err)
		}
		if part.Height != len(part.LeftEdge) || part.Height != len(part.RightEdge) {
			t.Errorf("part %s edge lengths %d/%d do not match height %d",
				key, len(part.LeftEdge), len(part.RightEdge), part.Height)
		}
		if part.Width < part.PixmapWidth {
			t.Errorf("part %s width %d below image width %d",
				key, part.Width, part.PixmapWidth)
		}
		if part.TextWidth <= 0 || part.TextHeight <= 0 {
			t.Errorf("part %s has no instance text extent", key)
		}
		if !part.Placed {
			t.Errorf("part %s unplaced after sizing", key)
		}
	}
}

// failRenderer proves the image cache short-circuits rendering.
type failRenderer struct{}

func (failRenderer) Name() string { return "fail" }

func (failRenderer) RenderPart(context.Context, render.PartSpec, string) error {
	return os.ErrPermission
}

func TestSizePliReusesCachedImages(t *testing.T) {
	p := newTestPli(t, false)
	entries := []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
	}
	if err := p.SetParts(context.Background(), entries, nil, false, false); err != nil {
		t.Fatal(err)
	}
	if err := p.SizePli(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Second pass with a renderer that always fails: the cached image
	// must carry it.
	p.opts.Renderer = failRenderer{}
	if err := p.SizePli(context.Background()); err != nil {
		t.Fatalf("cached image not reused: %v", err)
	}
}

func TestSizePliRenderFallback(t *testing.T) {
	p := newTestPli(t, false)
	p.opts.Renderer = failRenderer{}
	entries := []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
	}
	if err := p.SetParts(context.Background(), entries, nil, false, false); err != nil {
		t.Fatal(err)
	}
	if err := p.SizePli(context.Background()); err != nil {
		t.Fatalf("fallback did not carry the failure: %v", err)
	}
	if len(p.Errs) == 0 {
		t.Error("render failure not reported in Errs")
	}
	part := p.Parts["3001_4"]
	if part == nil || part.Width == 0 {
		t.Error("placeholder image not sized")
	}
}

func TestBuildLayout(t *testing.T) {
	p := newTestPli(t, false)
	entries := []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
		entry("1 4 10 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 2),
		entry("1 14 0 0 0 1 0 0 0 1 0 0 0 1 3020.dat", 3),
	}
	if err := p.SetParts(context.Background(), entries, nil, false, false); err != nil {
		t.Fatal(err)
	}
	if err := p.SizePli(context.Background()); err != nil {
		t.Fatal(err)
	}

	layout := p.BuildLayout()
	if layout.Width != p.Size[0] || layout.Height != p.Size[1] {
		t.Errorf("layout extent %dx%d, want %dx%d",
			layout.Width, layout.Height, p.Size[0], p.Size[1])
	}
	if len(layout.Parts) != 2 {
		t.Fatalf("layout has %d parts, want 2", len(layout.Parts))
	}

	for _, placed := range layout.Parts {
		if placed.Image.Width <= 0 || placed.Image.Height <= 0 {
			t.Errorf("part %s has empty image rect", placed.Type)
		}
		if placed.Image.X < 0 || placed.Image.X+placed.Image.Width > layout.Width {
			t.Errorf("part %s image x %d outside extent", placed.Type, placed.Image.X)
		}
		if placed.Instance.Text == "" {
			t.Errorf("part %s missing instance text", placed.Type)
		}
		if placed.Type == "3001.dat" && placed.Instance.Text != "2x" {
			t.Errorf("instance text = %q, want 2x", placed.Instance.Text)
		}
	}
}

func TestBuildLayoutGroupOffset(t *testing.T) {
	p := newTestPli(t, false)
	p.Meta.EnableGroups.SetValue(true)
	entries := []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
	}
	groups := []PartGroup{{Key: "3001_4", Offset: [2]float32{1, 0}}}
	if err := p.SetParts(context.Background(), entries, groups, false, false); err != nil {
		t.Fatal(err)
	}
	part := p.Parts["3001_4"]
	if part.GroupOffset != [2]float32{1, 0} {
		t.Fatalf("group offset = %v", part.GroupOffset)
	}
	if err := p.SizePli(context.Background()); err != nil {
		t.Fatal(err)
	}

	layout := p.BuildLayout()
	wantX := part.Left + int(meta.ToPixels(1, meta.DPI))
	if layout.Parts[0].Image.X != wantX {
		t.Errorf("offset image x = %d, want %d", layout.Parts[0].Image.X, wantX)
	}
}

func TestBomElementBadge(t *testing.T) {
	p := newTestPli(t, true)
	p.Meta.Annotation.Display.SetValue(true)
	p.Meta.PartElements.Display.SetValue(true)
	p.Meta.PartElements.LegoElements.SetValue(true)
	p.opts.Catalog.Elements.Set("3001", "4", "300126", catalog.FlavorLEGO)

	entries := []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", 1),
	}
	if err := p.SetParts(context.Background(), entries, nil, true, false); err != nil {
		t.Fatal(err)
	}
	part := p.Parts["3001_4"]
	if part.Element != "300126" {
		t.Fatalf("element = %q, want 300126", part.Element)
	}

	if err := p.SizePli(context.Background()); err != nil {
		t.Fatal(err)
	}
	if part.ElementWidth <= 0 || part.ElementHeight <= 0 {
		t.Error("element badge not sized")
	}

	layout := p.BuildLayout()
	if layout.Parts[0].Element == nil {
		t.Fatal("layout missing element badge")
	}
	if layout.Parts[0].Element.Text != "300126" {
		t.Errorf("element badge text = %q", layout.Parts[0].Element.Text)
	}
}
