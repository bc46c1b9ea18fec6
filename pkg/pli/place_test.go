package pli

import (
	"fmt"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/meta"
)

// rectPart fakes a fully opaque rectangular silhouette with no margins,
// so placement arithmetic reduces to the border values.
func rectPart(w, h int) *Part {
	p := &Part{Width: w, Height: h}
	for i := 0; i < h; i++ {
		p.LeftEdge = append(p.LeftEdge, 0)
		p.RightEdge = append(p.RightEdge, w)
	}
	p.setSortSize()
	return p
}

// placeFixture seeds a list with n equal rectangles keyed k0..k(n-1).
func placeFixture(t *testing.T, n, w, h int) (*Pli, []string) {
	t.Helper()
	p := newTestPli(t, false)
	var keys []string
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("k%d", i)
		p.Parts[key] = rectPart(w, h)
		keys = append(keys, key)
	}
	p.SortedKeys = keys
	return p, keys
}

func borderMargin(p *Pli, axis int) int {
	b := p.Meta.Border.ValuePixels()
	return int(b.Thickness + b.Margin[axis])
}

func TestPlacePliSingleParts(t *testing.T) {
	p, keys := placeFixture(t, 3, 50, 50)

	// yConstraint at one part height: no stacking, one column each.
	cols, pliWidth, pliHeight, ok := p.PlacePli(keys, unconstrained, 50, false, false)
	if !ok {
		t.Fatal("placement failed")
	}
	if cols != 3 {
		t.Errorf("cols = %d, want 3", cols)
	}
	for _, key := range keys {
		if !p.Parts[key].Placed {
			t.Errorf("part %s not placed", key)
		}
	}
	seen := map[int]bool{}
	for _, key := range keys {
		seen[p.Parts[key].Col] = true
	}
	if len(seen) != 3 {
		t.Errorf("parts share columns: %v", seen)
	}

	wantWidth := 3*50 + 2*borderMargin(p, 0)
	if pliWidth != wantWidth {
		t.Errorf("width = %d, want %d", pliWidth, wantWidth)
	}
	if wantHeight := 50 + 2*borderMargin(p, 1); pliHeight != wantHeight {
		t.Errorf("height = %d, want %d", pliHeight, wantHeight)
	}
}

func TestPlacePliStacksWithinHeight(t *testing.T) {
	p, keys := placeFixture(t, 3, 50, 50)

	cols, _, _, ok := p.PlacePli(keys, unconstrained, 200, false, false)
	if !ok {
		t.Fatal("placement failed")
	}
	if cols != 1 {
		t.Fatalf("cols = %d, want 1", cols)
	}

	// Parts stack upward; rectangles overlap by the detection
	// overshoot of two scanlines.
	bots := []int{p.Parts["k0"].Bot, p.Parts["k1"].Bot, p.Parts["k2"].Bot}
	if bots[1]-bots[0] != 48 || bots[2]-bots[1] != 48 {
		t.Errorf("stack offsets = %v", bots)
	}
}

func TestPlacePliRaisesConstraintToTallest(t *testing.T) {
	p, keys := placeFixture(t, 1, 40, 120)

	// A single part taller than the constraint still fits.
	_, _, pliHeight, ok := p.PlacePli(keys, unconstrained, 10, false, false)
	if !ok {
		t.Fatal("placement failed")
	}
	if want := 120 + 2*borderMargin(p, 1); pliHeight != want {
		t.Errorf("height = %d, want %d", pliHeight, want)
	}
}

func TestPlacePliRejectsNarrowConstraint(t *testing.T) {
	p, keys := placeFixture(t, 2, 50, 50)

	cols, w, h, ok := p.PlacePli(keys, 10, 200, false, false)
	if ok {
		t.Fatal("expected placement failure")
	}
	if cols != 0 || w != 0 || h != 0 {
		t.Errorf("failure returned extent %d %d %d", cols, w, h)
	}
}

func TestPlacePliTucksUnderhang(t *testing.T) {
	p := newTestPli(t, false)

	// A tall part whose right side is empty below mid-height, and a
	// short part that fits into that notch.
	big := &Part{Width: 100, Height: 100}
	for i := 0; i < 100; i++ {
		big.LeftEdge = append(big.LeftEdge, 0)
		if i < 50 {
			big.RightEdge = append(big.RightEdge, 100)
		} else {
			big.RightEdge = append(big.RightEdge, 40)
		}
	}
	small := rectPart(40, 40)
	p.Parts["big"] = big
	p.Parts["small"] = small
	keys := []string{"big", "small"}

	cols, _, _, ok := p.PlacePli(keys, unconstrained, 100, false, false)
	if !ok {
		t.Fatal("placement failed")
	}
	if cols != 1 {
		t.Errorf("cols = %d, want 1", cols)
	}
	if !small.Placed || small.Col != big.Col {
		t.Error("small part not tucked into the same column")
	}
	if small.Left != big.Left+big.Width-small.Width {
		t.Errorf("small left = %d, want right-aligned %d",
			small.Left, big.Left+big.Width-small.Width)
	}
}

// Raising the height constraint only ever helps: taller columns hold
// more parts, so fewer columns are needed and the width limit binds
// later. A set that packs at height H must pack at every height above.
func TestPlacePliFeasibilityMonotonic(t *testing.T) {
	p, keys := placeFixture(t, 6, 50, 50)
	const xConstraint = 130 // room for two columns of 50px parts

	feasible := func(h int) bool {
		_, _, _, ok := p.PlacePli(keys, xConstraint, h, false, false)
		return ok
	}

	if feasible(50) {
		t.Fatal("six parts in two single-part columns should not fit")
	}

	firstH := -1
	for h := 50; h <= 600; h++ {
		if feasible(h) {
			firstH = h
			break
		}
	}
	if firstH < 0 {
		t.Fatal("no feasible height found up to 600")
	}
	if feasible(firstH - 1) {
		t.Fatalf("height %d feasible below the first found %d", firstH-1, firstH)
	}

	for _, h := range []int{firstH + 1, firstH + 10, firstH * 4} {
		if !feasible(h) {
			t.Errorf("feasible at %d but not at taller %d", firstH, h)
		}
	}
}

func TestPlaceCols(t *testing.T) {
	p, keys := placeFixture(t, 3, 50, 50)
	p.PlaceCols(keys)

	bx := borderMargin(p, 0)
	wantLefts := []int{bx, bx + 50, bx + 100}
	for i, key := range keys {
		part := p.Parts[key]
		if part.Left != wantLefts[i] {
			t.Errorf("part %s left = %d, want %d", key, part.Left, wantLefts[i])
		}
		if part.Col != i {
			t.Errorf("part %s col = %d, want %d", key, part.Col, i)
		}
	}
	if want := 150 + 2*bx; p.Size[0] != want {
		t.Errorf("width = %d, want %d", p.Size[0], want)
	}
	if want := 50 + 2*borderMargin(p, 1); p.Size[1] != want {
		t.Errorf("height = %d, want %d", p.Size[1], want)
	}
}

func TestResizePliColumns(t *testing.T) {
	t.Run("fits flat", func(t *testing.T) {
		p, _ := placeFixture(t, 3, 50, 50)
		err := p.ResizePli(meta.ConstrainData{Type: meta.ConstrainColumns, Constraint: 5})
		if err != nil {
			t.Fatal(err)
		}
		if p.Cols != 3 {
			t.Errorf("cols = %d, want 3", p.Cols)
		}
	})

	t.Run("scans to count", func(t *testing.T) {
		p, _ := placeFixture(t, 4, 50, 50)
		err := p.ResizePli(meta.ConstrainData{Type: meta.ConstrainColumns, Constraint: 2})
		if err != nil {
			t.Fatal(err)
		}
		if p.Cols != 2 {
			t.Errorf("cols = %d, want 2", p.Cols)
		}
	})
}

func TestResizePliHeight(t *testing.T) {
	p, _ := placeFixture(t, 3, 50, 50)
	err := p.ResizePli(meta.ConstrainData{Type: meta.ConstrainHeight, Constraint: 200})
	if err != nil {
		t.Fatal(err)
	}
	if p.Cols != 1 {
		t.Errorf("cols = %d, want 1", p.Cols)
	}
	if p.Size[1] > 200 {
		t.Errorf("height %d exceeds constraint", p.Size[1])
	}
}

func TestResizePliWidth(t *testing.T) {
	p, _ := placeFixture(t, 4, 50, 50)
	err := p.ResizePli(meta.ConstrainData{Type: meta.ConstrainWidth, Constraint: 500})
	if err != nil {
		t.Fatal(err)
	}
	if p.Size[0] == 0 || p.Size[1] == 0 {
		t.Errorf("empty extent %v", p.Size)
	}
	if p.Size[0] > 500 {
		t.Errorf("width %d exceeds constraint", p.Size[0])
	}
}

func TestResizePliAreaAndSquare(t *testing.T) {
	for _, typ := range []meta.Constrain{meta.ConstrainArea, meta.ConstrainSquare} {
		p, keys := placeFixture(t, 4, 50, 50)
		if err := p.ResizePli(meta.ConstrainData{Type: typ}); err != nil {
			t.Fatal(err)
		}
		if p.Size[0] == 0 || p.Size[1] == 0 {
			t.Errorf("constraint %v: empty extent %v", typ, p.Size)
		}
		for _, key := range keys {
			if !p.Parts[key].Placed {
				t.Errorf("constraint %v: part %s unplaced", typ, key)
			}
		}
	}
}
