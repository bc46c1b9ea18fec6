package pli

import (
	"context"
	"reflect"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/meta"
)

func TestSetSortKeys(t *testing.T) {
	p := &Part{Color: "4", Element: "300126"}
	p.setSortKeys("Brick", true)
	if p.SortColour != "00004" {
		t.Errorf("colour key = %q", p.SortColour)
	}
	if len(p.SortCategory) != 80 {
		t.Errorf("category key width = %d, want 80", len(p.SortCategory))
	}
	if p.SortElement != "000000300126" {
		t.Errorf("lego element key = %q", p.SortElement)
	}

	p.setSortKeys("Brick", false)
	if len(p.SortElement) != 20 {
		t.Errorf("bricklink element key width = %d, want 20", len(p.SortElement))
	}

	p.Width, p.Height = 120, 45
	p.setSortSize()
	if p.SortSize != "0000012000000045" {
		t.Errorf("size key = %q", p.SortSize)
	}
}

// sortFixture seeds a list with ready-made parts so sortParts is
// exercised without images.
func sortFixture(t *testing.T, specs map[string]*Part) *Pli {
	t.Helper()
	p := newTestPli(t, false)
	keys := make([]string, 0, len(specs))
	for key, part := range specs {
		p.Parts[key] = part
		keys = append(keys, key)
	}
	p.SortedKeys = keys
	// Deterministic start order.
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if p.SortedKeys[i] > p.SortedKeys[j] {
				p.SortedKeys[i], p.SortedKeys[j] = p.SortedKeys[j], p.SortedKeys[i]
			}
		}
	}
	return p
}

func sizedPart(color, category string, w, h int) *Part {
	p := &Part{Color: color, Width: w, Height: h}
	p.setSortKeys(category, false)
	p.setSortSize()
	return p
}

func TestSortPartsByColour(t *testing.T) {
	p := sortFixture(t, map[string]*Part{
		"a": sizedPart("14", "Brick", 10, 10),
		"b": sizedPart("4", "Brick", 20, 10),
		"c": sizedPart("1", "Brick", 30, 10),
	})
	p.Meta.SortOrder.Primary.SetValue(meta.SortOptionName[meta.PartColour])
	p.sortParts(false)

	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(p.SortedKeys, want) {
		t.Errorf("order = %v, want %v", p.SortedKeys, want)
	}
}

func TestSortPartsDescending(t *testing.T) {
	p := sortFixture(t, map[string]*Part{
		"a": sizedPart("1", "Brick", 10, 10),
		"b": sizedPart("4", "Brick", 20, 10),
	})
	p.Meta.SortOrder.Primary.SetValue(meta.SortOptionName[meta.PartColour])
	p.Meta.SortOrder.PrimaryDirection.SetValue(meta.SortDirectionName[meta.SortDescending])
	p.sortParts(false)

	want := []string{"b", "a"}
	if !reflect.DeepEqual(p.SortedKeys, want) {
		t.Errorf("order = %v, want %v", p.SortedKeys, want)
	}
}

func TestSortPartsSecondaryBreaksTies(t *testing.T) {
	p := sortFixture(t, map[string]*Part{
		"a": sizedPart("4", "Plate", 10, 10),
		"b": sizedPart("4", "Brick", 20, 10),
		"c": sizedPart("1", "Plate", 30, 10),
	})
	p.Meta.SortOrder.Primary.SetValue(meta.SortOptionName[meta.PartColour])
	p.Meta.SortOrder.Secondary.SetValue(meta.SortOptionName[meta.PartCategory])
	p.sortParts(false)

	// Colour first, category inside the colour tie.
	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(p.SortedKeys, want) {
		t.Errorf("order = %v, want %v", p.SortedKeys, want)
	}
}

// Parts tied on every criterion keep their incoming relative order;
// the comparison only swaps on a strict ordering violation.
func TestSortPartsStableOnFullTie(t *testing.T) {
	p := newTestPli(t, false)
	for _, key := range []string{"z", "m", "a"} {
		p.Parts[key] = sizedPart("4", "Brick", 20, 10)
	}
	p.SortedKeys = []string{"z", "m", "a"}

	p.Meta.SortOrder.Primary.SetValue(meta.SortOptionName[meta.PartSize])
	p.Meta.SortOrder.Secondary.SetValue(meta.SortOptionName[meta.PartColour])
	p.Meta.SortOrder.Tertiary.SetValue(meta.SortOptionName[meta.PartCategory])
	p.sortParts(false)

	want := []string{"z", "m", "a"}
	if !reflect.DeepEqual(p.SortedKeys, want) {
		t.Errorf("tied parts reordered: %v, want %v", p.SortedKeys, want)
	}
}

func TestSortPartsSplitUsesPrimaryOnly(t *testing.T) {
	p := sortFixture(t, map[string]*Part{
		"a": sizedPart("4", "Plate", 10, 10),
		"b": sizedPart("4", "Brick", 20, 10),
	})
	p.Meta.SortOrder.Primary.SetValue(meta.SortOptionName[meta.PartColour])
	p.Meta.SortOrder.Secondary.SetValue(meta.SortOptionName[meta.PartCategory])
	p.sortParts(true)

	// Tied on colour; split mode must not consult the secondary, so
	// the starting order holds.
	want := []string{"a", "b"}
	if !reflect.DeepEqual(p.SortedKeys, want) {
		t.Errorf("order = %v, want %v", p.SortedKeys, want)
	}
}

func TestSortPartsBySize(t *testing.T) {
	p := sortFixture(t, map[string]*Part{
		"a": sizedPart("4", "Brick", 300, 10),
		"b": sizedPart("4", "Brick", 20, 10),
		"c": sizedPart("4", "Brick", 150, 10),
	})
	p.Meta.SortOrder.Primary.SetValue(meta.SortOptionName[meta.PartSize])
	p.sortParts(false)

	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(p.SortedKeys, want) {
		t.Errorf("order = %v, want %v", p.SortedKeys, want)
	}
}

func TestSortPliRejectsEmptyList(t *testing.T) {
	p := newTestPli(t, false)
	if err := p.SortPli(context.Background()); err == nil {
		t.Fatal("expected error on empty list")
	}
}

func TestSortPliDropsUnknownParts(t *testing.T) {
	p := newTestPli(t, false)
	err := p.SetParts(context.Background(), []Entry{
		entry("1 4 0 0 0 1 0 0 0 1 0 0 0 1 nosuch.dat", 1),
	}, nil, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SortPli(context.Background()); err == nil {
		t.Fatal("expected error once every part is dropped")
	}
	if len(p.Parts) != 0 {
		t.Errorf("unknown part survived: %v", p.Parts)
	}
}
