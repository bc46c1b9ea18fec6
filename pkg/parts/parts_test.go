package parts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

func writePart(t *testing.T, root, rel, title string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	content := "0 " + title + "\n0 Name: " + rel + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDirLibraryFindPart(t *testing.T) {
	root := t.TempDir()
	writePart(t, root, "parts/3001.dat", "Brick 2 x 4")
	writePart(t, root, "p/stud.dat", "Stud")
	writePart(t, root, "unofficial/parts/u9999.dat", "Unofficial Widget")

	lib := NewDirLibrary(root)

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"3001.dat", "Brick 2 x 4", true},
		{"3001.DAT", "Brick 2 x 4", true}, // case-insensitive
		{"stud.dat", "Stud", true},
		{"u9999.dat", "Unofficial Widget", true},
		{"missing.dat", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := lib.FindPart(tt.name)
			if ok != tt.ok {
				t.Fatalf("FindPart(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if info.Description != tt.want {
				t.Errorf("description = %q, want %q", info.Description, tt.want)
			}
		})
	}
}

func TestDirLibraryCachesMisses(t *testing.T) {
	root := t.TempDir()
	lib := NewDirLibrary(root)

	if _, ok := lib.FindPart("late.dat"); ok {
		t.Fatal("expected miss before file exists")
	}
	writePart(t, root, "parts/late.dat", "Late Part")
	if _, ok := lib.FindPart("late.dat"); ok {
		t.Fatal("miss should be cached")
	}
}

func TestModelLibrary(t *testing.T) {
	doc := "0 FILE main.ldr\n1 4 0 0 0 1 0 0 0 1 0 0 0 1 sub.ldr\n0 FILE sub.ldr\n1 4 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat\n"
	model, err := ldraw.Parse(strings.NewReader(doc), "main.ldr")
	if err != nil {
		t.Fatal(err)
	}

	lib := ModelLibrary{
		Model: model,
		Next:  StaticLibrary{"3001.dat": "Brick 2 x 4"},
	}

	if info, ok := lib.FindPart("sub.ldr"); !ok || info.Description != "sub" {
		t.Errorf("submodel lookup = %+v, %v", info, ok)
	}
	if info, ok := lib.FindPart("3001.dat"); !ok || info.Description != "Brick 2 x 4" {
		t.Errorf("fallthrough lookup = %+v, %v", info, ok)
	}
	if _, ok := lib.FindPart("nope.dat"); ok {
		t.Error("unknown part should miss")
	}
}
