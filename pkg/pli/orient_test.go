package pli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeControlFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pli.mpd")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOrienterRotation(t *testing.T) {
	path := writeControlFile(t, `0 Parts list orientations
1 0 0 0 0 0 0 1 -1 0 0 0 1 0 3001.dat
1 0 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat
`)
	o := &Orienter{Path: path}

	line := o.Orient("4", "3001.DAT")
	if line.Color != "4" {
		t.Errorf("colour = %q", line.Color)
	}
	if line.Type != "3001.dat" {
		t.Errorf("type = %q", line.Type)
	}
	// First entry wins over the duplicate.
	want := [9]float64{0, 0, 1, -1, 0, 0, 0, 1, 0}
	if line.Matrix != want {
		t.Errorf("matrix = %v, want %v", line.Matrix, want)
	}
	if err := o.Err(); err != nil {
		t.Errorf("unexpected control file error: %v", err)
	}
}

func TestOrienterDefaultsToIdentity(t *testing.T) {
	path := writeControlFile(t, "1 0 0 0 0 0 0 1 -1 0 0 0 1 0 3001.dat\n")
	o := &Orienter{Path: path}

	line := o.Orient("4", "3020.dat")
	if line.Matrix != identity {
		t.Errorf("matrix = %v, want identity", line.Matrix)
	}
}

func TestOrienterNilAndEmpty(t *testing.T) {
	var o *Orienter
	if line := o.Orient("4", "3001.dat"); line.Matrix != identity {
		t.Error("nil orienter must return identity")
	}
	o = &Orienter{}
	if line := o.Orient("4", "3001.dat"); line.Matrix != identity {
		t.Error("empty path must return identity")
	}
}

func TestOrienterMissingFile(t *testing.T) {
	o := &Orienter{Path: filepath.Join(t.TempDir(), "absent.mpd")}
	if line := o.Orient("4", "3001.dat"); line.Matrix != identity {
		t.Error("missing file must return identity")
	}
	if o.Err() == nil {
		t.Error("missing file must surface through Err")
	}
}
