package render

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNativeRenderPart(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "3001.png")

	spec := PartSpec{Type: "3001.dat", Color: "4", ModelScale: 1}
	if err := (Native{}).RenderPart(context.Background(), spec, out); err != nil {
		t.Fatalf("RenderPart() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open rendered image: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode rendered image: %v", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("rendered image is empty: %v", b)
	}

	// Corners stay transparent so edge scans see real alpha.
	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestNativeDeterministic(t *testing.T) {
	dir := t.TempDir()
	spec := PartSpec{Type: "3024.dat", Color: "14", ModelScale: 1}

	paths := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}
	for _, p := range paths {
		if err := (Native{}).RenderPart(context.Background(), spec, p); err != nil {
			t.Fatalf("RenderPart(%s) error = %v", p, err)
		}
	}
	a, _ := os.ReadFile(paths[0])
	b, _ := os.ReadFile(paths[1])
	if !bytes.Equal(a, b) {
		t.Error("same spec produced different images")
	}
}

func TestNativeScaleGrowsImage(t *testing.T) {
	dir := t.TempDir()
	sizes := make([]int, 2)
	for i, scale := range []float32{1, 2} {
		out := filepath.Join(dir, "s"+string(rune('0'+i))+".png")
		spec := PartSpec{Type: "3001.dat", Color: "1", ModelScale: scale}
		if err := (Native{}).RenderPart(context.Background(), spec, out); err != nil {
			t.Fatalf("RenderPart() error = %v", err)
		}
		f, _ := os.Open(out)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode config: %v", err)
		}
		sizes[i] = cfg.Width
	}
	if sizes[1] <= sizes[0] {
		t.Errorf("scale 2 width %d not larger than scale 1 width %d", sizes[1], sizes[0])
	}
}

func TestLDViewFallsBackWithoutBinary(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "part.png")
	r := LDView{Binary: "ldview-binary-that-does-not-exist"}

	spec := PartSpec{Type: "3001.dat", Color: "4", ModelScale: 1}
	if err := r.RenderPart(context.Background(), spec, out); err != nil {
		t.Fatalf("RenderPart() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("fallback produced no image: %v", err)
	}
}

func TestCameraDistance(t *testing.T) {
	tests := []struct {
		name  string
		scale float32
		want  float32
	}{
		{"unit scale", 1, 1250},
		{"double scale halves distance", 2, 625},
		{"zero scale treated as one", 0, 1250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CameraDistance(tt.scale); got != tt.want {
				t.Errorf("CameraDistance(%v) = %v, want %v", tt.scale, got, tt.want)
			}
		})
	}
}

func TestCameraDistanceFoV(t *testing.T) {
	// Narrowing the FoV below the 30 degree reference moves the camera
	// further away; widening brings it closer.
	base := CameraDistance(1)
	if got := CameraDistanceFoV(1, 30); got != base {
		t.Errorf("FoV 30 distance = %v, want %v", got, base)
	}
	if got := CameraDistanceFoV(1, 15); got <= base {
		t.Errorf("FoV 15 distance = %v, want > %v", got, base)
	}
	if got := CameraDistanceFoV(1, 60); got >= base {
		t.Errorf("FoV 60 distance = %v, want < %v", got, base)
	}
}
