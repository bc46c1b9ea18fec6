// Package render produces part images for the layout engine.
//
// The engine never draws pixels itself: it asks a Renderer for a PNG
// with an alpha channel and derives packing silhouettes from it. Two
// renderers are provided: a shell-out to an installed LDView binary,
// and a native placeholder renderer that draws a deterministic brick
// silhouette so layout (and tests) work without any external tooling.
package render

import (
	"context"
	"math"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// PartSpec describes one part image request.
type PartSpec struct {
	// Type is the LDraw part name, e.g. "3001.dat".
	Type string
	// Color is the LDraw colour code as it appears in the source line.
	Color string
	// NameKey is the cache key the image is stored under; it encodes
	// every attribute that affects the rendered pixels.
	NameKey string

	ModelScale float32
	CameraFoV  float32
	CameraAngles [2]float32
	Target     [3]float32
	Rotation   [3]float32
	Transform  string

	// Parms carries renderer-specific extra arguments (LDVIEW_PARMS
	// and friends) verbatim.
	Parms string

	// Line is the oriented type-1 line to render, when the caller has
	// already applied a preferred display rotation.
	Line *ldraw.PartLine
}

// Renderer produces a part image on disk.
type Renderer interface {
	// Name identifies the renderer in logs and cache keys.
	Name() string
	// RenderPart renders spec to a PNG with alpha at outPath.
	RenderPart(ctx context.Context, spec PartSpec, outPath string) error
}

// BatchRenderer renders many parts in one invocation. Renderers that
// shell out per image benefit from batching; the resulting images must
// be identical to per-part renders.
type BatchRenderer interface {
	Renderer
	// RenderParts renders every spec; specs[i] lands at outPaths[i].
	RenderParts(ctx context.Context, specs []PartSpec, outPaths []string) error
}

// CameraDistance returns the camera distance for a model scale, using
// the conventional LDraw viewing distance at scale 1. Scale values at
// or below zero are treated as 1.
func CameraDistance(scale float32) float32 {
	if scale <= 0 {
		scale = 1
	}
	return 1250 / scale
}

// CameraDistanceFoV adjusts the camera distance for a field of view, so
// narrow FoV renders keep the subject the same apparent size.
func CameraDistanceFoV(scale, fov float32) float32 {
	d := CameraDistance(scale)
	if fov <= 0 || fov >= 180 {
		return d
	}
	ref := math.Tan(float64(30) / 2 * math.Pi / 180)
	cur := math.Tan(float64(fov) / 2 * math.Pi / 180)
	return d * float32(ref/cur)
}
