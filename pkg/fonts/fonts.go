// Package fonts provides the embedded text face used to measure and draw
// badge text (instance counts, annotations, element ids).
//
// Badge geometry feeds the parts-list packing algorithm, so measurement
// has to be deterministic across machines. Rather than consulting system
// fonts, the package carries the Go regular face and derives sized faces
// from it on demand.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error

	faceMu sync.Mutex
	faces  = make(map[faceKey]font.Face)
)

type faceKey struct {
	points float32
	dpi    float32
}

func base() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Face returns a text face at the given point size and resolution.
// Faces are cached; the same (points, dpi) pair always returns the same
// face. Point sizes at or below zero fall back to 10pt.
func Face(points, dpi float32) (font.Face, error) {
	if points <= 0 {
		points = 10
	}
	if dpi <= 0 {
		dpi = 72
	}

	faceMu.Lock()
	defer faceMu.Unlock()

	key := faceKey{points, dpi}
	if f, ok := faces[key]; ok {
		return f, nil
	}

	ft, err := base()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(points),
		DPI:     float64(dpi),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faces[key] = f
	return f, nil
}

// Measure returns the pixel bounding box of text at the given point size
// and resolution. The height is the face's full line height so stacked
// badges line up regardless of glyph ascenders.
func Measure(text string, points, dpi float32) (w, h int) {
	f, err := Face(points, dpi)
	if err != nil {
		// Fixed-advance estimate keeps layout running even if the
		// embedded font fails to parse.
		return len(text) * int(points/2), int(points)
	}
	metrics := f.Metrics()
	adv := font.MeasureString(f, text)
	return adv.Ceil(), (metrics.Ascent + metrics.Descent).Ceil()
}

// Ascent returns the face ascent in pixels, used to baseline badge text.
func Ascent(points, dpi float32) int {
	f, err := Face(points, dpi)
	if err != nil {
		return int(points)
	}
	return f.Metrics().Ascent.Ceil()
}
