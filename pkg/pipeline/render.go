package pipeline

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/trevorsandy/lpub3dNext/pkg/fonts"
	"github.com/trevorsandy/lpub3dNext/pkg/pli"
)

// Sheet drawing parameters. The sheet is a proof of the packed layout,
// not a print artifact, so one face size fits all badges.
const (
	sheetFontPoints = 11
	sheetFontDPI    = 96
)

// RenderSheets draws one PNG per packed list, keyed "step-N" and
// "bom-N".
func RenderSheets(layouts Layouts) (map[string][]byte, error) {
	sheets := make(map[string][]byte)
	for _, sl := range layouts.Pli {
		data, err := RenderSheet(sl.Layout)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", sl.Step, err)
		}
		if data != nil {
			sheets[fmt.Sprintf("step-%d", sl.Step)] = data
		}
	}
	for i, b := range layouts.Bom {
		data, err := RenderSheet(b)
		if err != nil {
			return nil, fmt.Errorf("bom %d: %w", i+1, err)
		}
		if data != nil {
			sheets[fmt.Sprintf("bom-%d", i+1)] = data
		}
	}
	return sheets, nil
}

// RenderSheet draws one packed layout onto a white sheet: part images
// (or placeholder frames when an image is missing), instance counts,
// and annotation and element badges. Empty layouts return nil bytes.
func RenderSheet(layout pli.Layout) ([]byte, error) {
	if layout.Width <= 0 || layout.Height <= 0 || len(layout.Parts) == 0 {
		return nil, nil
	}

	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	face, err := fonts.Face(sheetFontPoints, sheetFontDPI)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	for _, part := range layout.Parts {
		drawImage(dc, part)
		drawBadge(dc, part.Instance)
		if part.Annotation != nil {
			drawBadge(dc, *part.Annotation)
		}
		if part.Element != nil {
			drawBadge(dc, *part.Element)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawImage(dc *gg.Context, part pli.PlacedPart) {
	r := part.Image
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	var img image.Image
	if part.ImagePath != "" {
		if loaded, err := imaging.Open(part.ImagePath); err == nil {
			img = imaging.Fit(loaded, r.Width, r.Height, imaging.Lanczos)
		}
	}
	if img != nil {
		dc.DrawImage(img, r.X, r.Y)
		return
	}

	// Missing image: a light frame keeps the packing visible.
	dc.SetRGB(0.8, 0.8, 0.8)
	dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	dc.SetLineWidth(1)
	dc.Stroke()
}

func drawBadge(dc *gg.Context, b pli.Badge) {
	if b.Text == "" {
		return
	}
	r := b.Rect

	switch b.Style {
	case "circle":
		dc.SetRGB(0.9, 0.9, 0.9)
		dc.DrawEllipse(float64(r.X)+float64(r.Width)/2, float64(r.Y)+float64(r.Height)/2,
			float64(r.Width)/2, float64(r.Height)/2)
		dc.Fill()
	case "square", "rectangle", "element":
		dc.SetRGB(0.9, 0.9, 0.9)
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
		dc.Fill()
	}

	if b.Color != "" {
		dc.SetHexColor(b.Color)
	} else {
		dc.SetRGB(0.1, 0.1, 0.1)
	}
	ascent := fonts.Ascent(sheetFontPoints, sheetFontDPI)
	dc.DrawString(b.Text, float64(r.X), float64(r.Y+ascent))
}
