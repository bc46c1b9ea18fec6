package render

import (
	"context"
	"hash/fnv"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
)

// Native draws deterministic placeholder part images with fogleman/gg.
// The silhouette is a studded brick whose proportions derive from a
// hash of the part name, so distinct parts pack distinctly while the
// same part always yields byte-identical pixels. The background stays
// transparent so edge scans in the layout engine see real alpha.
type Native struct {
	// BaseDPI scales the drawing; zero means 150.
	BaseDPI float32
}

func (Native) Name() string { return "native" }

// ldrawColors maps the common LDraw colour codes to display colours.
// Unknown codes fall back to a hash-derived hue.
var ldrawColors = map[string]color.NRGBA{
	"0":  {33, 33, 33, 255},    // black
	"1":  {0, 85, 191, 255},    // blue
	"2":  {35, 120, 65, 255},   // green
	"4":  {201, 26, 9, 255},    // red
	"14": {242, 205, 55, 255},  // yellow
	"15": {244, 244, 244, 255}, // white
	"71": {160, 165, 169, 255}, // light bluish gray
	"72": {108, 110, 104, 255}, // dark bluish gray
}

func partColor(code, name string) color.NRGBA {
	if c, ok := ldrawColors[code]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(code))
	h.Write([]byte(name))
	v := h.Sum32()
	return color.NRGBA{
		R: 64 + uint8(v>>16)%160,
		G: 64 + uint8(v>>8)%160,
		B: 64 + uint8(v)%160,
		A: 255,
	}
}

// brickShape derives stud columns and rows from the part name so that
// "3001.dat" and "3024.dat" do not share a footprint.
func brickShape(name string) (cols, rows int) {
	h := fnv.New32a()
	h.Write([]byte(name))
	v := h.Sum32()
	return 1 + int(v%4), 1 + int((v>>4)%2)
}

func (n Native) RenderPart(ctx context.Context, spec PartSpec, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dpi := n.BaseDPI
	if dpi <= 0 {
		dpi = 150
	}
	scale := spec.ModelScale
	if scale <= 0 {
		scale = 1
	}
	// One stud is 20 LDU; at scale 1 and 150 DPI draw it 24px wide.
	stud := float64(24) * float64(scale) * float64(dpi) / 150
	if stud < 6 {
		stud = 6
	}
	cols, rows := brickShape(spec.Type)
	bodyW := stud * float64(cols)
	bodyH := stud * float64(rows) * 1.2
	studH := stud * 0.35
	margin := stud * 0.25

	w := int(bodyW + 2*margin)
	h := int(bodyH + studH + 2*margin)
	dc := gg.NewContext(w, h)

	fill := partColor(spec.Color, spec.Type)
	edge := color.NRGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}

	// Body.
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(margin, margin+studH, bodyW, bodyH, stud*0.1)
	dc.FillPreserve()
	dc.SetColor(edge)
	dc.SetLineWidth(stud * 0.08)
	dc.Stroke()

	// Studs.
	studW := stud * 0.55
	for i := 0; i < cols; i++ {
		x := margin + stud*float64(i) + (stud-studW)/2
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x, margin, studW, studH+stud*0.1, stud*0.08)
		dc.FillPreserve()
		dc.SetColor(edge)
		dc.Stroke()
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "create image directory")
	}
	if err := dc.SavePNG(outPath); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "write part image for %s", spec.Type)
	}
	return nil
}
