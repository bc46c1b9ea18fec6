package pli

import (
	"context"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
)

// unconstrained stands in for "no x limit" when packing by height.
const unconstrained = 10000000

// SizePli sorts the list and packs it against its configured
// constraint. The packed extent lands in Size and Cols.
func (p *Pli) SizePli(ctx context.Context) error {
	if len(p.Parts) == 0 {
		return errors.New(errors.ErrCodeLayout, "parts list is empty")
	}
	if err := p.SortPli(ctx); err != nil {
		return err
	}
	return p.ResizePli(p.Meta.Constrain.Value())
}

// SizePliConstraint re-packs an already sized list against a different
// constraint, e.g. when the enclosing page splits a range.
func (p *Pli) SizePliConstraint(constrain meta.Constrain, magnitude int) error {
	if len(p.Parts) == 0 || len(p.SortedKeys) == 0 {
		return errors.New(errors.ErrCodeLayout, "parts list is empty")
	}
	return p.ResizePli(meta.ConstrainData{Type: constrain, Constraint: float32(magnitude)})
}

// ResizePli packs the sorted list against one constraint:
//
//   - Height: pack once against the height, falling back to Area when
//     the pack fails.
//   - Columns: a flat row when the parts fit the count, else a height
//     scan until the column count matches.
//   - Width: a descending height scan keeping the tallest packing whose
//     width fits.
//   - Area: a descending scan minimizing width*height.
//   - Square: the same scan minimizing |width-height|.
func (p *Pli) ResizePli(constrainData meta.ConstrainData) error {
	packSubs := p.Meta.Pack.Value()
	sortType := p.Meta.Sort.Value()
	pliWidth, pliHeight := 0, 0
	cols := 0

	switch constrainData.Type {
	case meta.ConstrainHeight:
		var ok bool
		cols, pliWidth, pliHeight, ok = p.PlacePli(p.SortedKeys,
			unconstrained, int(constrainData.Constraint), packSubs, sortType)
		if !ok {
			// Infeasible height; recover with the area scan.
			return p.ResizePli(meta.ConstrainData{Type: meta.ConstrainArea})
		}

	case meta.ConstrainColumns:
		if len(p.Parts) <= int(constrainData.Constraint) {
			p.PlaceCols(p.SortedKeys)
			p.Cols = len(p.Parts)
			return nil
		}
		bomCols := int(constrainData.Constraint)

		maxHeight := 0
		for _, key := range p.SortedKeys {
			maxHeight += p.Parts[key].Height + p.Parts[key].csiMargin[1]
		}
		maxHeight += maxHeight

		if bomCols > 0 {
			for height := maxHeight / (4 * bomCols); height <= maxHeight; height++ {
				c, w, h, ok := p.PlacePli(p.SortedKeys, unconstrained, height, packSubs, sortType)
				if ok && c == bomCols {
					cols, pliWidth, pliHeight = c, w, h
					break
				}
			}
		}

	case meta.ConstrainWidth:
		height := 0
		for _, key := range p.SortedKeys {
			height += p.Parts[key].Height
		}
		goodHeight := height

		for ; height > 0; height -= 4 {
			_, _, _, ok := p.PlacePli(p.SortedKeys, unconstrained, height, packSubs, sortType)
			if !ok {
				break
			}
			w := 0
			for _, key := range p.SortedKeys {
				if t := p.Parts[key].Left + p.Parts[key].Width; t > w {
					w = t
				}
			}
			if w < int(constrainData.Constraint) {
				goodHeight = height
			}
		}
		cols, pliWidth, pliHeight, _ = p.PlacePli(p.SortedKeys,
			unconstrained, goodHeight, packSubs, sortType)

	case meta.ConstrainArea:
		height := 0
		for _, key := range p.SortedKeys {
			height += p.Parts[key].Height
		}
		minArea := height * height
		goodHeight := height

		// Scan down a tenth of an inch at a time.
		step := int(meta.ToPixels(0.1, meta.DPI))
		for ; height > 0; height -= step {
			_, _, _, ok := p.PlacePli(p.SortedKeys, unconstrained, height, packSubs, sortType)
			if !ok {
				break
			}
			w, h := 0, 0
			for _, key := range p.SortedKeys {
				if t := p.Parts[key].Bot + p.Parts[key].Height; t > h {
					h = t
				}
				if t := p.Parts[key].Left + p.Parts[key].Width; t > w {
					w = t
				}
			}
			if w*h < minArea {
				minArea = w * h
				goodHeight = height
			}
		}
		cols, pliWidth, pliHeight, _ = p.PlacePli(p.SortedKeys,
			unconstrained, goodHeight, packSubs, sortType)

	case meta.ConstrainSquare:
		height := 0
		for _, key := range p.SortedKeys {
			height += p.Parts[key].Height
		}
		minDelta := height
		goodHeight := height
		step := int(meta.ToPixels(0.1, meta.DPI))

		for ; height > 0; height -= step {
			_, w, h, ok := p.PlacePli(p.SortedKeys, unconstrained, height, packSubs, sortType)
			if !ok {
				break
			}
			delta := w - h
			if delta < 0 {
				delta = -delta
			}
			if delta < minDelta {
				minDelta = delta
				goodHeight = height
			}
		}
		cols, pliWidth, pliHeight, _ = p.PlacePli(p.SortedKeys,
			unconstrained, goodHeight, packSubs, sortType)
	}

	p.Size[0] = pliWidth
	p.Size[1] = pliHeight
	p.Cols = cols
	return nil
}
