package pli

// PlacePli packs the parts named by keys into columns no taller than
// yConstraint, stopping short of xConstraint. Columns fill by sliding
// each part up the previous part's silhouette whitespace. Returns the
// column count along with the packed extent, or ok=false when some
// part cannot start a column before xConstraint.
//
// yConstraint is raised to the tallest part, so any single part always
// fits a column. Inter-column gaps come from a per-column margin pair:
// the widest part's entry edge and exit edge, with the border margins
// folded into the first and last.
func (p *Pli) PlacePli(keys []string, xConstraint, yConstraint int, packSubs, sortType bool) (cols, pliWidth, pliHeight int, ok bool) {
	borderData := p.Meta.Border.ValuePixels()
	left := 0
	nPlaced := 0
	tallest := 0
	topMargin := int(borderData.Margin[1] + borderData.Thickness)
	botMargin := topMargin

	for _, key := range keys {
		p.Parts[key].Placed = false
		if p.Parts[key].Height > yConstraint {
			yConstraint = p.Parts[key].Height
		}
	}

	// The packed sub-column mode is disabled; parts always stack
	// vertically within a column.
	_ = packSubs

	type marginPair struct{ first, second int }
	var margins []marginPair

	for nPlaced < len(keys) {

		var part *Part
		i := 0
		for ; i < len(keys); i++ {
			part = p.Parts[keys[i]]
			if !part.Placed && left+part.Width < xConstraint {
				break
			}
		}
		if i == len(keys) {
			return 0, 0, 0, false
		}

		// Start a new column.
		prevPart := p.Parts[keys[i]]

		cols++

		width := prevPart.Width
		widest := i

		prevPart.Left = left
		prevPart.Bot = 0
		prevPart.Placed = true
		prevPart.Col = cols
		nPlaced++

		var margin marginPair
		margin.first = max(prevPart.instanceMargin[0], prevPart.csiMargin[0])
		if p.Bom && p.Meta.PartElements.Display.Value() {
			elementMargin := max(prevPart.style.marginX, prevPart.csiMargin[0])
			if elementMargin > margin.first {
				margin.first = elementMargin
			}
		}

		tallest = max(tallest, prevPart.Height)

		bot := prevPart.Height
		botMargin = max(botMargin, prevPart.csiMargin[1])

		// Try to tuck one unplaced part under the right side of the
		// column starter, where the silhouette underhangs.
		fits := false
		for i = 0; i < len(keys) && !fits; i++ {
			part = p.Parts[keys[i]]
			if part.Placed {
				continue
			}
			xMargin := max(prevPart.csiMargin[0], part.csiMargin[0])
			yMargin := max(prevPart.csiMargin[1], part.csiMargin[1])

			top := 0
			for ; top < part.Height; top++ {
				ltop := prevPart.Height - part.Height - yMargin + top
				if ltop >= 0 && ltop < prevPart.Height {
					if prevPart.RightEdge[ltop]+xMargin >
						prevPart.Width-part.Width+part.LeftEdge[top] {
						break
					}
				}
			}
			if top == part.Height {
				fits = true
				break
			}
		}
		if fits {
			part.Left = prevPart.Left + prevPart.Width - part.Width
			part.Bot = 0
			part.Placed = true
			part.Col = cols
			nPlaced++
		}

		// Stack further parts up the column, sliding each into the
		// previous part's top silhouette whitespace.
		for nPlaced < len(keys) {

			overlap := 0

			overlapped := false
			for i = 0; i < len(keys) && !overlapped; i++ {
				cand := p.Parts[keys[i]]
				if cand.Placed {
					continue
				}

				splitMargin := max(prevPart.TopMargin, cand.csiMargin[1])

				for overlap = 1; overlap < prevPart.Height && !overlapped; overlap++ {
					if overlap > cand.Height {
						// Candidate fully inside the overlap band;
						// walk both edges in step.
						for right, leftIdx := 0, 0; right < cand.Height; right, leftIdx = right+1, leftIdx+1 {
							if cand.RightEdge[right]+splitMargin >
								prevPart.LeftEdge[leftIdx+overlap-cand.Height] {
								overlapped = true
								break
							}
						}
					} else {
						for right, leftIdx := cand.Height-overlap-1, 0; right < cand.Height && leftIdx < overlap; right, leftIdx = right+1, leftIdx+1 {
							if right >= 0 && cand.RightEdge[right]+splitMargin >
								prevPart.LeftEdge[leftIdx] {
								overlapped = true
								break
							}
						}
					}
				}

				if bot+cand.Height+splitMargin-overlap <= yConstraint {
					bot += splitMargin
					break
				}
				overlapped = false
			}

			if i == len(keys) {
				break // column is full
			}

			part = p.Parts[keys[i]]
			margin.first = part.csiMargin[0]
			splitMargin := max(prevPart.TopMargin, part.csiMargin[1])

			prevPart = part
			prevPart.Left = left
			prevPart.Bot = bot - overlap
			prevPart.Placed = true
			prevPart.Col = cols
			nPlaced++

			if sortType && prevPart.Width > width {
				widest = i
				width = prevPart.Width
			}

			height := prevPart.Height + splitMargin

			bot -= overlap
			bot += height
			if bot > tallest {
				tallest = bot
			}
		}
		topMargin = max(topMargin, part.TopMargin)

		left += width

		part = p.Parts[keys[widest]]
		if part.AnnotWidth > 0 {
			margin.second = max(part.style.marginX, part.csiMargin[0])
		} else {
			margin.second = part.csiMargin[0]
		}
		margins = append(margins, margin)
	}

	pliWidth = left

	// Fold the collected margins into column gaps: border against the
	// first column, neighbor maxima in between, border after the last.
	lastMargin := 0
	for col := 0; col < len(margins); col++ {
		lastMargin = margins[col].second
		var margin int
		if col == 0 {
			bmargin := int(borderData.Thickness + borderData.Margin[0])
			margin = max(bmargin, margins[col].first)
		} else {
			margin = max(margins[col].first, margins[col].second)
		}
		for _, key := range keys {
			if p.Parts[key].Col >= col+1 {
				p.Parts[key].Left += margin
			}
		}
		pliWidth += margin
	}
	if lastMargin < int(borderData.Margin[0]+borderData.Thickness) {
		lastMargin = int(borderData.Margin[0] + borderData.Thickness)
	}
	pliWidth += lastMargin

	pliHeight = tallest

	for _, key := range keys {
		p.Parts[key].Bot += botMargin
	}
	pliHeight += botMargin + topMargin

	return cols, pliWidth, pliHeight, true
}

// PlaceCols lays every part in one flat row, gap per neighbor pair
// being the wider of the two parts' margins, with border margins at
// both ends. The extent lands in Size.
func (p *Pli) PlaceCols(keys []string) {
	if len(keys) == 0 {
		return
	}
	borderData := p.Meta.Border.ValuePixels()

	first := p.Parts[keys[0]]
	topMargin := max(int(borderData.Margin[1]+borderData.Thickness), first.TopMargin)
	botMargin := max(int(borderData.Margin[1]+borderData.Thickness), first.csiMargin[1])

	height := 0
	borderMargin := int(borderData.Thickness + borderData.Margin[0])

	width := max(borderMargin, first.maxMargin())

	for i, key := range keys {
		part := p.Parts[key]
		part.Left = width
		part.Bot = botMargin
		part.Col = i

		width += part.Width
		if part.Height > height {
			height = part.Height
		}
		if i < len(keys)-1 {
			next := p.Parts[keys[i+1]]
			width += max(part.maxMargin(), next.maxMargin())
		}
	}
	last := p.Parts[keys[len(keys)-1]]
	width += max(last.maxMargin(), borderMargin)

	p.Size[0] = width
	p.Size[1] = topMargin + height + botMargin
}
