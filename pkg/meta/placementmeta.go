package meta

import (
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// PlacementMeta anchors one page element relative to another. The token
// grammar admits edge placements with an optional justification, corner
// placements, a relative-to keyword, an INSIDE/OUTSIDE preposition, and
// a trailing offset pair; the parsed triple is resolved against the
// 25-zone decode table. An OFFSET clause updates only the offsets,
// leaving the anchoring untouched.
type PlacementMeta struct {
	leaf[PlacementData]
}

func (m *PlacementMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.setDefaults(TopLeftInsideCorner, PageType)
}

// setDefaults primes both slots with the given zone and relative type.
func (m *PlacementMeta) setDefaults(rect RectPlacement, relativeTo PlacementType) {
	m.value[0] = PlacementData{
		Placement:     placementDecode[rect].placement,
		Justification: placementDecode[rect].justification,
		RelativeTo:    relativeTo,
		Preposition:   placementDecode[rect].preposition,
		RectPlacement: rect,
	}
}

// SetValue assigns the active slot from a zone and relative type,
// deriving the placement triple from the decode table.
func (m *PlacementMeta) SetValue(rect RectPlacement, relativeTo PlacementType) {
	v := &m.value[m.pushed]
	v.Placement = placementDecode[rect].placement
	v.Justification = placementDecode[rect].justification
	v.RelativeTo = relativeTo
	v.Preposition = placementDecode[rect].preposition
	v.RectPlacement = rect
}

// SetOffsets assigns only the fractional offsets of the active slot.
func (m *PlacementMeta) SetOffsets(x, y float32) {
	m.value[m.pushed].Offsets = [2]float32{x, y}
}

func isRelativeTo(token string) bool {
	for t := PageType; t <= StickerType; t++ {
		if relativeNames[t] == token {
			return true
		}
	}
	return false
}

func (m *PlacementMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	argc := len(argv)
	rc := FailureRc

	if index >= argc {
		return FailureRc
	}

	if argv[index] == "OFFSET" {
		index++
		if argc-index == 2 {
			x, ok0 := parseFloat(argv[index])
			y, ok1 := parseFloat(argv[index+1])
			if ok0 && ok1 {
				m.value[m.pushed].Offsets = [2]float32{x, y}
				m.here[m.pushed] = here
				return OkRc
			}
		}
	}

	var placement, justification, preposition, relativeTo string
	var offsets [2]float32

	switch argv[index] {
	case "TOP", "BOTTOM":
		placement = argv[index]
		index++
		if index < argc {
			switch argv[index] {
			case "LEFT", "CENTER", "RIGHT":
				justification = argv[index]
				index++
				rc = OkRc
			default:
				if isRelativeTo(argv[index]) {
					rc = OkRc
				}
			}
		}
	case "LEFT", "RIGHT":
		placement = argv[index]
		index++
		if index < argc {
			switch argv[index] {
			case "TOP", "CENTER", "BOTTOM":
				justification = argv[index]
				index++
				rc = OkRc
			default:
				if isRelativeTo(argv[index]) {
					rc = OkRc
				}
			}
		}
	case "TOP_LEFT", "TOP_RIGHT", "BOTTOM_LEFT", "BOTTOM_RIGHT", "CENTER":
		placement = argv[index]
		index++
		rc = OkRc
	default:
		return rc
	}

	if rc == OkRc && index < argc {
		if isRelativeTo(argv[index]) {
			relativeTo = argv[index]
			index++
			if index < argc {
				if argv[index] == "INSIDE" || argv[index] == "OUTSIDE" {
					preposition = argv[index]
					index++
					rc = OkRc
				}
				if argc-index == 2 {
					x, ok0 := parseFloat(argv[index])
					y, ok1 := parseFloat(argv[index+1])
					if ok0 && ok1 {
						offsets = [2]float32{x, y}
						rc = OkRc
					}
				}
			} else {
				rc = OkRc
			}
		}

		if preposition == "INSIDE" && justification == "CENTER" {
			justification = ""
		}

		spot := findSpot(placement, justification, preposition)
		keepJustification := false
		if spot == NumSpots && preposition == "INSIDE" && justification != "" {
			// The zone table carries no justification for inside edge
			// placements; collapse it for the lookup but keep the parsed
			// value.
			spot = findSpot(placement, "", preposition)
			keepJustification = spot != NumSpots
		}
		if spot == NumSpots {
			return FailureRc
		}

		m.SetValue(spot, placementTypeOf(relativeTo))
		if keepJustification {
			m.value[m.pushed].Justification = PlacementEnc(tokenCodes[justification])
		}
		m.value[m.pushed].Offsets = offsets
		m.here[m.pushed] = here
	}
	return rc
}

// findSpot scans the zone vocabulary for an exact triple match.
func findSpot(placement, justification, preposition string) RectPlacement {
	for i := TopLeftOutsideCorner; i < NumSpots; i++ {
		if placementOptions[i][0] == placement &&
			placementOptions[i][1] == justification &&
			placementOptions[i][2] == preposition {
			return i
		}
	}
	return NumSpots
}

func placementTypeOf(keyword string) PlacementType {
	return PlacementType(tokenCodes[keyword])
}

func (m *PlacementMeta) Format(local, global bool) string {
	v := m.value[m.pushed]
	var suffix string

	if v.Preposition == Inside {
		suffix = placementNames[v.Placement] + " " +
			relativeNames[v.RelativeTo] + " " +
			prepositionNames[v.Preposition]
	} else {
		switch v.Placement {
		case Top, Bottom, Right, Left:
			suffix = placementNames[v.Placement] + " " +
				placementNames[v.Justification] + " " +
				relativeNames[v.RelativeTo] + " " +
				prepositionNames[v.Preposition]
		default:
			suffix = placementNames[v.Placement] + " " +
				relativeNames[v.RelativeTo] + " " +
				prepositionNames[v.Preposition]
		}
	}
	if v.Offsets[0] != 0 || v.Offsets[1] != 0 {
		suffix += " " + ftoa(v.Offsets[0]) + " " + ftoa(v.Offsets[1])
	}
	return m.fmtPrefix(local, global) + suffix
}

func (m *PlacementMeta) Doc(out []string, preamble string) []string {
	out = append(out, preamble+" (TOP|BOTTOM) (LEFT|CENTER|RIGHT) (PAGE|ASSEM (INSIDE|OUTSIDE)|MULTI_STEP|STEP_NUMBER|PLI|CALLOUT|ONETOONE|PARTID|SUBMODEL|ILLUSTRATION|RIGHTWRONG|STICKER)")
	out = append(out, preamble+" (LEFT|RIGHT) (TOP|CENTER|BOTTOM) (PAGE|ASSEM (INSIDE|OUTSIDE)|MULTI_STEP|STEP_NUMBER|PLI|CALLOUT|ONETOONE|PARTID|SUBMODEL|ILLUSTRATION|RIGHTWRONG|STICKER)")
	out = append(out, preamble+" (TOP_LEFT|TOP_RIGHT|BOTTOM_LEFT|BOTTOM_RIGHT) (PAGE|ASSEM (INSIDE|OUTSIDE)|MULTI_STEP|STEP_NUMBER|PLI|ROTATE_ICON|CALLOUT|ONETOONE|PARTID|SUBMODEL|ILLUSTRATION|RIGHTWRONG|STICKER)")
	return out
}
