package pli

import (
	"context"
	"sort"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/meta"
)

type sortSlot int

const (
	sortPrimary sortSlot = iota
	sortSecondary
	sortTertiary
)

// SortPli sizes the parts and orders the key list by the configured
// sort criteria. The per-step list always sorts; the BOM honours its
// SORT toggle.
func (p *Pli) SortPli(ctx context.Context) error {
	if err := p.partSize(ctx); err != nil {
		return err
	}
	if len(p.Parts) < 1 {
		return errors.New(errors.ErrCodeLayout, "no valid parts in list")
	}

	// Deterministic starting order regardless of map iteration.
	p.SortedKeys = p.SortedKeys[:0]
	for key := range p.Parts {
		p.SortedKeys = append(p.SortedKeys, key)
	}
	sort.Strings(p.SortedKeys)

	if !p.Bom {
		p.Meta.Sort.SetValue(true)
	}
	p.sortParts(p.SplitBom)
	return nil
}

func (p *Pli) sortValue(key string, option meta.SortOption) string {
	part := p.Parts[key]
	switch option {
	case meta.PartColour:
		return part.SortColour
	case meta.PartCategory:
		return part.SortCategory
	case meta.PartSize:
		return part.SortSize
	case meta.PartElement:
		return part.SortElement
	}
	return ""
}

func (p *Pli) sortDirection(slot sortSlot) bool {
	var dir string
	switch slot {
	case sortPrimary:
		dir = p.Meta.SortOrder.PrimaryDirection.Value()
	case sortSecondary:
		dir = p.Meta.SortOrder.SecondaryDirection.Value()
	case sortTertiary:
		dir = p.Meta.SortOrder.TertiaryDirection.Value()
	}
	return meta.SortDirectionCode(dir) != meta.SortDescending
}

// sortParts bubble sorts SortedKeys on the primary criterion, breaking
// ties with the secondary and tertiary when they differ from criteria
// already applied. Split lists sort on the primary only so every
// occurrence of a split BOM orders identically.
func (p *Pli) sortParts(setSplit bool) {
	primary := meta.SortOptionCode(p.Meta.SortOrder.Primary.Value())
	secondary := meta.SortOptionCode(p.Meta.SortOrder.Secondary.Value())
	tertiary := meta.SortOptionCode(p.Meta.SortOrder.Tertiary.Value())

	unsorted := true
	for unsorted {
		unsorted = false

		for first := 0; first < len(p.SortedKeys)-1; first++ {
			for next := first + 1; next < len(p.SortedKeys); next++ {

				var firstValue, nextValue string
				var sortedBy [meta.SortByType]bool
				canSort := false
				ascending := true

				apply := func(option meta.SortOption, slot sortSlot) {
					ascending = p.sortDirection(slot)
					firstValue = p.sortValue(p.SortedKeys[first], option)
					nextValue = p.sortValue(p.SortedKeys[next], option)
					sortedBy[option] = true
					canSort = true
				}

				if primary != meta.NoSort {
					apply(primary, sortPrimary)
				}
				if !setSplit && firstValue == nextValue &&
					secondary != meta.NoSort && !sortedBy[secondary] {
					apply(secondary, sortSecondary)
				}
				if !setSplit && firstValue == nextValue &&
					tertiary != meta.NoSort && !sortedBy[tertiary] {
					apply(tertiary, sortTertiary)
				}

				out := ascending && firstValue > nextValue ||
					!ascending && firstValue < nextValue
				if canSort && out {
					p.SortedKeys[first], p.SortedKeys[next] = p.SortedKeys[next], p.SortedKeys[first]
					unsorted = true
				}
			}
		}
	}
}
