package seqpair

import (
	"fmt"

	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/fplerr"
)

// Decode converts a SequencePair into a Placement.
//
// For each block b, in Γ⁺ order, its position is the max over every
// already-placed predecessor a of:
//   - a.XMax, if a precedes b in both Γ⁺ and Γ⁻ ("a left of b")
//   - a.YMax, if a precedes b in Γ⁺ but follows it in Γ⁻ ("a below b")
//
// Pairs where b precedes a in Γ⁺ are handled symmetrically when a is
// processed later. Every pair has one block earlier in Γ⁺, so these two
// cases cover every pair: the later block takes its bound from the earlier.
//
// Complexity: O(n²), n = len(sp.RPlus).
func Decode(sp *SequencePair, cat *block.Catalog) (block.Placement, error) {
	if len(sp.RPlus) == 0 || len(sp.RPlus) != len(sp.RMinus) {
		return nil, fmt.Errorf("seqpair: %w: mismatched permutation lengths", fplerr.ErrDecodeFailure)
	}

	posPlus := make(map[string]int, len(sp.RPlus))
	for i, name := range sp.RPlus {
		posPlus[name] = i
	}
	posMinus := make(map[string]int, len(sp.RMinus))
	for i, name := range sp.RMinus {
		posMinus[name] = i
	}
	if len(posPlus) != len(sp.RPlus) || len(posMinus) != len(sp.RMinus) {
		return nil, fmt.Errorf("seqpair: %w: permutation contains duplicates", fplerr.ErrDecodeFailure)
	}

	placement := make(block.Placement, len(sp.RPlus))
	placed := make([]string, 0, len(sp.RPlus))

	for _, b := range sp.RPlus {
		variants, err := cat.Variants(b)
		if err != nil {
			return nil, fmt.Errorf("seqpair: %w", fplerr.ErrDecodeFailure)
		}
		idx, ok := sp.VariantIdx[b]
		if !ok || idx < 0 || idx >= len(variants) {
			return nil, fmt.Errorf("seqpair: %w: block %q has invalid variant index", fplerr.ErrDecodeFailure, b)
		}
		w, h := variants[idx].Width, variants[idx].Height

		var x, y float64
		for _, a := range placed {
			pa := placement[a]
			switch {
			case posPlus[a] < posPlus[b] && posMinus[a] < posMinus[b]:
				if pa.XMax > x {
					x = pa.XMax
				}
			case posPlus[a] < posPlus[b] && posMinus[a] > posMinus[b]:
				if pa.YMax > y {
					y = pa.YMax
				}
			}
		}

		placement[b] = block.PlacedBlock{Name: b, XMin: x, YMin: y, XMax: x + w, YMax: y + h}
		placed = append(placed, b)
	}

	return placement, nil
}
