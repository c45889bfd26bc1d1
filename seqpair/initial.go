package seqpair

import (
	"fmt"

	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/fplerr"
)

// NewInitial builds the deterministic starting SequencePair for cat: Γ⁺ is
// the catalog's input order, Γ⁻ is its reverse, and every block starts at
// its default variant. This pair is trivially feasible since Γ⁻ being the
// exact reverse of Γ⁺ means every pair of blocks relates by the "below"
// case (Murata et al., DAC'96; Balasa et al., DAC'99).
func NewInitial(cat *block.Catalog) (*SequencePair, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, fplerr.ErrEmptyBlockSet
	}

	plus := cat.Names()
	minus := make([]string, len(plus))
	for i, name := range plus {
		minus[len(plus)-1-i] = name
	}

	variantIdx := make(map[string]int, len(plus))
	for _, name := range plus {
		variants, err := cat.Variants(name)
		if err != nil {
			return nil, fmt.Errorf("seqpair: %w", err)
		}
		def, err := cat.DefaultVariant(name)
		if err != nil {
			return nil, fmt.Errorf("seqpair: %w", err)
		}
		variantIdx[name] = defaultVariantIndex(variants, def)
	}

	return &SequencePair{RPlus: plus, RMinus: minus, VariantIdx: variantIdx}, nil
}

// defaultVariantIndex finds def's position within variants by value equality
// (Variant has no map field, so it is directly comparable).
func defaultVariantIndex(variants []block.Variant, def block.Variant) int {
	for i, v := range variants {
		if v == def {
			return i
		}
	}
	return 0
}
