package seqpair

import (
	"math/rand"

	"github.com/katalvlaran/floorplan/block"
)

// MutateSwapPlus is move S1: swap two distinct, uniformly random positions
// within Γ⁺. A no-op when fewer than two blocks exist.
func MutateSwapPlus(sp *SequencePair, rng *rand.Rand) {
	swapTwoPositions(sp.RPlus, rng)
}

// MutateSwapMinus is move S2: swap two distinct, uniformly random positions
// within Γ⁻. A no-op when fewer than two blocks exist.
func MutateSwapMinus(sp *SequencePair, rng *rand.Rand) {
	swapTwoPositions(sp.RMinus, rng)
}

func swapTwoPositions(seq []string, rng *rand.Rand) {
	if len(seq) < 2 {
		return
	}
	i := rng.Intn(len(seq))
	j := rng.Intn(len(seq))
	for j == i {
		j = rng.Intn(len(seq))
	}
	seq[i], seq[j] = seq[j], seq[i]
}

// MutateVariant is move S3: pick a uniformly random block and switch it to a
// uniformly random different variant, if more than one exists. A no-op for
// single-variant blocks.
func MutateVariant(sp *SequencePair, cat *block.Catalog, rng *rand.Rand) error {
	name := sp.RPlus[rng.Intn(len(sp.RPlus))]
	variants, err := cat.Variants(name)
	if err != nil {
		return err
	}
	if len(variants) < 2 {
		return nil
	}

	cur := sp.VariantIdx[name]
	next := rng.Intn(len(variants))
	for next == cur {
		next = rng.Intn(len(variants))
	}
	sp.VariantIdx[name] = next

	return nil
}

// RandomMove applies one of S1, S2, S3 chosen uniformly at random.
func RandomMove(sp *SequencePair, cat *block.Catalog, rng *rand.Rand) error {
	switch rng.Intn(3) {
	case 0:
		MutateSwapPlus(sp, rng)
	case 1:
		MutateSwapMinus(sp, rng)
	default:
		return MutateVariant(sp, cat, rng)
	}
	return nil
}
