package seqpair_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/floorplan/anneal"
	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/seqpair"
	"github.com/stretchr/testify/require"
)

func TestMutateSwapPlus_PreservesMultiset(t *testing.T) {
	cat := mustCatalog(t, sq("A", 2, 1), sq("B", 2, 1), sq("C", 2, 1))
	sp, err := seqpair.NewInitial(cat)
	require.NoError(t, err)

	before := append([]string{}, sp.RPlus...)
	rng := rand.New(rand.NewSource(1))
	seqpair.MutateSwapPlus(sp, rng)

	require.ElementsMatch(t, before, sp.RPlus)
}

func TestMutateSwapMinus_PreservesMultiset(t *testing.T) {
	cat := mustCatalog(t, sq("A", 2, 1), sq("B", 2, 1), sq("C", 2, 1))
	sp, err := seqpair.NewInitial(cat)
	require.NoError(t, err)

	before := append([]string{}, sp.RMinus...)
	rng := rand.New(rand.NewSource(1))
	seqpair.MutateSwapMinus(sp, rng)

	require.ElementsMatch(t, before, sp.RMinus)
}

func TestMutateVariant_ChangesDimensions(t *testing.T) {
	// A block with two variants, (4,1) and (1,4): switching variant must
	// change its placed rectangle's dimensions accordingly.
	b := block.Block{Name: "A", Variants: []block.Variant{
		{Width: 4, Height: 1, IsDefault: true},
		{Width: 1, Height: 4},
	}}
	cat := mustCatalog(t, b)
	sp, err := seqpair.NewInitial(cat)
	require.NoError(t, err)
	require.Equal(t, 0, sp.VariantIdx["A"])

	rng := rand.New(rand.NewSource(1))
	require.NoError(t, seqpair.MutateVariant(sp, cat, rng))
	require.Equal(t, 1, sp.VariantIdx["A"])

	placement, err := seqpair.Decode(sp, cat)
	require.NoError(t, err)
	require.Equal(t, 1.0, placement["A"].Width())
	require.Equal(t, 4.0, placement["A"].Height())
}

func TestMutateVariant_SingleVariantIsNoop(t *testing.T) {
	cat := mustCatalog(t, sq("A", 2, 1))
	sp, err := seqpair.NewInitial(cat)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	require.NoError(t, seqpair.MutateVariant(sp, cat, rng))
	require.Equal(t, 0, sp.VariantIdx["A"])
}

func TestCandidate_CloneIsIndependent(t *testing.T) {
	cat := mustCatalog(t, sq("A", 2, 1), sq("B", 2, 1))
	sp, err := seqpair.NewInitial(cat)
	require.NoError(t, err)

	c := seqpair.NewCandidate(sp, cat)
	clone := c.Clone().(*seqpair.Candidate)
	clone.Pair.RPlus[0], clone.Pair.RPlus[1] = clone.Pair.RPlus[1], clone.Pair.RPlus[0]

	require.NotEqual(t, c.Pair.RPlus, clone.Pair.RPlus)
}

func TestDecodeCandidate_ImplementsAnnealDecodeFunc(t *testing.T) {
	var _ anneal.DecodeFunc = seqpair.DecodeCandidate
}
