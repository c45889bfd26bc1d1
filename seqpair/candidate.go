package seqpair

import (
	"math/rand"

	"github.com/katalvlaran/floorplan/anneal"
	"github.com/katalvlaran/floorplan/block"
)

// Candidate adapts a SequencePair to anneal.Candidate, carrying the Catalog
// reference S3 needs to enumerate alternate variants.
type Candidate struct {
	Pair    *SequencePair
	Catalog *block.Catalog
}

// NewCandidate wraps pair for use with anneal.Run.
func NewCandidate(pair *SequencePair, cat *block.Catalog) *Candidate {
	return &Candidate{Pair: pair, Catalog: cat}
}

// Clone implements anneal.Candidate.
func (c *Candidate) Clone() anneal.Candidate {
	return &Candidate{Pair: c.Pair.Clone(), Catalog: c.Catalog}
}

// Mutate implements anneal.Candidate via RandomMove (S1/S2/S3).
func (c *Candidate) Mutate(rng *rand.Rand) {
	_ = RandomMove(c.Pair, c.Catalog, rng)
}

// DecodeCandidate adapts Decode to anneal.DecodeFunc.
func DecodeCandidate(candidate anneal.Candidate) (block.Placement, error) {
	c := candidate.(*Candidate)
	return Decode(c.Pair, c.Catalog)
}
