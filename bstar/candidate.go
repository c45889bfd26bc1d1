package bstar

import (
	"math/rand"

	"github.com/katalvlaran/floorplan/anneal"
	"github.com/katalvlaran/floorplan/block"
)

// Candidate adapts a Tree to anneal.Candidate, carrying the Catalog reference
// M1 needs to enumerate alternate variants. Mutation errors (e.g. an unknown
// block name, which cannot happen for a Tree built by Build from the same
// Catalog) are swallowed into a no-op move rather than panicking, keeping
// Mutate's signature aligned with anneal.Candidate.
type Candidate struct {
	Tree    *Tree
	Catalog *block.Catalog
}

// NewCandidate wraps tree for use with anneal.Run.
func NewCandidate(tree *Tree, cat *block.Catalog) *Candidate {
	return &Candidate{Tree: tree, Catalog: cat}
}

// Clone implements anneal.Candidate.
func (c *Candidate) Clone() anneal.Candidate {
	return &Candidate{Tree: c.Tree.Clone(), Catalog: c.Catalog}
}

// Mutate implements anneal.Candidate via RandomMove (M1/M2).
func (c *Candidate) Mutate(rng *rand.Rand) {
	_ = RandomMove(c.Tree, c.Catalog, rng)
}

// DecodeCandidate adapts Decode to anneal.DecodeFunc.
func DecodeCandidate(candidate anneal.Candidate) (block.Placement, error) {
	return Decode(candidate.(*Candidate).Tree)
}
