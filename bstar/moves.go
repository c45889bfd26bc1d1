package bstar

import (
	"math/rand"

	"github.com/katalvlaran/floorplan/block"
)

// MutateVariant is move M1: pick a uniformly random node, and if it has more
// than one shape variant, switch it to a different one chosen uniformly at
// random. A single-variant node is left unchanged (a no-op, not an error).
func MutateVariant(t *Tree, cat *block.Catalog, rng *rand.Rand) error {
	if len(t.Nodes) == 0 {
		return nil
	}

	n := &t.Nodes[rng.Intn(len(t.Nodes))]
	variants, err := cat.Variants(n.Name)
	if err != nil {
		return err
	}
	if len(variants) < 2 {
		return nil
	}

	choices := make([]int, 0, len(variants)-1)
	for i := range variants {
		if i != n.VariantIdx {
			choices = append(choices, i)
		}
	}

	newIdx := choices[rng.Intn(len(choices))]
	n.VariantIdx = newIdx
	n.Width = variants[newIdx].Width
	n.Height = variants[newIdx].Height

	return nil
}

// MutateSwap is move M2: pick two distinct nodes uniformly at random and
// swap their Name/VariantIdx/Width/Height, leaving each node's
// tree position (ParentIdx, IsXChild, XChild, YChild) untouched. A tree with
// fewer than two nodes is left unchanged.
func MutateSwap(t *Tree, rng *rand.Rand) {
	n := len(t.Nodes)
	if n < 2 {
		return
	}

	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	a, b := &t.Nodes[i], &t.Nodes[j]
	a.Name, b.Name = b.Name, a.Name
	a.VariantIdx, b.VariantIdx = b.VariantIdx, a.VariantIdx
	a.Width, b.Width = b.Width, a.Width
	a.Height, b.Height = b.Height, a.Height
}

// RandomMove applies one uniformly chosen neighbor move: M1 or M2. A third
// move relocating a node to a different parent slot is deliberately not
// implemented (see the package doc comment).
func RandomMove(t *Tree, cat *block.Catalog, rng *rand.Rand) error {
	if rng.Intn(2) == 0 {
		return MutateVariant(t, cat, rng)
	}
	MutateSwap(t, rng)
	return nil
}
