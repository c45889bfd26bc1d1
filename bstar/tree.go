package bstar

import (
	"sort"

	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/fplerr"
)

// noChild marks the absence of an x_child/y_child in Node and Node.ParentIdx
// for the root.
const noChild = -1

// Node is one placed block in the B*-tree arena.
//
// XChild is the index of the right-adjacent successor sharing the parent's
// right edge; YChild is the index of the above-successor sharing the parent's
// left edge. Both are noChild when absent. ParentIdx/IsXChild record which
// slot this node occupies in its parent, so Decode can apply the correct
// placement rule without a second tree walk.
type Node struct {
	Name       string
	VariantIdx int
	Width      float64
	Height     float64

	XMin, YMin float64
	XMax, YMax float64

	XChild, YChild int
	ParentIdx      int
	IsXChild       bool
}

// Tree is an arena-of-nodes B*-tree. Nodes[Root] is the tree root; every other
// node is reachable from it via XChild/YChild links. Build creates nodes in
// breadth-first order. Decode relies only on a node's ParentIdx being a
// lower index than its own, so a single forward pass over Nodes suffices,
// and it places nodes in slice order. A tree rebuilt by fplanio.DTOToTree
// is in depth-first preorder instead and is placed in that order.
type Tree struct {
	Nodes []Node
	Root  int
}

// Clone returns a deep copy; mutating the clone never affects t.
//
// Complexity: O(n), a single bulk slice copy.
func (t *Tree) Clone() *Tree {
	out := &Tree{Root: t.Root, Nodes: make([]Node, len(t.Nodes))}
	copy(out.Nodes, t.Nodes)
	return out
}

// sortedBlock is the area-descending working record Build consumes.
type sortedBlock struct {
	name       string
	variantIdx int
	width      float64
	height     float64
}

// Build constructs the initial B*-tree from cat's default variants.
//
// Algorithm: sort blocks by area descending (ties broken by catalog/input
// order — sort.SliceStable); the largest becomes the root at the origin;
// remaining blocks fill the tree breadth-first, x_child before y_child at
// each node, advancing the BFS frontier as slots open up.
//
// Returns fplerr.ErrEmptyBlockSet if cat has no blocks.
//
// Complexity: O(n log n) for the sort, O(n) for the BFS fill.
func Build(cat *block.Catalog) (*Tree, error) {
	names := cat.Names()
	if len(names) == 0 {
		return nil, fplerr.ErrEmptyBlockSet
	}

	infos := make([]sortedBlock, 0, len(names))
	for _, name := range names {
		variants, err := cat.Variants(name)
		if err != nil {
			return nil, err
		}
		def, err := cat.DefaultVariant(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, sortedBlock{
			name:       name,
			variantIdx: defaultVariantIndex(variants, def),
			width:      def.Width,
			height:     def.Height,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].width*infos[i].height > infos[j].width*infos[j].height
	})

	t := &Tree{Nodes: make([]Node, 0, len(infos)), Root: 0}
	t.Nodes = append(t.Nodes, newNode(infos[0], noChild, false))

	queue := []int{0}
	next := 1
	for len(queue) > 0 && next < len(infos) {
		curIdx := queue[0]
		queue = queue[1:]

		if next < len(infos) {
			childIdx := len(t.Nodes)
			t.Nodes = append(t.Nodes, newNode(infos[next], curIdx, true))
			t.Nodes[curIdx].XChild = childIdx
			queue = append(queue, childIdx)
			next++
		}
		if next < len(infos) {
			childIdx := len(t.Nodes)
			t.Nodes = append(t.Nodes, newNode(infos[next], curIdx, false))
			t.Nodes[curIdx].YChild = childIdx
			queue = append(queue, childIdx)
			next++
		}
	}

	return t, nil
}

func newNode(info sortedBlock, parentIdx int, isXChild bool) Node {
	return Node{
		Name:       info.name,
		VariantIdx: info.variantIdx,
		Width:      info.width,
		Height:     info.height,
		XChild:     noChild,
		YChild:     noChild,
		ParentIdx:  parentIdx,
		IsXChild:   isXChild,
	}
}

// defaultVariantIndex finds def's position in variants by value; falls back
// to 0 if not found (which cannot happen given how def is produced by
// Catalog.DefaultVariant, but a defensive fallback keeps Build total).
func defaultVariantIndex(variants []block.Variant, def block.Variant) int {
	for i, v := range variants {
		if v == def {
			return i
		}
	}
	return 0
}
