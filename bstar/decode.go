package bstar

import (
	"math"

	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/contour"
	"github.com/katalvlaran/floorplan/fplerr"
)

// Decode visits t's nodes in slice order (breadth-first for a tree from
// Build) against a fresh contour, producing a non-overlapping Placement and
// updating each Node's placed rectangle in place:
//
//   - root: XMin=0, YMin=0.
//   - x_child of parent P: XMin=P.XMax, YMin=contour.HeightOver(XMin,XMin+Width).
//   - y_child of parent P: XMin=P.XMin, YMin=max(P.YMax, contour.HeightOver(...)).
//
// Relies on Tree's invariant that ParentIdx < the child's own index, so nodes
// may be visited in slice order.
//
// Complexity: O(n) Insert/HeightOver calls; HeightOver is O(k) and Insert
// O(k log k) in the current contour size k — O(n) total segments bound the
// work at O(n² log n) worst case.
func Decode(t *Tree) (block.Placement, error) {
	if len(t.Nodes) == 0 {
		return nil, fplerr.ErrDecodeFailure
	}

	c := contour.New()
	placement := make(block.Placement, len(t.Nodes))

	for i := range t.Nodes {
		n := &t.Nodes[i]

		switch {
		case i == t.Root:
			n.XMin, n.YMin = 0, 0
		case n.IsXChild:
			if n.ParentIdx < 0 || n.ParentIdx >= len(t.Nodes) {
				return nil, fplerr.ErrDecodeFailure
			}
			p := &t.Nodes[n.ParentIdx]
			n.XMin = p.XMax
			n.YMin = c.HeightOver(n.XMin, n.XMin+n.Width)
		default:
			if n.ParentIdx < 0 || n.ParentIdx >= len(t.Nodes) {
				return nil, fplerr.ErrDecodeFailure
			}
			p := &t.Nodes[n.ParentIdx]
			n.XMin = p.XMin
			n.YMin = math.Max(p.YMax, c.HeightOver(n.XMin, n.XMin+n.Width))
		}

		n.XMax = n.XMin + n.Width
		n.YMax = n.YMin + n.Height

		if math.IsNaN(n.XMax) || math.IsNaN(n.YMax) || math.IsInf(n.XMax, 0) || math.IsInf(n.YMax, 0) {
			return nil, fplerr.ErrDecodeFailure
		}

		c.Insert(n.XMin, n.XMax, n.YMax)
		placement[n.Name] = block.PlacedBlock{Name: n.Name, XMin: n.XMin, YMin: n.YMin, XMax: n.XMax, YMax: n.YMax}
	}

	return placement, nil
}
