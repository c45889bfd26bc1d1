package bstar_test

import (
	"testing"

	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/bstar"
	"github.com/katalvlaran/floorplan/fplerr"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, blocks []block.Block) *block.Catalog {
	t.Helper()
	cat, err := block.Load(blocks)
	require.NoError(t, err)
	return cat
}

func TestBuild_EmptyBlockSet(t *testing.T) {
	// Load already rejects an empty set, but Build defends independently.
	cat := &block.Catalog{}
	_, err := bstar.Build(cat)
	require.ErrorIs(t, err, fplerr.ErrEmptyBlockSet)
}

func TestBuild_SingleBlock(t *testing.T) {
	cat := mustCatalog(t, []block.Block{
		{Name: "A", Variants: []block.Variant{{Width: 5, Height: 3, IsDefault: true}}},
	})

	tree, err := bstar.Build(cat)
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 1)

	placement, err := bstar.Decode(tree)
	require.NoError(t, err)
	require.Equal(t, block.PlacedBlock{Name: "A", XMin: 0, YMin: 0, XMax: 5, YMax: 3}, placement["A"])
}

func TestDecode_TwoEqualSquaresSideBySide(t *testing.T) {
	// Two equal squares: ties broken by input order, so A becomes root and
	// B its x_child, sitting flush to A's right.
	cat := mustCatalog(t, []block.Block{
		{Name: "A", Variants: []block.Variant{{Width: 2, Height: 2, IsDefault: true}}},
		{Name: "B", Variants: []block.Variant{{Width: 2, Height: 2, IsDefault: true}}},
	})

	tree, err := bstar.Build(cat)
	require.NoError(t, err)

	placement, err := bstar.Decode(tree)
	require.NoError(t, err)

	require.Equal(t, block.PlacedBlock{Name: "A", XMin: 0, YMin: 0, XMax: 2, YMax: 2}, placement["A"])
	require.Equal(t, block.PlacedBlock{Name: "B", XMin: 2, YMin: 0, XMax: 4, YMax: 2}, placement["B"])
}

func TestDecode_ContourStairstep(t *testing.T) {
	// A={3,1} as root, B={1,3} as its x_child, C={2,2} as its y_child. The
	// tree is written out by hand because Build, sorting by area, would make
	// C the root. C sits on A's top edge; B's taller footprint lies outside
	// C's x-span [0,2), so the contour does not lift C above y=1.
	tree := &bstar.Tree{Root: 0, Nodes: []bstar.Node{
		{Name: "A", Width: 3, Height: 1, XChild: 1, YChild: 2, ParentIdx: -1},
		{Name: "B", Width: 1, Height: 3, XChild: -1, YChild: -1, ParentIdx: 0, IsXChild: true},
		{Name: "C", Width: 2, Height: 2, XChild: -1, YChild: -1, ParentIdx: 0},
	}}

	placement, err := bstar.Decode(tree)
	require.NoError(t, err)

	require.Equal(t, block.PlacedBlock{Name: "A", XMin: 0, YMin: 0, XMax: 3, YMax: 1}, placement["A"])
	require.Equal(t, block.PlacedBlock{Name: "B", XMin: 3, YMin: 0, XMax: 4, YMax: 3}, placement["B"])
	require.Equal(t, block.PlacedBlock{Name: "C", XMin: 0, YMin: 1, XMax: 2, YMax: 3}, placement["C"])

	var totalArea, usedArea float64
	var maxX, maxY float64
	for _, p := range placement {
		usedArea += p.Width() * p.Height()
		if p.XMax > maxX {
			maxX = p.XMax
		}
		if p.YMax > maxY {
			maxY = p.YMax
		}
	}
	totalArea = maxX * maxY
	require.Equal(t, 12.0, totalArea)
	require.Equal(t, 10.0, usedArea)
}

func TestDecode_NonOverlapInvariant(t *testing.T) {
	cat := mustCatalog(t, []block.Block{
		{Name: "A", Variants: []block.Variant{{Width: 4, Height: 2, IsDefault: true}}},
		{Name: "B", Variants: []block.Variant{{Width: 2, Height: 4, IsDefault: true}}},
		{Name: "C", Variants: []block.Variant{{Width: 3, Height: 3, IsDefault: true}}},
		{Name: "D", Variants: []block.Variant{{Width: 1, Height: 1, IsDefault: true}}},
		{Name: "E", Variants: []block.Variant{{Width: 5, Height: 1, IsDefault: true}}},
	})

	tree, err := bstar.Build(cat)
	require.NoError(t, err)

	placement, err := bstar.Decode(tree)
	require.NoError(t, err)
	require.Len(t, placement, 5)

	names := make([]string, 0, len(placement))
	for name := range placement {
		names = append(names, name)
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := placement[names[i]], placement[names[j]]
			overlap := a.XMin < b.XMax && b.XMin < a.XMax && a.YMin < b.YMax && b.YMin < a.YMax
			require.False(t, overlap, "%s and %s overlap", names[i], names[j])
		}
	}

	var minX, minY float64 = placement[names[0]].XMin, placement[names[0]].YMin
	for _, p := range placement {
		if p.XMin < minX {
			minX = p.XMin
		}
		if p.YMin < minY {
			minY = p.YMin
		}
	}
	require.Equal(t, 0.0, minX)
	require.Equal(t, 0.0, minY)
}
