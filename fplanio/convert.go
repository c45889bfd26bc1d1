package fplanio

import (
	"fmt"

	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/bstar"
	"github.com/katalvlaran/floorplan/fplerr"
	"github.com/katalvlaran/floorplan/seqpair"
)

// BlocksToCatalog converts the wire block list into a validated Catalog.
func BlocksToCatalog(dtos []BlockDTO) (*block.Catalog, error) {
	raw := make([]block.Block, len(dtos))
	for i, d := range dtos {
		variants := make([]block.Variant, len(d.Variants))
		for j, v := range d.Variants {
			variants[j] = block.Variant{Width: v.Width, Height: v.Height, IsDefault: v.IsDefault}
		}
		raw[i] = block.Block{Name: d.Name, DeviceType: d.DeviceType, Symmetry: d.Symmetry, Variants: variants}
	}
	return block.Load(raw)
}

// PlacementToDTO converts a Placement into its wire form.
func PlacementToDTO(p block.Placement) map[string]PlacedDTO {
	out := make(map[string]PlacedDTO, len(p))
	for name, pb := range p {
		out[name] = PlacedDTO{
			XMin: pb.XMin, YMin: pb.YMin, XMax: pb.XMax, YMax: pb.YMax,
			Width: pb.Width(), Height: pb.Height(),
		}
	}
	return out
}

// TreeToDTO converts a bstar.Tree's arena into the nested NodeDTO shape.
func TreeToDTO(t *bstar.Tree) *BStarTreeDTO {
	if t == nil || len(t.Nodes) == 0 {
		return nil
	}
	return &BStarTreeDTO{Root: nodeToDTO(t, t.Root)}
}

func nodeToDTO(t *bstar.Tree, idx int) *NodeDTO {
	if idx < 0 || idx >= len(t.Nodes) {
		return nil
	}
	n := t.Nodes[idx]
	dto := &NodeDTO{
		Name: n.Name, XMin: n.XMin, YMin: n.YMin, XMax: n.XMax, YMax: n.YMax,
		VariantIndex: n.VariantIdx,
	}
	if n.XChild >= 0 {
		dto.XChild = nodeToDTO(t, n.XChild)
	}
	if n.YChild >= 0 {
		dto.YChild = nodeToDTO(t, n.YChild)
	}
	return dto
}

// DTOToTree rebuilds a bstar.Tree's arena from a nested NodeDTO, preserving
// the parent/child geometry a prior stage produced. Returns
// fplerr.ErrInvalidInput if dto or dto.Root is nil.
func DTOToTree(dto *BStarTreeDTO) (*bstar.Tree, error) {
	if dto == nil || dto.Root == nil {
		return nil, fmt.Errorf("fplanio: %w: missing bstar_tree.root", fplerr.ErrInvalidInput)
	}

	t := &bstar.Tree{Root: 0}
	flattenNode(t, dto.Root, -1, false)

	return t, nil
}

// flattenNode appends dto and its subtree to t.Nodes in depth-first
// preorder (x_child subtree before y_child subtree). A child's index always
// exceeds its parent's, so Decode's single forward pass still applies, but
// the order differs from the breadth-first order bstar.Build creates, so
// Decode places a rebuilt tree's nodes in depth-first order.
func flattenNode(t *bstar.Tree, dto *NodeDTO, parentIdx int, isXChild bool) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, bstar.Node{
		Name:       dto.Name,
		VariantIdx: dto.VariantIndex,
		Width:      dto.XMax - dto.XMin,
		Height:     dto.YMax - dto.YMin,
		XMin:       dto.XMin, YMin: dto.YMin, XMax: dto.XMax, YMax: dto.YMax,
		XChild: -1, YChild: -1,
		ParentIdx: parentIdx, IsXChild: isXChild,
	})

	if dto.XChild != nil {
		childIdx := flattenNode(t, dto.XChild, idx, true)
		t.Nodes[idx].XChild = childIdx
	}
	if dto.YChild != nil {
		childIdx := flattenNode(t, dto.YChild, idx, false)
		t.Nodes[idx].YChild = childIdx
	}

	return idx
}

// NewPlacementInfo summarizes a freshly computed Placement: block count and
// bounding-box dimensions, tagged with the method that produced it.
func NewPlacementInfo(placement block.Placement, method string) *PlacementInfo {
	var maxX, maxY float64
	for _, p := range placement {
		if p.XMax > maxX {
			maxX = p.XMax
		}
		if p.YMax > maxY {
			maxY = p.YMax
		}
	}
	return &PlacementInfo{
		TotalBlocks:     len(placement),
		TotalWidth:      maxX,
		TotalHeight:     maxY,
		PlacementMethod: method,
	}
}

// SequencePairToDTO converts a SequencePair plus its decoded Placement into
// the wire form.
func SequencePairToDTO(sp *seqpair.SequencePair, placement block.Placement) *SequencePairDTO {
	return &SequencePairDTO{
		RPlus:     append([]string{}, sp.RPlus...),
		RMinus:    append([]string{}, sp.RMinus...),
		Placement: PlacementToDTO(placement),
	}
}

// DTOToSequencePair rebuilds a SequencePair from the wire form. The wire
// shape carries no per-block variant index (the source's placement dict
// only records geometry), so every block defaults to cat's default variant;
// a resumed run that previously selected a non-default variant loses that
// choice, same as the source's own round-trip.
func DTOToSequencePair(dto *SequencePairDTO, cat *block.Catalog) (*seqpair.SequencePair, error) {
	if dto == nil {
		return nil, fmt.Errorf("fplanio: %w: missing sequence_pair", fplerr.ErrInvalidInput)
	}

	variantIdx := make(map[string]int, len(dto.RPlus))
	for _, name := range dto.RPlus {
		variants, err := cat.Variants(name)
		if err != nil {
			return nil, fmt.Errorf("fplanio: %w", err)
		}
		def, err := cat.DefaultVariant(name)
		if err != nil {
			return nil, fmt.Errorf("fplanio: %w", err)
		}
		idx := 0
		for i, v := range variants {
			if v == def {
				idx = i
				break
			}
		}
		variantIdx[name] = idx
	}

	return &seqpair.SequencePair{
		RPlus:      append([]string{}, dto.RPlus...),
		RMinus:     append([]string{}, dto.RMinus...),
		VariantIdx: variantIdx,
	}, nil
}
