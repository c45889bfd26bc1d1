package fplanio

import "github.com/katalvlaran/floorplan/result"

// VariantDTO mirrors block.Variant on the wire.
type VariantDTO struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	IsDefault bool    `json:"is_default,omitempty"`
}

// BlockDTO mirrors block.Block on the wire. DeviceType and Symmetry are
// opaque passthrough fields the core never interprets.
type BlockDTO struct {
	Name       string                 `json:"name"`
	DeviceType string                 `json:"device_type,omitempty"`
	Symmetry   map[string]interface{} `json:"symmetry,omitempty"`
	Variants   []VariantDTO           `json:"variants"`
}

// NodeDTO mirrors one bstar.Node as a nested tree, following the source's
// BStarTreeNode.to_dict() shape. An absent child is a nil pointer and is
// omitted from the JSON rather than written as an empty object.
//
// VariantIndex is an (EXPANSION) addition beyond the original nested-dict
// shape: the source never persists which variant a resumed node used, so a
// round-tripped tree would silently lose M1's choice. Geometry
// (XMin/YMin/XMax/YMax) alone still fully determines Width/Height for
// decode purposes; VariantIndex only matters if a later mutation calls
// MutateVariant on a resumed node, so it defaults to 0 when absent.
type NodeDTO struct {
	Name         string   `json:"name"`
	XMin         float64  `json:"x_min"`
	YMin         float64  `json:"y_min"`
	XMax         float64  `json:"x_max"`
	YMax         float64  `json:"y_max"`
	VariantIndex int      `json:"variant_index,omitempty"`
	XChild       *NodeDTO `json:"x_child,omitempty"`
	YChild       *NodeDTO `json:"y_child,omitempty"`
}

// BStarTreeDTO mirrors the input/output record's "bstar_tree" field.
type BStarTreeDTO struct {
	Root          *NodeDTO       `json:"root"`
	PlacementInfo *PlacementInfo `json:"placement_info,omitempty"`
}

// PlacementInfo is a summary of a freshly built (non-annealed) placement,
// emitted alongside the root tree/sequence by the init-stage commands.
// Resumed trees decoded from a prior anneal stage carry no PlacementInfo.
type PlacementInfo struct {
	TotalBlocks     int     `json:"total_blocks"`
	TotalWidth      float64 `json:"total_width"`
	TotalHeight     float64 `json:"total_height"`
	PlacementMethod string  `json:"placement_method"`
}

// PlacedDTO mirrors block.PlacedBlock on the wire, carrying width/height
// redundantly alongside the bounding coordinates exactly as the source does.
type PlacedDTO struct {
	XMin   float64 `json:"x_min"`
	YMin   float64 `json:"y_min"`
	XMax   float64 `json:"x_max"`
	YMax   float64 `json:"y_max"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SequencePairDTO mirrors the input/output record's "sequence_pair" field.
type SequencePairDTO struct {
	RPlus         []string             `json:"r_plus"`
	RMinus        []string             `json:"r_minus"`
	Placement     map[string]PlacedDTO `json:"placement"`
	PlacementInfo *PlacementInfo       `json:"placement_info,omitempty"`
}

// InputRecord is the top-level stdin shape.
type InputRecord struct {
	Blocks       []BlockDTO       `json:"blocks"`
	BStarTree    *BStarTreeDTO    `json:"bstar_tree,omitempty"`
	SequencePair *SequencePairDTO `json:"sequence_pair,omitempty"`
}

// OutputRecord echoes the input plus the fields a pipeline stage produced;
// the chosen representation field is overwritten with the optimized state.
type OutputRecord struct {
	Blocks              []BlockDTO                 `json:"blocks"`
	BStarTree           *BStarTreeDTO              `json:"bstar_tree,omitempty"`
	SequencePair        *SequencePairDTO           `json:"sequence_pair,omitempty"`
	OptimizationResults *result.OptimizationResult `json:"optimization_results,omitempty"`
}

// ErrorRecord is emitted on fatal failures in place of an OutputRecord.
type ErrorRecord struct {
	Error string `json:"error"`
}
