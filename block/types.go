package block

import (
	"fmt"
	"math"

	"github.com/katalvlaran/floorplan/fplerr"
)

// Variant is one legal rectangular shape a Block may assume.
type Variant struct {
	// Width and Height are the variant's dimensions. Load requires at least one
	// variant per block with positive, finite Width and Height; the block's
	// other variants are not checked.
	Width, Height float64

	// IsDefault marks the variant a block resolves to when no explicit choice is made.
	// At most one variant per block should set this; if none do, the first is used.
	IsDefault bool
}

// Block is a named rectangular module with one or more shape Variants.
type Block struct {
	// Name uniquely identifies the block within a Catalog.
	Name string

	// DeviceType is an opaque passthrough attribute; the core never interprets it.
	DeviceType string

	// Symmetry is an opaque passthrough attribute (e.g. analog symmetry-group hints);
	// preserved but never optimized, per spec.
	Symmetry map[string]interface{}

	// Variants is the ordered list of shapes this block may take. Order is preserved
	// from the input; Variants(name) returns it unchanged.
	Variants []Variant
}

// PlacedBlock is a Block instance fixed at a rectangle in the plane.
//
// Invariant: XMax-XMin equals the chosen variant's Width, YMax-YMin its Height.
type PlacedBlock struct {
	Name                 string
	XMin, YMin           float64
	XMax, YMax           float64
}

// Width returns XMax-XMin.
func (p PlacedBlock) Width() float64 { return p.XMax - p.XMin }

// Height returns YMax-YMin.
func (p PlacedBlock) Height() float64 { return p.YMax - p.YMin }

// Placement maps block name to its placed rectangle.
type Placement map[string]PlacedBlock

// Catalog is an immutable, validated collection of Blocks, keyed by name while
// preserving the input order for deterministic traversal.
type Catalog struct {
	order  []string
	blocks map[string]Block
}

// Load validates raw and returns an immutable Catalog.
//
// Validation:
//   - raw must be non-empty (else fplerr.ErrEmptyBlockSet).
//   - every block must have a non-empty Name (else fplerr.ErrInvalidInput).
//   - every block must have at least one Variant with positive, finite dimensions
//     (else fplerr.ErrMalformedVariant).
//
// Complexity: O(n·v) where v is the max variants per block.
func Load(raw []Block) (*Catalog, error) {
	if len(raw) == 0 {
		return nil, fplerr.ErrEmptyBlockSet
	}

	cat := &Catalog{
		order:  make([]string, 0, len(raw)),
		blocks: make(map[string]Block, len(raw)),
	}

	for _, b := range raw {
		if b.Name == "" {
			return nil, fmt.Errorf("block: %w: block missing name", fplerr.ErrInvalidInput)
		}
		if _, dup := cat.blocks[b.Name]; dup {
			return nil, fmt.Errorf("block: %w: duplicate block name %q", fplerr.ErrInvalidInput, b.Name)
		}
		if !hasValidVariant(b.Variants) {
			return nil, fmt.Errorf("block: %w: block %q has no valid variant", fplerr.ErrMalformedVariant, b.Name)
		}

		cat.order = append(cat.order, b.Name)
		cat.blocks[b.Name] = b
	}

	return cat, nil
}

// hasValidVariant reports whether variants contains at least one with positive,
// finite Width and Height.
func hasValidVariant(variants []Variant) bool {
	for _, v := range variants {
		if isPositiveFinite(v.Width) && isPositiveFinite(v.Height) {
			return true
		}
	}
	return false
}

func isPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// DefaultVariant returns the variant flagged IsDefault for name, or the first
// variant if none is flagged. Returns fplerr.ErrUnknownBlock if name is absent.
func (c *Catalog) DefaultVariant(name string) (Variant, error) {
	b, ok := c.blocks[name]
	if !ok {
		return Variant{}, fmt.Errorf("block: %w: %q", fplerr.ErrUnknownBlock, name)
	}
	for _, v := range b.Variants {
		if v.IsDefault {
			return v, nil
		}
	}
	return b.Variants[0], nil
}

// Variants returns the ordered variant list for name, preserving input order.
// Returns fplerr.ErrUnknownBlock if name is absent.
func (c *Catalog) Variants(name string) ([]Variant, error) {
	b, ok := c.blocks[name]
	if !ok {
		return nil, fmt.Errorf("block: %w: %q", fplerr.ErrUnknownBlock, name)
	}
	return b.Variants, nil
}

// Block returns the full Block record for name.
// Returns fplerr.ErrUnknownBlock if name is absent.
func (c *Catalog) Block(name string) (Block, error) {
	b, ok := c.blocks[name]
	if !ok {
		return Block{}, fmt.Errorf("block: %w: %q", fplerr.ErrUnknownBlock, name)
	}
	return b, nil
}

// Names returns block names in input order. The returned slice is a copy;
// mutating it does not affect the Catalog.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of blocks in the catalog.
func (c *Catalog) Len() int { return len(c.order) }
