// Package seqpair implements the Sequence-Pair topological floorplan
// representation: two permutations of the block set (Γ⁺, Γ⁻) whose pairwise
// ordering encodes a horizontal/vertical relation between every pair of
// blocks, decoded by an O(n²) longest-path-style scan.
//
// The initial pair (Γ⁺ = catalog order, Γ⁻ = its reverse) is always feasible:
// every distinct pair of blocks satisfies exactly one of the four relative
// orderings by construction (left-of, right-of, below, above), and every
// neighbor move (S1/S2/S3) preserves that feasibility since it only permutes
// positions or swaps a variant index.
package seqpair
