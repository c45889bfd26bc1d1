// Package bstar implements the B*-tree topological floorplan representation:
// a binary tree of placed blocks decoded into a compacted, non-overlapping
// placement via the contour package.
//
// Tree is stored as an arena of Nodes addressed by integer index rather than
// as linked pointer nodes, so a candidate clone for simulated annealing is a
// single bulk slice copy.
//
// Construction (Build) sorts blocks by area descending and fills the tree
// breadth-first, x_child slot before y_child slot. Decode visits nodes in
// slice order against a fresh contour: for a tree from Build that is the
// same breadth-first order; a tree rebuilt by fplanio.DTOToTree is in
// depth-first preorder and is placed in that order. Two neighbor moves are
// defined for simulated annealing: M1 (variant change) and M2 (swap). A
// third move, relocating a node to a different parent slot, is deliberately
// not implemented: preserving the non-overlap invariant across an arbitrary
// subtree relocation is unresolved, so RandomMove only chooses between M1
// and M2.
package bstar
