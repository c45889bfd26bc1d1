// Package contour implements the skyline structure the B*-tree engine (bstar)
// uses to find the lowest non-overlapping y position for the next block along
// an x-interval. The Sequence-Pair engine (seqpair) does not use it.
//
// A Contour is an ordered, non-overlapping list of Segments covering the x-axis
// projection of everything placed so far. HeightOver answers "what's the highest
// top already occupying this x-range"; Insert records a newly placed rectangle's
// top edge, splitting and coalescing existing segments as needed.
package contour
