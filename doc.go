// Package floorplan is a fixed-outline VLSI floorplanning toolkit: load a
// catalog of rectangular blocks, build an initial placement with either the
// B*-tree or Sequence-Pair representation, and refine it with simulated
// annealing.
//
// 🚀 What is floorplan?
//
//	A synchronous, zero-dependency-core library built around four stages:
//
//	  • Block catalog: validated, typed blocks with multiple shape variants
//	  • Topological engines: B*-tree (contour-based) and Sequence-Pair (O(n²) decode)
//	  • Evaluator: bounding-box area, dead space, aspect ratio, composite fitness
//	  • Annealer: one geometric-cooling SA driver, generic over either engine
//
// ✨ Why choose floorplan?
//
//   - Representation-agnostic SA — anneal.Run never inspects a Candidate's internals
//   - Cheap cloning               — arena-of-nodes B*-tree, slice-copy Sequence-Pair
//   - Explicit errors             — sentinel fplerr kinds, no swallowed exceptions
//   - Pure Go                     — no cgo, no hidden dependencies in the core
//
// Under the hood, everything is organized under focused subpackages:
//
//	block/     — Block, Variant, PlacedBlock, Catalog
//	contour/   — skyline structure the B*-tree decoder queries
//	bstar/     — B*-tree construction, decode, and neighbor moves
//	seqpair/   — Sequence-Pair construction, decode, and neighbor moves
//	evaluate/  — Metrics and the two engines' composite fitness functions
//	anneal/    — the shared simulated-annealing driver
//	result/    — rounds a run into its terminal optimization_results record
//	fplanio/   — JSON-shaped wire DTOs and conversions, kept out of the core
//	fplerr/    — shared sentinel error kinds
//	cmd/       — four stdin→stdout JSON pipeline stages
//
// Quick ASCII example (B*-tree placement of two equal squares):
//
//	┌───┬───┐
//	│ A │ B │
//	└───┴───┘
//
//	B sits as A's x_child: A=(0,0)-(2,2), B=(2,0)-(4,2).
//
//	go get github.com/katalvlaran/floorplan
package floorplan
