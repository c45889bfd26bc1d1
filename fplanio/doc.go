// Package fplanio is the JSON-shaped wire boundary between the pipeline's
// cmd stages: InputRecord, OutputRecord, and ErrorRecord DTOs, plus
// conversions to and
// from the typed block/bstar/seqpair/result values the core operates on.
// Nothing in this package touches contour, B*-tree, Sequence-Pair, evaluator,
// or SA internals — it only marshals and unmarshals; the core stays
// importable with zero JSON awareness.
package fplanio
