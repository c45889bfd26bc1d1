// Package anneal implements the geometric-cooling simulated annealing driver
// shared by the B*-tree (bstar) and Sequence-Pair (seqpair) engines.
//
// The driver knows nothing about trees or permutations: it perturbs an
// opaque Candidate, scores it via a caller-supplied fitness function, and
// accepts/rejects under the standard Metropolis criterion. Both bstar and
// seqpair adapt their representation to the Candidate interface so Run is
// written once and reused by both engines' annealing loops.
package anneal
