// Package evaluate scores a Placement: bounding-box area, used area, dead
// space, aspect ratio, and a composite fitness value. The two topological
// engines use different aspect-ratio conventions and weight defaults, so
// this package exposes one Metrics computation shared by both plus two
// separate fitness functions, FitnessBStar and FitnessSeqPair, rather than
// unifying them: the conventions are kept distinct because they drive
// different penalty shapes.
package evaluate
