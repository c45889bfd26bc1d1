package anneal

import (
	"math/rand"

	"github.com/katalvlaran/floorplan/block"
)

// Candidate is an opaque, mutable solution representation (a bstar.Tree or a
// seqpair.SequencePair, each adapted to this interface by their own package).
// The SA driver never inspects a Candidate's internals — only Clone and
// Mutate — keeping Run representation-agnostic.
type Candidate interface {
	// Clone returns a deep copy; mutating the clone must never affect the
	// original. Clones must be explicit and cheap since Run clones once per
	// iteration.
	Clone() Candidate

	// Mutate applies one uniformly chosen neighbor move in place, using rng
	// for all random choices the move needs.
	Mutate(rng *rand.Rand)
}

// DecodeFunc turns a Candidate into a Placement. A non-nil error is treated
// by Run as a non-fatal ErrDecodeFailure for that single candidate (demoted
// to +Inf fitness) except when it occurs decoding the initial Candidate,
// which is fatal and returned to the caller.
type DecodeFunc func(Candidate) (block.Placement, error)

// FitnessFunc scores an already-decoded Placement. Engines supply this as a
// closure over their own evaluate.BStarOptions/evaluate.SeqPairOptions so Run
// stays oblivious to which convention is in play.
type FitnessFunc func(block.Placement) float64

// Options configures the geometric-cooling schedule.
//
// Zero value is not meaningful for T0/Tf/Alpha/MaxIters; use
// DefaultBStarOptions/DefaultSeqPairOptions and override fields as needed.
type Options struct {
	// T0 is the initial temperature.
	T0 float64

	// Tf is the final temperature; the loop stops once T<=Tf.
	Tf float64

	// Alpha is the geometric cooling ratio applied each iteration, in (0,1).
	Alpha float64

	// MaxIters bounds the number of iterations regardless of temperature.
	MaxIters int

	// Seed selects the deterministic RNG stream. nil means "no seed
	// supplied" — the driver picks a non-reproducible seed.
	Seed *int64
}

// DefaultBStarOptions returns the B*-tree engine's default cooling schedule.
func DefaultBStarOptions() Options {
	return Options{T0: 1000, Tf: 0.1, Alpha: 0.95, MaxIters: 500}
}

// DefaultSeqPairOptions returns the Sequence-Pair engine's default cooling
// schedule. Compared with DefaultBStarOptions it cools faster (Alpha 0.90
// rather than 0.95), stops at a higher final temperature (0.5 rather than
// 0.1), and has a higher iteration cap (1000 rather than 500).
func DefaultSeqPairOptions() Options {
	return Options{T0: 1000, Tf: 0.5, Alpha: 0.90, MaxIters: 1000}
}

// Result is the terminal snapshot Run returns: the best Candidate found, its
// decoded Placement and fitness, the iteration count actually reached, and
// whether the run ended via cancellation rather than the cooling schedule.
type Result struct {
	Best             Candidate
	BestPlacement    block.Placement
	BestFitness      float64
	ActualIterations int
	Canceled         bool
}
