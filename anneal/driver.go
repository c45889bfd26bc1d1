package anneal

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/floorplan/fplerr"
)

// Run executes the geometric-cooling simulated annealing loop against an
// opaque Candidate:
//
//  1. Decode initial; its failure is fatal (fplerr.ErrDecodeFailure).
//  2. While T>Tf and iter<MaxIters: clone current, mutate the clone, decode
//     it. A decode failure on the *candidate* scores +Inf and is always
//     rejected — non-fatal, simply treated as the worst possible move.
//     Otherwise accept if strictly better, else accept with probability
//     exp(-(fNew-fCur)/T). Track best-so-far across accepted moves. Cool:
//     T *= Alpha.
//  3. ctx is checked once per iteration, at the top of the loop; a canceled
//     ctx returns the current best with Canceled=true and a nil error, as a
//     normal result rather than an error.
//
// A nil ctx is treated as context.Background() (never cancels).
//
// Complexity: O(MaxIters) decode+fitness evaluations, each bounded by the
// engine's own decode complexity (bstar: O(n² log n) worst case; seqpair: O(n²)).
func Run(initial Candidate, decode DecodeFunc, fitness FitnessFunc, opts Options, ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	placement, err := decode(initial)
	if err != nil {
		return Result{}, fmt.Errorf("anneal: initial decode: %w", fplerr.ErrDecodeFailure)
	}

	current := initial
	fCur := fitness(placement)

	best := initial.Clone()
	bestPlacement := placement
	fBest := fCur

	rng := rngFromOptions(opts)

	T := opts.T0
	iter := 0
	for T > opts.Tf && iter < opts.MaxIters {
		select {
		case <-ctx.Done():
			return Result{Best: best, BestPlacement: bestPlacement, BestFitness: fBest, ActualIterations: iter, Canceled: true}, nil
		default:
		}

		candidate := current.Clone()
		candidate.Mutate(rng)

		candPlacement, decErr := decode(candidate)

		var fNew float64
		if decErr != nil {
			fNew = math.Inf(1)
		} else {
			fNew = fitness(candPlacement)
		}

		accept := false
		switch {
		case math.IsInf(fNew, 1):
			accept = false
		case fNew < fCur:
			accept = true
		default:
			delta := fNew - fCur
			accept = rng.Float64() < math.Exp(-delta/T)
		}

		if accept {
			current = candidate
			fCur = fNew

			if fNew < fBest {
				fBest = fNew
				best = candidate.Clone()
				bestPlacement = candPlacement
			}
		}

		T *= opts.Alpha
		iter++
	}

	return Result{Best: best, BestPlacement: bestPlacement, BestFitness: fBest, ActualIterations: iter, Canceled: false}, nil
}
