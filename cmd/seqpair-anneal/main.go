// Command seqpair-anneal reads a JSON InputRecord from stdin — optionally
// with a prior "sequence_pair" to resume from — runs simulated annealing
// over the Sequence-Pair representation, and writes a JSON OutputRecord to
// stdout.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/floorplan/anneal"
	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/evaluate"
	"github.com/katalvlaran/floorplan/fplanio"
	"github.com/katalvlaran/floorplan/result"
	"github.com/katalvlaran/floorplan/seqpair"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatalf("seqpair-anneal: write stdout: %v", err)
	}
}

// run reads one InputRecord from r, anneals it under ctx, and writes one
// OutputRecord (or, on failure, one ErrorRecord) to w. A canceled ctx
// surfaces as a normal OutputRecord with Canceled=true, never as an error.
func run(ctx context.Context, r io.Reader, w io.Writer) error {
	var in fplanio.InputRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return writeError(w, err)
	}

	cat, err := fplanio.BlocksToCatalog(in.Blocks)
	if err != nil {
		return writeError(w, err)
	}

	var sp *seqpair.SequencePair
	if in.SequencePair != nil {
		sp, err = fplanio.DTOToSequencePair(in.SequencePair, cat)
	} else {
		sp, err = seqpair.NewInitial(cat)
	}
	if err != nil {
		return writeError(w, err)
	}

	evalOpts := evaluate.DefaultSeqPairOptions()
	fitness := func(p block.Placement) float64 { return evaluate.FitnessSeqPair(p, evalOpts) }

	candidate := seqpair.NewCandidate(sp, cat)
	res, err := anneal.Run(candidate, seqpair.DecodeCandidate, fitness, anneal.DefaultSeqPairOptions(), ctx)
	if err != nil {
		return writeError(w, err)
	}

	m := evaluate.Compute(res.BestPlacement)
	aspect := 0.0
	if m.Height > 0 {
		aspect = m.Width / m.Height
	}

	bestPair := res.Best.(*seqpair.Candidate).Pair
	out := fplanio.OutputRecord{
		Blocks:       in.Blocks,
		SequencePair: fplanio.SequencePairToDTO(bestPair, res.BestPlacement),
		OptimizationResults: ptr(result.Assemble(
			m, res.BestFitness, aspect, res.ActualIterations, result.MethodSeqPairAnneal, res.Canceled,
		)),
	}
	return writeOutput(w, out)
}

func ptr[T any](v T) *T { return &v }

func writeOutput(w io.Writer, out fplanio.OutputRecord) error {
	return json.NewEncoder(w).Encode(out)
}

func writeError(w io.Writer, err error) error {
	return json.NewEncoder(w).Encode(fplanio.ErrorRecord{Error: err.Error()})
}
