// Command seqpair-init reads a JSON InputRecord from stdin, builds the
// initial Sequence-Pair placement for its block catalog (no annealing), and
// writes a JSON OutputRecord to stdout.
package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/floorplan/evaluate"
	"github.com/katalvlaran/floorplan/fplanio"
	"github.com/katalvlaran/floorplan/result"
	"github.com/katalvlaran/floorplan/seqpair"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("seqpair-init: write stdout: %v", err)
	}
}

// run reads one InputRecord from r and writes one OutputRecord (or, on
// failure, one ErrorRecord) to w.
func run(r io.Reader, w io.Writer) error {
	var in fplanio.InputRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return writeError(w, err)
	}

	cat, err := fplanio.BlocksToCatalog(in.Blocks)
	if err != nil {
		return writeError(w, err)
	}

	sp, err := seqpair.NewInitial(cat)
	if err != nil {
		return writeError(w, err)
	}

	placement, err := seqpair.Decode(sp, cat)
	if err != nil {
		return writeError(w, err)
	}

	m := evaluate.Compute(placement)
	fitness := evaluate.FitnessSeqPair(placement, evaluate.DefaultSeqPairOptions())
	aspect := 0.0
	if m.Height > 0 {
		aspect = m.Width / m.Height
	}

	spDTO := fplanio.SequencePairToDTO(sp, placement)
	spDTO.PlacementInfo = fplanio.NewPlacementInfo(placement, result.MethodSeqPairInitial)

	out := fplanio.OutputRecord{
		Blocks:              in.Blocks,
		SequencePair:        spDTO,
		OptimizationResults: ptr(result.Assemble(m, fitness, aspect, 0, result.MethodSeqPairInitial, false)),
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
