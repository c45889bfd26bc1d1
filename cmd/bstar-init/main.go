// Command bstar-init reads a JSON InputRecord from stdin, builds the initial
// B*-tree placement for its block catalog (no annealing), and writes a JSON
// OutputRecord to stdout.
package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/floorplan/bstar"
	"github.com/katalvlaran/floorplan/evaluate"
	"github.com/katalvlaran/floorplan/fplanio"
	"github.com/katalvlaran/floorplan/result"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("bstar-init: write stdout: %v", err)
	}
}

// run reads one InputRecord from r and writes one OutputRecord (or, on
// failure, one ErrorRecord) to w. A non-nil error here means w itself could
// not be written to; malformed input is reported through ErrorRecord, not
// a returned error.
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

	tree, err := bstar.Build(cat)
	if err != nil {
		return writeError(w, err)
	}

	placement, err := bstar.Decode(tree)
	if err != nil {
		return writeError(w, err)
	}

	m := evaluate.Compute(placement)
	fitness := evaluate.FitnessBStar(placement, evaluate.DefaultBStarOptions())
	aspect := 1.0
	if m.Width > 0 && m.Height > 0 {
		if m.Width >= m.Height {
			aspect = m.Width / m.Height
		} else {
			aspect = m.Height / m.Width
		}
	}

	treeDTO := fplanio.TreeToDTO(tree)
	if treeDTO != nil {
		treeDTO.PlacementInfo = fplanio.NewPlacementInfo(placement, result.MethodBStarInitial)
	}

	out := fplanio.OutputRecord{
		Blocks:              in.Blocks,
		BStarTree:           treeDTO,
		OptimizationResults: ptr(result.Assemble(m, fitness, aspect, 0, result.MethodBStarInitial, false)),
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
