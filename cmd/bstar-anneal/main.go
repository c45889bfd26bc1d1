// Command bstar-anneal reads a JSON InputRecord from stdin — optionally with
// a prior "bstar_tree" to resume from — runs simulated annealing over the
// B*-tree representation, and writes a JSON OutputRecord to stdout.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/floorplan/anneal"
	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/bstar"
	"github.com/katalvlaran/floorplan/evaluate"
	"github.com/katalvlaran/floorplan/fplanio"
	"github.com/katalvlaran/floorplan/result"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatalf("bstar-anneal: write stdout: %v", err)
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

	var tree *bstar.Tree
	if in.BStarTree != nil {
		tree, err = fplanio.DTOToTree(in.BStarTree)
	} else {
		tree, err = bstar.Build(cat)
	}
	if err != nil {
		return writeError(w, err)
	}

	evalOpts := evaluate.DefaultBStarOptions()
	fitness := func(p block.Placement) float64 { return evaluate.FitnessBStar(p, evalOpts) }

	candidate := bstar.NewCandidate(tree, cat)
	res, err := anneal.Run(candidate, bstar.DecodeCandidate, fitness, anneal.DefaultBStarOptions(), ctx)
	if err != nil {
		return writeError(w, err)
	}

	m := evaluate.Compute(res.BestPlacement)
	aspect := 1.0
	if m.Width > 0 && m.Height > 0 {
		if m.Width >= m.Height {
			aspect = m.Width / m.Height
		} else {
			aspect = m.Height / m.Width
		}
	}

	bestTree := res.Best.(*bstar.Candidate).Tree
	out := fplanio.OutputRecord{
		Blocks:    in.Blocks,
		BStarTree: fplanio.TreeToDTO(bestTree),
		OptimizationResults: ptr(result.Assemble(
			m, res.BestFitness, aspect, res.ActualIterations, result.MethodBStarAnneal, res.Canceled,
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
