package evaluate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/floorplan/block"
	"github.com/katalvlaran/floorplan/evaluate"
	"github.com/stretchr/testify/require"
)

func TestCompute_SingleBlock(t *testing.T) {
	p := block.Placement{"A": {Name: "A", XMin: 0, YMin: 0, XMax: 5, YMax: 3}}
	m := evaluate.Compute(p)

	require.False(t, m.Degenerate)
	require.Equal(t, 15.0, m.TotalArea)
	require.Equal(t, 15.0, m.UsedArea)
	require.Equal(t, 0.0, m.DeadRatio)
}

func TestCompute_DeadSpace(t *testing.T) {
	p := block.Placement{
		"A": {Name: "A", XMin: 0, YMin: 0, XMax: 2, YMax: 2},
		"B": {Name: "B", XMin: 2, YMin: 0, XMax: 4, YMax: 1},
	}
	m := evaluate.Compute(p)

	require.Equal(t, 4.0, m.Width)
	require.Equal(t, 2.0, m.Height)
	require.Equal(t, 8.0, m.TotalArea)
	require.Equal(t, 6.0, m.UsedArea)
	require.Equal(t, 2.0, m.DeadSpace)
	require.Equal(t, 0.25, m.DeadRatio)
}

func TestCompute_DegenerateEmptyPlacement(t *testing.T) {
	m := evaluate.Compute(block.Placement{})
	require.True(t, m.Degenerate)
}

func TestFitnessBStar_DegenerateIsInfinite(t *testing.T) {
	f := evaluate.FitnessBStar(block.Placement{}, evaluate.DefaultBStarOptions())
	require.True(t, math.IsInf(f, 1))
}

func TestFitnessBStar_UsesMaxMinAspect(t *testing.T) {
	// 4x2 bounding box: aspect = max/min = 2.0, exactly at AspectMax so the
	// soft penalty branch applies, not the hard cap.
	p := block.Placement{"A": {Name: "A", XMin: 0, YMin: 0, XMax: 4, YMax: 2}}
	opts := evaluate.DefaultBStarOptions()
	f := evaluate.FitnessBStar(p, opts)

	want := opts.AreaW*8 + opts.AspectW*math.Abs(2.0-opts.AspectT) + opts.DeadW*0
	require.InDelta(t, want, f, 1e-9)
}

func TestFitnessBStar_HardCapPenalty(t *testing.T) {
	// 10x1 bounding box: aspect=10 > AspectMax=2 => steep AspectP penalty.
	p := block.Placement{"A": {Name: "A", XMin: 0, YMin: 0, XMax: 10, YMax: 1}}
	opts := evaluate.DefaultBStarOptions()
	f := evaluate.FitnessBStar(p, opts)

	want := opts.AreaW*10 + opts.AspectP*(10-opts.AspectMax) + opts.DeadW*0
	require.InDelta(t, want, f, 1e-9)
}

func TestFitnessSeqPair_UsesWOverHAspectAndPercentDeadSpace(t *testing.T) {
	p := block.Placement{
		"A": {Name: "A", XMin: 0, YMin: 0, XMax: 4, YMax: 2},
		"B": {Name: "B", XMin: 0, YMin: 0, XMax: 1, YMax: 1}, // overlap irrelevant, evaluator is geometry-agnostic
	}
	opts := evaluate.DefaultSeqPairOptions()
	f := evaluate.FitnessSeqPair(p, opts)

	m := evaluate.Compute(p)
	want := opts.AreaW*m.TotalArea + opts.DeadW*(m.DeadRatio*100) + opts.AspectW*math.Abs(m.Width/m.Height-opts.AspectT)
	require.InDelta(t, want, f, 1e-9)
}
