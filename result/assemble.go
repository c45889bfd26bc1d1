package result

import (
	"math"

	"github.com/katalvlaran/floorplan/evaluate"
)

// Assemble rounds m and fitness into a terminal OptimizationResult.
// aspectRatio is supplied by the caller rather than recomputed here, since
// the two engines use different conventions (evaluate.FitnessBStar's
// max/min vs evaluate.FitnessSeqPair's W/H).
//
// Rounding to two decimal places is applied only here, at the result
// boundary; internal math throughout the rest of the module stays full
// precision.
func Assemble(m evaluate.Metrics, fitness, aspectRatio float64, iterations int, method string, canceled bool) OptimizationResult {
	return OptimizationResult{
		FitnessFunction:     roundTo2(fitness),
		TotalArea:           roundTo2(m.TotalArea),
		UsedArea:            roundTo2(m.UsedArea),
		DeadSpace:           roundTo2(m.DeadSpace),
		DeadSpacePercentage: roundTo2(m.DeadRatio * 100),
		AspectRatio:         roundTo2(aspectRatio),
		PlacementWidth:      roundTo2(m.Width),
		PlacementHeight:     roundTo2(m.Height),
		ActualIterations:    iterations,
		OptimizationMethod:  method,
		Canceled:            canceled,
	}
}

// roundTo2 rounds to two decimal places; +Inf/-Inf/NaN pass through
// unchanged since math.Round on a non-finite value is already a no-op.
func roundTo2(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Round(x*100) / 100
}
