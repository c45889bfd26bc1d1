package evaluate

import (
	"math"

	"github.com/katalvlaran/floorplan/block"
)

// Compute derives Metrics from a Placement.
//
// Complexity: O(n), n = len(placement).
func Compute(placement block.Placement) Metrics {
	var maxX, maxY, used float64
	for _, p := range placement {
		if p.XMax > maxX {
			maxX = p.XMax
		}
		if p.YMax > maxY {
			maxY = p.YMax
		}
		used += p.Width() * p.Height()
	}

	if maxX == 0 || maxY == 0 {
		return Metrics{Width: maxX, Height: maxY, Degenerate: true}
	}

	total := maxX * maxY
	dead := total - used
	deadRatio := 0.0
	if total > 0 {
		deadRatio = dead / total
	}

	return Metrics{
		Width:     maxX,
		Height:    maxY,
		TotalArea: total,
		UsedArea:  used,
		DeadSpace: dead,
		DeadRatio: deadRatio,
	}
}

// bstarAspect is the B*-tree convention: max(W,H)/min(W,H), always >= 1.
func bstarAspect(m Metrics) float64 {
	if m.Width >= m.Height {
		return m.Width / m.Height
	}
	return m.Height / m.Width
}

// FitnessBStar computes the B*-tree composite fitness:
//
//	fitness = AreaW*TotalArea
//	        + (AspectP*(aspect-AspectMax)            if aspect > AspectMax
//	           else AspectW*|aspect-AspectT|)
//	        + DeadW*DeadRatio
//
// Degenerate placements (Width==0 or Height==0) score +Inf.
func FitnessBStar(placement block.Placement, opts BStarOptions) float64 {
	m := Compute(placement)
	if m.Degenerate {
		return math.Inf(1)
	}

	aspect := bstarAspect(m)

	var aspectTerm float64
	if aspect > opts.AspectMax {
		aspectTerm = opts.AspectP * (aspect - opts.AspectMax)
	} else {
		aspectTerm = opts.AspectW * math.Abs(aspect-opts.AspectT)
	}

	return opts.AreaW*m.TotalArea + aspectTerm + opts.DeadW*m.DeadRatio
}

// FitnessSeqPair computes the Sequence-Pair composite fitness:
//
//	fitness = AreaW*TotalArea + DeadW*(DeadRatio*100) + AspectW*|(W/H)-AspectT|
//
// Degenerate placements (Width==0 or Height==0) score +Inf.
func FitnessSeqPair(placement block.Placement, opts SeqPairOptions) float64 {
	m := Compute(placement)
	if m.Degenerate {
		return math.Inf(1)
	}

	aspect := m.Width / m.Height

	return opts.AreaW*m.TotalArea + opts.DeadW*(m.DeadRatio*100) + opts.AspectW*math.Abs(aspect-opts.AspectT)
}
