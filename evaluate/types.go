package evaluate

// Metrics summarizes a Placement's bounding box and packing quality.
type Metrics struct {
	// Width, Height are the bounding box dimensions: max(XMax), max(YMax).
	Width, Height float64

	// TotalArea is Width*Height.
	TotalArea float64

	// UsedArea is the sum of each placed block's own area.
	UsedArea float64

	// DeadSpace is TotalArea-UsedArea.
	DeadSpace float64

	// DeadRatio is DeadSpace/TotalArea, in [0,1].
	DeadRatio float64

	// Degenerate is true when Width==0 or Height==0 (empty or zero-sized
	// placement); callers should treat fitness as +Inf in that case.
	Degenerate bool
}

// BStarOptions configures FitnessBStar.
//
// Zero value is not meaningful; use DefaultBStarOptions and override fields.
type BStarOptions struct {
	// AreaW weights total bounding-box area. Default 100.
	AreaW float64

	// DeadW weights the dead-space ratio. Default 10.
	DeadW float64

	// AspectW weights |aspect-AspectT| below the AspectMax cap. Default 10.
	AspectW float64

	// AspectT is the target aspect ratio. Default 1.0.
	AspectT float64

	// AspectMax is the hard cap before the steeper AspectP penalty applies. Default 2.0.
	AspectMax float64

	// AspectP is the penalty slope applied past AspectMax. Default 1000.
	AspectP float64
}

// DefaultBStarOptions returns the B*-tree fitness weights tuned for area-
// dominated scoring with a soft aspect-ratio target near square.
func DefaultBStarOptions() BStarOptions {
	return BStarOptions{
		AreaW:     100,
		DeadW:     10,
		AspectW:   10,
		AspectT:   1.0,
		AspectMax: 2.0,
		AspectP:   1000,
	}
}

// SeqPairOptions configures FitnessSeqPair.
//
// Zero value is not meaningful; use DefaultSeqPairOptions and override fields.
type SeqPairOptions struct {
	// AreaW weights total bounding-box area. Default 10.
	AreaW float64

	// DeadW weights dead_ratio*100 (percentage points). Default 100.
	DeadW float64

	// AspectW weights |W/H - AspectT|. Default 10.
	AspectW float64

	// AspectT is the target aspect ratio. Default 1.0.
	AspectT float64
}

// DefaultSeqPairOptions returns the Sequence-Pair fitness weights tuned for
// dead-space-dominated scoring with a soft aspect-ratio target near square.
func DefaultSeqPairOptions() SeqPairOptions {
	return SeqPairOptions{
		AreaW:   10,
		DeadW:   100,
		AspectW: 10,
		AspectT: 1.0,
	}
}
