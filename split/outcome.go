package split

// Outcome classifies what happened to one candidate feature during a
// transform pass. Every candidate resolves to exactly one outcome; skip
// outcomes are isolated and never abort the pass.
type Outcome uint8

const (
	// Processed means the feature was split and merged into the output.
	Processed Outcome = iota + 1

	// SkippedNotSplittable means the histogram has fewer than two
	// dimensions, so there is nothing to split.
	SkippedNotSplittable

	// SkippedInconsistent means the feature name encodes a different number
	// of axes than the histogram reports.
	SkippedInconsistent

	// SkippedDuplicate means an earlier candidate in the same pass already
	// populated the derived group name.
	SkippedDuplicate

	// SkippedEmpty means the projection yielded no non-empty sub-histograms.
	SkippedEmpty
)

func (o Outcome) String() string {
	switch o {
	case Processed:
		return "processed"
	case SkippedNotSplittable:
		return "skipped: not splittable"
	case SkippedInconsistent:
		return "skipped: inconsistent dimensions"
	case SkippedDuplicate:
		return "skipped: duplicate group"
	case SkippedEmpty:
		return "skipped: empty split"
	default:
		return "unknown"
	}
}
