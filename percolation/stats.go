package percolation

import "gonum.org/v1/gonum/stat"

// Summary condenses a sweep's record sequence into the quantities usually
// plotted for a percolation run.
type Summary struct {
	// Steps is the number of sweep iterations summarized.
	Steps int
	// FinalComponents is the component count at the last step.
	FinalComponents int
	// MeanFraction and StdDevFraction describe the largest-cluster
	// fraction across the whole sweep.
	MeanFraction   float64
	StdDevFraction float64
	// MaxFraction is the largest-cluster fraction at the end of the sweep
	// (the sequence is non-decreasing, so this is also its maximum).
	MaxFraction float64
	// TransitionP is the threshold at which the largest-cluster fraction
	// grew the most in a single step — a cheap estimate of where the
	// phase transition is steepest.
	TransitionP float64
}

// Summarize aggregates records into a Summary. An empty sequence yields a
// zero Summary. Complexity: O(S).
func Summarize(records []StepRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	fractions := make([]float64, len(records))
	for i, r := range records {
		fractions[i] = r.LargestFraction
	}

	// Locate the sharpest single-step rise of the giant component.
	transition := records[0].P
	bestJump := 0.0
	for i := 1; i < len(records); i++ {
		if jump := fractions[i] - fractions[i-1]; jump > bestJump {
			bestJump = jump
			transition = records[i].P
		}
	}

	last := records[len(records)-1]

	return Summary{
		Steps:           len(records),
		FinalComponents: last.Components,
		MeanFraction:    stat.Mean(fractions, nil),
		StdDevFraction:  stat.StdDev(fractions, nil),
		MaxFraction:     last.LargestFraction,
		TransitionP:     transition,
	}
}
