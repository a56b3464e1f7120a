package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// ExampleEngine_Run sweeps a 2×2 lattice and reports the critical
// threshold: nodes 0 (top row) and 2 (bottom row) are the lightest, so the
// vertical path closes at p=0.25.
func ExampleEngine_Run() {
	// 1. The square lattice 0─1 / 2─3 with per-node weights.
	edges := []percolation.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}
	weights := []float64{0.1, 0.3, 0.2, 0.4}

	eng, err := percolation.NewEngine(edges, weights)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Full sweep in steps of 0.25, no external sink.
	records, err := eng.Run(0.25, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Report the transition.
	pc, _ := eng.CriticalP()
	last := records[len(records)-1]
	fmt.Printf("p_c = %.2f, final components = %d, giant fraction = %.2f\n",
		pc, last.Components, last.LargestFraction)

	// Output: p_c = 0.25, final components = 1, giant fraction = 1.00
}
