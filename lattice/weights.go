package lattice

import (
	"errors"
	"math/rand"
)

// defaultWeightSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultWeightSeed int64 = 1

// ErrNonPositiveCount is returned by Weights when n < 1.
var ErrNonPositiveCount = errors.New("lattice: weight count must be positive")

// Weights returns n node weights drawn uniformly from [0, 1) using a
// deterministic source. Policy: seed==0 ⇒ defaultWeightSeed; otherwise the
// provided seed verbatim. Same seed ⇒ identical vector, which is what makes
// whole percolation runs reproducible.
//
// Complexity: O(n) time and memory.
func Weights(n int, seed int64) ([]float64, error) {
	if n < 1 {
		return nil, ErrNonPositiveCount
	}

	s := seed
	if s == 0 {
		s = defaultWeightSeed
	}
	r := rand.New(rand.NewSource(s))

	ws := make([]float64, n)
	for i := range ws {
		ws[i] = r.Float64() // uniform in [0, 1)
	}

	return ws, nil
}
