package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// minSide is the smallest meaningful lattice dimension.
const minSide = 1

// ErrTooFewNodes is returned by Square when side < 1.
var ErrTooFewNodes = errors.New("lattice: side must be at least 1")

// Square returns the edge list of a side×side square lattice with
// 4-neighbor connectivity. Nodes are indexed row-major (index = r·side + c);
// for each cell the edge to its right neighbor is emitted before the edge
// to its bottom neighbor, so the order is stable and reproducible.
//
// A side×side lattice has exactly 2·side·(side−1) edges.
// Complexity: O(side²) time and memory.
func Square(side int) ([]percolation.Edge, error) {
	// 1. Validate parameters early (fail fast; no partial work).
	if side < minSide {
		return nil, fmt.Errorf("side = %d (must be ≥ %d): %w", side, minSide, ErrTooFewNodes)
	}

	// 2. Emit edges in deterministic row-major order.
	edges := make([]percolation.Edge, 0, 2*side*(side-1))
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			u := r*side + c
			// Right neighbor (r, c+1).
			if c+1 < side {
				edges = append(edges, percolation.Edge{U: u, V: u + 1})
			}
			// Bottom neighbor (r+1, c).
			if r+1 < side {
				edges = append(edges, percolation.Edge{U: u, V: u + side})
			}
		}
	}

	return edges, nil
}
