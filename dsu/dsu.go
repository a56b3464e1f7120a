package dsu

import "errors"

// ErrNonPositiveElements is returned by New when the requested universe is empty.
var ErrNonPositiveElements = errors.New("dsu: element count must be positive")

// DSU is a disjoint-set structure over the fixed universe 0..n-1.
// parent[i] == i marks a root; size is meaningful only at roots.
type DSU struct {
	parent []int
	size   []int
}

// New allocates a DSU for n elements, each starting as its own singleton
// component. Returns ErrNonPositiveElements if n < 1.
// Complexity: O(n) time and memory; no further allocations ever occur.
func New(n int) (*DSU, error) {
	if n < 1 {
		return nil, ErrNonPositiveElements
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &DSU{parent: parent, size: size}, nil
}

// Len returns the number of managed elements.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the representative (root) of x's component.
// It performs full path compression: after the walk reaches the root, every
// node visited on the way is rewritten to point directly at it, so repeated
// queries on the same chain approach O(1).
func (d *DSU) Find(x int) int {
	// First pass: locate the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: redirect the whole path at the root.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

// Unite merges the components containing a and b using union by size:
// the root of the smaller component is attached under the root of the
// larger one, and the surviving root's size becomes the sum of both.
// On equal sizes, b's root is attached under a's root.
// Reports whether a merge actually happened (false when a and b were
// already in the same component).
func (d *DSU) Unite(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach smaller under larger.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]

	return true
}

// Size returns the cardinality of the component containing x.
func (d *DSU) Size(x int) int {
	return d.size[d.Find(x)]
}

// Count returns the number of distinct roots among the first n elements.
// Every element, united or not, belongs to exactly one component, so
// singletons count too. Values of n beyond Len() are clamped.
// Complexity: O(n·α(n)).
func (d *DSU) Count(n int) int {
	if n > len(d.parent) {
		n = len(d.parent)
	}
	count := 0
	for i := 0; i < n; i++ {
		if d.Find(i) == i {
			count++
		}
	}

	return count
}
