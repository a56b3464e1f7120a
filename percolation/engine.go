package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/dsu"
)

// Engine performs an incremental site-percolation run over a fixed lattice.
//
// It owns two disjoint-set structures: clusters (n elements) answers
// "how many components, how big", while boundary (n+2 elements, with two
// virtual terminals) answers only "has a top-to-bottom path appeared".
// The two are deliberately kept separate so the boundary predicate's cost
// stays independent of size bookkeeping.
//
// An Engine is single-threaded: it exclusively owns its structures and
// must not be shared across goroutines. Construct one engine per run.
type Engine struct {
	n       int
	edges   []Edge
	weights []float64
	active  []bool

	// currentP is the threshold already committed; it is monotonically
	// non-decreasing for the lifetime of the run.
	currentP float64

	clusters *dsu.DSU // n elements: cluster counts and sizes
	boundary *dsu.DSU // n+2 elements: boundary-connectivity predicate only
	top      int      // virtual terminal pre-wired to the first lattice row
	bottom   int      // virtual terminal pre-wired to the last lattice row
	wired    bool     // boundaries initialized

	largest    int     // running largest-cluster size
	pc         float64 // critical threshold, valid once percolated is set
	percolated bool
}

// NewEngine constructs an engine over the supplied edge list and weight
// vector. n is len(weights); edges must reference nodes in [0, n) and
// weights must lie in [0, 1). Both inputs are copied, so later caller
// mutation cannot corrupt the run.
//
// Error Conditions:
//   - ErrNoNodes          : empty weight vector.
//   - ErrWeightOutOfRange : some weights[i] < 0 or ≥ 1.
//   - ErrEdgeOutOfRange   : some edge endpoint < 0 or ≥ n.
//
// Complexity: O(n + E) time and memory; no allocation happens after
// construction except the per-step root vector handed to sinks.
func NewEngine(edges []Edge, weights []float64) (*Engine, error) {
	// 1. Validate the node universe.
	n := len(weights)
	if n == 0 {
		return nil, ErrNoNodes
	}
	for i, w := range weights {
		if w < 0 || w >= 1 {
			return nil, fmt.Errorf("%w: weights[%d] = %g", ErrWeightOutOfRange, i, w)
		}
	}
	// 2. Validate edge endpoints against [0, n).
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edges[%d] = (%d,%d), n = %d", ErrEdgeOutOfRange, i, e.U, e.V, n)
		}
	}

	// 3. Copy inputs to guarantee immutability for the whole run.
	es := make([]Edge, len(edges))
	copy(es, edges)
	ws := make([]float64, n)
	copy(ws, weights)

	// 4. Allocate both structures once. dsu.New cannot fail here: n ≥ 1.
	clusters, _ := dsu.New(n)
	boundary, _ := dsu.New(n + 2)

	return &Engine{
		n:        n,
		edges:    es,
		weights:  ws,
		active:   make([]bool, n),
		clusters: clusters,
		boundary: boundary,
		top:      n,     // virtual top terminal
		bottom:   n + 1, // virtual bottom terminal
		largest:  1,     // a single activated node is a cluster of size 1
	}, nil
}

// N returns the number of lattice nodes.
func (e *Engine) N() int { return e.n }

// CurrentP returns the last committed activation threshold.
func (e *Engine) CurrentP() float64 { return e.currentP }

// LargestCluster returns the running largest-cluster size.
func (e *Engine) LargestCluster() int { return e.largest }

// Components returns the number of components over all n nodes.
// Inactive nodes count as their own singleton components.
func (e *Engine) Components() int { return e.clusters.Count(e.n) }

// ActiveComponents returns the number of components restricted to active
// nodes. Nodes only unite once both endpoints are active, so every
// multi-node cluster is entirely active and its root is active too;
// inactive nodes are always untouched singletons and are excluded here.
func (e *Engine) ActiveComponents() int {
	count := 0
	for i := 0; i < e.n; i++ {
		if e.active[i] && e.clusters.Find(i) == i {
			count++
		}
	}

	return count
}

// Roots returns the per-node cluster-root vector at the current threshold.
// Allocates a fresh slice per call; this is what sinks receive.
func (e *Engine) Roots() []int {
	roots := make([]int, e.n)
	for i := range roots {
		roots[i] = e.clusters.Find(i)
	}

	return roots
}

// InitBoundaries wires the two virtual terminals, once per run: the top
// terminal to nodes 0..side-1 and the bottom terminal to the last side
// nodes, where side = ⌊√n⌋.
//
// The lattice is assumed square. A non-square n yields a partial last row
// — an inherited approximation of the model, accepted without error.
//
// Returns ErrBoundariesWired on a repeat call. Run performs this wiring
// itself, so only callers driving Advance by hand need to call it.
func (e *Engine) InitBoundaries() error {
	if e.wired {
		return ErrBoundariesWired
	}
	e.initBoundaries()

	return nil
}

// initBoundaries is the idempotent internal form used by Run.
func (e *Engine) initBoundaries() {
	if e.wired {
		return
	}
	side := int(math.Sqrt(float64(e.n)))
	for i := 0; i < side; i++ {
		e.boundary.Unite(e.top, i)              // top terminal ↔ first row
		e.boundary.Unite(e.bottom, e.n-side+i)  // bottom terminal ↔ last row
	}
	e.wired = true
}

// HasPercolated reports whether the two virtual terminals share a
// component, i.e. whether some chain of active edges connects the top row
// to the bottom row. Pure query; no engine state changes.
func (e *Engine) HasPercolated() bool {
	return e.boundary.Find(e.top) == e.boundary.Find(e.bottom)
}

// CriticalP returns the critical threshold p_c and whether percolation has
// been reached in this run. The value is recorded once, at the first sweep
// step where HasPercolated became true, and never overwritten.
func (e *Engine) CriticalP() (float64, bool) {
	return e.pc, e.percolated
}

// Advance performs one incremental percolation step at threshold p.
//
// Steps:
//  1. Precondition: p ≥ CurrentP(). A regressing p mutates nothing and
//     returns the previous component count alongside ErrThresholdRegress —
//     a recoverable contract error, never a fatal one.
//  2. Activation: every inactive node with weight ≤ p becomes active
//     (inclusive boundary: weight exactly equal to p activates).
//  3. Connection: every edge with both endpoints active is united in the
//     cluster structure; when the union actually merges two components,
//     the running largest-cluster size is refreshed from the post-union
//     size — O(1) per union, sufficient because a union can only grow the
//     largest cluster. The same edge is united in the boundary structure
//     (idempotent on already-joined pairs). Edges with an inactive
//     endpoint are skipped and re-examined on later calls.
//  4. Commit: CurrentP becomes p.
//
// Returns the component count over all n nodes after the step.
// Complexity: O(n + E·α(n)) per call.
func (e *Engine) Advance(p float64) (int, error) {
	// 1. Ordering contract.
	if p < e.currentP {
		return e.clusters.Count(e.n), fmt.Errorf("%w: p = %g < current %g", ErrThresholdRegress, p, e.currentP)
	}

	// 2. Activate newly eligible nodes.
	for i, w := range e.weights {
		if !e.active[i] && w <= p {
			e.active[i] = true
		}
	}

	// 3. Unite every edge whose endpoints are both active.
	for _, ed := range e.edges {
		if !e.active[ed.U] || !e.active[ed.V] {
			continue
		}
		if e.clusters.Unite(ed.U, ed.V) {
			// Only an actual merge can change the maximum.
			if s := e.clusters.Size(ed.U); s > e.largest {
				e.largest = s
			}
		}
		e.boundary.Unite(ed.U, ed.V)
	}

	// 4. Commit the threshold.
	e.currentP = p

	return e.clusters.Count(e.n), nil
}
