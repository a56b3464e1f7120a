// Package percolation defines core types, sentinel errors and the Sink
// contract for the percolation engine.
package percolation

import "errors"

// Sentinel errors for engine construction and sweep execution.
var (
	// ErrNoNodes is returned when the supplied weight vector is empty.
	ErrNoNodes = errors.New("percolation: weight vector must contain at least one node")

	// ErrWeightOutOfRange is returned when a node weight lies outside [0, 1).
	ErrWeightOutOfRange = errors.New("percolation: node weight outside [0, 1)")

	// ErrEdgeOutOfRange is returned when an edge endpoint lies outside [0, n).
	ErrEdgeOutOfRange = errors.New("percolation: edge endpoint outside node range")

	// ErrThresholdRegress is returned by Advance when the supplied p is
	// below the already-committed threshold. The step mutates nothing;
	// the run may continue with a correctly ordered p.
	ErrThresholdRegress = errors.New("percolation: threshold p may not regress")

	// ErrBoundariesWired is returned by InitBoundaries on a repeat call.
	ErrBoundariesWired = errors.New("percolation: boundaries already initialized")

	// ErrNonPositiveStep is returned by Run when step ≤ 0.
	ErrNonPositiveStep = errors.New("percolation: sweep step must be positive")

	// ErrSink wraps the first sink failure of a sweep. The in-memory record
	// sequence is still fully produced.
	ErrSink = errors.New("percolation: sink write failed")
)

// sweepTolerance absorbs floating accumulation so a sweep with step 0.1
// still reaches p = 1.0 exactly once.
const sweepTolerance = 1e-10

// Edge is an unordered pair of node indices in [0, n).
type Edge struct {
	U, V int
}

// StepRecord captures the engine's observable state after one sweep step.
//
//   - P: the threshold just committed.
//   - Components: number of components over all n nodes (inactive
//     singletons included; see Engine.ActiveComponents for the exclusive
//     reading).
//   - LargestCluster: running size of the largest cluster so far.
//   - LargestFraction: LargestCluster / n.
type StepRecord struct {
	P               float64
	Components      int
	LargestCluster  int
	LargestFraction float64
}

// Sink receives one record per sweep step together with the per-node
// cluster-root vector at that threshold. Sinks are a pure output side
// channel: they never influence engine state or the returned sequence,
// and a failing sink never aborts the sweep.
type Sink interface {
	WriteStep(rec StepRecord, roots []int) error
}
