// Package percolation implements incremental site percolation over a fixed
// edge list: an activation sweep drives a disjoint-set connectivity engine
// and detects the critical threshold p_c.
//
// What:
//
//   - Engine owns per-node activation state, the current threshold, and two
//     disjoint-set structures: one for cluster bookkeeping (counts, sizes),
//     one — sized n+2 with two virtual terminals — purely for the
//     "has a path appeared between opposite boundaries" predicate.
//   - Advance performs one incremental step: activate nodes whose weight
//     falls at or below p, unite edges whose endpoints are both active,
//     track the running largest-cluster size, commit p.
//   - Run sweeps p from 0 to 1 in fixed increments, emits one StepRecord
//     per iteration, records p_c once, and optionally forwards each record
//     (plus the per-node cluster-root vector) to a Sink.
//   - Summarize condenses a record sequence into sweep statistics.
//
// Why:
//
//   - Phase-transition studies: how cluster count and the giant component
//     evolve as an increasing fraction of sites conducts.
//   - The incremental formulation makes a whole sweep cost O(S·E·α(n))
//     instead of re-solving connectivity from scratch at every threshold.
//
// Invariants:
//
//   - The threshold never regresses: Advance with p below the committed
//     threshold mutates nothing and reports ErrThresholdRegress.
//   - Activation is monotone (false→true only); components merge, never
//     split; once percolated, always percolated.
//
// Errors:
//
//   - ErrNoNodes: NewEngine given an empty weight vector.
//   - ErrWeightOutOfRange: a weight outside [0, 1).
//   - ErrEdgeOutOfRange: an edge endpoint outside [0, n).
//   - ErrThresholdRegress: Advance called with a regressing threshold.
//   - ErrBoundariesWired: InitBoundaries called twice in one run.
//   - ErrNonPositiveStep: Run called with step ≤ 0.
//   - ErrSink: a sink write failed (the sweep still completes; records are
//     always fully produced).
package percolation
