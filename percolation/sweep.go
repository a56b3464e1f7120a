package percolation

import "fmt"

// Run drives a full activation sweep: p from 0.0 to 1.0 inclusive (with a
// small tolerance for floating accumulation) in fixed increments of step.
//
// Per iteration it calls Advance, appends one StepRecord, and — when a
// sink is supplied — forwards the record together with the per-node
// cluster-root vector. The first iteration at which HasPercolated becomes
// true records the critical threshold p_c exactly once; later iterations
// never overwrite it (percolation, once reached, is not undone by further
// activation).
//
// Sink failures never abort the sweep: the complete in-memory sequence is
// always produced, and the first sink error is returned wrapped in ErrSink
// alongside the full records.
//
// Error Conditions:
//   - ErrNonPositiveStep  : step ≤ 0.
//   - ErrThresholdRegress : the engine already advanced past 0 (e.g. a
//     second Run on the same engine); records collected so far are returned.
//   - ErrSink             : some sink write failed; records are complete.
//
// Complexity: O(S·(n + E·α(n))) time for S = ⌈1/step⌉ + 1 iterations,
// plus O(S·n) root vectors when a sink is attached.
func (e *Engine) Run(step float64, sink Sink) ([]StepRecord, error) {
	// 1. Validate the increment.
	if step <= 0 {
		return nil, fmt.Errorf("%w: step = %g", ErrNonPositiveStep, step)
	}

	// 2. Reset the running maximum: a single activated node is itself a
	//    cluster of size 1. Wire the boundary terminals exactly once.
	e.largest = 1
	e.initBoundaries()

	// 3. Sweep. The tolerance lets p reach 1.0 despite accumulation error.
	records := make([]StepRecord, 0, int(1/step)+2)
	var sinkErr error
	for p := 0.0; p <= 1.0+sweepTolerance; p += step {
		count, err := e.Advance(p)
		if err != nil {
			// Only the ordering contract can fail here; surface it with
			// whatever was collected so far.
			return records, err
		}

		rec := StepRecord{
			P:               p,
			Components:      count,
			LargestCluster:  e.largest,
			LargestFraction: float64(e.largest) / float64(e.n),
		}
		records = append(records, rec)

		// 4. Forward to the sink; remember only the first failure.
		if sink != nil {
			if werr := sink.WriteStep(rec, e.Roots()); werr != nil && sinkErr == nil {
				sinkErr = fmt.Errorf("%w: %w", ErrSink, werr)
			}
		}

		// 5. Record p_c at the first percolating step, then never again.
		if !e.percolated && e.HasPercolated() {
			e.pc = p
			e.percolated = true
		}
	}

	return records, sinkErr
}
