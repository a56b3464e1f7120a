// Package export provides percolation.Sink implementations for external
// persistence of sweep output.
//
// What:
//
//   - CSVSink streams two tabular files per run, column-compatible with the
//     classic percolation report format:
//     – report stream:  header "p,Ncc,Smax,Nmax", one row per sweep step
//     (threshold, component count, largest-cluster size and fraction);
//     – cluster stream: header "p,node_0,…,node_{n-1}", one row per sweep
//     step holding each node's cluster-root id.
//
// Why:
//
//   - Sinks are a pure output side channel: the engine produces its
//     in-memory record sequence whether or not persistence succeeds, and a
//     failing writer never aborts the sweep (the engine wraps the first
//     failure in percolation.ErrSink).
//
// Errors:
//
//   - ErrNilWriter: a CSVSink constructed over a nil writer.
//   - Write/Flush surface the underlying csv/io errors verbatim.
package export
