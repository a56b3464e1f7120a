// Package dsu provides a slice-backed disjoint-set (union-find) structure
// with union by size and full path compression.
//
// What:
//
//   - DSU manages a fixed universe of elements 0..n-1, allocated once at
//     construction and never resized.
//   - Unite merges the components of two elements; Find returns a
//     component's representative; Size reports a component's cardinality.
//   - Count reports the number of distinct components among a prefix of
//     the universe.
//
// Why:
//
//   - Incremental connectivity: percolation sweeps, Kruskal-style edge
//     processing, island merging — anywhere components only ever grow.
//   - The union-by-size + path-compression pair is load-bearing: it keeps
//     every operation amortized near-O(1) (inverse Ackermann), which dense
//     sweeps rely on. Dropping either heuristic degrades whole sweeps from
//     effectively linear to super-linear.
//
// Contract:
//
//   - Hot-path methods (Find, Unite, Size) require arguments in [0, Len());
//     out-of-range indices are a programming error, not a runtime condition.
//   - The structure never shrinks: components merge, never split.
//
// Complexity:
//
//   - Find / Unite / Size: O(α(n)) amortized, O(1) extra memory.
//   - Count(n): O(n·α(n)).
//
// Errors:
//
//   - ErrNonPositiveElements: New called with n < 1.
package dsu
