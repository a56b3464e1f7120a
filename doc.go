// Package percolate is an in-memory toolkit for simulating site percolation
// on lattices — from the raw disjoint-set engine to CSV reports and a CLI.
//
// 🚀 What is percolate?
//
//	A small, deterministic library that brings together:
//		• dsu/          — allocation-once union-find (union by size + path compression)
//		• percolation/  — the incremental activation engine, sweep driver and p_c detection
//		• lattice/      — square-lattice edge lists and seeded weight vectors
//		• export/       — CSV sinks reproducing the classic percolation report format
//		• cmd/percolate — a batch CLI tying it all together
//
// ✨ Why choose percolate?
//
//   - Deterministic by construction – explicit seeds, no hidden time-based RNG
//   - Amortized near-O(1) connectivity – union by size + full path compression
//   - Forward-only sweeps – the activation threshold never regresses
//   - Pure Go core – the engine has no dependencies beyond the standard library
//
// Quick ASCII example (4-node square lattice, indices row-major):
//
//	0───1
//	│   │
//	2───3
//
// As the threshold p rises, nodes whose weight falls at or below p activate;
// edges between two active nodes merge clusters, and the first p at which
// the top row connects to the bottom row is the critical probability p_c.
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/percolate
package percolate
