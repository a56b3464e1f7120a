// Package lattice generates the external inputs a percolation run consumes:
// square-lattice edge lists and deterministic per-node weight vectors.
//
// What:
//
//   - Square(side) emits the 4-neighbor edge list of a side×side grid in
//     row-major order (right neighbor first, then bottom neighbor), the
//     fixed scheme the engine's boundary wiring assumes.
//   - Weights(n, seed) produces n weights in [0, 1) from an explicitly
//     seeded source. Same seed ⇒ identical vector on every platform; there
//     is no time-based seeding anywhere.
//
// Why:
//
//   - The engine deliberately only consumes edges and weights; generation
//     is a collaborator concern, and keeping the seed explicit makes whole
//     runs reproducible end to end.
//
// Determinism:
//
//   - Stable node order: row-major (r asc, then c asc), index = r·side + c.
//   - Stable edge order: for each cell emit Right then Bottom if present.
//   - seed == 0 maps to a fixed default seed, never the clock.
//
// Complexity:
//
//   - Square: O(side²) time, O(side²) memory (2·side·(side−1) edges).
//   - Weights: O(n) time and memory.
//
// Errors:
//
//   - ErrTooFewNodes: Square called with side < 1.
//   - ErrNonPositiveCount: Weights called with n < 1.
package lattice
