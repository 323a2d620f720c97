// Package solver provides heuristic solvers for the number-partitioning
// problem: split a sequence of non-negative weights into two subsets whose
// sums differ as little as possible (the residue).
//
// It includes four algorithms:
//
//   - Differencing - Karmarkar–Karp (see package kk).
//
//   - Complexity: O(n log n)
//
//   - RepeatedRandom - independent uniform draws, keep the best.
//
//   - HillClimbing - random start, accept only strictly improving neighbors.
//
//   - SimulatedAnnealing - hill climbing that also accepts a worse neighbor
//     with probability exp(−Δ/T(i)) under a step-geometric cooling schedule.
//
//   - Complexity (local search): O(iter·n) for Direct, O(iter·n log n) for
//     Prepartitioned (every candidate is scored through differencing).
//
// The three local-search modes run on one engine (Search) written against the
// Space abstraction, which has two variants:
//
//   - Direct - one sign in {−1,+1} per weight; residue = |Σ w[i]·s[i]|.
//   - Prepartitioned - one bucket index in [0,n) per weight; the bucket sums are
//     folded into a reduced multiset and scored with Karmarkar–Karp.
//
// Randomness:
//
//   - Every call owns its Source; nothing is shared between calls or goroutines.
//   - Options.Seed ≠ 0 makes a run reproducible; Seed == 0 draws fresh entropy.
//
// Errors (sentinel, compare with errors.Is):
//
//   - ErrEmptyInstance, ErrNegativeWeight (shared with package kk),
//   - ErrSizeMismatch, ErrBadRepresentation,
//   - ErrBadIterations, ErrUnsupportedKind, ErrUnsupportedMode, ErrUnsupportedAlgorithm.
//
// The package performs no I/O and no logging.
package solver
