// Package kk implements the Karmarkar–Karp differencing heuristic for the
// number-partitioning problem.
//
// Overview:
//
//   - The heuristic keeps the multiset in a max-heap. While more than one value
//     remains it extracts the two largest values a ≥ b and inserts a−b.
//   - The last remaining value is the residue: the absolute difference of the
//     two subset sums of the partition implied by the differencing choices.
//   - The result is always expressible as a signed sum of the inputs, so its
//     parity equals the parity of the input sum.
//
// When to use:
//
//   - As a fast, deterministic baseline for number partitioning.
//   - As the scoring sub-routine for prepartitioned local search, where the
//     input is a multiset of bucket sums (zero buckets are allowed).
//
// The heuristic is exact for many structured inputs but not globally optimal
// for arbitrary ones; that is a property of the algorithm.
//
// Complexity:
//
//   - Time:  O(n log n) - n−1 rounds of two ExtractMax and one Insert.
//   - Space: O(n) for Residue (input is copied), O(1) extra for ReduceInPlace.
//
// Errors (sentinel):
//
//   - ErrEmptyInstance   if the input has no elements.
//   - ErrNegativeWeight  if any element is negative.
//
// API reference:
//
//	func Residue(nums []int64) (int64, error)
//	func ReduceInPlace(nums []int64) (int64, error)
//	func NewMaxHeap(vals []int64) *MaxHeap
package kk
