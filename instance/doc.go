// SPDX-License-Identifier: MIT
// Package: partition/instance
//
// Package instance loads and generates number-partitioning instances.
//
// An instance is an ordered []int64 of positive weights. Two sources exist:
//
//   - Read / ReadFile parse whitespace separated base-10 integers.
//   - Random draws n weights uniformly from an inclusive range.
//
// Randomness is explicit: Random needs WithSeed or WithRand, otherwise it
// returns ErrNeedRandSource. Option constructors panic on meaningless values;
// Read, ReadFile and Random never panic and report failures through the
// sentinel errors in errors.go.
package instance
