// SPDX-License-Identifier: MIT
// Package: partition/instance
//
// errors.go - sentinel errors for the instance package.
//
// Callers branch with errors.Is; implementations attach the token position or
// file name with %w.

package instance

import "errors"

// ErrShortInput indicates that the reader ran out of tokens before n weights
// were read.
var ErrShortInput = errors.New("instance: not enough weights in input")

// ErrBadToken indicates a token that is not a base-10 int64.
var ErrBadToken = errors.New("instance: malformed weight")

// ErrNonPositive indicates a weight ≤ 0.
var ErrNonPositive = errors.New("instance: weight must be positive")

// ErrNeedRandSource indicates that Random was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("instance: rng is required")

// ErrBadSize indicates a negative instance size.
var ErrBadSize = errors.New("instance: size must be non-negative")
