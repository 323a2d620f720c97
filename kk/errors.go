package kk

import "errors"

var (
	// ErrEmptyInstance indicates that the multiset to reduce has no elements.
	ErrEmptyInstance = errors.New("kk: instance must contain at least one weight")

	// ErrNegativeWeight indicates that a negative value was supplied; differencing
	// is defined on non-negative weights and bucket sums only.
	ErrNegativeWeight = errors.New("kk: negative weight encountered")
)
