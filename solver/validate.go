// Package solver - validation helpers shared by the entry points.
//
// Deterministic, side-effect free; only sentinel errors from types.go,
// wrapped with the offending position where useful.
package solver

import (
	"fmt"
	"math"
)

// validateAll checks weights, kind, mode and options; it returns n on success.
//
// Complexity: O(n).
func validateAll(weights []int64, kind Kind, mode Mode, opts Options) (int, error) {
	if err := validateKind(kind); err != nil {
		return 0, err
	}
	if err := validateMode(mode); err != nil {
		return 0, err
	}
	if opts.Iterations < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadIterations, opts.Iterations)
	}

	return validateWeights(weights)
}

// validateWeights requires at least one weight, no negative weight and a
// total that fits in int64. Every bucket sum and partial signed sum is then
// bounded by the total.
func validateWeights(weights []int64) (int, error) {
	n := len(weights)
	if n == 0 {
		return 0, ErrEmptyInstance
	}
	var (
		i     int
		total int64
	)
	for i = 0; i < n; i++ {
		if weights[i] < 0 {
			return 0, fmt.Errorf("%w: index %d value %d", ErrNegativeWeight, i, weights[i])
		}
		if weights[i] > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: at index %d", ErrOverflow, i)
		}
		total += weights[i]
	}

	return n, nil
}

func validateKind(kind Kind) error {
	switch kind {
	case Direct, Prepartitioned:
		return nil
	default:
		return ErrUnsupportedKind
	}
}

func validateMode(mode Mode) error {
	switch mode {
	case RepeatedRandom, HillClimbing, SimulatedAnnealing:
		return nil
	default:
		return ErrUnsupportedMode
	}
}
