// Package solver - cost model shared by all representations.
//
// Score is the public, fully validated entry point. The driver uses the
// unexported helpers on values it generated itself, so it skips domain checks
// in the hot loop.
package solver

import (
	"fmt"

	"github.com/albertqi/partition/kk"
)

// Score returns the residue of rep on weights.
//
// Contract:
//   - len(weights) ≥ 1 (else ErrEmptyInstance), every weight ≥ 0 (else ErrNegativeWeight).
//   - len(rep.Values) == len(weights) (else ErrSizeMismatch).
//   - Direct values in {−1,+1}, Prepartitioned values in [0,n) (else ErrBadRepresentation).
//
// Complexity: O(n) for Direct, O(n log n) for Prepartitioned.
func Score(weights []int64, rep Representation) (int64, error) {
	n, err := validateWeights(weights)
	if err != nil {
		return 0, err
	}
	if len(rep.Values) != n {
		return 0, fmt.Errorf("%w: %d weights, %d values", ErrSizeMismatch, n, len(rep.Values))
	}

	switch rep.Kind {
	case Direct:
		if err = validateSigns(rep.Values); err != nil {
			return 0, err
		}

		return directResidue(weights, rep.Values), nil

	case Prepartitioned:
		folded, err := Fold(weights, rep.Values)
		if err != nil {
			return 0, err
		}

		return kk.ReduceInPlace(folded)

	default:
		return 0, ErrUnsupportedKind
	}
}

// Fold maps weights through a prepartition: entry b of the result is the sum of
// the weights whose bucket is b. Buckets that receive nothing stay 0.
//
// Contract:
//   - len(buckets) == len(weights) (else ErrSizeMismatch).
//   - every bucket in [0,n) (else ErrBadRepresentation).
//
// Complexity: O(n) time, O(n) space.
func Fold(weights []int64, buckets []int) ([]int64, error) {
	n := len(weights)
	if len(buckets) != n {
		return nil, fmt.Errorf("%w: %d weights, %d buckets", ErrSizeMismatch, n, len(buckets))
	}
	var (
		i int
		b int
	)
	for i, b = range buckets {
		if b < 0 || b >= n {
			return nil, fmt.Errorf("%w: bucket %d at index %d not in [0,%d)", ErrBadRepresentation, b, i, n)
		}
	}

	out := make([]int64, n)
	foldInto(out, weights, buckets)

	return out, nil
}

// directResidue computes |Σ w[i]·s[i]|. Inputs are assumed validated.
func directResidue(weights []int64, signs []int) int64 {
	var (
		sum int64
		i   int
	)
	for i = range weights {
		if signs[i] > 0 {
			sum += weights[i]
		} else {
			sum -= weights[i]
		}
	}
	if sum < 0 {
		return -sum
	}

	return sum
}

// foldInto zeroes dst and accumulates weights into their buckets.
func foldInto(dst []int64, weights []int64, buckets []int) {
	var i int
	for i = range dst {
		dst[i] = 0
	}
	for i = range weights {
		dst[buckets[i]] += weights[i]
	}
}

// validateSigns rejects any value other than −1 and +1.
func validateSigns(signs []int) error {
	var (
		i int
		s int
	)
	for i, s = range signs {
		if s != 1 && s != -1 {
			return fmt.Errorf("%w: sign %d at index %d", ErrBadRepresentation, s, i)
		}
	}

	return nil
}
