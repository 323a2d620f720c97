// SPDX-License-Identifier: MIT
// Package: partition/instance
//
// random.go - uniform random instances.

package instance

import "fmt"

// Random returns n weights drawn independently and uniformly from the
// configured inclusive range (default [1, 10^12]).
//
// Errors:
//   - ErrBadSize if n < 0.
//   - ErrNeedRandSource if neither WithSeed nor WithRand was supplied.
//
// n == 0 yields an empty, non-nil slice.
// Complexity: O(n) time, O(n) space.
func Random(n int, opts ...Option) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Random(n=%d): %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	// max-min+1 cannot overflow: min ≥ 1.
	span := cfg.max - cfg.min + 1
	out := make([]int64, n)
	for i := range out {
		out[i] = cfg.min + cfg.rng.Int63n(span)
	}

	return out, nil
}
