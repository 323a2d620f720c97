// SPDX-License-Identifier: MIT
// Package: partition/instance
//
// options.go - functional options for Random.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - Later options override earlier ones.

package instance

import (
	"fmt"
	"math/rand"
)

// Default weight range of the reference experiments, inclusive.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 1_000_000_000_000
)

// Option customizes Random by mutating a config before generation.
type Option func(*config)

// config aggregates the knobs of Random. rng == nil means "no randomness".
type config struct {
	rng      *rand.Rand
	min, max int64
}

// newConfig returns defaults with opts applied in order.
func newConfig(opts ...Option) config {
	cfg := config{min: DefaultMinWeight, max: DefaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The generator is advanced by Random; it must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the inclusive weight range [min, max].
// Panics unless 1 ≤ min ≤ max.
func WithRange(min, max int64) Option {
	if min < 1 || max < min {
		panic(fmt.Sprintf("instance: WithRange requires 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(c *config) {
		c.min, c.max = min, max
	}
}
