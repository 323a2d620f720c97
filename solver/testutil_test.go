// Package solver_test holds helpers shared across the solver test files.
package solver_test

import (
	"math/rand"
	"testing"

	"github.com/albertqi/partition/solver"
)

const (
	// seedDet is a fixed non-zero seed so that randomized tests are reproducible.
	seedDet = int64(20240229)

	// itersSmall keeps property tests fast while still exercising the loops.
	itersSmall = 2000

	// maxWeight matches the reference experiment range [1, 1e12].
	maxWeight = int64(1_000_000_000_000)
)

// allKinds and allModes enumerate the driver grid.
var (
	allKinds = []solver.Kind{solver.Direct, solver.Prepartitioned}
	allModes = []solver.Mode{solver.RepeatedRandom, solver.HillClimbing, solver.SimulatedAnnealing}
)

// randomWeights returns n seeded weights in [1, maxWeight].
func randomWeights(seed int64, n int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	w := make([]int64, n)
	for i := range w {
		w[i] = 1 + rng.Int63n(maxWeight)
	}

	return w
}

// forEachVariant runs fn as a subtest for every (kind, mode) pair.
func forEachVariant(t *testing.T, fn func(t *testing.T, kind solver.Kind, mode solver.Mode)) {
	t.Helper()
	for _, kind := range allKinds {
		for _, mode := range allModes {
			t.Run(kind.String()+"/"+mode.String(), func(t *testing.T) {
				fn(t, kind, mode)
			})
		}
	}
}

// hamming counts positions where a and b differ.
func hamming(a, b []int) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}
