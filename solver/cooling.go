package solver

import (
	"fmt"
	"math"
)

// Default cooling constants: T(i) = 1e10 · 0.8^⌊i/300⌋.
const (
	DefaultInitialTemperature = 1e10
	DefaultCoolingFactor      = 0.8
	DefaultCoolingStep        = 300
)

// Schedule maps an iteration index to a positive temperature. It must be a
// pure function.
type Schedule func(iter int) float64

// DefaultSchedule is the reference step-geometric schedule
// T(i) = 1e10 · 0.8^⌊i/300⌋: constant within blocks of 300 iterations and
// strictly decreasing from block to block.
func DefaultSchedule(iter int) float64 {
	return DefaultInitialTemperature * math.Pow(DefaultCoolingFactor, float64(iter/DefaultCoolingStep))
}

// GeometricSchedule returns T(i) = t0 · alpha^⌊i/step⌋.
// Panics when t0 ≤ 0, alpha ∉ (0,1] or step < 1; option constructors fail
// fast, solvers never panic.
func GeometricSchedule(t0, alpha float64, step int) Schedule {
	if t0 <= 0 || math.IsNaN(t0) || math.IsInf(t0, 0) {
		panic(fmt.Sprintf("solver: GeometricSchedule t0 must be positive and finite, got %g", t0))
	}
	if alpha <= 0 || alpha > 1 || math.IsNaN(alpha) {
		panic(fmt.Sprintf("solver: GeometricSchedule alpha must be in (0,1], got %g", alpha))
	}
	if step < 1 {
		panic(fmt.Sprintf("solver: GeometricSchedule step must be ≥ 1, got %d", step))
	}

	return func(iter int) float64 {
		return t0 * math.Pow(alpha, float64(iter/step))
	}
}
