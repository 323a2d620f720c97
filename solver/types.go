package solver

import (
	"errors"
	"fmt"

	"github.com/albertqi/partition/kk"
)

// DefaultIterations is the iteration budget of the reference experiments.
const DefaultIterations = 25000

// Sentinel errors returned by the solver package.
var (
	// ErrEmptyInstance indicates an instance with zero weights.
	// It is the same value as kk.ErrEmptyInstance.
	ErrEmptyInstance = kk.ErrEmptyInstance

	// ErrNegativeWeight indicates a negative weight in the instance.
	// It is the same value as kk.ErrNegativeWeight.
	ErrNegativeWeight = kk.ErrNegativeWeight

	// ErrOverflow indicates an instance whose total weight does not fit in int64.
	ErrOverflow = errors.New("solver: total weight overflows int64")

	// ErrSizeMismatch indicates a representation whose length differs from the instance.
	ErrSizeMismatch = errors.New("solver: representation length does not match instance")

	// ErrBadRepresentation indicates a sign outside {−1,+1} or a bucket outside [0,n).
	ErrBadRepresentation = errors.New("solver: representation value out of domain")

	// ErrBadIterations indicates a negative iteration budget.
	ErrBadIterations = errors.New("solver: iteration budget must be non-negative")

	// ErrUnsupportedKind indicates an unknown representation kind.
	ErrUnsupportedKind = errors.New("solver: unsupported representation kind")

	// ErrUnsupportedMode indicates an unknown local-search mode.
	ErrUnsupportedMode = errors.New("solver: unsupported search mode")

	// ErrUnsupportedAlgorithm indicates an unknown algorithm selector.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")
)

// Kind selects the solution representation.
type Kind int

const (
	// Direct assigns a sign in {−1,+1} to every weight.
	Direct Kind = iota

	// Prepartitioned assigns a bucket index in [0,n) to every weight.
	Prepartitioned
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Prepartitioned:
		return "prepartitioned"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Mode selects the acceptance policy of the local-search driver.
type Mode int

const (
	// RepeatedRandom draws a fresh random representation every iteration.
	RepeatedRandom Mode = iota + 1

	// HillClimbing accepts a neighbor only when it is strictly better.
	HillClimbing

	// SimulatedAnnealing also accepts worse neighbors with probability exp(−Δ/T(i)).
	SimulatedAnnealing
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case RepeatedRandom:
		return "repeated-random"
	case HillClimbing:
		return "hill-climbing"
	case SimulatedAnnealing:
		return "simulated-annealing"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Representation is a candidate partition of a concrete kind.
//
//   - Direct:         Values[i] ∈ {−1,+1}; +1 puts weight i in subset A.
//   - Prepartitioned: Values[i] ∈ [0,n) is the bucket of weight i.
type Representation struct {
	Kind   Kind
	Values []int
}

// Solution is a representation together with its residue.
type Solution struct {
	Values  []int
	Residue int64
}

// Step is a snapshot of the search state handed to Options.Hook after every
// iteration. Current is the residue of the working solution (the fresh
// candidate in RepeatedRandom mode); Best never exceeds it.
type Step struct {
	Iter        int     // iteration index, 0-based
	Current     int64   // residue of current after the acceptance decision
	Best        int64   // residue of best after the update
	Temperature float64 // T(Iter) in annealing mode; 0 otherwise
	Accepted    bool    // whether the candidate replaced current (or best in RepeatedRandom)
}

// Hook observes the search after every iteration. It must not retain Step
// beyond the call and must not block for long; it runs on the solver goroutine.
type Hook func(Step)

// Options configures one local-search call.
//
// Iterations – number of iterations after the initial random draw (≥ 0).
// Seed       – 0 draws fresh entropy; any other value gives a reproducible run.
// Schedule   – cooling schedule for SimulatedAnnealing; nil means DefaultSchedule.
// Hook       – optional per-iteration observer.
type Options struct {
	Iterations int
	Seed       int64
	Schedule   Schedule
	Hook       Hook
}

// DefaultOptions returns the reference configuration:
// DefaultIterations iterations, fresh entropy, DefaultSchedule, no hook.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Seed:       0,
		Schedule:   DefaultSchedule,
	}
}

// Result is the outcome of a local-search call.
type Result struct {
	// Residue equals Best.Residue.
	Residue int64

	// Best is the best solution seen during the run.
	Best Solution

	// Evaluated counts scored candidates, including the initial draw.
	Evaluated int

	// Accepted counts candidates that replaced current (best in RepeatedRandom).
	Accepted int

	// Improved counts strict improvements of best.
	Improved int

	// Seed is the effective seed of the run's Source.
	Seed int64
}
