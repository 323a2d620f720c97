// Package solver - algorithm selectors and convenience entry points.
//
// The numeric selectors follow the reference command line:
// 0 differencing; 1/2/3 repeated random, hill climbing, annealing on the
// Direct representation; 11/12/13 the same on the Prepartitioned one.
package solver

import (
	"fmt"

	"github.com/albertqi/partition/kk"
)

// Algorithm is a numeric algorithm selector.
type Algorithm int

// Reference selectors.
const (
	Differencing                     Algorithm = 0
	DirectRepeatedRandom             Algorithm = 1
	DirectHillClimbing               Algorithm = 2
	DirectSimulatedAnnealing         Algorithm = 3
	PrepartitionedRepeatedRandom     Algorithm = 11
	PrepartitionedHillClimbing       Algorithm = 12
	PrepartitionedSimulatedAnnealing Algorithm = 13
)

// SweepOrder lists the algorithms in the order the experiment sweep prints them.
var SweepOrder = []Algorithm{
	Differencing,
	DirectRepeatedRandom,
	DirectHillClimbing,
	DirectSimulatedAnnealing,
	PrepartitionedRepeatedRandom,
	PrepartitionedHillClimbing,
	PrepartitionedSimulatedAnnealing,
}

// ParseAlgorithm validates a numeric selector.
func ParseAlgorithm(code int) (Algorithm, error) {
	a := Algorithm(code)
	if !a.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, code)
	}

	return a, nil
}

func (a Algorithm) valid() bool {
	switch a {
	case Differencing,
		DirectRepeatedRandom, DirectHillClimbing, DirectSimulatedAnnealing,
		PrepartitionedRepeatedRandom, PrepartitionedHillClimbing, PrepartitionedSimulatedAnnealing:
		return true
	default:
		return false
	}
}

// Kind returns the representation used by a local-search selector.
// Differencing reports Direct; it uses no representation.
func (a Algorithm) Kind() Kind {
	if a >= PrepartitionedRepeatedRandom {
		return Prepartitioned
	}

	return Direct
}

// Mode returns the local-search mode, or 0 for Differencing.
func (a Algorithm) Mode() Mode {
	if a == Differencing {
		return 0
	}

	return Mode(int(a) % 10)
}

// String returns a short stable name, used as a metrics label.
func (a Algorithm) String() string {
	switch a {
	case Differencing:
		return "kk"
	case DirectRepeatedRandom:
		return "rr"
	case DirectHillClimbing:
		return "hc"
	case DirectSimulatedAnnealing:
		return "sa"
	case PrepartitionedRepeatedRandom:
		return "prr"
	case PrepartitionedHillClimbing:
		return "phc"
	case PrepartitionedSimulatedAnnealing:
		return "psa"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Solve validates the selector and routes to the matching solver.
// opts is ignored by Differencing.
func Solve(weights []int64, algo Algorithm, opts Options) (int64, error) {
	if !algo.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(algo))
	}
	if algo == Differencing {
		return SolveDifferencing(weights)
	}

	res, err := Search(weights, algo.Kind(), algo.Mode(), opts)
	if err != nil {
		return 0, err
	}

	return res.Residue, nil
}

// SolveDifferencing returns the Karmarkar–Karp residue of weights.
func SolveDifferencing(weights []int64) (int64, error) {
	return kk.Residue(weights)
}

// SolveRepeatedRandom runs Search in RepeatedRandom mode and returns the residue.
func SolveRepeatedRandom(weights []int64, kind Kind, opts Options) (int64, error) {
	return searchResidue(weights, kind, RepeatedRandom, opts)
}

// SolveHillClimbing runs Search in HillClimbing mode and returns the residue.
func SolveHillClimbing(weights []int64, kind Kind, opts Options) (int64, error) {
	return searchResidue(weights, kind, HillClimbing, opts)
}

// SolveSimulatedAnnealing runs Search in SimulatedAnnealing mode and returns the residue.
func SolveSimulatedAnnealing(weights []int64, kind Kind, opts Options) (int64, error) {
	return searchResidue(weights, kind, SimulatedAnnealing, opts)
}

func searchResidue(weights []int64, kind Kind, mode Mode, opts Options) (int64, error) {
	res, err := Search(weights, kind, mode, opts)
	if err != nil {
		return 0, err
	}

	return res.Residue, nil
}
