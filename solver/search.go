// Package solver - local-search driver.
//
// Search runs one of three modes on a single engine:
//   - RepeatedRandom: fresh uniform draw every iteration, keep the best.
//   - HillClimbing: one neighbor per iteration, accepted only if strictly better.
//   - SimulatedAnnealing: as HillClimbing, plus acceptance of a non-improving
//     neighbor when u ≤ exp(−(r(neighbor) − r(current)) / T(i)), u ~ U[0,1).
//
// Invariants:
//   - best.Residue is non-increasing and ≤ current.Residue after every iteration.
//   - best is updated as soon as current improves on it, whether or not the
//     last candidate was accepted.
//   - Evaluated == Iterations + 1 (the initial draw is the first candidate).
//
// Complexity: O(Iterations · cost(n)), cost(n) = O(n) Direct, O(n log n) Prepartitioned.
package solver

import "math"

// Search runs the local-search driver on weights.
//
// Contract:
//   - len(weights) ≥ 1 (else ErrEmptyInstance); no negative weight.
//   - opts.Iterations ≥ 0 (else ErrBadIterations); 0 returns the initial draw.
//   - A single weight is returned as the residue without entering the loop.
//
// The caller's slice is never modified.
func Search(weights []int64, kind Kind, mode Mode, opts Options) (Result, error) {
	n, err := validateAll(weights, kind, mode, opts)
	if err != nil {
		return Result{}, err
	}

	// One weight: no partition choice exists.
	if n == 1 {
		return singleton(weights[0], kind), nil
	}

	space, err := NewSpace(kind, n)
	if err != nil {
		return Result{}, err
	}

	r := &runner{
		weights: weights,
		space:   space,
		src:     NewSource(opts.Seed),
		opts:    opts,
		cur:     make([]int, n),
		best:    make([]int, n),
		cand:    make([]int, n),
	}
	if r.opts.Schedule == nil {
		r.opts.Schedule = DefaultSchedule
	}

	if err = r.init(); err != nil {
		return Result{}, err
	}
	if mode == RepeatedRandom {
		err = r.sample()
	} else {
		err = r.climb(mode == SimulatedAnnealing)
	}
	if err != nil {
		return Result{}, err
	}

	return r.result(), nil
}

// runner holds the mutable state of a single Search call.
type runner struct {
	weights []int64 // read-only instance
	space   Space   // representation-specific moves and scoring
	src     *Source // owned by this call only
	opts    Options // Schedule resolved to a non-nil value

	cur, best, cand          []int // current, best-so-far, scratch candidate
	curRes, bestRes, candRes int64

	evaluated int
	accepted  int
	improved  int
}

// init draws the first candidate; it becomes both current and best.
func (r *runner) init() error {
	r.space.Random(r.cur, r.src)
	res, err := r.space.Residue(r.weights, r.cur)
	if err != nil {
		return err
	}
	r.curRes = res
	r.evaluated = 1
	copy(r.best, r.cur)
	r.bestRes = r.curRes

	return nil
}

// sample is the RepeatedRandom loop. current plays no role: every candidate is
// an independent draw compared against best.
func (r *runner) sample() error {
	var (
		i   int
		ok  bool
		err error
	)
	for i = 0; i < r.opts.Iterations; i++ {
		r.space.Random(r.cand, r.src)
		r.candRes, err = r.space.Residue(r.weights, r.cand)
		if err != nil {
			return err
		}
		r.evaluated++

		ok = r.candRes < r.bestRes
		if ok {
			copy(r.best, r.cand)
			r.bestRes = r.candRes
			r.accepted++
			r.improved++
		}
		r.observe(Step{Iter: i, Current: r.candRes, Best: r.bestRes, Accepted: ok})
	}

	return nil
}

// climb is the HillClimbing / SimulatedAnnealing loop.
func (r *runner) climb(anneal bool) error {
	var (
		i    int
		ok   bool
		temp float64
		err  error
	)
	for i = 0; i < r.opts.Iterations; i++ {
		r.space.Neighbor(r.cand, r.cur, r.src)
		r.candRes, err = r.space.Residue(r.weights, r.cand)
		if err != nil {
			return err
		}
		r.evaluated++

		temp = 0
		if anneal {
			temp = r.opts.Schedule(i)
		}

		switch {
		case r.candRes < r.curRes:
			ok = true
		case anneal:
			ok = r.src.Float64() <= acceptance(r.candRes-r.curRes, temp)
		default:
			ok = false
		}

		if ok {
			// Swap buffers: cand's old contents are overwritten by the next Neighbor.
			r.cur, r.cand = r.cand, r.cur
			r.curRes = r.candRes
			r.accepted++
		}

		if r.curRes < r.bestRes {
			copy(r.best, r.cur)
			r.bestRes = r.curRes
			r.improved++
		}
		r.observe(Step{Iter: i, Current: r.curRes, Best: r.bestRes, Temperature: temp, Accepted: ok})
	}

	return nil
}

// observe forwards a snapshot to the optional hook.
func (r *runner) observe(s Step) {
	if r.opts.Hook != nil {
		r.opts.Hook(s)
	}
}

// result packages the best solution; Values is a private copy.
func (r *runner) result() Result {
	values := make([]int, len(r.best))
	copy(values, r.best)

	return Result{
		Residue:   r.bestRes,
		Best:      Solution{Values: values, Residue: r.bestRes},
		Evaluated: r.evaluated,
		Accepted:  r.accepted,
		Improved:  r.improved,
		Seed:      r.src.Seed(),
	}
}

// acceptance returns exp(−delta/temp) for a non-negative delta. A
// non-positive temperature accepts only ties.
func acceptance(delta int64, temp float64) float64 {
	if temp <= 0 || math.IsNaN(temp) {
		if delta == 0 {
			return 1
		}

		return 0
	}

	return math.Exp(-float64(delta) / temp)
}

// singleton is the result for a one-weight instance.
func singleton(w int64, kind Kind) Result {
	v := 1 // Direct: the weight sits in subset A
	if kind == Prepartitioned {
		v = 0 // Prepartitioned: the only bucket
	}

	return Result{
		Residue: w,
		Best:    Solution{Values: []int{v}, Residue: w},
	}
}
