package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/albertqi/partition/config"
	"github.com/albertqi/partition/instance"
	"github.com/albertqi/partition/solver"
)

// ErrNilLogger indicates New was called without a logger.
var ErrNilLogger = errors.New("sweep: logger is required")

// Runner executes one configured sweep. A Runner may be reused; each Run gets
// a fresh run id.
type Runner struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics
	algos   []solver.Algorithm
}

// New validates cfg and registers the sweep metrics on reg. A nil reg keeps
// the metrics private to the Runner.
func New(cfg config.Config, log *slog.Logger, reg prometheus.Registerer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrNilLogger
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, log: log, metrics: m, algos: solver.SweepOrder}, nil
}

// Run executes every trial and writes len(SweepOrder) residue lines per trial
// to w, trials in order. It stops scheduling new trials once ctx is done or a
// trial fails, and returns the first error.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = solver.NewSource(0).Seed()
	}
	sc := r.cfg.Sweep
	log := r.log.With("run", uuid.NewString())
	log.Info("sweep started",
		"trials", sc.Trials, "size", sc.Size, "iterations", r.cfg.Iterations,
		"workers", sc.Workers, "seed", seed)

	start := time.Now()
	out := newOrderedWriter(w)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sc.Workers)
	for t := 0; t < sc.Trials; t++ {
		if gctx.Err() != nil {
			break
		}
		t := t // per-iteration copy; go directive is 1.21
		g.Go(func() error {
			res, err := r.trial(gctx, seed, t)
			if err != nil {
				return fmt.Errorf("trial %d: %w", t, err)
			}
			log.Debug("trial done", "trial", t, "residues", res)

			return out.put(t, res)
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("sweep failed", "err", err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("sweep finished", "elapsed", time.Since(start))

	return nil
}

// trial generates instance t and solves it with every algorithm.
func (r *Runner) trial(ctx context.Context, seed int64, t int) ([]int64, error) {
	sc := r.cfg.Sweep
	trialSeed := solver.DeriveSeed(seed, uint64(t))
	weights, err := instance.Random(sc.Size,
		instance.WithSeed(trialSeed),
		instance.WithRange(sc.MinWeight, sc.MaxWeight))
	if err != nil {
		return nil, err
	}

	var (
		res     = make([]int64, len(r.algos))
		begin   time.Time
		residue int64
	)
	for k, algo := range r.algos {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		opts := solver.Options{
			Iterations: r.cfg.Iterations,
			Seed:       solver.DeriveSeed(trialSeed, uint64(k)+1),
		}
		begin = time.Now()
		residue, err = solver.Solve(weights, algo, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algo, err)
		}
		r.metrics.observe(algo, residue, time.Since(begin))
		res[k] = residue
	}

	return res, nil
}

// orderedWriter prints per-trial results in trial order while trials finish
// in any order.
type orderedWriter struct {
	mu      sync.Mutex
	w       io.Writer
	pending map[int][]int64
	next    int
}

func newOrderedWriter(w io.Writer) *orderedWriter {
	return &orderedWriter{w: w, pending: make(map[int][]int64)}
}

// put stores the residues of trial t and flushes every consecutive trial
// that is now complete.
func (o *orderedWriter) put(t int, res []int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.pending[t] = res
	for {
		cur, ok := o.pending[o.next]
		if !ok {
			return nil
		}
		delete(o.pending, o.next)
		for _, v := range cur {
			if _, err := fmt.Fprintln(o.w, v); err != nil {
				return fmt.Errorf("sweep: write: %w", err)
			}
		}
		o.next++
	}
}
