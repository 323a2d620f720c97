package sweep_test

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertqi/partition/config"
	"github.com/albertqi/partition/instance"
	"github.com/albertqi/partition/internal/logging"
	"github.com/albertqi/partition/kk"
	"github.com/albertqi/partition/solver"
	"github.com/albertqi/partition/sweep"
)

const seedSweep = 11

func smallConfig(workers int) config.Config {
	cfg := config.Default()
	cfg.Iterations = 50
	cfg.Seed = seedSweep
	cfg.Sweep.Trials = 4
	cfg.Sweep.Size = 12
	cfg.Sweep.Workers = workers

	return cfg
}

func run(t *testing.T, cfg config.Config, reg prometheus.Registerer) []int64 {
	t.Helper()
	r, err := sweep.New(cfg, logging.Discard(), reg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Run(context.Background(), &buf))

	var out []int64
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		require.NoError(t, err, "line %q", sc.Text())
		out = append(out, v)
	}

	return out
}

func TestRun_SevenLinesPerTrial(t *testing.T) {
	cfg := smallConfig(1)
	got := run(t, cfg, nil)
	require.Len(t, got, cfg.Sweep.Trials*len(solver.SweepOrder))
	for _, v := range got {
		assert.GreaterOrEqual(t, v, int64(0))
	}
}

// TestRun_FirstLineIsDifferencing replays each trial's instance from the
// derived seed and checks the Karmarkar-Karp line.
func TestRun_FirstLineIsDifferencing(t *testing.T) {
	cfg := smallConfig(1)
	got := run(t, cfg, nil)
	per := len(solver.SweepOrder)

	for trial := 0; trial < cfg.Sweep.Trials; trial++ {
		w, err := instance.Random(cfg.Sweep.Size,
			instance.WithSeed(solver.DeriveSeed(seedSweep, uint64(trial))),
			instance.WithRange(cfg.Sweep.MinWeight, cfg.Sweep.MaxWeight))
		require.NoError(t, err)
		want, err := kk.Residue(w)
		require.NoError(t, err)
		assert.Equal(t, want, got[trial*per], "trial %d", trial)
	}
}

func TestRun_SameOutputForAnyWorkerCount(t *testing.T) {
	serial := run(t, smallConfig(1), nil)
	parallel := run(t, smallConfig(4), nil)
	assert.Equal(t, serial, parallel)
}

func TestRun_FreshSeed(t *testing.T) {
	cfg := smallConfig(2)
	cfg.Seed = 0
	got := run(t, cfg, nil)
	assert.Len(t, got, cfg.Sweep.Trials*len(solver.SweepOrder))
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := smallConfig(2)
	run(t, cfg, reg)

	n, err := testutil.GatherAndCount(reg, sweep.MetricRuns)
	require.NoError(t, err)
	assert.Equal(t, len(solver.SweepOrder), n, "one series per algorithm")

	families, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() != sweep.MetricRuns {
			continue
		}
		found = true
		for _, m := range mf.GetMetric() {
			assert.Equal(t, float64(cfg.Sweep.Trials), m.GetCounter().GetValue())
		}
	}
	assert.True(t, found)

	n, err = testutil.GatherAndCount(reg, sweep.MetricResidue, sweep.MetricDuration)
	require.NoError(t, err)
	assert.Equal(t, 2*len(solver.SweepOrder), n)
}

func TestNew_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := sweep.New(smallConfig(1), logging.Discard(), reg)
	require.NoError(t, err)
	_, err = sweep.New(smallConfig(1), logging.Discard(), reg)
	require.NoError(t, err, "a second runner reuses the registered collectors")
}

func TestNew_Errors(t *testing.T) {
	cfg := smallConfig(1)
	cfg.Sweep.Trials = 0
	_, err := sweep.New(cfg, logging.Discard(), nil)
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = sweep.New(smallConfig(1), nil, nil)
	require.ErrorIs(t, err, sweep.ErrNilLogger)
}

func TestRun_Cancelled(t *testing.T) {
	r, err := sweep.New(smallConfig(2), logging.Discard(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err = r.Run(ctx, &buf)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	run(t, smallConfig(1), reg)

	path := filepath.Join(t.TempDir(), "sweep.prom")
	require.NoError(t, sweep.WriteMetrics(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, sweep.MetricRuns+`{algorithm="psa"} 4`), text)
	assert.Contains(t, text, sweep.MetricResidue+"_bucket")
}
