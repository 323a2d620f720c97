package sweep

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/albertqi/partition/solver"
)

// Metric names exported on the registry passed to New.
const (
	MetricRuns     = "partition_runs_total"
	MetricResidue  = "partition_residue"
	MetricDuration = "partition_run_seconds"
)

// metrics holds the per-algorithm collectors of one Runner.
type metrics struct {
	runs     *prometheus.CounterVec
	residue  *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRuns,
			Help: "Solver runs by algorithm",
		}, []string{"algorithm"}),
		residue: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricResidue,
			Help:    "Residue returned by each solver run",
			Buckets: prometheus.ExponentialBuckets(1, 10, 13), // 1 to 10^12
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricDuration,
			Help:    "Solver run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3.3s
		}, []string{"algorithm"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.runs, err = register(reg, m.runs); err != nil {
		return nil, err
	}
	if m.residue, err = register(reg, m.residue); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, reusing an identical collector that is already there.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("sweep: register metrics: %w", err)
}

func (m *metrics) observe(algo solver.Algorithm, residue int64, took time.Duration) {
	label := algo.String()
	m.runs.WithLabelValues(label).Inc()
	m.residue.WithLabelValues(label).Observe(float64(residue))
	m.duration.WithLabelValues(label).Observe(took.Seconds())
}

// WriteMetrics dumps everything gathered by g to path in the Prometheus text
// format (node_exporter textfile collector layout).
func WriteMetrics(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("sweep: write metrics: %w", err)
	}

	return nil
}
