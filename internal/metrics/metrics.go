// Package metrics exposes benchmark measurements as Prometheus collectors
// and provides runtime memory snapshots for the verbose report.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// BenchmarkMetrics groups the Prometheus collectors describing benchmark runs.
// All collectors live in a private registry so tests never collide on the
// global default registry.
type BenchmarkMetrics struct {
	registry *prometheus.Registry

	runsTotal        prometheus.Counter
	arraySize        prometheus.Gauge
	workerCount      prometheus.Gauge
	strategyDuration *prometheus.HistogramVec
	lastDuration     *prometheus.GaugeVec
}

// NewBenchmarkMetrics creates the collectors and registers them, together
// with the standard Go runtime collectors, on a fresh registry.
func NewBenchmarkMetrics() *BenchmarkMetrics {
	m := &BenchmarkMetrics{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parsum_runs_total",
			Help: "Number of completed benchmark runs.",
		}),
		arraySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsum_array_size",
			Help: "Array length of the most recent benchmark run.",
		}),
		workerCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsum_worker_count",
			Help: "Worker count of the most recent benchmark run.",
		}),
		strategyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parsum_strategy_duration_seconds",
			Help:    "Wall-clock duration of strategy executions.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 2, 16),
		}, []string{"strategy"}),
		lastDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parsum_strategy_last_duration_seconds",
			Help: "Wall-clock duration of the most recent execution per strategy.",
		}, []string{"strategy"}),
	}

	m.registry.MustRegister(
		m.runsTotal,
		m.arraySize,
		m.workerCount,
		m.strategyDuration,
		m.lastDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry holding all benchmark collectors, suitable
// for serving via promhttp.
func (m *BenchmarkMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStrategy records one strategy execution.
func (m *BenchmarkMetrics) ObserveStrategy(name string, d time.Duration) {
	m.strategyDuration.WithLabelValues(name).Observe(d.Seconds())
	m.lastDuration.WithLabelValues(name).Set(d.Seconds())
}

// RecordRun records the shape of a completed benchmark run.
func (m *BenchmarkMetrics) RecordRun(size, workers int) {
	m.runsTotal.Inc()
	m.arraySize.Set(float64(size))
	m.workerCount.Set(float64(workers))
}
