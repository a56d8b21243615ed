// Package metrics records pipeline runs as Prometheus collectors and keeps a
// small in-memory summary for the health endpoint.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"documio/internal/app/pipeline"
)

const namespace = "documio"

// Summary is a point-in-time view of all runs since start.
type Summary struct {
	TotalRuns      int64            `json:"total_runs"`
	SuccessfulRuns int64            `json:"successful_runs"`
	SuccessRate    float64          `json:"success_rate"`
	Outcomes       map[string]int64 `json:"outcomes"`
	LastRun        int64            `json:"last_run,omitempty"`
}

// PipelineMetrics implements pipeline.Observer.
type PipelineMetrics struct {
	registry      *prometheus.Registry
	runs          *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	stageFailures *prometheus.CounterVec
	inFlight      prometheus.Gauge

	mu       sync.RWMutex
	outcomes map[string]int64
	lastRun  int64
}

// NewPipelineMetrics registers the collectors on a fresh registry.
func NewPipelineMetrics() *PipelineMetrics {
	m := &PipelineMetrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"stage"}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Failed pipeline stages.",
		}, []string{"stage"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stages_in_flight",
			Help:      "Pipeline stages currently running.",
		}),
		outcomes: make(map[string]int64),
	}
	m.registry.MustRegister(m.runs, m.stageDuration, m.stageFailures, m.inFlight)
	return m
}

// Registry returns the registry to expose over HTTP.
func (m *PipelineMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PipelineMetrics) StageStarted(pipeline.Stage) {
	m.inFlight.Inc()
}

func (m *PipelineMetrics) StageFinished(stage pipeline.Stage, elapsed time.Duration, err error) {
	m.inFlight.Dec()
	m.stageDuration.WithLabelValues(string(stage)).Observe(elapsed.Seconds())
	if err != nil {
		m.stageFailures.WithLabelValues(string(stage)).Inc()
	}
}

func (m *PipelineMetrics) RunFinished(outcome string) {
	m.runs.WithLabelValues(outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
	m.lastRun = time.Now().Unix()
}

// Summary returns a copy of the run counters
func (m *PipelineMetrics) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Summary{
		Outcomes: make(map[string]int64, len(m.outcomes)),
		LastRun:  m.lastRun,
	}
	for outcome, n := range m.outcomes {
		s.Outcomes[outcome] = n
		s.TotalRuns += n
	}
	s.SuccessfulRuns = m.outcomes[pipeline.OutcomeSuccess]
	if s.TotalRuns > 0 {
		s.SuccessRate = float64(s.SuccessfulRuns) / float64(s.TotalRuns)
	}
	return s
}
