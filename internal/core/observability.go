package core

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives the outcome of every service operation.
type Recorder interface {
	Observe(operation string, success bool, duration time.Duration)
}

// NopRecorder discards all observations.
type NopRecorder struct{}

// Observe implements Recorder.
func (NopRecorder) Observe(string, bool, time.Duration) {}

var expvarSeq uint64

// ExpvarRecorder publishes aggregate timing and result counters via expvar,
// for deployments that prefer process-local metrics without external
// dependencies. Durations accumulate in milliseconds per operation.
type ExpvarRecorder struct {
	name      string
	mu        sync.Mutex
	durations map[string]float64
	results   map[string]map[string]int64
}

// ExpvarSnapshot captures a read-only view of the recorded metrics.
type ExpvarSnapshot struct {
	DurationsMS map[string]float64          `json:"durations_ms_total"`
	Results     map[string]map[string]int64 `json:"results_total"`
	RecordedAt  time.Time                   `json:"recorded_at"`
}

// NewExpvarRecorder constructs an expvar-backed recorder published under the
// supplied name. When name is empty a unique one is generated.
func NewExpvarRecorder(name string) *ExpvarRecorder {
	if name == "" {
		id := atomic.AddUint64(&expvarSeq, 1)
		name = fmt.Sprintf("fieldcrm_service_metrics_%d", id)
	}
	rec := &ExpvarRecorder{
		name:      name,
		durations: make(map[string]float64),
		results:   make(map[string]map[string]int64),
	}
	expvar.Publish(name, expvar.Func(func() any {
		return rec.Snapshot()
	}))
	return rec
}

// Name returns the expvar export name associated with the recorder.
func (r *ExpvarRecorder) Name() string { return r.name }

// Snapshot returns an immutable copy of the aggregated metrics.
func (r *ExpvarRecorder) Snapshot() ExpvarSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	durations := make(map[string]float64, len(r.durations))
	for op, total := range r.durations {
		durations[op] = total
	}
	results := make(map[string]map[string]int64, len(r.results))
	for op, statusCounts := range r.results {
		cpy := make(map[string]int64, len(statusCounts))
		for status, count := range statusCounts {
			cpy[status] = count
		}
		results[op] = cpy
	}
	return ExpvarSnapshot{
		DurationsMS: durations,
		Results:     results,
		RecordedAt:  time.Now().UTC(),
	}
}

// Observe implements Recorder.
func (r *ExpvarRecorder) Observe(operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	ms := float64(duration) / float64(time.Millisecond)
	status := "error"
	if success {
		status = "success"
	}

	r.mu.Lock()
	r.durations[operation] += ms
	if _, ok := r.results[operation]; !ok {
		r.results[operation] = make(map[string]int64, 2)
	}
	r.results[operation][status]++
	r.mu.Unlock()
}

// PromRecorder exports operation counters and durations through a Prometheus
// registry.
type PromRecorder struct {
	registry *prometheus.Registry
	results  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPromRecorder builds a recorder on the given registry, creating a fresh
// one when nil.
func NewPromRecorder(registry *prometheus.Registry) *PromRecorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	results := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldcrm_operations_total",
		Help: "Service operations by name and result status.",
	}, []string{"operation", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fieldcrm_operation_duration_seconds",
		Help:    "Service operation durations by name.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	registry.MustRegister(results, duration)
	return &PromRecorder{registry: registry, results: results, duration: duration}
}

// Registry returns the underlying registry for exposition.
func (r *PromRecorder) Registry() *prometheus.Registry { return r.registry }

// Observe implements Recorder.
func (r *PromRecorder) Observe(operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.results.WithLabelValues(operation, status).Inc()
	r.duration.WithLabelValues(operation).Observe(duration.Seconds())
}
