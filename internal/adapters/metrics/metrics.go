package metrics

import (
	"dmaker/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ResultOK labels a successful operation
const ResultOK = "ok"

// Recorder counts roster operations by outcome
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

// New creates a recorder with its own registry, including Go and process collectors
func New() *Recorder {
	registry := prometheus.NewRegistry()
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dmaker",
			Subsystem: "roster",
			Name:      "operations_total",
			Help:      "Roster operations by operation and result (ok or error code).",
		},
		[]string{"operation", "result"},
	)

	registry.MustRegister(
		operations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Recorder{registry: registry, operations: operations}
}

// Observe implements services.OperationRecorder
func (r *Recorder) Observe(operation string, err error) {
	result := ResultOK
	if err != nil {
		result = string(domain.CodeOf(err))
	}
	r.operations.WithLabelValues(operation, result).Inc()
}

// Registry exposes the registry for the /metrics handler
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
