package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// TaskAssignments counts tasks assigned by the greedy engine.
	TaskAssignments = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "task_assignments_total", Help: "Tasks assigned to drivers."},
	)
	// AssignmentCost records the marginal cost of each assignment.
	AssignmentCost = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "task_assignment_marginal_cost", Help: "Marginal distance cost per assignment.", Buckets: []float64{0, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}},
	)
	// OperationDuration records obs.Time spans by operation and outcome.
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "operation_duration_seconds", Help: "Duration of timed operations in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"op", "status"},
	)
	// PlanRuns counts dataset assignment runs by outcome.
	PlanRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "assignment_runs_total", Help: "Dataset assignment runs by outcome."},
		[]string{"status"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(TaskAssignments)
		Registry.MustRegister(AssignmentCost)
		Registry.MustRegister(PlanRuns)
		Registry.MustRegister(OperationDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
