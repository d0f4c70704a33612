// Package metrics instruments ComputeHazard with Prometheus counters and
// histograms via promauto, the registration style the client_golang
// module supports alongside the query-client subpackage the retrieved
// chaos-runner tooling imports — same dependency, the instrumentation
// half of it rather than the query half, since this module produces
// metrics rather than reading someone else's.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry bundles the counters and histograms ComputeHazard updates
// during one calculation, scoped to a single prometheus.Registerer so
// tests can use a fresh, isolated registry per case.
type Registry struct {
	Calculations   *prometheus.CounterVec
	SourceSets     prometheus.Counter
	CalcDuration   prometheus.Histogram
	SourceDuration prometheus.Histogram
}

// NewRegistry registers and returns a Registry bound to reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seismhaz",
			Name:      "calculations_total",
			Help:      "Total ComputeHazard invocations by outcome.",
		}, []string{"outcome"}),
		SourceSets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "seismhaz",
			Name:      "source_sets_processed_total",
			Help:      "Total SourceSets consolidated across all calculations.",
		}),
		CalcDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seismhaz",
			Name:      "calculation_duration_seconds",
			Help:      "Wall-clock duration of a full ComputeHazard call.",
			Buckets:   prometheus.DefBuckets,
		}),
		SourceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seismhaz",
			Name:      "source_stage_duration_seconds",
			Help:      "Wall-clock duration of one source's stage-1-through-3 run.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveCalculation records a completed ComputeHazard call.
func (r *Registry) ObserveCalculation(outcome string, start time.Time) {
	r.Calculations.WithLabelValues(outcome).Inc()
	r.CalcDuration.Observe(time.Since(start).Seconds())
}

// ObserveSource records one source's stage-1-through-3 run duration.
func (r *Registry) ObserveSource(start time.Time) {
	r.SourceDuration.Observe(time.Since(start).Seconds())
}
