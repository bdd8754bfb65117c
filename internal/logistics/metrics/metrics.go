package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for logistics projections.
type Metrics struct {
	Projections      *prometheus.CounterVec
	Unprofitable     prometheus.Counter
	RankCandidates   prometheus.Histogram
	ProcessorLookups *prometheus.CounterVec
	RankLatency      prometheus.Histogram
}

// New registers logistics collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Projections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kisan_logistics_projections_total",
			Help: "Total number of projections computed, labeled by vehicle",
		}, []string{"vehicle"}),
		Unprofitable: f.NewCounter(prometheus.CounterOpts{
			Name: "kisan_logistics_unprofitable_total",
			Help: "Total number of projections whose loss was floored to zero profit",
		}),
		RankCandidates: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kisan_logistics_rank_candidates",
			Help:    "Distribution of processors ranked per request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		ProcessorLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kisan_logistics_processor_lookups_total",
			Help: "Total number of processor lookups by id, labeled by outcome",
		}, []string{"outcome"}),
		RankLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kisan_logistics_rank_latency_seconds",
			Help:    "Latency of ranking processors for a crop",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
}

func (m *Metrics) IncrementProjections(vehicle string, n int) {
	m.Projections.WithLabelValues(vehicle).Add(float64(n))
}

func (m *Metrics) IncrementUnprofitable() {
	m.Unprofitable.Inc()
}

func (m *Metrics) ObserveRankCandidates(n int) {
	m.RankCandidates.Observe(float64(n))
}

// IncrementLookup records a processor lookup; outcome is "found" or "not_found".
func (m *Metrics) IncrementLookup(outcome string) {
	m.ProcessorLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRankLatency(d time.Duration) {
	m.RankLatency.Observe(d.Seconds())
}
