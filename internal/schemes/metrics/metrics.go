package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for scheme exploration.
type Metrics struct {
	Evaluations       *prometheus.CounterVec
	EligibleSchemes   *prometheus.CounterVec
	LandSizeWarnings  *prometheus.CounterVec
	CombinationCounts prometheus.Histogram
	ExploreLatency    prometheus.Histogram
}

// New registers scheme collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kisan_scheme_evaluations_total",
			Help: "Total number of profile evaluations, labeled by language",
		}, []string{"lang"}),
		EligibleSchemes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kisan_scheme_eligible_total",
			Help: "Total number of eligible outcomes, labeled by scheme",
		}, []string{"scheme"}),
		LandSizeWarnings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kisan_land_size_warnings_total",
			Help: "Total number of land-size corrections, labeled by warning code",
		}, []string{"code"}),
		CombinationCounts: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kisan_scheme_combinations",
			Help:    "Distribution of combination counts per evaluation",
			Buckets: []float64{0, 1, 4, 11, 25, 50, 100, 175, 256},
		}),
		ExploreLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kisan_scheme_explore_latency_seconds",
			Help:    "Latency of profile evaluation including combination generation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

func (m *Metrics) IncrementEvaluations(lang string) {
	m.Evaluations.WithLabelValues(lang).Inc()
}

func (m *Metrics) IncrementEligible(scheme string) {
	m.EligibleSchemes.WithLabelValues(scheme).Inc()
}

func (m *Metrics) IncrementLandSizeWarning(code string) {
	m.LandSizeWarnings.WithLabelValues(code).Inc()
}

func (m *Metrics) ObserveCombinations(n int) {
	m.CombinationCounts.Observe(float64(n))
}

func (m *Metrics) ObserveExploreLatency(d time.Duration) {
	m.ExploreLatency.Observe(d.Seconds())
}
