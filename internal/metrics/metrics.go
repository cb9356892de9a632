package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы генерации описания, метка outcome.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeParseError      = "parse_error"
	OutcomeUpstreamError   = "upstream_error"
	OutcomeMissingContent  = "missing_content"
	OutcomeInternalError   = "internal_error"
)

type Metrics struct {
	generations      *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "museum",
			Name:      "description_generations_total",
			Help:      "Description generation requests by outcome.",
		}, []string{"outcome"}),
		upstreamDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "museum",
			Name:      "description_upstream_duration_seconds",
			Help:      "Time spent waiting for the chat-completion API.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}),
	}
}

func (m *Metrics) ObserveOutcome(outcome string) {
	m.generations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveUpstream(d time.Duration) {
	m.upstreamDuration.Observe(d.Seconds())
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
