// Package metrics exposes engine outcomes as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"loyalty/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loyalty"

// Prometheus implements service.Metrics on its own registry.
type Prometheus struct {
	registry     *prometheus.Registry
	scans        *prometheus.CounterVec
	scanDuration prometheus.Histogram
	redemptions  *prometheus.CounterVec
	partnerGifts *prometheus.CounterVec
}

// NewPrometheus registers the engine collectors plus the Go and process collectors.
func NewPrometheus() *Prometheus {
	m := &Prometheus{
		registry: prometheus.NewRegistry(),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Recorded scans by outcome.",
		}, []string{"outcome"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Duration of scan transactions.",
			Buckets:   prometheus.DefBuckets,
		}),
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Redemptions by kind and final state.",
		}, []string{"kind", "state"}),
		partnerGifts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partner_gift_evaluations_total",
			Help:      "Partner link evaluations by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scans,
		m.scanDuration,
		m.redemptions,
		m.partnerGifts,
	)

	return m
}

// NewMetrics provides the service.Metrics view of a Prometheus instance.
func NewMetrics(p *Prometheus) service.Metrics {
	return p
}

func (m *Prometheus) ObserveScan(outcome string, duration time.Duration) {
	m.scans.WithLabelValues(outcome).Inc()
	m.scanDuration.Observe(duration.Seconds())
}

func (m *Prometheus) ObserveRedemption(kind, state string) {
	m.redemptions.WithLabelValues(kind, state).Inc()
}

func (m *Prometheus) ObservePartnerGift(outcome string) {
	m.partnerGifts.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
