package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the enforcement engine. Batch
// summaries feed the counters after every run, so the scrape view is the
// cumulative version of the per-run summaries.
type Metrics struct {
	SpendsRecorded   prometheus.Counter
	SpendAmount      prometheus.Counter
	PausesTotal      *prometheus.CounterVec
	ActivationsTotal *prometheus.CounterVec
	BatchRunsTotal   *prometheus.CounterVec
	BatchErrorsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with all instruments registered on a fresh
// registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		SpendsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pacekeeper_spends_recorded_total",
			Help: "Total number of spend ledger entries recorded",
		}),
		SpendAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pacekeeper_spend_amount_cents_total",
			Help: "Total recorded spend amount in cents",
		}),
		PausesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pacekeeper_campaign_pauses_total",
			Help: "Total campaign pause transitions by reason",
		}, []string{"reason"}),
		ActivationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pacekeeper_campaign_activations_total",
			Help: "Total campaign activations by origin",
		}, []string{"origin"}),
		BatchRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pacekeeper_batch_runs_total",
			Help: "Total batch enforcement runs by operation",
		}, []string{"operation"}),
		BatchErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pacekeeper_batch_errors_total",
			Help: "Total per-campaign errors encountered in batch runs",
		}, []string{"operation"}),
		registry: reg,
	}

	reg.MustRegister(
		m.SpendsRecorded,
		m.SpendAmount,
		m.PausesTotal,
		m.ActivationsTotal,
		m.BatchRunsTotal,
		m.BatchErrorsTotal,
		collectors.NewGoCollector(),
	)

	return m
}

// Handler returns the HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
