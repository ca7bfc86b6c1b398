// Package metrics exposes the patient list's current shape on a Prometheus
// scrape endpoint.
package metrics

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can create as many as they like.
type Collector struct {
	registry    *prometheus.Registry
	stored      prometheus.Gauge
	byCondition *prometheus.GaugeVec
	mutations   *prometheus.CounterVec
}

// NewCollector registers the dashboard gauges plus Go runtime collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "patients_stored",
			Help: "Number of patient records in the store",
		}),
		byCondition: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "patients_by_condition",
			Help: "Number of patient records per condition",
		}, []string{"condition"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "patient_mutations_total",
			Help: "Total number of persisted patient mutations",
		}, []string{"operation"}),
	}
	c.registry.MustRegister(
		c.stored,
		c.byCondition,
		c.mutations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveConditions replaces the gauges with the given histogram. Conditions
// that disappeared are dropped rather than left at a stale value.
func (c *Collector) ObserveConditions(h chart.Histogram) {
	c.byCondition.Reset()
	for _, b := range h.Bins {
		c.byCondition.WithLabelValues(b.Condition).Set(float64(b.Count))
	}
	c.stored.Set(float64(h.Total()))
}

// CountMutation increments the mutation counter for operation.
func (c *Collector) CountMutation(operation string) {
	c.mutations.WithLabelValues(operation).Inc()
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
