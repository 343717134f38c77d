// Package metrics exposes run log activity as prometheus collectors.
//
// runlog is a short-lived CLI, so there is no scrape endpoint. Instead the
// registry can be written to a node_exporter textfile after each command.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "runlog"

// Metrics holds the run log collectors.
type Metrics struct {
	registry *prometheus.Registry

	mutations          *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	exports            *prometheus.CounterVec
	records            prometheus.Gauge
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Persisted collection mutations by operation.",
		}, []string{"op"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Rejected drafts by offending field.",
		}, []string{"field"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "CSV export attempts by result.",
		}, []string{"result"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Records in the collection after the last load or mutation.",
		}),
	}
	m.registry.MustRegister(m.mutations, m.validationFailures, m.exports, m.records)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Mutation counts a persisted mutation. Nil-safe.
func (m *Metrics) Mutation(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
}

// ValidationFailure counts a rejected draft. Nil-safe.
func (m *Metrics) ValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// Export counts an export attempt; result is "ok" or "empty". Nil-safe.
func (m *Metrics) Export(result string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(result).Inc()
}

// SetRecords records the collection size. Nil-safe.
func (m *Metrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.records.Set(float64(n))
}

// WriteTextfile writes the registry in the text exposition format for
// node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
