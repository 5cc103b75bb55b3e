package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"injala/certguard/pkg/config"
)

// Collector owns the Prometheus registry and all certguard metrics.
//
// Metrics:
//   - certguard_documents_total: documents processed by compliance status
//   - certguard_checks_total: check outcomes by check name and status
//   - certguard_extraction_duration_seconds: field extraction duration
//   - certguard_validation_duration_seconds: full document validation duration
//   - certguard_runs_total: validation runs started
//   - certguard_rules_reloads_total: rule specification reloads
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	documentsTotal     *prometheus.CounterVec
	checksTotal        *prometheus.CounterVec
	extractionDuration prometheus.Histogram
	validationDuration prometheus.Histogram
	runsTotal          prometheus.Counter
	rulesReloadsTotal  prometheus.Counter
}

// NewCollector creates a collector registered against the given
// registry. A nil registry gets a fresh private one.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "certguard"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		documentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "documents_total",
				Help:      "Total number of documents processed by compliance status",
			},
			[]string{"status"},
		),

		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "checks_total",
				Help:      "Total number of compliance check outcomes",
			},
			[]string{"check", "status"},
		),

		extractionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "extraction_duration_seconds",
				Help:      "Duration of field extraction per document in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to 26s
			},
		),

		validationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of full document validation in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),

		runsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "runs_total",
				Help:      "Total number of validation runs started",
			},
		),

		rulesReloadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "rules_reloads_total",
				Help:      "Total number of rule specification reloads",
			},
		),
	}

	registry.MustRegister(
		c.documentsTotal,
		c.checksTotal,
		c.extractionDuration,
		c.validationDuration,
		c.runsTotal,
		c.rulesReloadsTotal,
	)

	return c
}

// RecordDocument records a processed document and its check outcomes.
// checks maps check names to their statuses and may be empty for
// errored documents.
func (c *Collector) RecordDocument(status string, checks map[string]string) {
	if !c.config.IsEnabled() {
		return
	}
	c.documentsTotal.WithLabelValues(status).Inc()
	for check, checkStatus := range checks {
		c.checksTotal.WithLabelValues(check, checkStatus).Inc()
	}
}

// RecordExtraction records the duration of one field extraction.
func (c *Collector) RecordExtraction(duration time.Duration) {
	if !c.config.IsEnabled() {
		return
	}
	c.extractionDuration.Observe(duration.Seconds())
}

// RecordValidation records the duration of one full document validation.
func (c *Collector) RecordValidation(duration time.Duration) {
	if !c.config.IsEnabled() {
		return
	}
	c.validationDuration.Observe(duration.Seconds())
}

// RecordRun records the start of a validation run.
func (c *Collector) RecordRun() {
	if !c.config.IsEnabled() {
		return
	}
	c.runsTotal.Inc()
}

// RecordRulesReload records a rule specification reload.
func (c *Collector) RecordRulesReload() {
	if !c.config.IsEnabled() {
		return
	}
	c.rulesReloadsTotal.Inc()
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
