package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesCreatedTotal    *prometheus.CounterVec
	expensesClearedTotal    prometheus.Counter
	categoryMutationsTotal  *prometheus.CounterVec
	snapshotPersistFailures *prometheus.CounterVec
	exportsGeneratedTotal   prometheus.Counter
	recordingSessionsTotal  *prometheus.CounterVec
	recordingArtifactBytes  prometheus.Histogram
	statsSummaryDuration    prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_created_total",
				Help: "Total number of expenses recorded",
			},
			[]string{"category"},
		),
		expensesClearedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expenses_cleared_total",
				Help: "Total number of ledger bulk clears",
			},
		),
		categoryMutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_mutations_total",
				Help: "Total number of category registry mutations by action",
			},
			[]string{"action"},
		),
		snapshotPersistFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snapshot_persist_failures_total",
				Help: "Total number of failed snapshot writes by snapshot name",
			},
			[]string{"snapshot"},
		),
		exportsGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "exports_generated_total",
				Help: "Total number of CSV exports generated",
			},
		),
		recordingSessionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recording_sessions_total",
				Help: "Total number of recording session events by outcome",
			},
			[]string{"outcome"},
		),
		recordingArtifactBytes: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recording_artifact_bytes",
				Help:    "Size of uploaded recording artifacts in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
			},
		),
		statsSummaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stats_summary_duration_seconds",
				Help:    "Statistics summary computation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense_created":
		m.expensesCreatedTotal.WithLabelValues(tags["category"]).Inc()
	case "expenses_cleared":
		m.expensesClearedTotal.Inc()
	case "category_mutated":
		if action := tags["action"]; action != "" {
			m.categoryMutationsTotal.WithLabelValues(action).Inc()
		}
	case "snapshot_persist_failed":
		m.snapshotPersistFailures.WithLabelValues(tags["snapshot"]).Inc()
	case "export_generated":
		m.exportsGeneratedTotal.Inc()
	case "recording_session":
		if outcome := tags["outcome"]; outcome != "" {
			m.recordingSessionsTotal.WithLabelValues(outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "stats_summary":
		m.statsSummaryDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "recording_artifact_bytes":
		m.recordingArtifactBytes.Observe(value)
	}
}
