// Package metrics provides feed calculation metrics for observability
package metrics

import (
	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/prometheus/client_golang/prometheus"
)

// DosingMetrics contains Prometheus metrics for feed calculations
type DosingMetrics struct {
	calculationsTotal *prometheus.CounterVec
	warningsTotal     *prometheus.CounterVec
	verdictsTotal     *prometheus.CounterVec
	targetPPM         *prometheus.HistogramVec
	feedLogWrites     *prometheus.CounterVec
}

// NewDosingMetrics creates and registers new dosing metrics
func NewDosingMetrics(registry prometheus.Registerer) (*DosingMetrics, error) {
	m := &DosingMetrics{}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// initMetrics initializes all Prometheus metrics
func (m *DosingMetrics) initMetrics() {
	m.calculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_calculations_total",
			Help: "Total number of feed calculations",
		},
		[]string{"stage", "scale"},
	)

	m.warningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_warnings_total",
			Help: "Total number of grower warnings emitted by feed calculations",
		},
		[]string{"category"},
	)

	m.verdictsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_verdicts_total",
			Help: "Total number of systemic symptom verdicts",
		},
		[]string{"verdict"}, // conflict, severe_toxicity, underfeeding
	)

	m.targetPPM = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "feed_target_ppm",
			Help: "Target concentration of calculated feeds",
			// 200 PPM wide buckets from seedling strength to heavy luxury feeds.
			Buckets: prometheus.LinearBuckets(200, 200, 15),
		},
		[]string{"stage"},
	)

	m.feedLogWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_log_writes_total",
			Help: "Total number of feed log writes",
		},
		[]string{"status"}, // success, error
	)
}

// Describe implements prometheus.Collector
func (m *DosingMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.calculationsTotal.Describe(ch)
	m.warningsTotal.Describe(ch)
	m.verdictsTotal.Describe(ch)
	m.targetPPM.Describe(ch)
	m.feedLogWrites.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *DosingMetrics) Collect(ch chan<- prometheus.Metric) {
	m.calculationsTotal.Collect(ch)
	m.warningsTotal.Collect(ch)
	m.verdictsTotal.Collect(ch)
	m.targetPPM.Collect(ch)
	m.feedLogWrites.Collect(ch)
}

// RecordCalculation records one engine run
func (m *DosingMetrics) RecordCalculation(in nutrients.Input, out *nutrients.Output) {
	scale := in.Scale
	if scale == 0 {
		scale = nutrients.Scale500
	}
	m.calculationsTotal.WithLabelValues(string(in.Stage), scaleLabel(scale)).Inc()
	m.targetPPM.WithLabelValues(string(in.Stage)).Observe(float64(out.TargetPPM))

	for _, w := range out.Warnings {
		m.warningsTotal.WithLabelValues(string(w.Category)).Inc()
	}
	if out.Verdict.HasConflict {
		m.verdictsTotal.WithLabelValues("conflict").Inc()
	}
	if out.Verdict.IsSevereToxicity {
		m.verdictsTotal.WithLabelValues("severe_toxicity").Inc()
	}
	if out.Verdict.IsUnderfeeding {
		m.verdictsTotal.WithLabelValues("underfeeding").Inc()
	}
}

// RecordFeedLogWrite records the outcome of a background feed log write
func (m *DosingMetrics) RecordFeedLogWrite(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.feedLogWrites.WithLabelValues(status).Inc()
}

func scaleLabel(s nutrients.Scale) string {
	if s == nutrients.Scale700 {
		return "700"
	}
	return "500"
}
