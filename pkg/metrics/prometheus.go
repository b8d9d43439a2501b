package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder tracks prediction pipeline metrics via Prometheus.
type Recorder struct {
	predictionsTotal *prometheus.CounterVec
	dataSourceTotal  *prometheus.CounterVec
	stageDuration    *prometheus.HistogramVec
	modelScore       *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		predictionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_predictions_total",
				Help: "Total number of prediction requests by outcome",
			},
			[]string{"outcome"},
		),
		dataSourceTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_data_source_total",
				Help: "Which branch of the price data source served a request",
			},
			[]string{"source"},
		),
		stageDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockcast_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		modelScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockcast_model_score",
				Help: "Last held-out test score per model",
			},
			[]string{"model"},
		),
	}
}

// RecordPrediction records a prediction request outcome ("success" or "failure").
func (r *Recorder) RecordPrediction(outcome string) {
	r.predictionsTotal.WithLabelValues(outcome).Inc()
}

// RecordDataSource records whether live or synthetic data served a request.
func (r *Recorder) RecordDataSource(source string) {
	r.dataSourceTotal.WithLabelValues(source).Inc()
}

// RecordStage records a pipeline stage latency in seconds.
func (r *Recorder) RecordStage(stage string, seconds float64) {
	r.stageDuration.WithLabelValues(stage).Observe(seconds)
}

// RecordModelScore records the latest test score for a model.
func (r *Recorder) RecordModelScore(model string, score float64) {
	r.modelScore.WithLabelValues(model).Set(score)
}
