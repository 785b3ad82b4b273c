package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"StockCast/internal/domain/repository"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	forecastDuration *prometheus.HistogramVec
	errorsTotal      *prometheus.CounterVec
	lastPrice        *prometheus.GaugeVec
	alertsTriggered  *prometheus.CounterVec
}

// New creates a Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		forecastDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockcast_forecast_duration_seconds",
				Help:    "Duration of forecast generation in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"ticker"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_errors_total",
				Help: "Total number of errors by pipeline stage",
			},
			[]string{"stage"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockcast_last_price",
				Help: "Last observed close price for a symbol",
			},
			[]string{"symbol"},
		),
		alertsTriggered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_alerts_triggered_total",
				Help: "Total number of price alerts triggered",
			},
			[]string{"symbol"},
		),
	}
}

func (r *Recorder) RecordForecast(ticker string, seconds float64) {
	r.forecastDuration.WithLabelValues(ticker).Observe(seconds)
}

func (r *Recorder) RecordError(stage string) {
	r.errorsTotal.WithLabelValues(stage).Inc()
}

func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

func (r *Recorder) RecordAlertTriggered(symbol string) {
	r.alertsTriggered.WithLabelValues(symbol).Inc()
}

var _ repository.Metrics = (*Recorder)(nil)

// Noop discards all measurements. Used in tests.
type Noop struct{}

func (Noop) RecordForecast(string, float64)  {}
func (Noop) RecordError(string)              {}
func (Noop) RecordLastPrice(string, float64) {}
func (Noop) RecordAlertTriggered(string)     {}

var _ repository.Metrics = Noop{}
