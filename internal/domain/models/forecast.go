package models

// Indicators holds the auxiliary technical indicators attached to a forecast.
// OscillatorValue and CrossoverSignal come from pluggable strategies; the
// production defaults are bounded random placeholders.
type Indicators struct {
	MovingAverage   float64 `json:"movingAverage"`
	OscillatorValue int     `json:"oscillatorValue"`
	CrossoverSignal string  `json:"crossoverSignal"`
}

// Benchmark holds the relative performance against the reference index,
// in percentage points.
type Benchmark struct {
	Outperformance float64 `json:"outperformance"`
}

// ForecastResult is the full response of one forecast request. It is created
// per request and never persisted.
type ForecastResult struct {
	Ticker     string      `json:"ticker"`
	Forecast   []float64   `json:"forecast"`
	Historical PriceSeries `json:"historical"`
	Confidence int         `json:"confidence"`
	ErrorRange string      `json:"errorRange"`
	Indicators Indicators  `json:"indicators"`
	Benchmark  Benchmark   `json:"benchmark"`
}

// Crossover signal labels emitted by crossover strategies.
const (
	CrossoverBullish = "bullish"
	CrossoverBearish = "bearish"
)
