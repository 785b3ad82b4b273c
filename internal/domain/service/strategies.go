package service

// OscillatorStrategy produces the momentum oscillator value for a close
// series. The production default is a bounded random placeholder; a real
// technical-indicator implementation can replace it without touching the
// forecast orchestration.
type OscillatorStrategy interface {
	Oscillator(closes []float64) int
}

// CrossoverStrategy produces the moving-average crossover signal label for a
// close series.
type CrossoverStrategy interface {
	Crossover(closes []float64) string
}

// ConfidencePolicy produces the plausibility fields attached to a forecast.
// These carry no statistical meaning; they are isolated here so the numeric
// pipeline stays fully deterministic and the policy can be swapped for a
// deterministic double in tests.
type ConfidencePolicy interface {
	Confidence() int
	ErrorRange() string
}
