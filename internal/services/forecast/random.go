package forecast

import (
	"fmt"
	"math/rand"

	"StockCast/internal/domain/models"
	domsvc "StockCast/internal/domain/service"
)

// Bounds for the randomized placeholder signals. Half-open: [lo, hi).
const (
	oscillatorLo = 50
	oscillatorHi = 90
	confidenceLo = 85
	confidenceHi = 95
	errRangeLo   = 3
	errRangeHi   = 8
)

// RandomOscillator is the production placeholder oscillator: a uniform
// integer in [50,90), independent of the input series.
type RandomOscillator struct{}

func (RandomOscillator) Oscillator(closes []float64) int {
	return oscillatorLo + rand.Intn(oscillatorHi-oscillatorLo)
}

// RandomCrossover is the production placeholder crossover signal: a coin flip
// between the bullish and bearish labels.
type RandomCrossover struct{}

func (RandomCrossover) Crossover(closes []float64) string {
	if rand.Intn(2) == 0 {
		return models.CrossoverBullish
	}
	return models.CrossoverBearish
}

// RandomConfidencePolicy produces the placeholder confidence and error-range
// fields: confidence in [85,95), error range "±N%" with N in [3,8).
type RandomConfidencePolicy struct{}

func (RandomConfidencePolicy) Confidence() int {
	return confidenceLo + rand.Intn(confidenceHi-confidenceLo)
}

func (RandomConfidencePolicy) ErrorRange() string {
	return fmt.Sprintf("±%d%%", errRangeLo+rand.Intn(errRangeHi-errRangeLo))
}

var (
	_ domsvc.OscillatorStrategy = RandomOscillator{}
	_ domsvc.CrossoverStrategy  = RandomCrossover{}
	_ domsvc.ConfidencePolicy   = RandomConfidencePolicy{}
)
