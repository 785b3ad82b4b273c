package forecast

import (
	"fmt"
	"math"

	"StockCast/internal/domain/models"
)

// CompareBenchmark returns the ticker's percent change minus the reference
// index's percent change over their respective windows, rounded to two
// decimal places. The two windows may legitimately differ in length (the
// reference flow compares a 7-day ticker tail against a 7-day index window,
// but nothing requires equal lengths); only non-empty series are required.
func CompareBenchmark(ticker, index models.PriceSeries) (float64, error) {
	if len(ticker) == 0 || len(index) == 0 {
		return 0, fmt.Errorf("compare benchmark: empty series: %w", models.ErrInsufficientData)
	}
	return round2(percentChange(ticker) - percentChange(index)), nil
}

func percentChange(s models.PriceSeries) float64 {
	first := s.First().Close
	if first == 0 {
		return 0
	}
	return (s.Last().Close - first) / first * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
