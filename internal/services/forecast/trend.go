package forecast

import (
	"fmt"

	"StockCast/internal/domain/models"
)

// TrendModel is a linear trend fitted over a price series. The x axis is the
// integer index of each point (0..n-1), which treats trading days as evenly
// spaced and ignores calendar gaps.
type TrendModel struct {
	Slope     float64
	Intercept float64
}

// FitTrend fits ordinary least squares over (index, close) pairs. A series
// shorter than two points has no defined slope.
func FitTrend(series models.PriceSeries) (TrendModel, error) {
	n := len(series)
	if n < 2 {
		return TrendModel{}, fmt.Errorf("fit trend: need at least 2 points, got %d: %w", n, models.ErrInsufficientData)
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, p := range series {
		x := float64(i)
		sumX += x
		sumY += p.Close
		sumXY += x * p.Close
		sumXX += x * x
	}

	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	return TrendModel{Slope: slope, Intercept: intercept}, nil
}

// At evaluates the fitted line at x.
func (m TrendModel) At(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Project evaluates the fitted line at each requested index offset.
func (m TrendModel) Project(offsets []int) []float64 {
	out := make([]float64, len(offsets))
	for i, x := range offsets {
		out[i] = m.At(float64(x))
	}
	return out
}
