package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockCast/internal/domain/models"
)

func mkSeries(closes ...float64) models.PriceSeries {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s := make(models.PriceSeries, len(closes))
	for i, c := range closes {
		s[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Close: c}
	}
	return s
}

func meanSquaredResidual(series models.PriceSeries, slope, intercept float64) float64 {
	var sum float64
	for i, p := range series {
		r := p.Close - (slope*float64(i) + intercept)
		sum += r * r
	}
	return sum / float64(len(series))
}

func TestFitTrendLinearSeries(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	m, err := FitTrend(mkSeries(closes...))
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(m.Slope-1.0) > 1e-9 {
		t.Errorf("slope = %v, want 1.0", m.Slope)
	}
	if math.Abs(m.Intercept-100.0) > 1e-9 {
		t.Errorf("intercept = %v, want 100.0", m.Intercept)
	}
}

func TestFitTrendInsufficientData(t *testing.T) {
	for _, series := range []models.PriceSeries{nil, mkSeries(101.5)} {
		_, err := FitTrend(series)
		if !errors.Is(err, models.ErrInsufficientData) {
			t.Errorf("len=%d: got %v, want ErrInsufficientData", len(series), err)
		}
	}
}

// Least-squares optimality: no candidate line from a brute-force parameter
// grid beats the fitted line's mean squared residual.
func TestFitTrendLeastSquares(t *testing.T) {
	series := mkSeries(100, 104, 99, 107, 111, 105, 114, 118, 112, 121)
	m, err := FitTrend(series)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	best := meanSquaredResidual(series, m.Slope, m.Intercept)

	for slope := -5.0; slope <= 5.0; slope += 0.1 {
		for intercept := 90.0; intercept <= 130.0; intercept += 0.5 {
			if mse := meanSquaredResidual(series, slope, intercept); mse < best-1e-9 {
				t.Fatalf("grid candidate (slope=%v intercept=%v) beats OLS: %v < %v",
					slope, intercept, mse, best)
			}
		}
	}
}

func TestProjectMonotonicInSlopeSign(t *testing.T) {
	offsets := []int{10, 11, 12, 13, 14, 15, 16}
	cases := []struct {
		name  string
		model TrendModel
		cmp   func(prev, next float64) bool
	}{
		{"positive slope non-decreasing", TrendModel{Slope: 0.7, Intercept: 100}, func(p, n float64) bool { return n >= p }},
		{"negative slope non-increasing", TrendModel{Slope: -1.3, Intercept: 100}, func(p, n float64) bool { return n <= p }},
		{"zero slope constant", TrendModel{Slope: 0, Intercept: 42}, func(p, n float64) bool { return n == p }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := tc.model.Project(offsets)
			if len(out) != len(offsets) {
				t.Fatalf("len = %d, want %d", len(out), len(offsets))
			}
			for i := 1; i < len(out); i++ {
				if !tc.cmp(out[i-1], out[i]) {
					t.Fatalf("order violated at %d: %v -> %v", i, out[i-1], out[i])
				}
			}
		})
	}
}

func TestProjectContinuesObservedSeries(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	m, err := FitTrend(mkSeries(closes...))
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	offsets := []int{30, 31, 32, 33, 34, 35, 36}
	got := m.Project(offsets)
	want := []float64{130, 131, 132, 133, 134, 135, 136}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("forecast[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
