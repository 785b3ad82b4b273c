package forecast

import (
	"errors"
	"math"
	"testing"

	"StockCast/internal/domain/models"
)

func TestCompareBenchmark(t *testing.T) {
	ticker := mkSeries(100, 110) // +10%
	index := mkSeries(200, 208)  // +4%
	got, err := CompareBenchmark(ticker, index)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if math.Abs(got-6.0) > 1e-9 {
		t.Errorf("outperformance = %v, want 6.00", got)
	}
}

func TestCompareBenchmarkRoundsToTwoDecimals(t *testing.T) {
	ticker := mkSeries(3, 4) // +33.333...%
	index := mkSeries(100, 100)
	got, err := CompareBenchmark(ticker, index)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got != 33.33 {
		t.Errorf("outperformance = %v, want 33.33", got)
	}
}

func TestCompareBenchmarkAntisymmetric(t *testing.T) {
	a := mkSeries(100, 103, 99, 108)
	b := mkSeries(50, 51, 53, 52)
	ab, err := CompareBenchmark(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := CompareBenchmark(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ab+ba) > 1e-9 {
		t.Errorf("compare(a,b)=%v, compare(b,a)=%v; want opposite signs", ab, ba)
	}
}

// Windows of different lengths are deliberately allowed: the reference flow
// compares a 7-day ticker tail against a 7-day index window, but the
// comparator itself only needs non-empty series.
func TestCompareBenchmarkUnequalWindows(t *testing.T) {
	ticker := mkSeries(100, 101, 102, 103, 104, 105, 110) // 7 points, +10%
	index := mkSeries(400, 420)                           // 2 points, +5%
	got, err := CompareBenchmark(ticker, index)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if math.Abs(got-5.0) > 1e-9 {
		t.Errorf("outperformance = %v, want 5.00", got)
	}
}

func TestCompareBenchmarkEmptySeries(t *testing.T) {
	full := mkSeries(100, 101)
	if _, err := CompareBenchmark(nil, full); !errors.Is(err, models.ErrInsufficientData) {
		t.Errorf("empty ticker: got %v, want ErrInsufficientData", err)
	}
	if _, err := CompareBenchmark(full, models.PriceSeries{}); !errors.Is(err, models.ErrInsufficientData) {
		t.Errorf("empty index: got %v, want ErrInsufficientData", err)
	}
}
