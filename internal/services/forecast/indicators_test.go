package forecast

import (
	"math"
	"testing"
)

func TestMovingAverageFullWindow(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6}
	if got := MovingAverage(closes, 3); math.Abs(got-5.0) > 1e-9 {
		t.Errorf("MA(3) = %v, want 5", got)
	}
	if got := MovingAverage(closes, 6); math.Abs(got-3.5) > 1e-9 {
		t.Errorf("MA(6) = %v, want 3.5", got)
	}
}

// Short series fall back to the single most recent close, not a
// partial-window mean, and the result is independent of any window larger
// than the series.
func TestMovingAverageShortSeriesFallback(t *testing.T) {
	closes := make([]float64, 10)
	for i := range closes {
		closes[i] = 100 + float64(i) // 100..109
	}
	for _, window := range []int{11, 50, 200} {
		if got := MovingAverage(closes, window); got != 109 {
			t.Errorf("MA(window=%d) = %v, want fallback 109", window, got)
		}
	}
}

func TestMovingAverageDegenerateInputs(t *testing.T) {
	if got := MovingAverage(nil, 50); got != 0 {
		t.Errorf("MA(empty) = %v, want 0", got)
	}
	if got := MovingAverage([]float64{7, 8}, 0); got != 8 {
		t.Errorf("MA(window=0) = %v, want last close 8", got)
	}
}

func TestRandomStrategiesStayInBounds(t *testing.T) {
	osc := RandomOscillator{}
	cross := RandomCrossover{}
	policy := RandomConfidencePolicy{}

	for i := 0; i < 200; i++ {
		if v := osc.Oscillator(nil); v < 50 || v >= 90 {
			t.Fatalf("oscillator %d out of [50,90)", v)
		}
		if s := cross.Crossover(nil); s != "bullish" && s != "bearish" {
			t.Fatalf("unexpected crossover label %q", s)
		}
		if c := policy.Confidence(); c < 85 || c >= 95 {
			t.Fatalf("confidence %d out of [85,95)", c)
		}
		er := policy.ErrorRange()
		switch er {
		case "±3%", "±4%", "±5%", "±6%", "±7%":
		default:
			t.Fatalf("unexpected error range %q", er)
		}
	}
}
