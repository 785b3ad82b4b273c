package forecast

// DefaultMAWindow is the moving-average window used by the forecast pipeline.
const DefaultMAWindow = 50

// MovingAverage returns the arithmetic mean of the last window closes when
// the series has at least window points. Shorter series fall back to the
// single most recent close, never a partial-window mean. This mirrors the
// documented degraded behavior and keeps the function total for any
// non-empty input.
func MovingAverage(closes []float64, window int) float64 {
	if len(closes) == 0 {
		return 0
	}
	if window <= 0 || len(closes) < window {
		return closes[len(closes)-1]
	}
	sum := 0.0
	for _, c := range closes[len(closes)-window:] {
		sum += c
	}
	return sum / float64(window)
}
