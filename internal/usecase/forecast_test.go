package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"StockCast/internal/domain/models"
)

// stubProvider serves canned series per symbol and counts fetches.
type stubProvider struct {
	mu     sync.Mutex
	series map[string]models.PriceSeries
	err    error
	calls  int
}

func (p *stubProvider) FetchHistory(ctx context.Context, symbol string, from, to time.Time, interval string) (models.PriceSeries, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	s, ok := p.series[symbol]
	if !ok || len(s) == 0 {
		return nil, fmt.Errorf("no data for %s: %w", symbol, models.ErrDataUnavailable)
	}
	return s, nil
}

func (p *stubProvider) FetchLatestClose(ctx context.Context, symbol string) (float64, error) {
	s, err := p.FetchHistory(ctx, symbol, time.Time{}, time.Time{}, "1d")
	if err != nil {
		return 0, err
	}
	return s.Last().Close, nil
}

func (p *stubProvider) fetchCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// Deterministic strategy doubles.
type fixedOscillator int

func (f fixedOscillator) Oscillator([]float64) int { return int(f) }

type fixedCrossover string

func (f fixedCrossover) Crossover([]float64) string { return string(f) }

type fixedPolicy struct{}

func (fixedPolicy) Confidence() int    { return 90 }
func (fixedPolicy) ErrorRange() string { return "±5%" }

func linearSeries(start float64, n int) models.PriceSeries {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s := make(models.PriceSeries, n)
	for i := range s {
		s[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Close: start + float64(i)}
	}
	return s
}

func newTestService(p *stubProvider) *ForecastService {
	return NewForecastService(p, fixedOscillator(72), fixedCrossover(models.CrossoverBullish), fixedPolicy{}, nil, nil, ForecastConfig{
		LookbackDays:    30,
		BenchmarkDays:   7,
		BenchmarkSymbol: "^GSPC",
		MAWindow:        50,
	})
}

func TestGenerateLinearSeries(t *testing.T) {
	p := &stubProvider{series: map[string]models.PriceSeries{
		"AAPL":  linearSeries(100, 30), // closes 100..129
		"^GSPC": linearSeries(5000, 7),
	}}
	svc := newTestService(p)

	res, err := svc.Generate(context.Background(), "aapl", 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if res.Ticker != "AAPL" {
		t.Errorf("ticker = %q, want normalized AAPL", res.Ticker)
	}
	if len(res.Forecast) != 7 {
		t.Fatalf("forecast length = %d, want 7", len(res.Forecast))
	}
	for i, want := range []float64{130, 131, 132, 133, 134, 135, 136} {
		if math.Abs(res.Forecast[i]-want) > 1e-6 {
			t.Errorf("forecast[%d] = %v, want %v", i, res.Forecast[i], want)
		}
	}
	if len(res.Historical) != 30 {
		t.Errorf("historical length = %d, want 30", len(res.Historical))
	}
	// 10 points short of the 50 window: fallback to last close
	if res.Indicators.MovingAverage != 129 {
		t.Errorf("movingAverage = %v, want fallback 129", res.Indicators.MovingAverage)
	}
	if res.Indicators.OscillatorValue != 72 || res.Indicators.CrossoverSignal != "bullish" {
		t.Errorf("strategy doubles not passed through: %+v", res.Indicators)
	}
	if res.Confidence != 90 || res.ErrorRange != "±5%" {
		t.Errorf("policy double not passed through: %d %q", res.Confidence, res.ErrorRange)
	}

	// ticker tail: 123->129 = +4.878%, index: 5000->5006 = +0.12%
	wantOut := math.Round(((129.0-123.0)/123.0*100-(5006.0-5000.0)/5000.0*100)*100) / 100
	if math.Abs(res.Benchmark.Outperformance-wantOut) > 1e-9 {
		t.Errorf("outperformance = %v, want %v", res.Benchmark.Outperformance, wantOut)
	}
}

func TestGenerateEmptyHistory(t *testing.T) {
	p := &stubProvider{series: map[string]models.PriceSeries{
		"^GSPC": linearSeries(5000, 7),
	}}
	svc := newTestService(p)

	res, err := svc.Generate(context.Background(), "NOPE", 7)
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("got %v, want ErrDataUnavailable", err)
	}
	if res != nil {
		t.Fatal("expected no partial result on upstream failure")
	}
}

func TestGenerateSinglePointHistory(t *testing.T) {
	p := &stubProvider{series: map[string]models.PriceSeries{
		"AAPL":  linearSeries(100, 1),
		"^GSPC": linearSeries(5000, 7),
	}}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), "AAPL", 7)
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}
}

func TestGenerateInvalidHorizonSkipsFetch(t *testing.T) {
	for _, horizon := range []int{0, -3} {
		p := &stubProvider{series: map[string]models.PriceSeries{}}
		svc := newTestService(p)

		_, err := svc.Generate(context.Background(), "AAPL", horizon)
		if !errors.Is(err, models.ErrInvalidRequest) {
			t.Fatalf("horizon=%d: got %v, want ErrInvalidRequest", horizon, err)
		}
		if n := p.fetchCount(); n != 0 {
			t.Fatalf("horizon=%d: provider called %d times before validation", horizon, n)
		}
	}
}

func TestGenerateEmptyTickerSkipsFetch(t *testing.T) {
	p := &stubProvider{series: map[string]models.PriceSeries{}}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), "   ", 7)
	if !errors.Is(err, models.ErrInvalidRequest) {
		t.Fatalf("got %v, want ErrInvalidRequest", err)
	}
	if n := p.fetchCount(); n != 0 {
		t.Fatalf("provider called %d times for empty ticker", n)
	}
}

func TestGenerateHorizonAboveMax(t *testing.T) {
	p := &stubProvider{series: map[string]models.PriceSeries{}}
	svc := NewForecastService(p, fixedOscillator(72), fixedCrossover("bullish"), fixedPolicy{}, nil, nil, ForecastConfig{
		MaxHorizon: 90,
	})
	_, err := svc.Generate(context.Background(), "AAPL", 91)
	if !errors.Is(err, models.ErrInvalidRequest) {
		t.Fatalf("got %v, want ErrInvalidRequest", err)
	}
}

func TestGenerateBenchmarkFetchFailure(t *testing.T) {
	p := &stubProvider{series: map[string]models.PriceSeries{
		"AAPL": linearSeries(100, 30),
	}}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), "AAPL", 7)
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("got %v, want ErrDataUnavailable from benchmark fetch", err)
	}
}
