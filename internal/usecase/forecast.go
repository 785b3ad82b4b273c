package usecase

import (
	"context"
	"fmt"
	"time"

	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
	domsvc "StockCast/internal/domain/service"
	"StockCast/internal/services/forecast"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/util"
)

// ForecastConfig sets the fetch windows and indicator width of the pipeline.
type ForecastConfig struct {
	LookbackDays    int
	BenchmarkDays   int
	BenchmarkSymbol string
	MAWindow        int
	MaxHorizon      int
}

// ForecastService orchestrates the forecast pipeline: fetch history, fit the
// trend, project it forward, derive indicators and compare against the
// reference index. Everything is request-scoped; nothing is cached or
// persisted between requests.
type ForecastService struct {
	provider drepo.HistoryProvider
	osc      domsvc.OscillatorStrategy
	cross    domsvc.CrossoverStrategy
	policy   domsvc.ConfidencePolicy
	metrics  drepo.Metrics
	logger   *applogger.Logger
	cfg      ForecastConfig
}

func NewForecastService(
	provider drepo.HistoryProvider,
	osc domsvc.OscillatorStrategy,
	cross domsvc.CrossoverStrategy,
	policy domsvc.ConfidencePolicy,
	metrics drepo.Metrics,
	logger *applogger.Logger,
	cfg ForecastConfig,
) *ForecastService {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = 30
	}
	if cfg.BenchmarkDays <= 0 {
		cfg.BenchmarkDays = 7
	}
	if cfg.BenchmarkSymbol == "" {
		cfg.BenchmarkSymbol = "^GSPC"
	}
	if cfg.MAWindow <= 0 {
		cfg.MAWindow = forecast.DefaultMAWindow
	}
	return &ForecastService{
		provider: provider,
		osc:      osc,
		cross:    cross,
		policy:   policy,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
	}
}

type fetchResult struct {
	series models.PriceSeries
	err    error
}

// Generate runs the full pipeline for one ticker. Validation happens before
// any fetch; any stage error aborts the whole request with no partial result.
func (s *ForecastService) Generate(ctx context.Context, ticker string, horizon int) (*models.ForecastResult, error) {
	start := time.Now()

	ticker = util.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required: %w", models.ErrInvalidRequest)
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d: %w", horizon, models.ErrInvalidRequest)
	}
	if s.cfg.MaxHorizon > 0 && horizon > s.cfg.MaxHorizon {
		return nil, fmt.Errorf("horizon %d exceeds maximum %d: %w", horizon, s.cfg.MaxHorizon, models.ErrInvalidRequest)
	}

	now := time.Now()

	// The index fetch has no data dependency on the ticker fetch; run it
	// concurrently and join before the benchmark step.
	benchCh := make(chan fetchResult, 1)
	go func() {
		series, err := s.provider.FetchHistory(ctx, s.cfg.BenchmarkSymbol,
			now.AddDate(0, 0, -s.cfg.BenchmarkDays), now, marketInterval)
		benchCh <- fetchResult{series: series, err: err}
	}()

	history, err := s.provider.FetchHistory(ctx, ticker,
		now.AddDate(0, 0, -s.cfg.LookbackDays), now, marketInterval)
	if err != nil {
		return nil, s.fail("fetch_history", ticker, err)
	}

	model, err := forecast.FitTrend(history)
	if err != nil {
		return nil, s.fail("fit_trend", ticker, err)
	}

	offsets := make([]int, horizon)
	for i := range offsets {
		offsets[i] = len(history) + i
	}
	projected := model.Project(offsets)

	closes := history.Closes()
	indicators := models.Indicators{
		MovingAverage:   forecast.MovingAverage(closes, s.cfg.MAWindow),
		OscillatorValue: s.osc.Oscillator(closes),
		CrossoverSignal: s.cross.Crossover(closes),
	}

	bench := <-benchCh
	if bench.err != nil {
		return nil, s.fail("fetch_benchmark", ticker, bench.err)
	}
	// Reuse the tail of the already fetched lookback series for the ticker
	// side of the comparison instead of issuing a second fetch.
	outperformance, err := forecast.CompareBenchmark(history.Tail(s.cfg.BenchmarkDays), bench.series)
	if err != nil {
		return nil, s.fail("compare_benchmark", ticker, err)
	}

	result := &models.ForecastResult{
		Ticker:     ticker,
		Forecast:   projected,
		Historical: history,
		Confidence: s.policy.Confidence(),
		ErrorRange: s.policy.ErrorRange(),
		Indicators: indicators,
		Benchmark:  models.Benchmark{Outperformance: outperformance},
	}

	if s.metrics != nil {
		s.metrics.RecordForecast(ticker, time.Since(start).Seconds())
		s.metrics.RecordLastPrice(ticker, history.Last().Close)
	}
	if s.logger != nil {
		s.logger.Info("forecast generated",
			applogger.String("ticker", ticker),
			applogger.Int("horizon", horizon),
			applogger.Int("history_points", len(history)),
			applogger.Float64("slope", model.Slope),
		)
	}
	return result, nil
}

func (s *ForecastService) fail(stage, ticker string, err error) error {
	if s.metrics != nil {
		s.metrics.RecordError(stage)
	}
	if s.logger != nil {
		s.logger.Error("forecast stage failed",
			applogger.String("ticker", ticker),
			applogger.String("stage", stage),
			applogger.Error(err),
		)
	}
	return fmt.Errorf("%s: %w", stage, err)
}

const marketInterval = "1d"
