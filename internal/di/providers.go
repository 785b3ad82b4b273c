package di

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"StockCast/internal/domain/repository"
	domsvc "StockCast/internal/domain/service"
	"StockCast/internal/handler/api"
	internalrepo "StockCast/internal/repository"
	"StockCast/internal/service/marketdata"
	"StockCast/internal/service/metrics"
	"StockCast/internal/service/ratelimit"
	"StockCast/internal/services/forecast"
	"StockCast/internal/usecase"
	"StockCast/pkg/config"
	xhttp "StockCast/pkg/http"
	pkgkafka "StockCast/pkg/kafka"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideRedisClient creates the Redis client for watchlist/alert storage.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// ProvideWatchlistStore creates the Redis-backed watchlist repository.
func ProvideWatchlistStore(cli *redis.Client) repository.WatchlistStore {
	return internalrepo.NewRedisWatchlist(cli)
}

// ProvideAlertStore creates the Redis-backed alert repository.
func ProvideAlertStore(cli *redis.Client) repository.AlertStore {
	return internalrepo.NewRedisAlerts(cli)
}

// ProvideHistoryProvider creates the Yahoo Finance history provider.
func ProvideHistoryProvider(cfg *config.Config) repository.HistoryProvider {
	return marketdata.NewYahooClient(
		cfg.MarketData.BaseURL,
		cfg.MarketData.Timeout,
		cfg.MarketData.UserAgent,
		cfg.MarketData.SymbolMap,
	)
}

// ProvideAlertPublisher creates the Kafka alert publisher, or nil when
// messaging is disabled.
func ProvideAlertPublisher(cfg *config.Config) (repository.AlertPublisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaAlertPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideStrategies returns the production placeholder strategies.
func ProvideStrategies() (domsvc.OscillatorStrategy, domsvc.CrossoverStrategy, domsvc.ConfidencePolicy) {
	return forecast.RandomOscillator{}, forecast.RandomCrossover{}, forecast.RandomConfidencePolicy{}
}

// ProvideForecastService creates the forecast orchestrator.
func ProvideForecastService(
	cfg *config.Config,
	provider repository.HistoryProvider,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.ForecastService {
	osc, cross, policy := ProvideStrategies()
	return usecase.NewForecastService(provider, osc, cross, policy, m, l, usecase.ForecastConfig{
		LookbackDays:    cfg.MarketData.LookbackDays,
		BenchmarkDays:   cfg.MarketData.BenchmarkDays,
		BenchmarkSymbol: cfg.MarketData.BenchmarkSymbol,
		MAWindow:        cfg.Forecast.MAWindow,
		MaxHorizon:      cfg.Forecast.MaxHorizon,
	})
}

// ProvideAlertWatcher creates the scheduled alert sweeper.
func ProvideAlertWatcher(
	alerts repository.AlertStore,
	provider repository.HistoryProvider,
	publisher repository.AlertPublisher,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.AlertWatcher {
	return usecase.NewAlertWatcher(alerts, provider, publisher, m, l)
}

// ProvideAPIHandler creates the HTTP API handler.
func ProvideAPIHandler(
	l *applogger.Logger,
	forecastSvc *usecase.ForecastService,
	watchlist repository.WatchlistStore,
	alerts repository.AlertStore,
	provider repository.HistoryProvider,
) *api.Handler {
	return api.New(l, forecastSvc, watchlist, alerts, provider)
}

// ProvideHTTPServer creates the Echo server with the standard middleware
// chain and optional rate limiting.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, handler *api.Handler) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(l),
	}
	if !cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(""))
	} else if cfg.Metrics.Path != "" {
		opts = append(opts, xhttp.WithMetricsPath(cfg.Metrics.Path))
	}
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
		opts = append(opts, xhttp.WithRateLimit(limiter.Allow))
	}
	return xhttp.NewServer(handler, opts...)
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	httpServer *xhttp.Server,
	watcher *usecase.AlertWatcher,
	publisher repository.AlertPublisher,
) *server.App {
	return server.New(cfg, l, httpServer, watcher, publisher)
}
