//go:build wireinject
// +build wireinject

package di

import (
	"StockCast/pkg/config"
	"StockCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation in wire_gen.go.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideRedisClient,
		ProvideHistoryProvider,
		ProvideAlertPublisher,

		// Repositories
		ProvideWatchlistStore,
		ProvideAlertStore,

		// Use cases
		ProvideForecastService,
		ProvideAlertWatcher,

		// HTTP surface
		ProvideAPIHandler,
		ProvideHTTPServer,

		ProvideApp,
	)
	return &server.App{}, nil
}
