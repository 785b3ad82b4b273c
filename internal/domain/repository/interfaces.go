package repository

import (
	"context"
	"time"

	"StockCast/internal/domain/models"
)

// HistoryProvider fetches ordered daily close prices from the external
// market-data source. Implementations do not retry; upstream failures are
// terminal for the request.
type HistoryProvider interface {
	FetchHistory(ctx context.Context, symbol string, from, to time.Time, interval string) (models.PriceSeries, error)
	FetchLatestClose(ctx context.Context, symbol string) (float64, error)
}

// WatchlistStore persists per-user watchlists.
type WatchlistStore interface {
	Add(ctx context.Context, user, symbol string) error
	Remove(ctx context.Context, user, symbol string) error
	List(ctx context.Context, user string) ([]string, error)
}

// AlertStore persists per-user price alerts.
type AlertStore interface {
	Create(ctx context.Context, user string, alert models.Alert) error
	Delete(ctx context.Context, user, id string) error
	List(ctx context.Context, user string) ([]models.Alert, error)
	// ListActive returns all non-triggered alerts across users.
	ListActive(ctx context.Context) ([]models.UserAlert, error)
	MarkTriggered(ctx context.Context, user, id string, at time.Time) error
}

// AlertPublisher emits alert trigger events to the messaging backend.
type AlertPublisher interface {
	Publish(ctx context.Context, event models.AlertEvent) error
	Close() error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordForecast(ticker string, seconds float64)
	RecordError(stage string)
	RecordLastPrice(symbol string, price float64)
	RecordAlertTriggered(symbol string)
}
