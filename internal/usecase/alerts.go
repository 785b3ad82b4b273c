package usecase

import (
	"context"
	"time"

	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
	applogger "StockCast/pkg/logger"
)

// AlertWatcher periodically sweeps active price alerts, checks them against
// the latest close and publishes trigger events. One symbol failing to fetch
// never aborts the sweep; its alerts are simply re-checked next round.
type AlertWatcher struct {
	alerts    drepo.AlertStore
	provider  drepo.HistoryProvider
	publisher drepo.AlertPublisher // nil when messaging is disabled
	metrics   drepo.Metrics
	logger    *applogger.Logger
}

func NewAlertWatcher(
	alerts drepo.AlertStore,
	provider drepo.HistoryProvider,
	publisher drepo.AlertPublisher,
	metrics drepo.Metrics,
	logger *applogger.Logger,
) *AlertWatcher {
	return &AlertWatcher{
		alerts:    alerts,
		provider:  provider,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Sweep evaluates all active alerts once. Returns the number of alerts
// triggered.
func (w *AlertWatcher) Sweep(ctx context.Context) (int, error) {
	active, err := w.alerts.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	if len(active) == 0 {
		return 0, nil
	}

	// One fetch per distinct symbol, however many alerts reference it.
	prices := make(map[string]float64)
	for _, ua := range active {
		if _, ok := prices[ua.Alert.Symbol]; ok {
			continue
		}
		price, err := w.provider.FetchLatestClose(ctx, ua.Alert.Symbol)
		if err != nil {
			w.logWarn("alert price fetch failed", ua.Alert.Symbol, err)
			continue
		}
		prices[ua.Alert.Symbol] = price
		if w.metrics != nil {
			w.metrics.RecordLastPrice(ua.Alert.Symbol, price)
		}
	}

	triggered := 0
	now := time.Now()
	for _, ua := range active {
		price, ok := prices[ua.Alert.Symbol]
		if !ok || !ua.Alert.Matches(price) {
			continue
		}

		if err := w.alerts.MarkTriggered(ctx, ua.User, ua.Alert.ID, now); err != nil {
			w.logWarn("alert mark failed", ua.Alert.Symbol, err)
			continue
		}
		triggered++
		if w.metrics != nil {
			w.metrics.RecordAlertTriggered(ua.Alert.Symbol)
		}

		if w.publisher != nil {
			event := models.AlertEvent{
				AlertID:   ua.Alert.ID,
				User:      ua.User,
				Symbol:    ua.Alert.Symbol,
				Condition: ua.Alert.Condition,
				Target:    ua.Alert.Target,
				Price:     price,
				At:        now,
			}
			if err := w.publisher.Publish(ctx, event); err != nil {
				w.logWarn("alert publish failed", ua.Alert.Symbol, err)
			}
		}

		if w.logger != nil {
			w.logger.Info("alert triggered",
				applogger.String("user", ua.User),
				applogger.String("symbol", ua.Alert.Symbol),
				applogger.Float64("target", ua.Alert.Target),
				applogger.Float64("price", price),
			)
		}
	}
	return triggered, nil
}

func (w *AlertWatcher) logWarn(msg, symbol string, err error) {
	if w.metrics != nil {
		w.metrics.RecordError("alert_sweep")
	}
	if w.logger != nil {
		w.logger.Warn(msg, applogger.String("symbol", symbol), applogger.Error(err))
	}
}
