package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	drepo "StockCast/internal/domain/repository"
	"StockCast/internal/usecase"
	"StockCast/pkg/config"
	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP server, alert watcher
// schedule and graceful shutdown of infrastructure clients.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	watcher    *usecase.AlertWatcher
	publisher  drepo.AlertPublisher
	cron       *cron.Cron
}

// New creates an App with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	httpServer *xhttp.Server,
	watcher *usecase.AlertWatcher,
	publisher drepo.AlertPublisher,
) *App {
	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		watcher:    watcher,
		publisher:  publisher,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.httpServer.Start(); err != nil {
		return err
	}

	if a.cfg.Alerts.Enabled && a.watcher != nil {
		a.cron = cron.New()
		_, err := a.cron.AddFunc(a.cfg.Alerts.Schedule, func() {
			triggered, err := a.watcher.Sweep(ctx)
			if err != nil {
				a.logger.Error("alert sweep failed", applogger.Error(err))
				return
			}
			if triggered > 0 {
				a.logger.Info("alert sweep done", applogger.Int("triggered", triggered))
			}
		})
		if err != nil {
			return err
		}
		a.cron.Start()
		a.logger.Info("alert watcher scheduled", applogger.String("schedule", a.cfg.Alerts.Schedule))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

func (a *App) shutdown(ctx context.Context) error {
	if a.cron != nil {
		<-a.cron.Stop().Done() // let an in-flight sweep finish
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("publisher close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
