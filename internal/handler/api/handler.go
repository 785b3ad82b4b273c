package api

import (
	"github.com/labstack/echo/v4"

	drepo "StockCast/internal/domain/repository"
	"StockCast/internal/usecase"
	applogger "StockCast/pkg/logger"
)

// Handler implements the public HTTP API.
type Handler struct {
	logger    *applogger.Logger
	forecast  *usecase.ForecastService
	watchlist drepo.WatchlistStore
	alerts    drepo.AlertStore
	provider  drepo.HistoryProvider
}

func New(
	logger *applogger.Logger,
	forecast *usecase.ForecastService,
	watchlist drepo.WatchlistStore,
	alerts drepo.AlertStore,
	provider drepo.HistoryProvider,
) *Handler {
	return &Handler{
		logger:    logger,
		forecast:  forecast,
		watchlist: watchlist,
		alerts:    alerts,
		provider:  provider,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/predict", h.Predict)

	g.GET("/watchlist/:user", h.WatchlistList)
	g.POST("/watchlist/:user", h.WatchlistAdd)
	g.DELETE("/watchlist/:user/:symbol", h.WatchlistRemove)

	g.GET("/alerts/:user", h.AlertsList)
	g.POST("/alerts/:user", h.AlertsCreate)
	g.DELETE("/alerts/:user/:id", h.AlertsDelete)

	g.GET("/quotes/ws", h.QuotesStream)
}
