package api

import (
	"github.com/labstack/echo/v4"

	"StockCast/internal/domain/models"
	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/util"
)

// Watchlist CRUD. The :user path param is the identity claim extracted by
// the auth layer in front of this service.

func (h *Handler) WatchlistList(c echo.Context) error {
	user := c.Param("user")
	symbols, err := h.watchlist.List(c.Request().Context(), user)
	if err != nil {
		h.logger.Error("watchlist list failed", applogger.String("user", user), applogger.Error(err))
		return xhttp.ServerError(c, "could not load watchlist")
	}
	return xhttp.OK(c, map[string][]string{"symbols": symbols})
}

func (h *Handler) WatchlistAdd(c echo.Context) error {
	user := c.Param("user")
	req := &models.WatchlistAddRequest{}
	if verr := xhttp.BindAndValidate(c, req); verr != nil {
		return xhttp.AppErrorResponse(c, verr)
	}

	symbol := util.NormalizeTicker(req.Symbol)
	if err := h.watchlist.Add(c.Request().Context(), user, symbol); err != nil {
		h.logger.Error("watchlist add failed", applogger.String("user", user), applogger.Error(err))
		return xhttp.ServerError(c, "could not update watchlist")
	}
	return xhttp.Created(c, map[string]string{"symbol": symbol})
}

func (h *Handler) WatchlistRemove(c echo.Context) error {
	user := c.Param("user")
	symbol := util.NormalizeTicker(c.Param("symbol"))
	if err := h.watchlist.Remove(c.Request().Context(), user, symbol); err != nil {
		h.logger.Error("watchlist remove failed", applogger.String("user", user), applogger.Error(err))
		return xhttp.ServerError(c, "could not update watchlist")
	}
	return xhttp.NoContent(c)
}
