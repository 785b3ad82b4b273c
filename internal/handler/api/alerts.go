package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"StockCast/internal/domain/models"
	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/util"
)

func (h *Handler) AlertsList(c echo.Context) error {
	user := c.Param("user")
	alerts, err := h.alerts.List(c.Request().Context(), user)
	if err != nil {
		h.logger.Error("alerts list failed", applogger.String("user", user), applogger.Error(err))
		return xhttp.ServerError(c, "could not load alerts")
	}
	return xhttp.OK(c, map[string][]models.Alert{"alerts": alerts})
}

func (h *Handler) AlertsCreate(c echo.Context) error {
	user := c.Param("user")
	req := &models.AlertCreateRequest{}
	if verr := xhttp.BindAndValidate(c, req); verr != nil {
		return xhttp.AppErrorResponse(c, verr)
	}

	alert := models.Alert{
		ID:        uuid.NewString(),
		Symbol:    util.NormalizeTicker(req.Symbol),
		Condition: models.AlertCondition(req.Condition),
		Target:    req.Target,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.alerts.Create(c.Request().Context(), user, alert); err != nil {
		h.logger.Error("alert create failed", applogger.String("user", user), applogger.Error(err))
		return xhttp.ServerError(c, "could not create alert")
	}
	return xhttp.Created(c, alert)
}

func (h *Handler) AlertsDelete(c echo.Context) error {
	user := c.Param("user")
	id := c.Param("id")
	if err := h.alerts.Delete(c.Request().Context(), user, id); err != nil {
		h.logger.Error("alert delete failed", applogger.String("user", user), applogger.Error(err))
		return xhttp.NotFound(c, "alert not found")
	}
	return xhttp.NoContent(c)
}
