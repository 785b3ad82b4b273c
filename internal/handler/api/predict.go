package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"StockCast/internal/domain/models"
	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
)

// Predict handles POST /api/predict. Success returns the raw ForecastResult;
// every failure collapses to {"msg": ...} with 400 for bad input and 500 for
// pipeline errors. Internal detail never reaches the client.
func (h *Handler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.BindAndValidate(c, req); verr != nil {
		return xhttp.AppErrorResponse(c, verr)
	}

	horizon := 0
	if req.Horizon != nil {
		horizon = *req.Horizon
	}

	result, err := h.forecast.Generate(c.Request().Context(), req.Ticker, horizon)
	if err != nil {
		h.logger.Error("predict failed",
			applogger.String("ticker", req.Ticker),
			applogger.Error(err),
		)
		if errors.Is(err, models.ErrInvalidRequest) {
			return xhttp.BadRequest(c, "invalid ticker or horizon")
		}
		return xhttp.ServerError(c, "forecast generation failed")
	}

	return xhttp.OK(c, result)
}
