package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the failure payload for every endpoint: the client sees a
// short message and the HTTP status, never internal detail.
type ErrorBody struct {
	Msg string `json:"msg"`
}

// OK writes the payload as-is with status 200.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes the payload as-is with status 201.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Fail writes {"msg": ...} with the given status.
func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorBody{Msg: msg})
}

// BadRequest writes a 400 failure.
func BadRequest(c echo.Context, msg string) error {
	return Fail(c, http.StatusBadRequest, msg)
}

// NotFound writes a 404 failure.
func NotFound(c echo.Context, msg string) error {
	return Fail(c, http.StatusNotFound, msg)
}

// ServerError writes a 500 failure with a generic message.
func ServerError(c echo.Context, msg string) error {
	if msg == "" {
		msg = "internal server error"
	}
	return Fail(c, http.StatusInternalServerError, msg)
}

// AppErrorResponse maps an AppError (or any error) to the failure payload.
func AppErrorResponse(c echo.Context, err error) error {
	if ae, ok := err.(*AppError); ok {
		return Fail(c, ae.Status, ae.Msg)
	}
	return ServerError(c, "")
}
