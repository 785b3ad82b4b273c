package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RateLimit rejects requests with 429 when allow returns false for the
// client IP. The allow func is expected to be a token-bucket check; the
// limiter itself lives outside this package so it can be shared and tested.
func RateLimit(allow func(key string) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"msg": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
