package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware guards internal routes. Empty keys are never accepted.
func ValidateAPIKey(allowedKeys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, key := range allowedKeys {
				if key != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
