package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware accepts requests carrying one of the configured keys.
// Empty keys are ignored; with none configured every request is refused.
func ValidateAPIKey(keys ...string) echo.MiddlewareFunc {
	accepted := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			accepted = append(accepted, []byte(k))
		}
	}
	if len(accepted) == 0 {
		logger.Warn("No API keys configured, all keyed routes will refuse requests")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, k := range accepted {
				if subtle.ConstantTimeCompare([]byte(apiKey), k) == 1 {
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
