package middleware

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			userID := "anonymous"
			if v := c.Get(ContextUserID); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			appLogger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				userID,
				c.Response().Header().Get(RequestIDHeader),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}
