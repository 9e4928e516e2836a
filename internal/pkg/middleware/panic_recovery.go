package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/utils"
)

// PanicRecoveryMiddleware turns a panicking handler into a 500 response and logs the stack
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				logger.Error("Panic recovered",
					logger.String("panic_value", fmt.Sprintf("%v", r)),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("client_ip", c.RealIP()),
					logger.String("request_id", c.Response().Header().Get(RequestIDHeader)),
					logger.String("stack_trace", string(debug.Stack())))

				if c.Response().Committed {
					err = nil
					return
				}
				err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
			}()

			return next(c)
		}
	}
}
