package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/fairpay/internal/pkg/jwt"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if claims.Subject == "" || claims.Role == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing subject or role")
			}

			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextUserRole, claims.Role)

			return next(c)
		}
	}
}

// RequireRole refuses requests whose token role differs from role.
// It must run after JWTAuthMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Get(ContextUserRole).(string)
			if got != role {
				return utils.ForbiddenResponse(c, "Insufficient role")
			}
			return next(c)
		}
	}
}
