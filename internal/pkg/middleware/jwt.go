package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/cabbooking/internal/pkg/jwt"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextKeyPrincipal = "principal"
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyRole      = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			principal, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyPrincipal, principal)
			c.Set(ContextKeyUserID, principal.UserID)
			c.Set(ContextKeyUsername, principal.Username)
			c.Set(ContextKeyRole, principal.Role)

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not one of roles.
// Must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Role not allowed for this operation")
		}
	}
}

// GetPrincipal returns the authenticated caller, if any
func GetPrincipal(c echo.Context) (*models.Principal, bool) {
	principal, ok := c.Get(ContextKeyPrincipal).(*models.Principal)
	return principal, ok && principal != nil
}
