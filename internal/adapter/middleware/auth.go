package middleware

import (
	"context"
	"net/http"
	"strings"

	"studentloan-backend/internal/domain/customer"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (customer.Identity, error)
}

// Authenticate requires "Authorization: Bearer <token>" and stores the
// resolved caller on the echo context.
func Authenticate(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			scheme, token, ok := strings.Cut(raw, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			id, err := resolver.Resolve(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := IdentityFrom(c)
		if !ok || !id.IsAdmin() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
		}
		return next(c)
	}
}

func IdentityFrom(c echo.Context) (customer.Identity, bool) {
	id, ok := c.Get(identityKey).(customer.Identity)
	return id, ok
}

// WithIdentity attaches id to c. Handlers tests use it to skip token parsing.
func WithIdentity(c echo.Context, id customer.Identity) {
	c.Set(identityKey, id)
}
