package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/melodia/catalog-api/internal/core/domain"
)

// RequireRole rejects requests whose authenticated role is not in the
// allowed set. It reads the role Auth injected; an empty role means the
// request never went through Auth and is rejected as unauthenticated
// rather than forbidden.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}

// Admin returns the authentication and admin-role checks composed as a
// single chain, so the role check cannot be mounted without identity
// resolution having run first.
func Admin(jwtSecret string) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{Auth(jwtSecret), RequireRole(domain.RoleAdmin)}
}
