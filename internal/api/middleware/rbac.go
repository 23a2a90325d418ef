package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// RequireAdmin enforces the admin role. It must run after Auth; the role it
// checks is the freshly loaded one, so a demotion takes effect immediately
// regardless of what the token still claims. The sentinels map to 401/403 in
// the central error handler.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return domain.ErrUnauthenticated
			}
			if !user.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
