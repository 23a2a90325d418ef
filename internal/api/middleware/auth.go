package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// UserContextKey is the echo context key under which the authenticated
// *domain.User is stored.
const UserContextKey = "user"

// Auth requires a valid session. The token is read from the session cookie,
// falling back to a bearer Authorization header. On success the user record
// is re-fetched by id so the effective role is always the stored one, not the
// (possibly stale) token claim; a token for a deleted account is rejected
// even before it expires.
func Auth(auth ports.AuthService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			payload, err := auth.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			user, err := users.FindByID(c.Request().Context(), payload.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth runs the same pipeline as Auth but degrades every failure to
// anonymous: handlers see a nil user and serve the public view.
func OptionalAuth(auth ports.AuthService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return next(c)
			}

			payload, err := auth.VerifyToken(token)
			if err != nil {
				return next(c)
			}

			user, err := users.FindByID(c.Request().Context(), payload.UserID)
			if err != nil {
				return next(c)
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by Auth or OptionalAuth,
// or nil when the request is anonymous.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
