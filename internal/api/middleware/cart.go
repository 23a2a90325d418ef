package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartCookieName is the cookie carrying the durable cart id.
const CartCookieName = "cart_id"

// CartContextKey is the echo context key under which the cart id is stored.
const CartContextKey = "cart_id"

// Carts are durable, not session-scoped: the cookie outlives the session.
const cartCookieMaxAge = 365 * 24 * 60 * 60

// CartID assigns a cart id to every request: an existing cart_id cookie is
// reused, otherwise a fresh id is issued and set on the response. The cart
// itself lives in the cart store; the client only ever holds the key.
func CartID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(CartCookieName); err == nil && cookie.Value != "" {
				id = cookie.Value
			} else {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     CartCookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   cartCookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteStrictMode,
				})
			}

			c.Set(CartContextKey, id)
			return next(c)
		}
	}
}

// CartIDFromContext returns the cart id assigned by CartID.
func CartIDFromContext(c echo.Context) string {
	id, _ := c.Get(CartContextKey).(string)
	return id
}
