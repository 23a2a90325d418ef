package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestCartID_IssuesCookieWhenAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := CartID()(func(c echo.Context) error {
		seen = CartIDFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if seen == "" {
		t.Fatalf("expected cart id in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("cart id is not a uuid: %q", seen)
	}

	cookies := rec.Result().Cookies()
	var cartCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == CartCookieName {
			cartCookie = ck
		}
	}
	if cartCookie == nil {
		t.Fatalf("expected %s cookie on response", CartCookieName)
	}
	if cartCookie.Value != seen {
		t.Fatalf("cookie value %q does not match context id %q", cartCookie.Value, seen)
	}
	if !cartCookie.HttpOnly {
		t.Fatalf("cart cookie must be http-only")
	}
}

func TestCartID_ReusesExistingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CartCookieName, Value: "existing-cart"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CartID()(func(c echo.Context) error {
		if CartIDFromContext(c) != "existing-cart" {
			t.Fatalf("expected existing cart id, got %q", CartIDFromContext(c))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CartCookieName {
			t.Fatalf("no new cookie should be issued when one exists")
		}
	}
}
