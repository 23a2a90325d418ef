package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// TokenPayload is the identity carried inside a session token. The role field
// reflects the role at issuance time and may be stale; authorization decisions
// re-read the user record instead of trusting it.
type TokenPayload struct {
	UserID string
	Email  string
	Role   string
}

// AuthService defines registration, login and token verification.
type AuthService interface {
	// Register creates a user with role "user" and returns it with a signed
	// session token. Callers cannot self-elevate to admin through this path.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login returns the user and a signed session token, or
	// domain.ErrInvalidCredentials without revealing whether the email exists.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// VerifyToken checks signature and expiry. Malformed, expired and
	// wrongly signed tokens are indistinguishable to the caller.
	VerifyToken(token string) (*TokenPayload, error)
}
