package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email lookups are case-insensitive; implementations store emails lowercased.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
