package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// CartStore persists cart aggregates across sessions. Carts are durable (no
// expiry); the whole aggregate is written back after every mutation.
type CartStore interface {
	// Load returns the cart for id, or an empty cart when none is stored.
	Load(ctx context.Context, id string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, id string) error
}
