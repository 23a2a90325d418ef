package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// AddCartItemInput is the line to merge into a cart.
type AddCartItemInput struct {
	ProductID   string
	Name        string
	Price       float64
	Quantity    int
	Image       string
	Description string
	Category    string
}

// CartService drives the cart state machine: each operation loads the current
// aggregate, applies the mutation, recomputes totals and writes the aggregate
// back. Totals are never stale when an operation returns.
type CartService interface {
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, input AddCartItemInput) (*domain.Cart, error)
	UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, cartID string) (*domain.Cart, error)
}
