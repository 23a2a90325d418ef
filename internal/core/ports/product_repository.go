package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for listing products.
type ListProductsFilter struct {
	Category string // optional: exact category match, empty = no filter
	Page     int    // 1-based
	Limit    int    // max rows per page
}

// ProductUpdate is a partial product patch. Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Stock       *int
	Category    *domain.Category
}

// Empty reports whether the patch carries no fields at all.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Image == nil && u.Stock == nil && u.Category == nil
}

// ProductRepository defines persistence operations for the catalog.
// List returns products in storage (insertion) order; no sort is applied.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
}
