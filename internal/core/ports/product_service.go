package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// CreateProductInput carries all fields required to create a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Stock       int
	Category    string
}

// ListProductsInput carries the public listing parameters.
type ListProductsInput struct {
	Page     int
	Limit    int
	Category string
}

// ListProductsResult is one page of the catalog plus pagination metadata.
type ListProductsResult struct {
	Products []*domain.Product
	Total    int64
	Page     int
	Limit    int
	Pages    int
}

// ProductService defines catalog use cases. Mutations are admin-gated at the
// transport layer; reads are public.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	// DeleteProduct returns the removed record for confirmation.
	DeleteProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
}
