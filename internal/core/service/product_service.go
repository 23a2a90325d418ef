package service

import (
	"context"
	"math"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// ProductService implements catalog use cases. Role enforcement happens in
// the transport middleware; this layer owns field validation.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// CreateProduct validates all fields and persists a new catalog entry.
// The first validation failure rejects the request before any write.
func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Stock:       input.Stock,
		Category:    domain.Category(input.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("category", string(created.Category)).Msg("product created")
	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProduct applies a partial patch. Only fields present in the patch are
// validated and written; an empty patch is rejected.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	if update.Empty() {
		return nil, domain.ErrNoFieldsProvided
	}
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// DeleteProduct removes the product and returns the removed record for
// confirmation and auditing.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Str("name", removed.Name).Msg("product deleted")
	return removed, nil
}

// ListProducts returns one page of the catalog in insertion order.
func (s *ProductService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	if input.Page < 1 || input.Limit < 1 {
		return nil, domain.ErrInvalidPagination
	}
	if input.Category != "" && !domain.Category(input.Category).IsValid() {
		return nil, &domain.ValidationError{Field: "category", Message: "must be one of Electronics, Clothing, Books, Home, Other"}
	}

	products, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		Category: input.Category,
		Page:     input.Page,
		Limit:    input.Limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	return &ports.ListProductsResult{
		Products: products,
		Total:    total,
		Page:     input.Page,
		Limit:    input.Limit,
		Pages:    int(math.Ceil(float64(total) / float64(input.Limit))),
	}, nil
}

// validateUpdate checks only the fields present in the patch, with the same
// rules as full-product validation.
func validateUpdate(u ports.ProductUpdate) error {
	if u.Name != nil {
		if *u.Name == "" {
			return &domain.ValidationError{Field: "name", Message: "must not be empty"}
		}
		if utf8.RuneCountInString(*u.Name) > domain.MaxProductNameLength {
			return &domain.ValidationError{Field: "name", Message: "must be at most 100 characters"}
		}
	}
	if u.Description != nil {
		if *u.Description == "" {
			return &domain.ValidationError{Field: "description", Message: "must not be empty"}
		}
		if utf8.RuneCountInString(*u.Description) > domain.MaxProductDescriptionLength {
			return &domain.ValidationError{Field: "description", Message: "must be at most 500 characters"}
		}
	}
	if u.Price != nil && *u.Price <= 0 {
		return &domain.ValidationError{Field: "price", Message: "must be a positive number"}
	}
	if u.Image != nil && *u.Image == "" {
		return &domain.ValidationError{Field: "image", Message: "must not be empty"}
	}
	if u.Stock != nil && *u.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Message: "must not be negative"}
	}
	if u.Category != nil && !u.Category.IsValid() {
		return &domain.ValidationError{Field: "category", Message: "must be one of Electronics, Clothing, Books, Home, Other"}
	}
	return nil
}
