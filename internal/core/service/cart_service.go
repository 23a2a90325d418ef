package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// CartService applies cart mutations as load → mutate → save over the whole
// aggregate. Within one browsing session the cart is mutated sequentially, so
// no locking is taken around the read-modify-write.
type CartService struct {
	store  ports.CartStore
	logger zerolog.Logger
}

func NewCartService(store ports.CartStore, logger zerolog.Logger) *CartService {
	return &CartService{store: store, logger: logger}
}

func (s *CartService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.store.Load(ctx, cartID)
}

// AddItem merges the line into the cart: repeated adds of the same product
// accumulate quantity on a single line.
func (s *CartService) AddItem(ctx context.Context, cartID string, input ports.AddCartItemInput) (*domain.Cart, error) {
	if input.ProductID == "" {
		return nil, &domain.ValidationError{Field: "product_id", Message: "must not be empty"}
	}
	if input.Quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}

	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(domain.CartLine{
		ProductID:   input.ProductID,
		Name:        input.Name,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Image:       input.Image,
		Description: input.Description,
		Category:    domain.Category(input.Category),
	})

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("cart_id", cartID).Str("product_id", input.ProductID).Int("quantity", input.Quantity).Msg("cart item added")
	return cart, nil
}

// UpdateItemQuantity sets the line quantity; zero or negative removes the
// line, matching the state machine's removal-by-zero rule.
func (s *CartService) UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.UpdateItemQuantity(productID, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the line. Removing an absent product succeeds unchanged.
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart resets the aggregate to empty.
func (s *CartService) ClearCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.Clear()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("cart_id", cartID).Msg("cart cleared")
	return cart, nil
}
