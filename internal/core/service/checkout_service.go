package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// paymentIntentSucceeded is the provider status required before an order is
// recorded.
const paymentIntentSucceeded = "succeeded"

// ConfirmationGuard abstracts the idempotency store for checkout
// confirmations (Redis). A payment intent is confirmed at most once.
type ConfirmationGuard interface {
	IsConfirmed(ctx context.Context, paymentIntentID string) (bool, error)
	Mark(ctx context.Context, paymentIntentID string) error
}

// CheckoutService converts cart totals into provider transactions and records
// orders on confirmed success. It never moves money itself.
type CheckoutService struct {
	carts    ports.CartStore
	orders   ports.OrderRepository
	provider ports.PaymentProvider
	guard    ConfirmationGuard
	currency string
	logger   zerolog.Logger
}

func NewCheckoutService(
	carts ports.CartStore,
	orders ports.OrderRepository,
	provider ports.PaymentProvider,
	guard ConfirmationGuard,
	currency string,
	logger zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		orders:   orders,
		provider: provider,
		guard:    guard,
		currency: currency,
		logger:   logger,
	}
}

// CreatePaymentIntent opens a provider transaction for amount, converted to
// the currency's minor unit (multiply by 100, round).
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, amount float64) (*ports.PaymentIntentResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	minor := int64(math.Round(amount * 100))
	id, clientSecret, err := s.provider.CreateIntent(ctx, minor, s.currency)
	if err != nil {
		s.logger.Error().Err(err).Float64("amount", amount).Msg("failed to create payment intent")
		return nil, err
	}

	s.logger.Info().Str("payment_intent_id", id).Int64("minor_amount", minor).Str("currency", s.currency).Msg("payment intent created")
	return &ports.PaymentIntentResult{ClientSecret: clientSecret}, nil
}

// ConfirmCheckout verifies with the provider that the payment intent
// succeeded, records a completed order from the current cart, then
// clears the cart. Ordering matters: a failed order write leaves the cart
// intact so the user can retry. Replayed confirmations of the same payment
// intent return the original order without side effects.
func (s *CheckoutService) ConfirmCheckout(ctx context.Context, userID, cartID, paymentIntentID string) (*ports.ConfirmCheckoutResult, error) {
	if paymentIntentID == "" {
		return nil, &domain.ValidationError{Field: "payment_intent_id", Message: "must not be empty"}
	}

	confirmed, err := s.guard.IsConfirmed(ctx, paymentIntentID)
	if err != nil {
		s.logger.Warn().Err(err).Str("payment_intent_id", paymentIntentID).Msg("confirmation guard check failed, processing anyway")
	} else if confirmed {
		existing, err := s.orders.FindByPaymentIntentID(ctx, paymentIntentID)
		if err != nil {
			return nil, err
		}
		// A replay only returns the order to the user who placed it.
		if existing.UserID != userID {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Info().Str("payment_intent_id", paymentIntentID).Str("order_id", existing.ID).Msg("idempotent confirmation replay")
		return &ports.ConfirmCheckoutResult{Order: existing, AlreadyExisted: true}, nil
	}

	// The intent id arrives from the client; the provider is the source of
	// truth for whether the payment actually went through.
	status, err := s.provider.RetrieveIntentStatus(ctx, paymentIntentID)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_intent_id", paymentIntentID).Msg("failed to retrieve payment intent")
		return nil, err
	}
	if status != paymentIntentSucceeded {
		s.logger.Warn().Str("payment_intent_id", paymentIntentID).Str("status", status).Msg("confirmation rejected, payment not completed")
		return nil, domain.ErrPaymentNotCompleted
	}

	cart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(cart.Lines))
	for i, l := range cart.Lines {
		items[i] = domain.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		}
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:          userID,
		Items:           items,
		TotalPrice:      cart.TotalPrice,
		Status:          domain.OrderCompleted,
		PaymentIntentID: paymentIntentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_intent_id", paymentIntentID).Msg("failed to record order")
		return nil, err
	}

	if markErr := s.guard.Mark(ctx, paymentIntentID); markErr != nil {
		s.logger.Warn().Err(markErr).Str("payment_intent_id", paymentIntentID).Msg("failed to mark confirmation")
	}

	// The order is durably recorded; only now is the cart cleared.
	cart.Clear()
	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Warn().Err(err).Str("cart_id", cartID).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().Str("order_id", created.ID).Str("user_id", userID).Float64("total", created.TotalPrice).Msg("order completed")
	return &ports.ConfirmCheckoutResult{Order: created}, nil
}

// ListOrders returns the user's orders, newest first.
func (s *CheckoutService) ListOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}
