package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// PaymentProvider abstracts the external payment processor. Amounts are in
// the currency's minor unit (e.g. cents). The provider's client-side confirm
// flow is external; only its outcome is consumed here.
type PaymentProvider interface {
	// CreateIntent opens a provider-side transaction and returns its id and
	// the opaque client secret used by the client to complete payment.
	CreateIntent(ctx context.Context, minorAmount int64, currency string) (id, clientSecret string, err error)
	// RetrieveIntentStatus fetches the provider's current status for the
	// intent, e.g. "succeeded".
	RetrieveIntentStatus(ctx context.Context, id string) (string, error)
}

// PaymentIntentResult is returned when a payment intent is created.
type PaymentIntentResult struct {
	ClientSecret string
}

// ConfirmCheckoutResult carries the recorded order. AlreadyExisted is true
// when the payment intent was confirmed before and the original order is
// returned instead of a duplicate.
type ConfirmCheckoutResult struct {
	Order          *domain.Order
	AlreadyExisted bool
}

// CheckoutService bridges the cart to the payment provider. The cart is
// cleared only after the order record is written, never before.
type CheckoutService interface {
	// CreatePaymentIntent validates amount > 0, converts to minor units and
	// opens a provider transaction.
	CreatePaymentIntent(ctx context.Context, amount float64) (*PaymentIntentResult, error)
	// ConfirmCheckout records a completed order from the current cart and
	// clears the cart. Called only after the provider reports success.
	ConfirmCheckout(ctx context.Context, userID, cartID, paymentIntentID string) (*ConfirmCheckoutResult, error)
	// ListOrders returns the user's past orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]*domain.Order, error)
}
