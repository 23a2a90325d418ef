// Package payment implements the payment provider port against Stripe.
// Card data never touches this service: it opens payment intents and hands
// the client secret to the browser, which completes payment through Stripe's
// own flow.
package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider creates payment intents through the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider builds a provider authenticated with the given secret key.
func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

// CreateIntent opens a payment intent for minorAmount in the given currency
// and returns its id and client secret.
func (p *StripeProvider) CreateIntent(ctx context.Context, minorAmount int64, currency string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(minorAmount),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("integration", "storefront-api")

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ID, intent.ClientSecret, nil
}

// RetrieveIntentStatus fetches the intent from Stripe and returns its current
// status.
func (p *StripeProvider) RetrieveIntentStatus(ctx context.Context, id string) (string, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	intent, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		return "", fmt.Errorf("retrieve payment intent: %w", err)
	}
	return string(intent.Status), nil
}
