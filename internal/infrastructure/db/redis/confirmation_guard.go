package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ConfirmationGuard provides idempotency checks for checkout confirmations
// backed by Redis. Keys never expire: a payment intent stays confirmed for
// the lifetime of the order it produced.
// Key format: checkout:confirmed:<payment_intent_id>
type ConfirmationGuard struct {
	client *redis.Client
}

// NewConfirmationGuard creates a ConfirmationGuard wrapping the given Redis client.
func NewConfirmationGuard(client *redis.Client) *ConfirmationGuard {
	return &ConfirmationGuard{client: client}
}

// IsConfirmed reports whether this payment intent was already confirmed.
func (g *ConfirmationGuard) IsConfirmed(ctx context.Context, paymentIntentID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(paymentIntentID)).Result()
	if err != nil {
		return false, fmt.Errorf("confirmation check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this payment intent has been confirmed.
func (g *ConfirmationGuard) Mark(ctx context.Context, paymentIntentID string) error {
	return g.client.Set(ctx, g.key(paymentIntentID), "1", 0).Err()
}

func (g *ConfirmationGuard) key(paymentIntentID string) string {
	return "checkout:confirmed:" + paymentIntentID
}
