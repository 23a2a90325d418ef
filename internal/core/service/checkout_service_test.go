package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
)

type stubOrderRepo struct {
	orders    []*domain.Order
	nextID    int
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = append([]domain.OrderItem(nil), o.Items...)
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	copy := cloneOrder(o)
	r.nextID++
	copy.ID = fmt.Sprintf("order_%d", r.nextID)
	r.orders = append(r.orders, cloneOrder(copy))
	return copy, nil
}

func (r *stubOrderRepo) FindByPaymentIntentID(_ context.Context, paymentIntentID string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.PaymentIntentID == paymentIntentID {
			return cloneOrder(o), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	var result []*domain.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			result = append(result, cloneOrder(r.orders[i]))
		}
	}
	return result, nil
}

type stubPaymentProvider struct {
	lastMinorAmount int64
	lastCurrency    string
	calls           int
	err             error
	status          string
	retrieveErr     error
}

func (p *stubPaymentProvider) CreateIntent(_ context.Context, minorAmount int64, currency string) (string, string, error) {
	if p.err != nil {
		return "", "", p.err
	}
	p.calls++
	p.lastMinorAmount = minorAmount
	p.lastCurrency = currency
	id := fmt.Sprintf("pi_%d", p.calls)
	return id, id + "_secret", nil
}

func (p *stubPaymentProvider) RetrieveIntentStatus(_ context.Context, _ string) (string, error) {
	if p.retrieveErr != nil {
		return "", p.retrieveErr
	}
	if p.status == "" {
		return "succeeded", nil
	}
	return p.status, nil
}

type stubGuard struct {
	confirmed map[string]bool
	checkErr  error
}

func newStubGuard() *stubGuard {
	return &stubGuard{confirmed: make(map[string]bool)}
}

func (g *stubGuard) IsConfirmed(_ context.Context, paymentIntentID string) (bool, error) {
	if g.checkErr != nil {
		return false, g.checkErr
	}
	return g.confirmed[paymentIntentID], nil
}

func (g *stubGuard) Mark(_ context.Context, paymentIntentID string) error {
	g.confirmed[paymentIntentID] = true
	return nil
}

func newCheckoutFixture() (*CheckoutService, *stubCartStore, *stubOrderRepo, *stubPaymentProvider, *stubGuard) {
	carts := newStubCartStore()
	orders := newStubOrderRepo()
	provider := &stubPaymentProvider{}
	guard := newStubGuard()
	svc := NewCheckoutService(carts, orders, provider, guard, "uah", zerolog.Nop())
	return svc, carts, orders, provider, guard
}

func seedCart(t *testing.T, carts *stubCartStore, cartID string) {
	t.Helper()
	cart := domain.NewCart(cartID)
	cart.AddItem(domain.CartLine{ProductID: "p1", Name: "Mouse", Price: 24.99, Quantity: 2})
	cart.AddItem(domain.CartLine{ProductID: "p2", Name: "Keyboard", Price: 50.00, Quantity: 1})
	if err := carts.Save(context.Background(), cart); err != nil {
		t.Fatalf("seeding cart failed: %v", err)
	}
}

func TestCheckoutService_CreatePaymentIntent_MinorUnits(t *testing.T) {
	svc, _, _, provider, _ := newCheckoutFixture()

	result, err := svc.CreatePaymentIntent(context.Background(), 99.99)
	if err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}
	if result.ClientSecret == "" {
		t.Fatalf("expected client secret")
	}
	if provider.lastMinorAmount != 9999 {
		t.Fatalf("expected 9999 minor units, got %d", provider.lastMinorAmount)
	}
	if provider.lastCurrency != "uah" {
		t.Fatalf("expected currency uah, got %s", provider.lastCurrency)
	}
}

func TestCheckoutService_CreatePaymentIntent_Rounding(t *testing.T) {
	svc, _, _, provider, _ := newCheckoutFixture()

	// 19.99 * 100 is 1998.9999... in binary floating point.
	if _, err := svc.CreatePaymentIntent(context.Background(), 19.99); err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}
	if provider.lastMinorAmount != 1999 {
		t.Fatalf("expected rounded 1999 minor units, got %d", provider.lastMinorAmount)
	}
}

func TestCheckoutService_CreatePaymentIntent_InvalidAmount(t *testing.T) {
	svc, _, _, provider, _ := newCheckoutFixture()

	for _, amount := range []float64{0, -10.5} {
		if _, err := svc.CreatePaymentIntent(context.Background(), amount); err != domain.ErrInvalidAmount {
			t.Fatalf("amount %.2f: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if provider.calls != 0 {
		t.Fatalf("provider must not be called for invalid amounts")
	}
}

func TestCheckoutService_CreatePaymentIntent_ProviderError(t *testing.T) {
	svc, _, _, provider, _ := newCheckoutFixture()
	provider.err = errors.New("provider unavailable")

	if _, err := svc.CreatePaymentIntent(context.Background(), 10.0); err == nil {
		t.Fatalf("expected provider error to propagate")
	}
}

func TestCheckoutService_ConfirmCheckout_RecordsOrderAndClearsCart(t *testing.T) {
	svc, carts, orders, _, guard := newCheckoutFixture()
	seedCart(t, carts, "c1")

	result, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc")
	if err != nil {
		t.Fatalf("ConfirmCheckout returned error: %v", err)
	}
	if result.AlreadyExisted {
		t.Fatalf("first confirmation must not report a replay")
	}

	order := result.Order
	if order.UserID != "user_1" || order.PaymentIntentID != "pi_abc" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.Status != domain.OrderCompleted {
		t.Fatalf("expected completed status, got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	want := 24.99*2 + 50.00
	if order.TotalPrice != want {
		t.Fatalf("expected total %.2f, got %.2f", want, order.TotalPrice)
	}

	if len(orders.orders) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(orders.orders))
	}
	if !guard.confirmed["pi_abc"] {
		t.Fatalf("expected payment intent marked confirmed")
	}

	cart, _ := carts.Load(context.Background(), "c1")
	if !cart.IsEmpty() {
		t.Fatalf("expected cart cleared after confirmation")
	}
}

func TestCheckoutService_ConfirmCheckout_ReplayReturnsOriginal(t *testing.T) {
	svc, carts, orders, _, _ := newCheckoutFixture()
	seedCart(t, carts, "c1")

	first, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc")
	if err != nil {
		t.Fatalf("first confirmation failed: %v", err)
	}

	// The replayed cart may even hold new items; the replay must ignore it.
	seedCart(t, carts, "c1")

	second, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc")
	if err != nil {
		t.Fatalf("replayed confirmation failed: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("expected replay flag")
	}
	if second.Order.ID != first.Order.ID {
		t.Fatalf("replay must return the original order, got %s vs %s", second.Order.ID, first.Order.ID)
	}
	if len(orders.orders) != 1 {
		t.Fatalf("replay must not create a second order, got %d", len(orders.orders))
	}

	cart, _ := carts.Load(context.Background(), "c1")
	if cart.IsEmpty() {
		t.Fatalf("replay must not clear the current cart")
	}
}

func TestCheckoutService_ConfirmCheckout_ReplayByOtherUserIsNotFound(t *testing.T) {
	svc, carts, orders, _, _ := newCheckoutFixture()
	seedCart(t, carts, "c1")

	if _, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc"); err != nil {
		t.Fatalf("first confirmation failed: %v", err)
	}

	if _, err := svc.ConfirmCheckout(context.Background(), "user_2", "c2", "pi_abc"); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound for another user's intent, got %v", err)
	}
	if len(orders.orders) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(orders.orders))
	}
}

func TestCheckoutService_ConfirmCheckout_PaymentNotSucceeded(t *testing.T) {
	svc, carts, orders, provider, guard := newCheckoutFixture()
	seedCart(t, carts, "c1")
	provider.status = "requires_payment_method"

	if _, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc"); err != domain.ErrPaymentNotCompleted {
		t.Fatalf("expected ErrPaymentNotCompleted, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("no order may be recorded for an unpaid intent")
	}
	if guard.confirmed["pi_abc"] {
		t.Fatalf("unpaid intent must not be marked confirmed")
	}

	cart, _ := carts.Load(context.Background(), "c1")
	if cart.IsEmpty() {
		t.Fatalf("cart must survive a rejected confirmation")
	}
}

func TestCheckoutService_ConfirmCheckout_StatusLookupErrorPropagates(t *testing.T) {
	svc, carts, orders, provider, _ := newCheckoutFixture()
	seedCart(t, carts, "c1")
	provider.retrieveErr = errors.New("provider unavailable")

	if _, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc"); err == nil {
		t.Fatalf("expected status lookup error to propagate")
	}
	if len(orders.orders) != 0 {
		t.Fatalf("no order may be recorded when the status is unknown")
	}
}

func TestCheckoutService_ConfirmCheckout_EmptyCart(t *testing.T) {
	svc, _, _, _, _ := newCheckoutFixture()

	if _, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc"); err != domain.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutService_ConfirmCheckout_MissingPaymentIntent(t *testing.T) {
	svc, carts, _, _, _ := newCheckoutFixture()
	seedCart(t, carts, "c1")

	_, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "payment_intent_id" {
		t.Fatalf("expected payment_intent_id validation error, got %v", err)
	}
}

func TestCheckoutService_ConfirmCheckout_OrderWriteFailureKeepsCart(t *testing.T) {
	svc, carts, orders, _, guard := newCheckoutFixture()
	seedCart(t, carts, "c1")
	orders.createErr = errors.New("write failed")

	if _, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc"); err == nil {
		t.Fatalf("expected order write error to propagate")
	}

	cart, _ := carts.Load(context.Background(), "c1")
	if cart.IsEmpty() {
		t.Fatalf("cart must survive a failed order write so the user can retry")
	}
	if guard.confirmed["pi_abc"] {
		t.Fatalf("failed confirmation must not be marked")
	}
}

func TestCheckoutService_ConfirmCheckout_GuardErrorStillProcesses(t *testing.T) {
	svc, carts, orders, _, guard := newCheckoutFixture()
	seedCart(t, carts, "c1")
	guard.checkErr = errors.New("redis down")

	result, err := svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_abc")
	if err != nil {
		t.Fatalf("guard failure must not block checkout: %v", err)
	}
	if result.Order == nil || len(orders.orders) != 1 {
		t.Fatalf("expected order recorded despite guard failure")
	}
}

func TestCheckoutService_ListOrders(t *testing.T) {
	svc, carts, _, _, _ := newCheckoutFixture()
	seedCart(t, carts, "c1")
	_, _ = svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_1")
	seedCart(t, carts, "c1")
	_, _ = svc.ConfirmCheckout(context.Background(), "user_1", "c1", "pi_2")

	orders, err := svc.ListOrders(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].PaymentIntentID != "pi_2" {
		t.Fatalf("expected newest order first, got %s", orders[0].PaymentIntentID)
	}
}

func TestCheckoutService_ListOrders_EmptyIsNotNil(t *testing.T) {
	svc, _, _, _, _ := newCheckoutFixture()

	orders, err := svc.ListOrders(context.Background(), "user_without_orders")
	if err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
	if orders == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}
