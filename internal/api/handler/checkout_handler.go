package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/api/middleware"
	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// CheckoutHandler bridges the cart to the payment provider and records
// orders. All endpoints require an authenticated session.
type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type createIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type createIntentResponse struct {
	Success      bool   `json:"success"`
	ClientSecret string `json:"clientSecret"`
}

type confirmCheckoutRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type orderResponse struct {
	Success bool          `json:"success"`
	Order   *domain.Order `json:"order"`
}

type listOrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []*domain.Order `json:"orders"`
}

// CreateIntent handles POST /v1/payments/intent. The amount is converted to
// minor units server-side; the client completes payment through the
// provider's own flow using the returned secret.
//
// @Summary      Create a payment intent for the cart total
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Amount in major units"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/payments/intent [post]
func (h *CheckoutHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CreatePaymentIntent(c.Request().Context(), req.Amount)
	if err != nil {
		return err
	}

	metrics.PaymentIntentsTotal.Inc()
	return c.JSON(http.StatusOK, createIntentResponse{Success: true, ClientSecret: result.ClientSecret})
}

// Confirm handles POST /v1/checkout/confirm. Called after the provider
// reports success: records the order and clears the cart. A failed or pending
// payment never reaches this endpoint, so the cart stays intact for retry.
//
// @Summary      Record a confirmed checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      confirmCheckoutRequest  true  "Confirmed payment intent"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req confirmCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.ConfirmCheckout(c.Request().Context(), user.ID, middleware.CartIDFromContext(c), req.PaymentIntentID)
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	} else {
		metrics.OrdersCompletedTotal.Inc()
	}
	return c.JSON(status, orderResponse{Success: true, Order: result.Order})
}

// ListOrders handles GET /v1/orders — the authenticated user's own orders.
//
// @Summary      List own orders
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	orders, err := h.service.ListOrders(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOrdersResponse{Success: true, Orders: orders})
}
