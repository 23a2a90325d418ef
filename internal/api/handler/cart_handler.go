package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/api/middleware"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// CartHandler handles the cart state machine endpoints. The cart id comes
// from the cart cookie middleware; no authentication is required to shop.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /v1/cart.
//
// @Summary      Get the current cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.service.GetCart(c.Request().Context(), middleware.CartIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: cart})
}

// AddItem handles POST /v1/cart/items. Adding a product already in the cart
// increments its quantity instead of duplicating the line.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product snapshot and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.service.AddItem(c.Request().Context(), middleware.CartIDFromContext(c), ports.AddCartItemInput{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: cart})
}

// UpdateItem handles PATCH /v1/cart/items/:productId. Quantity zero or below
// removes the line.
//
// @Summary      Change the quantity of a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productId  path      string                 true  "Product id"
// @Param        body       body      updateCartItemRequest  true  "New quantity"
// @Success      200        {object}  cartResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Quantity == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity is required")
	}

	cart, err := h.service.UpdateItemQuantity(c.Request().Context(), middleware.CartIDFromContext(c), c.Param("productId"), *req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: cart})
}

// RemoveItem handles DELETE /v1/cart/items/:productId.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  cartResponse
// @Router       /v1/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.service.RemoveItem(c.Request().Context(), middleware.CartIDFromContext(c), c.Param("productId"))
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: cart})
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	cart, err := h.service.ClearCart(c.Request().Context(), middleware.CartIDFromContext(c))
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: cart})
}
