package handler

import "github.com/shoply/storefront-api/internal/core/domain"

type addCartItemRequest struct {
	ProductID   string  `json:"product_id"  validate:"required"`
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Quantity    int     `json:"quantity"    validate:"required,gte=1"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type updateCartItemRequest struct {
	// Zero or negative removes the line; the pointer distinguishes an
	// explicit zero from an absent field.
	Quantity *int `json:"quantity" validate:"required"`
}

type cartResponse struct {
	Success bool         `json:"success"`
	Cart    *domain.Cart `json:"cart"`
}
