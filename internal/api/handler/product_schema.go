package handler

import "github.com/shoply/storefront-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"       validate:"required"`
	Stock       *int    `json:"stock"       validate:"required,gte=0"`
	Category    string  `json:"category"    validate:"required,oneof=Electronics Clothing Books Home Other"`
}

// updateProductRequest is a partial patch: nil fields are left untouched.
// Per-field validation happens in the service so the message names the field.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
}

type productResponse struct {
	Success bool            `json:"success"`
	Product *domain.Product `json:"product"`
}

type paginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type listProductsResponse struct {
	Success    bool              `json:"success"`
	Products   []*domain.Product `json:"products"`
	Pagination paginationResponse `json:"pagination"`
}
