package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Category is the fixed set of product categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
	CategoryHome        Category = "Home"
	CategoryOther       Category = "Other"
)

const (
	MaxProductNameLength        = 100
	MaxProductDescriptionLength = 500
)

var validCategories = map[Category]struct{}{
	CategoryElectronics: {},
	CategoryClothing:    {},
	CategoryBooks:       {},
	CategoryHome:        {},
	CategoryOther:       {},
}

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidPagination = errors.New("page and limit must be greater than 0")
var ErrNoFieldsProvided = errors.New("at least one field must be provided")

// IsValid reports whether the category belongs to the closed set.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// ValidationError reports a single invalid product field. Validation stops at
// the first violation so no partial write can ever happen.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Product is a catalog entry. Publicly readable; mutated only through the
// admin pipeline.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks every field against the catalog rules and returns the first
// violation found.
func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(p.Name) > MaxProductNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", MaxProductNameLength)}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(p.Description) > MaxProductDescriptionLength {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("must be at most %d characters", MaxProductDescriptionLength)}
	}
	if p.Price <= 0 {
		return &ValidationError{Field: "price", Message: "must be a positive number"}
	}
	if p.Image == "" {
		return &ValidationError{Field: "image", Message: "must not be empty"}
	}
	if p.Stock < 0 {
		return &ValidationError{Field: "stock", Message: "must not be negative"}
	}
	if !p.Category.IsValid() {
		return &ValidationError{Field: "category", Message: "must be one of Electronics, Clothing, Books, Home, Other"}
	}
	return nil
}
