package domain

import "errors"

var ErrEmptyCart = errors.New("cart is empty")

// CartLine is one product entry in a cart. Fields other than quantity are a
// snapshot of the product at add time and are not re-synced with the catalog.
type CartLine struct {
	ProductID   string   `json:"product_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Cart is the shopping cart aggregate. Lines keep insertion order and hold at
// most one entry per product id. TotalQuantity and TotalPrice are derived from
// Lines and recomputed after every mutation; they are never written directly.
type Cart struct {
	ID            string     `json:"id"`
	Lines         []CartLine `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	TotalPrice    float64    `json:"total_price"`
}

// NewCart returns an empty cart with the given id.
func NewCart(id string) *Cart {
	return &Cart{ID: id, Lines: []CartLine{}}
}

// AddItem merges the line into the cart: an existing line for the same
// product id has its quantity incremented by line.Quantity, a new product is
// appended at the end. No stock check happens here; availability is a display
// concern.
func (c *Cart) AddItem(line CartLine) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			c.recompute()
			return
		}
	}
	c.Lines = append(c.Lines, line)
	c.recompute()
}

// RemoveItem drops the line for productID. Removing an absent product is a
// no-op apart from the (idempotent) totals recomputation.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
	c.recompute()
}

// UpdateItemQuantity replaces the quantity of the line for productID.
// A quantity of zero or less means removal, not an error.
func (c *Cart) UpdateItemQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			break
		}
	}
	c.recompute()
}

// Clear resets the cart to the empty aggregate. Called after a confirmed
// checkout or an explicit user action, never speculatively.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
	c.recompute()
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) recompute() {
	qty := 0
	price := 0.0
	for _, l := range c.Lines {
		qty += l.Quantity
		price += l.Price * float64(l.Quantity)
	}
	c.TotalQuantity = qty
	c.TotalPrice = price
}
