package models

import "time"

// Product represents an item held in inventory. Quantity is only mutated
// through the stock-adjustment operation; everything else goes through the
// regular update path.
type Product struct {
	ID           int       `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Cost         float64   `json:"cost"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorderLevel"`
	Supplier     string    `json:"supplier,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// OutOfStock reports whether the product has no stock left.
func (p Product) OutOfStock() bool {
	return p.Quantity == 0
}
