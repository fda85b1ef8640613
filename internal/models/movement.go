package models

import "time"

// StockMovement is one row of the append-only audit log written by the
// stock-adjustment operation. Quantity is the signed delta applied to the
// product; ProductName is a snapshot taken at adjustment time.
type StockMovement struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
}
