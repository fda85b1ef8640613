package models

import "time"

// Order statuses. Transitions between them are free-form; there is no
// enforced state machine.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Order is a customer sales order. TotalAmount equals the sum of the item
// totals at creation time.
type Order struct {
	ID           int         `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerID   string      `json:"customerId,omitempty"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       string      `json:"status"`
	OrderDate    time.Time   `json:"orderDate"`
	DueDate      time.Time   `json:"dueDate"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
