package models

import "time"

const (
	PurchaseOrderStatusDraft     = "draft"
	PurchaseOrderStatusSent      = "sent"
	PurchaseOrderStatusReceived  = "received"
	PurchaseOrderStatusCancelled = "cancelled"
)

type PurchaseOrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// PurchaseOrder is the vendor-facing counterpart of Order.
type PurchaseOrder struct {
	ID               int                 `json:"id"`
	PONumber         string              `json:"poNumber"`
	VendorID         string              `json:"vendorId,omitempty"`
	VendorName       string              `json:"vendorName"`
	Items            []PurchaseOrderItem `json:"items"`
	TotalAmount      float64             `json:"totalAmount"`
	Status           string              `json:"status"`
	OrderDate        time.Time           `json:"orderDate"`
	ExpectedDelivery time.Time           `json:"expectedDelivery"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

func ValidPurchaseOrderStatus(s string) bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}
