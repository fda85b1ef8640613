package models

import "time"

const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is a customer invoice. Total is always amount + tax, derived at
// creation and never stored inconsistently.
type Invoice struct {
	ID            int       `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	OrderID       string    `json:"orderId,omitempty"`
	CustomerID    string    `json:"customerId,omitempty"`
	CustomerName  string    `json:"customerName"`
	Amount        float64   `json:"amount"`
	Tax           float64   `json:"tax"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	IssueDate     time.Time `json:"issueDate"`
	DueDate       time.Time `json:"dueDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
