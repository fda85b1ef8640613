package handlers

import (
	"time"

	"github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type SignupRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type ProductRequest struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Cost         float64 `json:"cost"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorderLevel"`
	Supplier     string  `json:"supplier"`
}

// ProductResponse is the product plus the derived low-stock flag the
// dashboard renders next to each row.
type ProductResponse struct {
	models.Product
	LowStock bool `json:"lowStock"`
}

func newProductResponse(p models.Product) ProductResponse {
	return ProductResponse{Product: p, LowStock: p.LowStock()}
}

type OrderRequest struct {
	OrderNumber  string             `json:"orderNumber"`
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Items        []models.OrderItem `json:"items"`
	TotalAmount  float64            `json:"totalAmount"`
	Status       string             `json:"status"`
	OrderDate    time.Time          `json:"orderDate"`
	DueDate      time.Time          `json:"dueDate"`
}

type PurchaseOrderRequest struct {
	PONumber         string                     `json:"poNumber"`
	VendorID         string                     `json:"vendorId"`
	VendorName       string                     `json:"vendorName"`
	Items            []models.PurchaseOrderItem `json:"items"`
	TotalAmount      float64                    `json:"totalAmount"`
	Status           string                     `json:"status"`
	OrderDate        time.Time                  `json:"orderDate"`
	ExpectedDelivery time.Time                  `json:"expectedDelivery"`
}

type VendorRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	PaymentTerms string  `json:"paymentTerms"`
	Rating       float64 `json:"rating"`
}

type InvoiceRequest struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	OrderID       string    `json:"orderId"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	Amount        float64   `json:"amount"`
	Tax           float64   `json:"tax"`
	Status        string    `json:"status"`
	IssueDate     time.Time `json:"issueDate"`
	DueDate       time.Time `json:"dueDate"`
}

type EmployeeRequest struct {
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Salary     float64   `json:"salary"`
	JoinDate   time.Time `json:"joinDate"`
	Status     string    `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type AdjustStockRequest struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

type AdjustStockResult struct {
	Product  ProductResponse      `json:"product"`
	Movement models.StockMovement `json:"movement"`
}
