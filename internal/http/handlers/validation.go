package handlers

import (
	"strings"

	"github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func required(errs []ValidationError, field, value string) []ValidationError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ValidationError{Field: field, Description: field + " is required"})
	}
	return errs
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	errs = required(errs, "sku", p.SKU)
	errs = required(errs, "name", p.Name)
	errs = required(errs, "category", p.Category)
	if p.Price < 0 {
		errs = append(errs, ValidationError{Field: "price", Description: "price cannot be negative"})
	}
	if p.Cost < 0 {
		errs = append(errs, ValidationError{Field: "cost", Description: "cost cannot be negative"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if p.ReorderLevel < 0 {
		errs = append(errs, ValidationError{Field: "reorderLevel", Description: "reorderLevel cannot be negative"})
	}
	return errs
}

func validateOrder(o OrderRequest) []ValidationError {
	errs := []ValidationError{}
	errs = required(errs, "orderNumber", o.OrderNumber)
	errs = required(errs, "customerName", o.CustomerName)
	if o.Status != "" && !models.ValidOrderStatus(o.Status) {
		errs = append(errs, ValidationError{Field: "status", Description: "unknown order status"})
	}
	return errs
}

func validatePurchaseOrder(po PurchaseOrderRequest) []ValidationError {
	errs := []ValidationError{}
	errs = required(errs, "poNumber", po.PONumber)
	errs = required(errs, "vendorName", po.VendorName)
	if po.Status != "" && !models.ValidPurchaseOrderStatus(po.Status) {
		errs = append(errs, ValidationError{Field: "status", Description: "unknown purchase order status"})
	}
	return errs
}

func validateVendor(v VendorRequest) []ValidationError {
	errs := []ValidationError{}
	errs = required(errs, "name", v.Name)
	errs = required(errs, "email", v.Email)
	if v.Rating < 0 || v.Rating > 5 {
		errs = append(errs, ValidationError{Field: "rating", Description: "rating must be between 0 and 5"})
	}
	return errs
}

func validateInvoice(i InvoiceRequest) []ValidationError {
	errs := []ValidationError{}
	errs = required(errs, "invoiceNumber", i.InvoiceNumber)
	errs = required(errs, "customerName", i.CustomerName)
	if i.Amount < 0 {
		errs = append(errs, ValidationError{Field: "amount", Description: "amount cannot be negative"})
	}
	if i.Tax < 0 {
		errs = append(errs, ValidationError{Field: "tax", Description: "tax cannot be negative"})
	}
	if i.Status != "" && !models.ValidInvoiceStatus(i.Status) {
		errs = append(errs, ValidationError{Field: "status", Description: "unknown invoice status"})
	}
	return errs
}

func validateEmployee(e EmployeeRequest) []ValidationError {
	errs := []ValidationError{}
	errs = required(errs, "firstName", e.FirstName)
	errs = required(errs, "lastName", e.LastName)
	errs = required(errs, "email", e.Email)
	if e.Salary < 0 {
		errs = append(errs, ValidationError{Field: "salary", Description: "salary cannot be negative"})
	}
	if e.Status != "" && !models.ValidEmployeeStatus(e.Status) {
		errs = append(errs, ValidationError{Field: "status", Description: "unknown employee status"})
	}
	return errs
}
