package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
	repo "github.com/rogerio-castellano/erp-dashboard/internal/repo"
)

func invoiceFromRequest(req InvoiceRequest) models.Invoice {
	invoice := models.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		OrderID:       req.OrderID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Amount:        req.Amount,
		Tax:           req.Tax,
		Total:         req.Amount + req.Tax,
		Status:        req.Status,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusDraft
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = time.Now()
	}
	return invoice
}

// CreateInvoiceHandler godoc
// @Summary Create an invoice
// @Description Total is derived as amount + tax
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body InvoiceRequest true "Invoice to create"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} map[string]string
// @Failure 409 {string} string "Duplicate invoice number"
// @Router /api/financial/invoices [post]
func CreateInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	var req InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateInvoice(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	invoice := invoiceFromRequest(req)
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = time.Now()

	created, err := invoiceRepo.Create(invoice)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not create invoice: invoice number already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create invoice", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetInvoicesHandler godoc
// @Summary List all invoices, newest issue date first
// @Tags financial
// @Produce json
// @Success 200 {array} models.Invoice
// @Failure 500 {string} string "Internal error"
// @Router /api/financial/invoices [get]
func GetInvoicesHandler(w http.ResponseWriter, r *http.Request) {
	invoices, err := invoiceRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch invoices", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, invoices); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetInvoiceByIDHandler godoc
// @Summary Get invoice by ID
// @Tags financial
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/financial/invoices/{id} [get]
func GetInvoiceByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	invoice, err := invoiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch invoice", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, invoice); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateInvoiceHandler godoc
// @Summary Update an invoice
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Param invoice body InvoiceRequest true "Updated invoice"
// @Success 200 {object} models.Invoice
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Router /api/financial/invoices/{id} [put]
func UpdateInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	var req InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateInvoice(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	invoice := invoiceFromRequest(req)
	invoice.ID = id
	invoice.UpdatedAt = time.Now()

	updated, err := invoiceRepo.Update(invoice)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not update invoice: invoice number already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not update invoice", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateInvoiceStatusHandler godoc
// @Summary Change the status of an invoice
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} models.Invoice
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Router /api/financial/invoices/{id}/status [patch]
func UpdateInvoiceStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !models.ValidInvoiceStatus(req.Status) {
		http.Error(w, "unknown invoice status", http.StatusBadRequest)
		return
	}

	updated, err := invoiceRepo.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update invoice status", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteInvoiceHandler godoc
// @Summary Delete an invoice
// @Tags financial
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/financial/invoices/{id} [delete]
func DeleteInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}
	if err := invoiceRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete invoice", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
