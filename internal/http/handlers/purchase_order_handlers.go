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

func purchaseOrderFromRequest(req PurchaseOrderRequest) models.PurchaseOrder {
	po := models.PurchaseOrder{
		PONumber:         req.PONumber,
		VendorID:         req.VendorID,
		VendorName:       req.VendorName,
		Items:            req.Items,
		TotalAmount:      req.TotalAmount,
		Status:           req.Status,
		OrderDate:        req.OrderDate,
		ExpectedDelivery: req.ExpectedDelivery,
	}
	if po.Status == "" {
		po.Status = models.PurchaseOrderStatusDraft
	}
	if po.OrderDate.IsZero() {
		po.OrderDate = time.Now()
	}
	if po.TotalAmount == 0 {
		for _, item := range po.Items {
			po.TotalAmount += item.Total
		}
	}
	return po
}

// CreatePurchaseOrderHandler godoc
// @Summary Create a purchase order
// @Tags purchasing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param purchaseOrder body PurchaseOrderRequest true "Purchase order to create"
// @Success 201 {object} models.PurchaseOrder
// @Failure 400 {object} map[string]string
// @Failure 409 {string} string "Duplicate PO number"
// @Router /api/purchasing/purchase-orders [post]
func CreatePurchaseOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PurchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePurchaseOrder(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	po := purchaseOrderFromRequest(req)
	po.CreatedAt = time.Now()
	po.UpdatedAt = time.Now()

	created, err := purchaseOrderRepo.Create(po)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not create purchase order: PO number already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create purchase order", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetPurchaseOrdersHandler godoc
// @Summary List all purchase orders, newest first
// @Tags purchasing
// @Produce json
// @Success 200 {array} models.PurchaseOrder
// @Failure 500 {string} string "Internal error"
// @Router /api/purchasing/purchase-orders [get]
func GetPurchaseOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := purchaseOrderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch purchase orders", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, orders); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetPurchaseOrderByIDHandler godoc
// @Summary Get purchase order by ID
// @Tags purchasing
// @Produce json
// @Param id path int true "Purchase order ID"
// @Success 200 {object} models.PurchaseOrder
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/purchasing/purchase-orders/{id} [get]
func GetPurchaseOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid purchase order ID", http.StatusBadRequest)
		return
	}

	po, err := purchaseOrderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "purchase order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch purchase order", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, po); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdatePurchaseOrderHandler godoc
// @Summary Update a purchase order
// @Tags purchasing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Purchase order ID"
// @Param purchaseOrder body PurchaseOrderRequest true "Updated purchase order"
// @Success 200 {object} models.PurchaseOrder
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Router /api/purchasing/purchase-orders/{id} [put]
func UpdatePurchaseOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid purchase order ID", http.StatusBadRequest)
		return
	}

	var req PurchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePurchaseOrder(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	po := purchaseOrderFromRequest(req)
	po.ID = id
	po.UpdatedAt = time.Now()

	updated, err := purchaseOrderRepo.Update(po)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "purchase order not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not update purchase order: PO number already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not update purchase order", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdatePurchaseOrderStatusHandler godoc
// @Summary Change the status of a purchase order
// @Tags purchasing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Purchase order ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} models.PurchaseOrder
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Router /api/purchasing/purchase-orders/{id}/status [patch]
func UpdatePurchaseOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid purchase order ID", http.StatusBadRequest)
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !models.ValidPurchaseOrderStatus(req.Status) {
		http.Error(w, "unknown purchase order status", http.StatusBadRequest)
		return
	}

	updated, err := purchaseOrderRepo.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "purchase order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update purchase order status", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeletePurchaseOrderHandler godoc
// @Summary Delete a purchase order
// @Tags purchasing
// @Security BearerAuth
// @Param id path int true "Purchase order ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/purchasing/purchase-orders/{id} [delete]
func DeletePurchaseOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid purchase order ID", http.StatusBadRequest)
		return
	}
	if err := purchaseOrderRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "purchase order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete purchase order", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
