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

func orderFromRequest(req OrderRequest) models.Order {
	order := models.Order{
		OrderNumber:  req.OrderNumber,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Items:        req.Items,
		TotalAmount:  req.TotalAmount,
		Status:       req.Status,
		OrderDate:    req.OrderDate,
		DueDate:      req.DueDate,
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if order.TotalAmount == 0 {
		for _, item := range order.Items {
			order.TotalAmount += item.Total
		}
	}
	return order
}

// CreateOrderHandler godoc
// @Summary Create a sales order
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order to create"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 409 {string} string "Duplicate order number"
// @Router /api/sales/orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	order := orderFromRequest(req)
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	created, err := orderRepo.Create(order)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not create order: order number already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetOrdersHandler godoc
// @Summary List all sales orders, newest first
// @Tags sales
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {string} string "Internal error"
// @Router /api/sales/orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, orders); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetOrderByIDHandler godoc
// @Summary Get sales order by ID
// @Tags sales
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/sales/orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, order); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateOrderHandler godoc
// @Summary Update a sales order
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param order body OrderRequest true "Updated order"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Router /api/sales/orders/{id} [put]
func UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	order := orderFromRequest(req)
	order.ID = id
	order.UpdatedAt = time.Now()

	updated, err := orderRepo.Update(order)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrDuplicateKey) {
			http.Error(w, "could not update order: order number already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateOrderStatusHandler godoc
// @Summary Change the status of a sales order
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Router /api/sales/orders/{id}/status [patch]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		http.Error(w, "unknown order status", http.StatusBadRequest)
		return
	}

	updated, err := orderRepo.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update order status", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteOrderHandler godoc
// @Summary Delete a sales order
// @Tags sales
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/sales/orders/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}
	if err := orderRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete order", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
