package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/erp-dashboard/internal/http"
	handler "github.com/rogerio-castellano/erp-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/erp-dashboard/internal/models"
)

func TestCreateOrderHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	t.Run("total derived from items", func(t *testing.T) {
		w := createOrder(r, handler.OrderRequest{
			OrderNumber:  "ORD-100",
			CustomerName: "Acme",
			Items: []models.OrderItem{
				{ProductID: 1, ProductName: "Widget", Quantity: 2, UnitPrice: 10, Total: 20},
				{ProductID: 2, ProductName: "Gadget", Quantity: 1, UnitPrice: 15, Total: 15},
			},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
		var created models.Order
		json.NewDecoder(w.Body).Decode(&created)
		if created.TotalAmount != 35 {
			t.Errorf("expected total 35, got %v", created.TotalAmount)
		}
		if created.Status != models.OrderStatusPending {
			t.Errorf("expected default status pending, got %q", created.Status)
		}
	})

	t.Run("duplicate order number", func(t *testing.T) {
		w := createOrder(r, handler.OrderRequest{OrderNumber: "ORD-100", CustomerName: "Acme"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		w := createOrder(r, handler.OrderRequest{OrderNumber: "ORD-101", CustomerName: "Acme", Status: "bogus"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		w := createOrder(r, handler.OrderRequest{OrderNumber: "ORD-102"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	w := createOrder(r, handler.OrderRequest{OrderNumber: "ORD-200", CustomerName: "Acme"})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create order")
	}
	var created models.Order
	json.NewDecoder(w.Body).Decode(&created)

	t.Run("valid transition", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, "/api/sales/orders/1/status",
			handler.StatusRequest{Status: models.OrderStatusShipped}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var updated models.Order
		json.NewDecoder(w.Body).Decode(&updated)
		if updated.Status != models.OrderStatusShipped {
			t.Errorf("expected status shipped, got %q", updated.Status)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, "/api/sales/orders/1/status",
			handler.StatusRequest{Status: "teleported"}, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, "/api/sales/orders/999/status",
			handler.StatusRequest{Status: models.OrderStatusShipped}, true)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, "/api/sales/orders/1/status",
			handler.StatusRequest{Status: models.OrderStatusDelivered}, false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})
}

func TestGetOrdersHandlerSortsByOrderDate(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	createOrder(r, handler.OrderRequest{OrderNumber: "ORD-300", CustomerName: "Acme"})
	createOrder(r, handler.OrderRequest{OrderNumber: "ORD-301", CustomerName: "Acme"})

	w := doRequest(r, http.MethodGet, "/api/sales/orders", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var orders []models.Order
	json.NewDecoder(w.Body).Decode(&orders)
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].OrderDate.Before(orders[1].OrderDate) {
		t.Errorf("expected newest order date first")
	}
}
