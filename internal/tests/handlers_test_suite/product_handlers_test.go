package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/erp-dashboard/internal/http"
	handler "github.com/rogerio-castellano/erp-dashboard/internal/http/handlers"
)

func TestCreateProductHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	t.Run("valid product", func(t *testing.T) {
		w := createProduct(r, handler.ProductRequest{
			SKU: "SKU-001", Name: "Widget", Category: "parts",
			Price: 19.99, Cost: 8.5, Quantity: 100, ReorderLevel: 10,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
		var resp handler.ProductResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.ID == 0 || resp.SKU != "SKU-001" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if resp.LowStock {
			t.Errorf("expected product above reorder level not to be flagged")
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		w := createProduct(r, handler.ProductRequest{Price: 5})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
		var errs []handler.ValidationError
		json.NewDecoder(w.Body).Decode(&errs)
		if len(errs) == 0 {
			t.Errorf("expected validation errors in response body")
		}
	})

	t.Run("duplicate sku", func(t *testing.T) {
		w := createProduct(r, handler.ProductRequest{SKU: "SKU-001", Name: "Clone", Category: "parts"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/inventory/products",
			handler.ProductRequest{SKU: "SKU-999", Name: "X", Category: "parts"}, false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})
}

func TestGetProductByIDHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{SKU: "SKU-010", Name: "Widget", Category: "parts", Quantity: 3, ReorderLevel: 5})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	t.Run("found", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/inventory/products/1", nil, false)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if !resp.LowStock {
			t.Errorf("expected product at quantity 3 with reorder level 5 to be low stock")
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/inventory/products/999", nil, false)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/inventory/products/abc", nil, false)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestAdjustStockHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{SKU: "SKU-020", Name: "Bolt", Category: "parts", Quantity: 10, ReorderLevel: 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create product")
	}
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	t.Run("increase with reason", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/inventory/adjust-stock",
			handler.AdjustStockRequest{ProductID: created.ID, Quantity: 5, Reason: "Received shipment"}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.AdjustStockResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Product.Quantity != 15 {
			t.Errorf("expected quantity 15, got %d", resp.Product.Quantity)
		}
		if resp.Movement.Reason != "Received shipment" || resp.Movement.Quantity != 5 {
			t.Errorf("unexpected movement: %+v", resp.Movement)
		}
		if resp.Movement.ProductName != "Bolt" {
			t.Errorf("expected product name snapshot, got %q", resp.Movement.ProductName)
		}
	})

	t.Run("default reason", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/inventory/adjust-stock",
			handler.AdjustStockRequest{ProductID: created.ID, Quantity: -3}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.AdjustStockResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Movement.Reason != "Manual adjustment" {
			t.Errorf("expected default reason, got %q", resp.Movement.Reason)
		}
	})

	t.Run("negative balance is allowed", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/inventory/adjust-stock",
			handler.AdjustStockRequest{ProductID: created.ID, Quantity: -100}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.AdjustStockResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Product.Quantity != -88 {
			t.Errorf("expected quantity -88, got %d", resp.Product.Quantity)
		}
	})

	t.Run("movement log is appended", func(t *testing.T) {
		movements, err := movementRepo.GetByProductID(created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(movements) != 3 {
			t.Errorf("expected 3 movement rows, got %d", len(movements))
		}
	})

	t.Run("log failure after adjustment", func(t *testing.T) {
		movementRepo.FailNextLogs(true)
		defer movementRepo.FailNextLogs(false)

		w := doRequest(r, http.MethodPost, "/api/inventory/adjust-stock",
			handler.AdjustStockRequest{ProductID: created.ID, Quantity: 1}, true)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if got := w.Body.String(); got != "stock adjusted but movement log failed\n" {
			t.Errorf("unexpected body: %q", got)
		}

		// The quantity change is not rolled back.
		p, err := productRepo.GetByID(created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Quantity != -87 {
			t.Errorf("expected quantity -87 after failed log, got %d", p.Quantity)
		}
	})

	t.Run("zero delta", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/inventory/adjust-stock",
			handler.AdjustStockRequest{ProductID: created.ID}, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/inventory/adjust-stock",
			handler.AdjustStockRequest{ProductID: 999, Quantity: 1}, true)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})
}

func TestDeleteProductHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{SKU: "SKU-030", Name: "Temp", Category: "parts"})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doRequest(r, http.MethodDelete, "/api/inventory/products/1", nil, true)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	w = doRequest(r, http.MethodDelete, "/api/inventory/products/1", nil, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}
