package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/erp-dashboard/internal/http"
	handler "github.com/rogerio-castellano/erp-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/erp-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/erp-dashboard/internal/repo"
	"github.com/rogerio-castellano/erp-dashboard/internal/report"
)

var (
	token             string
	productRepo       *repo.InMemoryProductRepository
	orderRepo         *repo.InMemoryOrderRepository
	purchaseOrderRepo *repo.InMemoryPurchaseOrderRepository
	invoiceRepo       *repo.InMemoryInvoiceRepository
	vendorRepo        *repo.InMemoryVendorRepository
	employeeRepo      *repo.InMemoryEmployeeRepository
	movementRepo      *repo.InMemoryMovementRepository
	userRepo          *repo.InMemoryUserRepository
)

func init() {
	// The suite fires many requests from one fake client address; keep the
	// limiter out of the way.
	rl.Configure(10000, 10000)

	setupTestRepos()
	r := api.NewRouter()

	var err error
	token, err = signupToken(r, "admin@example.com", "secret-password")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

// setupTestRepos installs a fresh set of in-memory repositories. Tests call
// it first so state never leaks between them.
func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	orderRepo = repo.NewInMemoryOrderRepository()
	purchaseOrderRepo = repo.NewInMemoryPurchaseOrderRepository()
	invoiceRepo = repo.NewInMemoryInvoiceRepository()
	vendorRepo = repo.NewInMemoryVendorRepository()
	employeeRepo = repo.NewInMemoryEmployeeRepository()
	movementRepo = repo.NewInMemoryMovementRepository()
	if userRepo == nil {
		userRepo = repo.NewInMemoryUserRepository()
	}

	handler.SetProductRepo(productRepo)
	handler.SetOrderRepo(orderRepo)
	handler.SetPurchaseOrderRepo(purchaseOrderRepo)
	handler.SetInvoiceRepo(invoiceRepo)
	handler.SetVendorRepo(vendorRepo)
	handler.SetEmployeeRepo(employeeRepo)
	handler.SetMovementRepo(movementRepo)
	handler.SetUserRepo(userRepo)
	handler.SetReportEngine(report.NewEngine(
		productRepo, orderRepo, purchaseOrderRepo, invoiceRepo, vendorRepo, employeeRepo,
	))
}

func signupToken(r http.Handler, email, password string) (string, error) {
	payload := handler.SignupRequest{Email: email, Name: "Admin", Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequest(r http.Handler, method, path string, payload any, authed bool) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, product handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/api/inventory/products", product, true)
}

func createOrder(r http.Handler, order handler.OrderRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/api/sales/orders", order, true)
}
