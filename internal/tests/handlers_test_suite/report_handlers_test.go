package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/erp-dashboard/internal/http"
	"github.com/rogerio-castellano/erp-dashboard/internal/models"
	"github.com/rogerio-castellano/erp-dashboard/internal/report"
)

func TestExportCSVHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	productRepo.Create(models.Product{SKU: "CSV-1", Name: "Widget", Category: "parts", Quantity: 7, Price: 19.99})

	t.Run("products export", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/reports/export/csv?type=products", nil, false)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected text/csv, got %q", ct)
		}
		cd := w.Header().Get("Content-Disposition")
		if !strings.HasPrefix(cd, "attachment; filename=products-") || !strings.HasSuffix(cd, ".csv") {
			t.Errorf("unexpected content disposition: %q", cd)
		}
		body := w.Body.String()
		if !strings.HasPrefix(body, "id,name,sku,quantity,price,category") {
			t.Errorf("unexpected CSV header: %q", body)
		}
		if !strings.Contains(body, `"Widget","CSV-1"`) {
			t.Errorf("expected product row in CSV, got %q", body)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/reports/export/csv?type=vendors", nil, false)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("missing type", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/reports/export/csv", nil, false)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestKPIsHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	orderRepo.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", Status: models.OrderStatusDelivered})

	w := doRequest(r, http.MethodGet, "/api/reports/kpis", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var kpis report.KPIReport
	json.NewDecoder(w.Body).Decode(&kpis)
	if kpis.KPIs.OrderFulfillmentRate != 100 {
		t.Errorf("expected fulfillment rate 100, got %d", kpis.KPIs.OrderFulfillmentRate)
	}
	if kpis.System.LastBackup == "" {
		t.Errorf("expected system indicators to be populated")
	}
}

func TestSummaryHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	orderRepo.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", TotalAmount: 250, Status: models.OrderStatusPending})

	w := doRequest(r, http.MethodGet, "/api/reports/summary", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var s report.SummaryReport
	json.NewDecoder(w.Body).Decode(&s)
	if s.Summary.TotalRevenue != 250 || s.Orders.Pending != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestFinancialReportsHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	invoiceRepo.Create(models.Invoice{InvoiceNumber: "INV-1", CustomerName: "Acme", Total: 75, Status: models.InvoiceStatusPaid})

	w := doRequest(r, http.MethodGet, "/api/financial/reports", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var fin report.FinancialReport
	json.NewDecoder(w.Body).Decode(&fin)
	if fin.TotalRevenue != 75 || fin.PaidInvoiceCount != 1 {
		t.Errorf("unexpected financial report: %+v", fin)
	}
}

func TestPayrollHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	employeeRepo.Create(models.Employee{FirstName: "Jo", LastName: "March", Email: "jo@example.com",
		Department: "Engineering", Salary: 5000, Status: models.EmployeeStatusActive})

	w := doRequest(r, http.MethodGet, "/api/hr/payroll", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var payroll report.PayrollReport
	json.NewDecoder(w.Body).Decode(&payroll)
	if payroll.TotalPayroll != 5000 || payroll.ActiveEmployees != 1 {
		t.Errorf("unexpected payroll: %+v", payroll)
	}
}

func TestDepartmentsHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	employeeRepo.Create(models.Employee{FirstName: "Jo", LastName: "March", Email: "jo@example.com", Salary: 5000})

	w := doRequest(r, http.MethodGet, "/api/hr/departments", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var departments []report.DepartmentReport
	json.NewDecoder(w.Body).Decode(&departments)
	if len(departments) != 1 || departments[0].Name != "Unassigned" {
		t.Errorf("unexpected departments: %+v", departments)
	}
}
