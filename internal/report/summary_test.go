package report

import (
	"testing"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

func TestFinancialReport(t *testing.T) {
	f := newEngineFixture()

	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-1", CustomerName: "Acme", Total: 100, Status: models.InvoiceStatusPaid})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-2", CustomerName: "Acme", Total: 50, Status: models.InvoiceStatusSent})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-3", CustomerName: "Acme", Total: 25, Status: models.InvoiceStatusOverdue})
	f.purchaseOrders.Create(models.PurchaseOrder{PONumber: "PO-1", VendorName: "V", TotalAmount: 30, Status: models.PurchaseOrderStatusReceived})
	f.purchaseOrders.Create(models.PurchaseOrder{PONumber: "PO-2", VendorName: "V", TotalAmount: 99, Status: models.PurchaseOrderStatusDraft})

	r, err := f.engine.FinancialReport()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalRevenue != 100 || r.TotalExpenses != 30 || r.Profit != 70 {
		t.Errorf("expected revenue 100 / expenses 30 / profit 70, got %v / %v / %v",
			r.TotalRevenue, r.TotalExpenses, r.Profit)
	}
	if r.PendingInvoices != 50 || r.OverdueInvoices != 25 {
		t.Errorf("expected pending 50 / overdue 25, got %v / %v", r.PendingInvoices, r.OverdueInvoices)
	}
	if r.InvoiceCount != 3 || r.PaidInvoiceCount != 1 || r.OverdueInvoiceCount != 1 {
		t.Errorf("unexpected counts: %+v", r)
	}
}

func TestSummary(t *testing.T) {
	f := newEngineFixture()

	f.orders.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", TotalAmount: 200, Status: models.OrderStatusPending})
	f.orders.Create(models.Order{OrderNumber: "ORD-2", CustomerName: "Acme", TotalAmount: 300, Status: models.OrderStatusDelivered})
	f.purchaseOrders.Create(models.PurchaseOrder{PONumber: "PO-1", VendorName: "V", TotalAmount: 120, Status: models.PurchaseOrderStatusDraft})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-1", CustomerName: "Acme", Total: 80, Status: models.InvoiceStatusPaid})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-2", CustomerName: "Acme", Total: 40, Status: models.InvoiceStatusDraft})
	f.employees.Create(models.Employee{FirstName: "Jo", LastName: "March", Email: "jo@example.com", Salary: 5000, Status: models.EmployeeStatusActive})
	f.employees.Create(models.Employee{FirstName: "Amy", LastName: "March", Email: "amy@example.com", Salary: 4000, Status: models.EmployeeStatusOnLeave})
	f.products.Create(models.Product{SKU: "S-1", Name: "A", Category: "c", Quantity: 1, ReorderLevel: 5})

	s, err := f.engine.Summary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Summary revenue comes from order totals, not invoices.
	if s.Summary.TotalRevenue != 500 || s.Summary.TotalExpenses != 120 || s.Summary.Profit != 380 {
		t.Errorf("unexpected figures: %+v", s.Summary)
	}
	if s.Summary.TotalInvoiced != 120 || s.Summary.PaidInvoices != 1 || s.Summary.PendingInvoices != 1 {
		t.Errorf("unexpected invoice figures: %+v", s.Summary)
	}
	if s.Summary.TotalPayroll != 9000 || s.Summary.ActiveEmployees != 1 {
		t.Errorf("unexpected payroll figures: %+v", s.Summary)
	}
	if s.Summary.TotalProducts != 1 || s.Summary.LowStockProducts != 1 {
		t.Errorf("unexpected product figures: %+v", s.Summary)
	}
	if s.Orders.Total != 2 || s.Orders.Pending != 1 || s.Orders.Completed != 1 {
		t.Errorf("unexpected order figures: %+v", s.Orders)
	}
	if s.PurchaseOrders.Total != 1 || s.PurchaseOrders.Pending != 1 || s.PurchaseOrders.Received != 0 {
		t.Errorf("unexpected purchase order figures: %+v", s.PurchaseOrders)
	}
}

func TestMonthlyTrends(t *testing.T) {
	f := newEngineFixture()

	jan := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	f.orders.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", TotalAmount: 100, Status: models.OrderStatusPending, CreatedAt: jan})
	f.orders.Create(models.Order{OrderNumber: "ORD-2", CustomerName: "Acme", TotalAmount: 50, Status: models.OrderStatusPending, CreatedAt: jan})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-1", CustomerName: "Acme", Status: models.InvoiceStatusSent, CreatedAt: jan})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-2", CustomerName: "Acme", Status: models.InvoiceStatusSent, CreatedAt: feb})

	trends, err := f.engine.MonthlyTrends()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trends) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(trends))
	}
	if trends[0].Month != "2024-01" || trends[1].Month != "2024-02" {
		t.Errorf("expected ascending keys 2024-01, 2024-02, got %s, %s", trends[0].Month, trends[1].Month)
	}
	if trends[0].Orders != 2 || trends[0].Revenue != 150 || trends[0].Invoices != 1 {
		t.Errorf("unexpected January bucket: %+v", trends[0])
	}
	if trends[1].Orders != 0 || trends[1].Revenue != 0 || trends[1].Invoices != 1 {
		t.Errorf("unexpected February bucket: %+v", trends[1])
	}
}

func TestPayroll(t *testing.T) {
	f := newEngineFixture()

	f.employees.Create(models.Employee{FirstName: "Jo", LastName: "March", Email: "jo@example.com", Department: "Engineering", Salary: 6000, Status: models.EmployeeStatusActive})
	f.employees.Create(models.Employee{FirstName: "Amy", LastName: "March", Email: "amy@example.com", Department: "Sales", Salary: 4000, Status: models.EmployeeStatusOnLeave})
	f.employees.Create(models.Employee{FirstName: "Meg", LastName: "March", Email: "meg@example.com", Department: "Engineering", Salary: 5000, Status: models.EmployeeStatusActive})

	r, err := f.engine.Payroll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalEmployees != 3 || r.ActiveEmployees != 2 || r.OnLeave != 1 {
		t.Errorf("unexpected headcounts: %+v", r)
	}
	if r.TotalPayroll != 15000 || r.AverageSalary != 5000 {
		t.Errorf("unexpected payroll figures: %+v", r)
	}
	if len(r.Departments) != 2 || r.Departments[0] != "Engineering" || r.Departments[1] != "Sales" {
		t.Errorf("expected first-seen department order, got %v", r.Departments)
	}
}

func TestDepartments(t *testing.T) {
	f := newEngineFixture()

	f.employees.Create(models.Employee{FirstName: "Jo", LastName: "March", Email: "jo@example.com", Department: "Engineering", Salary: 6000})
	f.employees.Create(models.Employee{FirstName: "Amy", LastName: "March", Email: "amy@example.com", Salary: 4000})
	f.employees.Create(models.Employee{FirstName: "Meg", LastName: "March", Email: "meg@example.com", Department: "Engineering", Salary: 5000})

	reports, err := f.engine.Departments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(reports))
	}
	if reports[0].Name != "Engineering" || reports[0].Count != 2 || reports[0].TotalSalary != 11000 {
		t.Errorf("unexpected engineering rollup: %+v", reports[0])
	}
	if reports[1].Name != "Unassigned" || reports[1].Count != 1 || reports[1].TotalSalary != 4000 {
		t.Errorf("unexpected unassigned rollup: %+v", reports[1])
	}
}
