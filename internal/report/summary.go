package report

import (
	"sort"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

// FinancialReport is the P&L-style rollup for the financial page. Revenue
// counts paid invoices, expenses count received purchase orders; pending and
// overdue figures are invoice totals filtered by status.
type FinancialReport struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalExpenses       float64 `json:"totalExpenses"`
	Profit              float64 `json:"profit"`
	PendingInvoices     float64 `json:"pendingInvoices"`
	OverdueInvoices     float64 `json:"overdueInvoices"`
	InvoiceCount        int     `json:"invoiceCount"`
	PaidInvoiceCount    int     `json:"paidInvoiceCount"`
	OverdueInvoiceCount int     `json:"overdueInvoiceCount"`
}

func (e *Engine) FinancialReport() (FinancialReport, error) {
	invoices, err := e.invoices.GetAll()
	if err != nil {
		return FinancialReport{}, err
	}
	purchaseOrders, err := e.purchaseOrders.GetAll()
	if err != nil {
		return FinancialReport{}, err
	}

	var r FinancialReport
	r.InvoiceCount = len(invoices)
	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoiceStatusPaid:
			r.TotalRevenue += inv.Total
			r.PaidInvoiceCount++
		case models.InvoiceStatusSent:
			r.PendingInvoices += inv.Total
		case models.InvoiceStatusOverdue:
			r.OverdueInvoices += inv.Total
			r.OverdueInvoiceCount++
		}
	}
	for _, po := range purchaseOrders {
		if po.Status == models.PurchaseOrderStatusReceived {
			r.TotalExpenses += po.TotalAmount
		}
	}
	r.Profit = r.TotalRevenue - r.TotalExpenses
	return r, nil
}

// SummaryReport is the all-collections overview served by /reports/summary.
type SummaryReport struct {
	Summary        SummaryFigures      `json:"summary"`
	Orders         OrderFigures        `json:"orders"`
	PurchaseOrders PurchaseOrderCounts `json:"purchaseOrders"`
}

type SummaryFigures struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalExpenses    float64 `json:"totalExpenses"`
	Profit           float64 `json:"profit"`
	TotalInvoiced    float64 `json:"totalInvoiced"`
	PaidInvoices     int     `json:"paidInvoices"`
	PendingInvoices  int     `json:"pendingInvoices"`
	TotalPayroll     float64 `json:"totalPayroll"`
	ActiveEmployees  int     `json:"activeEmployees"`
	TotalProducts    int     `json:"totalProducts"`
	LowStockProducts int     `json:"lowStockProducts"`
}

type OrderFigures struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type PurchaseOrderCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Received int `json:"received"`
}

func (e *Engine) Summary() (SummaryReport, error) {
	orders, err := e.orders.GetAll()
	if err != nil {
		return SummaryReport{}, err
	}
	purchaseOrders, err := e.purchaseOrders.GetAll()
	if err != nil {
		return SummaryReport{}, err
	}
	invoices, err := e.invoices.GetAll()
	if err != nil {
		return SummaryReport{}, err
	}
	employees, err := e.employees.GetAll()
	if err != nil {
		return SummaryReport{}, err
	}
	products, err := e.products.GetAll()
	if err != nil {
		return SummaryReport{}, err
	}

	var s SummaryReport

	s.Orders.Total = len(orders)
	for _, o := range orders {
		s.Summary.TotalRevenue += o.TotalAmount
		switch o.Status {
		case models.OrderStatusPending:
			s.Orders.Pending++
		case models.OrderStatusDelivered:
			s.Orders.Completed++
		}
	}

	s.PurchaseOrders.Total = len(purchaseOrders)
	for _, po := range purchaseOrders {
		s.Summary.TotalExpenses += po.TotalAmount
		switch po.Status {
		case models.PurchaseOrderStatusDraft:
			s.PurchaseOrders.Pending++
		case models.PurchaseOrderStatusReceived:
			s.PurchaseOrders.Received++
		}
	}
	s.Summary.Profit = s.Summary.TotalRevenue - s.Summary.TotalExpenses

	for _, inv := range invoices {
		s.Summary.TotalInvoiced += inv.Total
		if inv.Status == models.InvoiceStatusPaid {
			s.Summary.PaidInvoices++
		}
	}
	s.Summary.PendingInvoices = len(invoices) - s.Summary.PaidInvoices

	for _, emp := range employees {
		s.Summary.TotalPayroll += emp.Salary
		if emp.Status == models.EmployeeStatusActive {
			s.Summary.ActiveEmployees++
		}
	}

	s.Summary.TotalProducts = len(products)
	for _, p := range products {
		if p.LowStock() {
			s.Summary.LowStockProducts++
		}
	}

	return s, nil
}

// MonthlyTrend is one calendar-month bucket of the trends report, keyed
// "YYYY-MM". Orders contribute count and revenue; invoices contribute their
// count independently.
type MonthlyTrend struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Orders   int     `json:"orders"`
	Invoices int     `json:"invoices"`
}

// MonthlyTrends buckets every order and invoice by the calendar month of
// its creation time and returns the buckets in ascending key order.
func (e *Engine) MonthlyTrends() ([]MonthlyTrend, error) {
	orders, err := e.orders.GetAll()
	if err != nil {
		return nil, err
	}
	invoices, err := e.invoices.GetAll()
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthlyTrend)
	bucket := func(key string) *MonthlyTrend {
		b, ok := buckets[key]
		if !ok {
			b = &MonthlyTrend{Month: key}
			buckets[key] = b
		}
		return b
	}

	for _, o := range orders {
		b := bucket(o.CreatedAt.Format("2006-01"))
		b.Revenue += o.TotalAmount
		b.Orders++
	}
	for _, inv := range invoices {
		bucket(inv.CreatedAt.Format("2006-01")).Invoices++
	}

	trends := make([]MonthlyTrend, 0, len(buckets))
	for _, b := range buckets {
		trends = append(trends, *b)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends, nil
}

// PayrollReport is the HR payroll rollup.
type PayrollReport struct {
	TotalEmployees  int      `json:"totalEmployees"`
	ActiveEmployees int      `json:"activeEmployees"`
	OnLeave         int      `json:"onLeave"`
	TotalPayroll    float64  `json:"totalPayroll"`
	AverageSalary   float64  `json:"averageSalary"`
	Departments     []string `json:"departments"`
}

func (e *Engine) Payroll() (PayrollReport, error) {
	employees, err := e.employees.GetAll()
	if err != nil {
		return PayrollReport{}, err
	}

	r := PayrollReport{TotalEmployees: len(employees), Departments: []string{}}
	seen := make(map[string]bool)
	for _, emp := range employees {
		r.TotalPayroll += emp.Salary
		switch emp.Status {
		case models.EmployeeStatusActive:
			r.ActiveEmployees++
		case models.EmployeeStatusOnLeave:
			r.OnLeave++
		}
		if !seen[emp.Department] {
			seen[emp.Department] = true
			r.Departments = append(r.Departments, emp.Department)
		}
	}
	if len(employees) > 0 {
		r.AverageSalary = r.TotalPayroll / float64(len(employees))
	}
	return r, nil
}

// DepartmentReport is one department's headcount and salary rollup.
type DepartmentReport struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	TotalSalary float64 `json:"totalSalary"`
}

// Departments groups employees by department in first-seen order.
// Employees without a department fall into "Unassigned".
func (e *Engine) Departments() ([]DepartmentReport, error) {
	employees, err := e.employees.GetAll()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	reports := []DepartmentReport{}
	for _, emp := range employees {
		dept := emp.Department
		if dept == "" {
			dept = "Unassigned"
		}
		i, ok := index[dept]
		if !ok {
			i = len(reports)
			index[dept] = i
			reports = append(reports, DepartmentReport{Name: dept})
		}
		reports[i].Count++
		reports[i].TotalSalary += emp.Salary
	}
	return reports, nil
}
