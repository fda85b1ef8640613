package report

import (
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

// DashboardMetrics is the headline figure set for the dashboard landing
// page.
type DashboardMetrics struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalOrders          int     `json:"totalOrders"`
	TotalInventoryValue  float64 `json:"totalInventoryValue"`
	TotalEmployees       int     `json:"totalEmployees"`
	PendingOrders        int     `json:"pendingOrders"`
	LowStockItems        int     `json:"lowStockItems"`
	TotalProducts        int     `json:"totalProducts"`
	RevenueChangePercent float64 `json:"revenueChangePercent"`
	NewHiresThisMonth    int     `json:"newHiresThisMonth"`
}

// DashboardMetrics computes the point-in-time business metrics as of now.
//
// Revenue counts paid invoices only; inventory value is quantity times unit
// cost over every product. The month-over-month revenue change compares paid
// invoices created in the calendar month of now against the previous
// calendar month and is defined as 0 when the previous month had no paid
// revenue (a divide-by-zero guard, not a general percentage-change rule).
func (e *Engine) DashboardMetrics(now time.Time) (DashboardMetrics, error) {
	var m DashboardMetrics

	invoices, err := e.invoices.GetAll()
	if err != nil {
		return DashboardMetrics{}, err
	}
	products, err := e.products.GetAll()
	if err != nil {
		return DashboardMetrics{}, err
	}
	orders, err := e.orders.GetAll()
	if err != nil {
		return DashboardMetrics{}, err
	}
	employees, err := e.employees.GetAll()
	if err != nil {
		return DashboardMetrics{}, err
	}

	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	var totalRevenue, currentMonthRevenue, lastMonthRevenue float64
	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusPaid {
			continue
		}
		totalRevenue += inv.Total
		switch {
		case !inv.CreatedAt.Before(thisMonth):
			currentMonthRevenue += inv.Total
		case !inv.CreatedAt.Before(lastMonth):
			lastMonthRevenue += inv.Total
		}
	}
	m.TotalRevenue = round2(totalRevenue)

	var inventoryValue float64
	for _, p := range products {
		inventoryValue += float64(p.Quantity) * p.Cost
		if p.LowStock() {
			m.LowStockItems++
		}
	}
	m.TotalInventoryValue = round2(inventoryValue)
	m.TotalProducts = len(products)

	m.TotalOrders = len(orders)
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			m.PendingOrders++
		}
	}

	m.TotalEmployees = len(employees)
	for _, emp := range employees {
		if !emp.JoinDate.Before(thisMonth) {
			m.NewHiresThisMonth++
		}
	}

	if lastMonthRevenue > 0 {
		m.RevenueChangePercent = round2((currentMonthRevenue - lastMonthRevenue) / lastMonthRevenue * 100)
	}

	return m, nil
}

// Alerts is the actionable-item counter set shown in the dashboard header.
type Alerts struct {
	LowStockItems         int `json:"lowStockItems"`
	PendingOrders         int `json:"pendingOrders"`
	PendingPurchaseOrders int `json:"pendingPurchaseOrders"`
}

func (e *Engine) Alerts() (Alerts, error) {
	var a Alerts

	products, err := e.products.GetAll()
	if err != nil {
		return Alerts{}, err
	}
	for _, p := range products {
		if p.LowStock() {
			a.LowStockItems++
		}
	}

	orders, err := e.orders.GetAll()
	if err != nil {
		return Alerts{}, err
	}
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			a.PendingOrders++
		}
	}

	purchaseOrders, err := e.purchaseOrders.GetAll()
	if err != nil {
		return Alerts{}, err
	}
	for _, po := range purchaseOrders {
		if po.Status == models.PurchaseOrderStatusDraft {
			a.PendingPurchaseOrders++
		}
	}

	return a, nil
}

// InventoryBucket is one slice of the inventory-status breakdown. Value is a
// whole-number percentage of all products.
type InventoryBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// InventoryStatus partitions every product into in-stock, low-stock and
// out-of-stock buckets. Out-of-stock wins over low-stock for zero-quantity
// products. All three percentages are 0 when there are no products.
func (e *Engine) InventoryStatus() ([]InventoryBucket, error) {
	products, err := e.products.GetAll()
	if err != nil {
		return nil, err
	}

	var inStock, lowStock, outOfStock int
	for _, p := range products {
		switch {
		case p.OutOfStock():
			outOfStock++
		case p.LowStock():
			lowStock++
		default:
			inStock++
		}
	}

	total := len(products)
	return []InventoryBucket{
		{Name: "In Stock", Value: percentOf(inStock, total)},
		{Name: "Low Stock", Value: percentOf(lowStock, total)},
		{Name: "Out of Stock", Value: percentOf(outOfStock, total)},
	}, nil
}

// ChartPoint is one month of the six-month dashboard chart. Month is the
// locale short month name ("Jan".."Dec"); the trends report uses "YYYY-MM"
// keys instead and the two formats are intentionally distinct.
type ChartPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// ChartData aggregates invoice revenue (by issue date) and order counts (by
// order date) into the six calendar months ending at now, oldest first.
// Buckets are keyed by short month name only, so a record from the same
// month of a previous year folds into the current bucket; this mirrors the
// dashboard chart's historical behavior.
func (e *Engine) ChartData(now time.Time) ([]ChartPoint, error) {
	orders, err := e.orders.GetAll()
	if err != nil {
		return nil, err
	}
	invoices, err := e.invoices.GetAll()
	if err != nil {
		return nil, err
	}

	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	sixMonthsAgo := now.AddDate(0, -6, 0)

	points := make([]ChartPoint, 6)
	index := make(map[string]int, 6)
	for i := range points {
		name := base.AddDate(0, i-5, 0).Format("Jan")
		points[i] = ChartPoint{Month: name}
		index[name] = i
	}

	for _, inv := range invoices {
		if inv.IssueDate.Before(sixMonthsAgo) {
			continue
		}
		if i, ok := index[inv.IssueDate.Format("Jan")]; ok {
			points[i].Revenue += inv.Total
		}
	}
	for _, o := range orders {
		if o.OrderDate.Before(sixMonthsAgo) {
			continue
		}
		if i, ok := index[o.OrderDate.Format("Jan")]; ok {
			points[i].Orders++
		}
	}

	for i := range points {
		points[i].Revenue = round2(points[i].Revenue)
	}
	return points, nil
}

// KPIValues are the business key-performance indicators. Inventory accuracy
// and vendor performance are deliberate proxies (quantity >= 0 and
// rating >= 3 respectively), not exact computations.
type KPIValues struct {
	OrderFulfillmentRate int `json:"orderFulfillmentRate"`
	CustomerRetention    int `json:"customerRetention"`
	InventoryAccuracy    int `json:"inventoryAccuracy"`
	VendorPerformance    int `json:"vendorPerformance"`
}

// SystemIndicators are static system-health figures reported alongside the
// KPIs.
type SystemIndicators struct {
	SystemUptime  float64 `json:"systemUptime"`
	DataIntegrity float64 `json:"dataIntegrity"`
	ActiveUsers   int     `json:"activeUsers"`
	LastBackup    string  `json:"lastBackup"`
}

type KPIReport struct {
	KPIs   KPIValues        `json:"kpis"`
	System SystemIndicators `json:"system"`
}

func (e *Engine) KPIs() (KPIReport, error) {
	orders, err := e.orders.GetAll()
	if err != nil {
		return KPIReport{}, err
	}
	products, err := e.products.GetAll()
	if err != nil {
		return KPIReport{}, err
	}
	vendors, err := e.vendors.GetAll()
	if err != nil {
		return KPIReport{}, err
	}

	var delivered int
	for _, o := range orders {
		if o.Status == models.OrderStatusDelivered {
			delivered++
		}
	}

	var accurate int
	for _, p := range products {
		if p.Quantity >= 0 {
			accurate++
		}
	}

	var goodVendors int
	for _, v := range vendors {
		if v.Rating >= 3 {
			goodVendors++
		}
	}

	return KPIReport{
		KPIs: KPIValues{
			OrderFulfillmentRate: percentOf(delivered, len(orders)),
			CustomerRetention:    87, // needs customer purchase-history data
			InventoryAccuracy:    percentOf(accurate, len(products)),
			VendorPerformance:    percentOf(goodVendors, len(vendors)),
		},
		System: SystemIndicators{
			SystemUptime:  99.9,
			DataIntegrity: 100.0,
			ActiveUsers:   1,
			LastBackup:    "2 hours ago",
		},
	}, nil
}
