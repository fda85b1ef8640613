package report

import (
	"math"

	repo "github.com/rogerio-castellano/erp-dashboard/internal/repo"
)

// Engine computes every derived view served by the dashboard and report
// endpoints. It holds no state of its own: each call re-reads the backing
// collections and sums in memory, so results are always current and
// concurrent calls are fully independent.
//
// Any repository error aborts the computation; partial results are never
// returned.
type Engine struct {
	products       repo.ProductRepository
	orders         repo.OrderRepository
	purchaseOrders repo.PurchaseOrderRepository
	invoices       repo.InvoiceRepository
	vendors        repo.VendorRepository
	employees      repo.EmployeeRepository
}

func NewEngine(
	products repo.ProductRepository,
	orders repo.OrderRepository,
	purchaseOrders repo.PurchaseOrderRepository,
	invoices repo.InvoiceRepository,
	vendors repo.VendorRepository,
	employees repo.EmployeeRepository,
) *Engine {
	return &Engine{
		products:       products,
		orders:         orders,
		purchaseOrders: purchaseOrders,
		invoices:       invoices,
		vendors:        vendors,
		employees:      employees,
	}
}

// round2 rounds to two decimal places, matching the cent precision used in
// every monetary figure.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentOf returns part/total as a whole-number percentage, 0 when total
// is 0.
func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
