package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/erp-dashboard/internal/http/handlers"
)

// NewRouter wires every API route. Reads are public, writes go through
// AuthMiddleware, and the auth endpoints are rate limited because they are
// the only ones worth brute-forcing.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(RateLimitMiddleware)
			r.Post("/signup", handlers.SignupHandler)
			r.Post("/login", handlers.LoginHandler)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/metrics", handlers.DashboardMetricsHandler)
			r.Get("/alerts", handlers.AlertsHandler)
			r.Get("/chart-data", handlers.ChartDataHandler)
			r.Get("/inventory-status", handlers.InventoryStatusHandler)
			r.Get("/notifications", handlers.NotificationsHandler)
			r.Get("/recent-activity", handlers.RecentActivityHandler)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/kpis", handlers.KPIsHandler)
			r.Get("/summary", handlers.SummaryHandler)
			r.Get("/monthly-trends", handlers.MonthlyTrendsHandler)
			r.Get("/export/csv", handlers.ExportCSVHandler)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/products", handlers.GetProductsHandler)
			r.Get("/products/{id}", handlers.GetProductByIDHandler)
			r.Get("/products/{id}/movements", handlers.GetProductMovementsHandler)
			r.With(AuthMiddleware).Post("/products", handlers.CreateProductHandler)
			r.With(AuthMiddleware).Put("/products/{id}", handlers.UpdateProductHandler)
			r.With(AuthMiddleware).Delete("/products/{id}", handlers.DeleteProductHandler)
			r.With(AuthMiddleware).Post("/adjust-stock", handlers.AdjustStockHandler)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/orders", handlers.GetOrdersHandler)
			r.Get("/orders/{id}", handlers.GetOrderByIDHandler)
			r.With(AuthMiddleware).Post("/orders", handlers.CreateOrderHandler)
			r.With(AuthMiddleware).Put("/orders/{id}", handlers.UpdateOrderHandler)
			r.With(AuthMiddleware).Patch("/orders/{id}/status", handlers.UpdateOrderStatusHandler)
			r.With(AuthMiddleware).Delete("/orders/{id}", handlers.DeleteOrderHandler)
		})

		r.Route("/purchasing", func(r chi.Router) {
			r.Get("/purchase-orders", handlers.GetPurchaseOrdersHandler)
			r.Get("/purchase-orders/{id}", handlers.GetPurchaseOrderByIDHandler)
			r.With(AuthMiddleware).Post("/purchase-orders", handlers.CreatePurchaseOrderHandler)
			r.With(AuthMiddleware).Put("/purchase-orders/{id}", handlers.UpdatePurchaseOrderHandler)
			r.With(AuthMiddleware).Patch("/purchase-orders/{id}/status", handlers.UpdatePurchaseOrderStatusHandler)
			r.With(AuthMiddleware).Delete("/purchase-orders/{id}", handlers.DeletePurchaseOrderHandler)

			r.Get("/vendors", handlers.GetVendorsHandler)
			r.Get("/vendors/{id}", handlers.GetVendorByIDHandler)
			r.With(AuthMiddleware).Post("/vendors", handlers.CreateVendorHandler)
			r.With(AuthMiddleware).Put("/vendors/{id}", handlers.UpdateVendorHandler)
			r.With(AuthMiddleware).Delete("/vendors/{id}", handlers.DeleteVendorHandler)
		})

		r.Route("/financial", func(r chi.Router) {
			r.Get("/invoices", handlers.GetInvoicesHandler)
			r.Get("/invoices/{id}", handlers.GetInvoiceByIDHandler)
			r.With(AuthMiddleware).Post("/invoices", handlers.CreateInvoiceHandler)
			r.With(AuthMiddleware).Put("/invoices/{id}", handlers.UpdateInvoiceHandler)
			r.With(AuthMiddleware).Patch("/invoices/{id}/status", handlers.UpdateInvoiceStatusHandler)
			r.With(AuthMiddleware).Delete("/invoices/{id}", handlers.DeleteInvoiceHandler)

			r.Get("/reports", handlers.FinancialReportsHandler)
		})

		r.Route("/hr", func(r chi.Router) {
			r.Get("/employees", handlers.GetEmployeesHandler)
			r.Get("/employees/{id}", handlers.GetEmployeeByIDHandler)
			r.With(AuthMiddleware).Post("/employees", handlers.CreateEmployeeHandler)
			r.With(AuthMiddleware).Put("/employees/{id}", handlers.UpdateEmployeeHandler)
			r.With(AuthMiddleware).Delete("/employees/{id}", handlers.DeleteEmployeeHandler)

			r.Get("/payroll", handlers.PayrollHandler)
			r.Get("/departments", handlers.DepartmentsHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
