package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/erp-dashboard/internal/redissvc"
	repo "github.com/rogerio-castellano/erp-dashboard/internal/repo"
	"github.com/rogerio-castellano/erp-dashboard/internal/report"
)

var (
	productRepo       repo.ProductRepository
	orderRepo         repo.OrderRepository
	purchaseOrderRepo repo.PurchaseOrderRepository
	vendorRepo        repo.VendorRepository
	invoiceRepo       repo.InvoiceRepository
	employeeRepo      repo.EmployeeRepository
	movementRepo      repo.MovementRepository
	userRepo          repo.UserRepository

	reportEngine *report.Engine

	Rdb *redis.Client
	Ctx context.Context
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetPurchaseOrderRepo(r repo.PurchaseOrderRepository) {
	purchaseOrderRepo = r
}

func SetVendorRepo(r repo.VendorRepository) {
	vendorRepo = r
}

func SetInvoiceRepo(r repo.InvoiceRepository) {
	invoiceRepo = r
}

func SetEmployeeRepo(r repo.EmployeeRepository) {
	employeeRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetReportEngine(e *report.Engine) {
	reportEngine = e
}

func SetRedisService(rs *redissvc.RedisService) {
	Rdb = rs.Rdb()
	Ctx = rs.Ctx()
}
