package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/rogerio-castellano/erp-dashboard/docs"
	"github.com/rogerio-castellano/erp-dashboard/internal/auth"
	"github.com/rogerio-castellano/erp-dashboard/internal/config"
	"github.com/rogerio-castellano/erp-dashboard/internal/db"
	erphttp "github.com/rogerio-castellano/erp-dashboard/internal/http"
	"github.com/rogerio-castellano/erp-dashboard/internal/http/ban"
	"github.com/rogerio-castellano/erp-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/erp-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/erp-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/erp-dashboard/internal/report"
	"github.com/rogerio-castellano/erp-dashboard/internal/repo"
)

// @title ERP Dashboard API
// @version 1.0
// @description REST API serving inventory, sales, purchasing, HR, invoicing and the aggregated dashboard views.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.Auth.JWTSecret)
	rl.Configure(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Redis only backs the rate-limit strike log; the API works
		// without it.
		log.Printf("could not connect to Redis at %s: %v", cfg.Redis.Addr, err)
	} else {
		redisService := redissvc.NewRedisService(rdb, ctx)
		handlers.SetRedisService(redisService)
		ban.SetRedisService(redisService)
		go ban.StartDailySummaryLoop(24 * time.Hour)
	}
	defer rdb.Close()

	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	productRepo := repo.NewPostgresProductRepository(database)
	orderRepo := repo.NewPostgresOrderRepository(database)
	purchaseOrderRepo := repo.NewPostgresPurchaseOrderRepository(database)
	invoiceRepo := repo.NewPostgresInvoiceRepository(database)
	vendorRepo := repo.NewPostgresVendorRepository(database)
	employeeRepo := repo.NewPostgresEmployeeRepository(database)

	handlers.SetProductRepo(productRepo)
	handlers.SetOrderRepo(orderRepo)
	handlers.SetPurchaseOrderRepo(purchaseOrderRepo)
	handlers.SetInvoiceRepo(invoiceRepo)
	handlers.SetVendorRepo(vendorRepo)
	handlers.SetEmployeeRepo(employeeRepo)
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetReportEngine(report.NewEngine(
		productRepo, orderRepo, purchaseOrderRepo, invoiceRepo, vendorRepo, employeeRepo,
	))

	r := erphttp.NewRouter()
	log.Printf("server running on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatal(err)
	}
}
