package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	api "github.com/rogerio-castellano/erp-dashboard/internal/http"
	"github.com/rogerio-castellano/erp-dashboard/internal/models"
	"github.com/rogerio-castellano/erp-dashboard/internal/report"
)

func TestDashboardMetricsHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	invoiceRepo.Create(models.Invoice{InvoiceNumber: "INV-1", CustomerName: "Acme", Total: 120,
		Status: models.InvoiceStatusPaid, CreatedAt: time.Now()})
	invoiceRepo.Create(models.Invoice{InvoiceNumber: "INV-2", CustomerName: "Acme", Total: 999,
		Status: models.InvoiceStatusDraft, CreatedAt: time.Now()})
	productRepo.Create(models.Product{SKU: "D-1", Name: "Widget", Category: "parts", Cost: 4, Quantity: 5, ReorderLevel: 1})

	w := doRequest(r, http.MethodGet, "/api/dashboard/metrics", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var m report.DashboardMetrics
	json.NewDecoder(w.Body).Decode(&m)
	if m.TotalRevenue != 120 {
		t.Errorf("expected revenue 120 from the paid invoice only, got %v", m.TotalRevenue)
	}
	if m.TotalInventoryValue != 20 {
		t.Errorf("expected inventory value 20, got %v", m.TotalInventoryValue)
	}
}

func TestInventoryStatusHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	productRepo.Create(models.Product{SKU: "D-1", Name: "A", Category: "c", Quantity: 10, ReorderLevel: 1})
	productRepo.Create(models.Product{SKU: "D-2", Name: "B", Category: "c", Quantity: 0, ReorderLevel: 1})

	w := doRequest(r, http.MethodGet, "/api/dashboard/inventory-status", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var buckets []report.InventoryBucket
	json.NewDecoder(w.Body).Decode(&buckets)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Value != 50 || buckets[2].Value != 50 {
		t.Errorf("expected 50/0/50 split, got %+v", buckets)
	}
}

func TestNotificationsHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	orderRepo.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", Status: models.OrderStatusPending})

	w := doRequest(r, http.MethodGet, "/api/dashboard/notifications", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var feed report.NotificationFeed
	json.NewDecoder(w.Body).Decode(&feed)
	if feed.Count != 1 {
		t.Fatalf("expected 1 notification, got %d", feed.Count)
	}
	if feed.Notifications[0].Title != "Pending order" {
		t.Errorf("unexpected notification: %+v", feed.Notifications[0])
	}
}

func TestRecentActivityHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	orderRepo.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme",
		Status: models.OrderStatusPending, CreatedAt: time.Now().Add(-time.Hour)})

	w := doRequest(r, http.MethodGet, "/api/dashboard/recent-activity", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var activities []report.Activity
	json.NewDecoder(w.Body).Decode(&activities)
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	if activities[0].Action != "Order ORD-1 pending" || activities[0].Type != "order" {
		t.Errorf("unexpected activity: %+v", activities[0])
	}
}

func TestChartDataHandler(t *testing.T) {
	setupTestRepos()
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/api/dashboard/chart-data", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var points []report.ChartPoint
	json.NewDecoder(w.Body).Decode(&points)
	if len(points) != 6 {
		t.Errorf("expected 6 chart points even with no data, got %d", len(points))
	}
}
