package report

import (
	"testing"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

func TestRecentActivity(t *testing.T) {
	f := newEngineFixture()

	at := func(h int) time.Time { return testNow.Add(-time.Duration(h) * time.Hour) }

	f.orders.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", Status: models.OrderStatusPending, CreatedAt: at(1)})
	f.orders.Create(models.Order{OrderNumber: "ORD-2", CustomerName: "Acme", Status: models.OrderStatusShipped, CreatedAt: at(5)})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-1", CustomerName: "Acme", Status: models.InvoiceStatusSent, CreatedAt: at(2)})
	f.employees.Create(models.Employee{FirstName: "Jo", LastName: "March", Email: "jo@example.com", CreatedAt: at(3)})
	f.products.Create(models.Product{SKU: "P-1", Name: "Widget", Category: "c", UpdatedAt: at(4)})

	activities, err := f.engine.RecentActivity(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Five candidates, feed keeps the four newest.
	if len(activities) != 4 {
		t.Fatalf("expected 4 activities, got %d", len(activities))
	}

	wantActions := []string{
		"Order ORD-1 pending",
		"Invoice INV-1 sent to customer",
		"New employee Jo March added",
		"Inventory updated for P-1",
	}
	for i, want := range wantActions {
		if activities[i].Action != want {
			t.Errorf("activity %d: expected %q, got %q", i, want, activities[i].Action)
		}
	}
	for i := 1; i < len(activities); i++ {
		if activities[i].Timestamp.After(activities[i-1].Timestamp) {
			t.Errorf("activities not in descending time order at index %d", i)
		}
	}
}

func TestRecentActivityTieBreak(t *testing.T) {
	f := newEngineFixture()

	ts := testNow.Add(-time.Hour)
	f.products.Create(models.Product{SKU: "P-1", Name: "Widget", Category: "c", UpdatedAt: ts})
	f.invoices.Create(models.Invoice{InvoiceNumber: "INV-1", CustomerName: "Acme", Status: models.InvoiceStatusSent, CreatedAt: ts})
	f.orders.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", Status: models.OrderStatusPending, CreatedAt: ts})

	activities, err := f.engine.RecentActivity(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(activities))
	}

	// Equal timestamps keep the source order: orders, invoices, employees,
	// products.
	wantTypes := []string{"order", "invoice", "inventory"}
	for i, want := range wantTypes {
		if activities[i].Type != want {
			t.Errorf("position %d: expected type %s, got %s", i, want, activities[i].Type)
		}
	}
}

func TestNotifications(t *testing.T) {
	f := newEngineFixture()

	for _, sku := range []string{"L-1", "L-2", "L-3"} {
		f.products.Create(models.Product{SKU: sku, Name: "Item " + sku, Category: "c", Quantity: 1, ReorderLevel: 5})
	}
	f.orders.Create(models.Order{OrderNumber: "ORD-1", CustomerName: "Acme", Status: models.OrderStatusPending})
	f.orders.Create(models.Order{OrderNumber: "ORD-2", CustomerName: "Acme", Status: models.OrderStatusPending})
	f.purchaseOrders.Create(models.PurchaseOrder{PONumber: "PO-1", VendorName: "V", Status: models.PurchaseOrderStatusDraft})

	feed, err := f.engine.Notifications()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Six candidates, capped at five.
	if feed.Count != 5 || len(feed.Notifications) != 5 {
		t.Fatalf("expected 5 notifications, got count=%d len=%d", feed.Count, len(feed.Notifications))
	}
	for i := 0; i < 3; i++ {
		if feed.Notifications[i].Title != "Low stock alert" {
			t.Errorf("position %d: expected low stock alert, got %q", i, feed.Notifications[i].Title)
		}
	}
	if feed.Notifications[3].Title != "Pending order" {
		t.Errorf("expected pending order at position 3, got %q", feed.Notifications[3].Title)
	}
}

func TestNotificationsEmpty(t *testing.T) {
	f := newEngineFixture()

	feed, err := f.engine.Notifications()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feed.Count != 0 || len(feed.Notifications) != 0 {
		t.Errorf("expected empty feed, got %+v", feed)
	}
}

func TestFormatTimeAgo(t *testing.T) {
	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Minute, "Less than an hour ago"},
		{90 * time.Minute, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{25 * time.Hour, "1 day ago"},
		{80 * time.Hour, "3 days ago"},
	}
	for _, c := range cases {
		if got := formatTimeAgo(testNow, testNow.Add(-c.age)); got != c.want {
			t.Errorf("age %v: expected %q, got %q", c.age, c.want, got)
		}
	}
}
