package report

import (
	"fmt"
	"sort"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

const (
	recentPerSource       = 5
	activityFeedSize      = 4
	notificationPerSource = 3
	notificationFeedSize  = 5
)

// Activity is one entry of the unified recent-activity feed.
type Activity struct {
	Action    string    `json:"action"`
	Time      string    `json:"time"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// RecentActivity merges the most recent records of four sources into one
// time-ordered feed of at most four entries.
//
// Each source contributes its own top five (orders, invoices and employees
// by creation time, products by update time) before the merged feed is
// sorted and truncated, so this is top-N per source rather than a global
// top-K: a source with many very recent records can be under-represented.
// Equal timestamps keep the concatenation order orders, invoices,
// employees, products; that ordering is part of the contract.
func (e *Engine) RecentActivity(now time.Time) ([]Activity, error) {
	orders, err := e.orders.Recent(recentPerSource)
	if err != nil {
		return nil, err
	}
	invoices, err := e.invoices.Recent(recentPerSource)
	if err != nil {
		return nil, err
	}
	employees, err := e.employees.Recent(recentPerSource)
	if err != nil {
		return nil, err
	}
	products, err := e.products.RecentlyUpdated(recentPerSource)
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, 4*recentPerSource)
	for _, o := range orders {
		activities = append(activities, Activity{
			Action:    fmt.Sprintf("Order %s %s", o.OrderNumber, o.Status),
			Time:      formatTimeAgo(now, o.CreatedAt),
			Type:      "order",
			Timestamp: o.CreatedAt,
		})
	}
	for _, inv := range invoices {
		activities = append(activities, Activity{
			Action:    fmt.Sprintf("Invoice %s sent to customer", inv.InvoiceNumber),
			Time:      formatTimeAgo(now, inv.CreatedAt),
			Type:      "invoice",
			Timestamp: inv.CreatedAt,
		})
	}
	for _, emp := range employees {
		activities = append(activities, Activity{
			Action:    fmt.Sprintf("New employee %s added", emp.FullName()),
			Time:      formatTimeAgo(now, emp.CreatedAt),
			Type:      "hr",
			Timestamp: emp.CreatedAt,
		})
	}
	for _, p := range products {
		activities = append(activities, Activity{
			Action:    fmt.Sprintf("Inventory updated for %s", p.SKU),
			Time:      formatTimeAgo(now, p.UpdatedAt),
			Type:      "inventory",
			Timestamp: p.UpdatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > activityFeedSize {
		activities = activities[:activityFeedSize]
	}
	return activities, nil
}

// Notification is one actionable item for the notification bell.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type NotificationFeed struct {
	Count         int            `json:"count"`
	Notifications []Notification `json:"notifications"`
}

// Notifications collects up to three items each from low-stock products,
// pending orders and draft purchase orders, in that order, and keeps the
// first five.
func (e *Engine) Notifications() (NotificationFeed, error) {
	lowStock, err := e.products.LowStock(notificationPerSource)
	if err != nil {
		return NotificationFeed{}, err
	}
	pendingOrders, err := e.orders.RecentByStatus(models.OrderStatusPending, notificationPerSource)
	if err != nil {
		return NotificationFeed{}, err
	}
	draftPOs, err := e.purchaseOrders.RecentByStatus(models.PurchaseOrderStatusDraft, notificationPerSource)
	if err != nil {
		return NotificationFeed{}, err
	}

	notifications := make([]Notification, 0, 3*notificationPerSource)
	for _, p := range lowStock {
		notifications = append(notifications, Notification{
			Title:   "Low stock alert",
			Message: fmt.Sprintf("%s (%s) is below reorder level", p.Name, p.SKU),
			Type:    "warning",
		})
	}
	for _, o := range pendingOrders {
		notifications = append(notifications, Notification{
			Title:   "Pending order",
			Message: fmt.Sprintf("Order %s from %s needs attention", o.OrderNumber, o.CustomerName),
			Type:    "info",
		})
	}
	for _, po := range draftPOs {
		notifications = append(notifications, Notification{
			Title:   "Pending approval",
			Message: fmt.Sprintf("Purchase order %s awaits approval", po.PONumber),
			Type:    "info",
		})
	}

	if len(notifications) > notificationFeedSize {
		notifications = notifications[:notificationFeedSize]
	}
	return NotificationFeed{Count: len(notifications), Notifications: notifications}, nil
}

// formatTimeAgo renders a coarse human-readable age for feed entries.
func formatTimeAgo(now, t time.Time) string {
	hours := int(now.Sub(t).Hours())
	switch {
	case hours < 1:
		return "Less than an hour ago"
	case hours < 24:
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := hours / 24
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
