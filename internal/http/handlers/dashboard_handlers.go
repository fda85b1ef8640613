package handlers

import (
	"log"
	"net/http"
	"time"
)

// DashboardMetricsHandler godoc
// @Summary Headline dashboard metrics
// @Description Revenue from paid invoices, inventory value, order and low-stock counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} report.DashboardMetrics
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/metrics [get]
func DashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	metrics, err := reportEngine.DashboardMetrics(time.Now())
	if err != nil {
		log.Printf("failed to compute dashboard metrics: %v", err)
		http.Error(w, "could not compute metrics", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, metrics); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// AlertsHandler godoc
// @Summary Low-stock and pending-work alert counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} report.Alerts
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/alerts [get]
func AlertsHandler(w http.ResponseWriter, r *http.Request) {
	alerts, err := reportEngine.Alerts()
	if err != nil {
		log.Printf("failed to compute alerts: %v", err)
		http.Error(w, "could not compute alerts", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, alerts); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// ChartDataHandler godoc
// @Summary Six-month revenue and expenses series
// @Tags dashboard
// @Produce json
// @Success 200 {array} report.ChartPoint
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/chart-data [get]
func ChartDataHandler(w http.ResponseWriter, r *http.Request) {
	points, err := reportEngine.ChartData(time.Now())
	if err != nil {
		log.Printf("failed to compute chart data: %v", err)
		http.Error(w, "could not compute chart data", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, points); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// InventoryStatusHandler godoc
// @Summary Stock level distribution as percentages
// @Tags dashboard
// @Produce json
// @Success 200 {array} report.InventoryBucket
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/inventory-status [get]
func InventoryStatusHandler(w http.ResponseWriter, r *http.Request) {
	buckets, err := reportEngine.InventoryStatus()
	if err != nil {
		log.Printf("failed to compute inventory status: %v", err)
		http.Error(w, "could not compute inventory status", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, buckets); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// NotificationsHandler godoc
// @Summary Actionable notifications for the dashboard bell
// @Tags dashboard
// @Produce json
// @Success 200 {object} report.NotificationFeed
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/notifications [get]
func NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	feed, err := reportEngine.Notifications()
	if err != nil {
		log.Printf("failed to compute notifications: %v", err)
		http.Error(w, "could not compute notifications", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, feed); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// RecentActivityHandler godoc
// @Summary Latest activity merged across collections
// @Tags dashboard
// @Produce json
// @Success 200 {array} report.Activity
// @Failure 500 {string} string "Internal error"
// @Router /api/dashboard/recent-activity [get]
func RecentActivityHandler(w http.ResponseWriter, r *http.Request) {
	activity, err := reportEngine.RecentActivity(time.Now())
	if err != nil {
		log.Printf("failed to compute recent activity: %v", err)
		http.Error(w, "could not compute recent activity", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, activity); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
