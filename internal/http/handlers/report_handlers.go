package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/erp-dashboard/internal/report"
)

// KPIsHandler godoc
// @Summary Business KPIs and system health indicators
// @Tags reports
// @Produce json
// @Success 200 {object} report.KPIReport
// @Failure 500 {string} string "Internal error"
// @Router /api/reports/kpis [get]
func KPIsHandler(w http.ResponseWriter, r *http.Request) {
	kpis, err := reportEngine.KPIs()
	if err != nil {
		log.Printf("failed to compute KPIs: %v", err)
		http.Error(w, "could not compute KPIs", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, kpis); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// SummaryHandler godoc
// @Summary Cross-module business summary
// @Tags reports
// @Produce json
// @Success 200 {object} report.SummaryReport
// @Failure 500 {string} string "Internal error"
// @Router /api/reports/summary [get]
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := reportEngine.Summary()
	if err != nil {
		log.Printf("failed to compute summary: %v", err)
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, summary); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// MonthlyTrendsHandler godoc
// @Summary Order and invoice counts bucketed by month
// @Tags reports
// @Produce json
// @Success 200 {array} report.MonthlyTrend
// @Failure 500 {string} string "Internal error"
// @Router /api/reports/monthly-trends [get]
func MonthlyTrendsHandler(w http.ResponseWriter, r *http.Request) {
	trends, err := reportEngine.MonthlyTrends()
	if err != nil {
		log.Printf("failed to compute monthly trends: %v", err)
		http.Error(w, "could not compute monthly trends", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, trends); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// ExportCSVHandler godoc
// @Summary Export a collection as CSV
// @Tags reports
// @Produce text/csv
// @Param type query string true "Report type" Enums(orders, invoices, employees, products)
// @Success 200 {string} string "CSV content"
// @Failure 400 {string} string "Unknown report type"
// @Failure 500 {string} string "Internal error"
// @Router /api/reports/export/csv [get]
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	reportType := r.URL.Query().Get("type")

	content, err := reportEngine.ExportCSV(reportType)
	if err != nil {
		if errors.Is(err, report.ErrUnknownReportType) {
			http.Error(w, "unknown report type", http.StatusBadRequest)
			return
		}
		log.Printf("failed to export CSV: %v", err)
		http.Error(w, "could not export report", http.StatusInternalServerError)
		return
	}

	filename := report.CSVFilename(reportType, time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := w.Write([]byte(content)); err != nil {
		log.Printf("failed to write CSV response: %v", err)
	}
}

// FinancialReportsHandler godoc
// @Summary Revenue, expenses and outstanding invoice totals
// @Tags financial
// @Produce json
// @Success 200 {object} report.FinancialReport
// @Failure 500 {string} string "Internal error"
// @Router /api/financial/reports [get]
func FinancialReportsHandler(w http.ResponseWriter, r *http.Request) {
	fin, err := reportEngine.FinancialReport()
	if err != nil {
		log.Printf("failed to compute financial report: %v", err)
		http.Error(w, "could not compute financial report", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, fin); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// PayrollHandler godoc
// @Summary Payroll totals for active employees
// @Tags hr
// @Produce json
// @Success 200 {object} report.PayrollReport
// @Failure 500 {string} string "Internal error"
// @Router /api/hr/payroll [get]
func PayrollHandler(w http.ResponseWriter, r *http.Request) {
	payroll, err := reportEngine.Payroll()
	if err != nil {
		log.Printf("failed to compute payroll: %v", err)
		http.Error(w, "could not compute payroll", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, payroll); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DepartmentsHandler godoc
// @Summary Headcount and salary totals per department
// @Tags hr
// @Produce json
// @Success 200 {array} report.DepartmentReport
// @Failure 500 {string} string "Internal error"
// @Router /api/hr/departments [get]
func DepartmentsHandler(w http.ResponseWriter, r *http.Request) {
	departments, err := reportEngine.Departments()
	if err != nil {
		log.Printf("failed to compute departments: %v", err)
		http.Error(w, "could not compute departments", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, departments); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
