package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownReportType is returned for an export type outside
// orders|invoices|employees|products.
var ErrUnknownReportType = errors.New("invalid report type")

// Each export type has a fixed column list. Rows are rendered with every
// field wrapped in double quotes and joined by commas, with no escaping of
// embedded quotes or commas — the historical consumer depends on this exact
// framing, so a field containing either character produces a malformed row.
// Empty values render as "".
var csvColumns = map[string][]string{
	"orders":    {"id", "customerName", "totalAmount", "status", "createdAt"},
	"invoices":  {"id", "invoiceNumber", "total", "status", "dueDate"},
	"employees": {"id", "name", "email", "department", "position", "salary", "status"},
	"products":  {"id", "name", "sku", "quantity", "price", "category"},
}

// ExportCSV renders all records of the given type. The first line is the
// header row; one line per record follows.
func (e *Engine) ExportCSV(reportType string) (string, error) {
	columns, ok := csvColumns[reportType]
	if !ok {
		return "", ErrUnknownReportType
	}

	var rows [][]string
	switch reportType {
	case "orders":
		orders, err := e.orders.GetAll()
		if err != nil {
			return "", err
		}
		for _, o := range orders {
			rows = append(rows, []string{
				strconv.Itoa(o.ID), o.CustomerName, formatAmount(o.TotalAmount),
				o.Status, formatDate(o.CreatedAt),
			})
		}
	case "invoices":
		invoices, err := e.invoices.GetAll()
		if err != nil {
			return "", err
		}
		for _, inv := range invoices {
			rows = append(rows, []string{
				strconv.Itoa(inv.ID), inv.InvoiceNumber, formatAmount(inv.Total),
				inv.Status, formatDate(inv.DueDate),
			})
		}
	case "employees":
		employees, err := e.employees.GetAll()
		if err != nil {
			return "", err
		}
		for _, emp := range employees {
			rows = append(rows, []string{
				strconv.Itoa(emp.ID), emp.FullName(), emp.Email, emp.Department,
				emp.Position, formatAmount(emp.Salary), emp.Status,
			})
		}
	case "products":
		products, err := e.products.GetAll()
		if err != nil {
			return "", err
		}
		for _, p := range products {
			rows = append(rows, []string{
				strconv.Itoa(p.ID), p.Name, p.SKU, strconv.Itoa(p.Quantity),
				formatAmount(p.Price), p.Category,
			})
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))
	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, field := range row {
			quoted[i] = `"` + field + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return strings.Join(lines, "\n"), nil
}

// CSVFilename builds the attachment filename for an export generated at
// now, e.g. "products-2024-03-15.csv".
func CSVFilename(reportType string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", reportType, now.Format("2006-01-02"))
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
