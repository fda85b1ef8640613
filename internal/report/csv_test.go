package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

func TestExportCSVProducts(t *testing.T) {
	f := newEngineFixture()

	f.products.Create(models.Product{SKU: "CSV-1", Name: "Widget", Category: "parts", Quantity: 7, Price: 19.99})
	f.products.Create(models.Product{SKU: "CSV-2", Name: "Gadget", Category: "parts", Quantity: 0, Price: 0})

	content, err := f.engine.ExportCSV("products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(content, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,name,sku,quantity,price,category" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != `"1","Widget","CSV-1","7","19.99","parts"` {
		t.Errorf("unexpected row: %q", lines[1])
	}
	// Zero amounts render as the empty string.
	if lines[2] != `"2","Gadget","CSV-2","0","","parts"` {
		t.Errorf("unexpected zero-price row: %q", lines[2])
	}
}

func TestExportCSVEmployees(t *testing.T) {
	f := newEngineFixture()

	f.employees.Create(models.Employee{FirstName: "Jo", LastName: "March", Email: "jo@example.com",
		Department: "Engineering", Position: "Lead", Salary: 6000, Status: models.EmployeeStatusActive})

	content, err := f.engine.ExportCSV("employees")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(content, "\n")
	if lines[0] != "id,name,email,department,position,salary,status" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != `"1","Jo March","jo@example.com","Engineering","Lead","6000","active"` {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestExportCSVNoEscaping(t *testing.T) {
	f := newEngineFixture()

	// Embedded quotes and commas are passed through verbatim.
	f.products.Create(models.Product{SKU: "Q-1", Name: `5" Bolt, steel`, Category: "parts", Quantity: 1, Price: 2})

	content, err := f.engine.ExportCSV("products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(content, "\n")
	if lines[1] != `"1","5" Bolt, steel","Q-1","1","2","parts"` {
		t.Errorf("expected verbatim field content, got %q", lines[1])
	}
}

func TestExportCSVUnknownType(t *testing.T) {
	f := newEngineFixture()

	_, err := f.engine.ExportCSV("vendors")
	if !errors.Is(err, ErrUnknownReportType) {
		t.Errorf("expected ErrUnknownReportType, got %v", err)
	}
}

func TestExportCSVEmptyCollection(t *testing.T) {
	f := newEngineFixture()

	content, err := f.engine.ExportCSV("orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "id,customerName,totalAmount,status,createdAt" {
		t.Errorf("expected header only, got %q", content)
	}
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	if got := CSVFilename("products", now); got != "products-2024-03-15.csv" {
		t.Errorf("unexpected filename: %q", got)
	}
}
