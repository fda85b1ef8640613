package repo

import (
	"sort"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type InMemoryInvoiceRepository struct {
	invoices []models.Invoice
	nextID   int
}

func NewInMemoryInvoiceRepository() *InMemoryInvoiceRepository {
	return &InMemoryInvoiceRepository{nextID: 1}
}

func (r *InMemoryInvoiceRepository) Create(inv models.Invoice) (models.Invoice, error) {
	for _, existing := range r.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return models.Invoice{}, ErrDuplicateKey
		}
	}
	inv.ID = r.nextID
	r.nextID++
	r.invoices = append(r.invoices, inv)
	return inv, nil
}

func (r *InMemoryInvoiceRepository) GetAll() ([]models.Invoice, error) {
	sorted := append([]models.Invoice(nil), r.invoices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IssueDate.After(sorted[j].IssueDate)
	})
	return sorted, nil
}

func (r *InMemoryInvoiceRepository) GetByID(id int) (models.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return models.Invoice{}, ErrNotFound
}

func (r *InMemoryInvoiceRepository) Update(inv models.Invoice) (models.Invoice, error) {
	for i, existing := range r.invoices {
		if existing.ID == inv.ID {
			inv.CreatedAt = existing.CreatedAt
			r.invoices[i] = inv
			return inv, nil
		}
	}
	return models.Invoice{}, ErrNotFound
}

func (r *InMemoryInvoiceRepository) UpdateStatus(id int, status string) (models.Invoice, error) {
	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices[i].Status = status
			r.invoices[i].UpdatedAt = time.Now().UTC()
			return r.invoices[i], nil
		}
	}
	return models.Invoice{}, ErrNotFound
}

func (r *InMemoryInvoiceRepository) Delete(id int) error {
	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryInvoiceRepository) Recent(limit int) ([]models.Invoice, error) {
	sorted := append([]models.Invoice(nil), r.invoices...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *InMemoryInvoiceRepository) Clear() {
	r.invoices = nil
	r.nextID = 1
}
