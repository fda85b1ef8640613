package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// InvoiceRepository defines the interface for invoice data operations.
type InvoiceRepository interface {
	Create(invoice models.Invoice) (models.Invoice, error)
	// GetAll returns every invoice, newest issueDate first.
	GetAll() ([]models.Invoice, error)
	GetByID(id int) (models.Invoice, error)
	Update(invoice models.Invoice) (models.Invoice, error)
	UpdateStatus(id int, status string) (models.Invoice, error)
	Delete(id int) error
	// Recent returns up to limit invoices ordered by createdAt descending.
	Recent(limit int) ([]models.Invoice, error)
}
