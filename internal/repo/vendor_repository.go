package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// VendorRepository defines the interface for vendor data operations.
type VendorRepository interface {
	Create(vendor models.Vendor) (models.Vendor, error)
	GetAll() ([]models.Vendor, error)
	GetByID(id int) (models.Vendor, error)
	Update(vendor models.Vendor) (models.Vendor, error)
	Delete(id int) error
}
