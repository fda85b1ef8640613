package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	// AdjustQuantity applies a signed delta to the stored quantity and
	// stamps updatedAt in a single statement.
	AdjustQuantity(id int, delta int) (models.Product, error)
	// RecentlyUpdated returns up to limit products ordered by updatedAt
	// descending.
	RecentlyUpdated(limit int) ([]models.Product, error)
	// LowStock returns up to limit products at or below their reorder level.
	LowStock(limit int) ([]models.Product, error)
}
