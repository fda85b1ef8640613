package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// PurchaseOrderRepository defines the interface for purchase-order data
// operations.
type PurchaseOrderRepository interface {
	Create(po models.PurchaseOrder) (models.PurchaseOrder, error)
	// GetAll returns every purchase order, newest orderDate first.
	GetAll() ([]models.PurchaseOrder, error)
	GetByID(id int) (models.PurchaseOrder, error)
	Update(po models.PurchaseOrder) (models.PurchaseOrder, error)
	UpdateStatus(id int, status string) (models.PurchaseOrder, error)
	Delete(id int) error
	RecentByStatus(status string, limit int) ([]models.PurchaseOrder, error)
}
