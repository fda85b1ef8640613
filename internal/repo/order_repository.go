package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// OrderRepository defines the interface for sales-order data operations.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	// GetAll returns every order, newest orderDate first.
	GetAll() ([]models.Order, error)
	GetByID(id int) (models.Order, error)
	Update(order models.Order) (models.Order, error)
	UpdateStatus(id int, status string) (models.Order, error)
	Delete(id int) error
	// Recent returns up to limit orders ordered by createdAt descending.
	Recent(limit int) ([]models.Order, error)
	// RecentByStatus is Recent restricted to one status.
	RecentByStatus(status string, limit int) ([]models.Order, error)
}
