package repo

import (
	"sort"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type InMemoryOrderRepository struct {
	orders []models.Order
	nextID int
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{nextID: 1}
}

func (r *InMemoryOrderRepository) Create(o models.Order) (models.Order, error) {
	for _, existing := range r.orders {
		if existing.OrderNumber == o.OrderNumber {
			return models.Order{}, ErrDuplicateKey
		}
	}
	o.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	sorted := append([]models.Order(nil), r.orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderDate.After(sorted[j].OrderDate)
	})
	return sorted, nil
}

func (r *InMemoryOrderRepository) GetByID(id int) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *InMemoryOrderRepository) Update(o models.Order) (models.Order, error) {
	for i, existing := range r.orders {
		if existing.ID == o.ID {
			o.CreatedAt = existing.CreatedAt
			r.orders[i] = o
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *InMemoryOrderRepository) UpdateStatus(id int, status string) (models.Order, error) {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now().UTC()
			return r.orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *InMemoryOrderRepository) Delete(id int) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryOrderRepository) Recent(limit int) ([]models.Order, error) {
	sorted := append([]models.Order(nil), r.orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *InMemoryOrderRepository) RecentByStatus(status string, limit int) ([]models.Order, error) {
	var filtered []models.Order
	for _, o := range r.orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = nil
	r.nextID = 1
}
