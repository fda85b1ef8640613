package repo

import (
	"sort"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type InMemoryPurchaseOrderRepository struct {
	pos    []models.PurchaseOrder
	nextID int
}

func NewInMemoryPurchaseOrderRepository() *InMemoryPurchaseOrderRepository {
	return &InMemoryPurchaseOrderRepository{nextID: 1}
}

func (r *InMemoryPurchaseOrderRepository) Create(po models.PurchaseOrder) (models.PurchaseOrder, error) {
	for _, existing := range r.pos {
		if existing.PONumber == po.PONumber {
			return models.PurchaseOrder{}, ErrDuplicateKey
		}
	}
	po.ID = r.nextID
	r.nextID++
	r.pos = append(r.pos, po)
	return po, nil
}

func (r *InMemoryPurchaseOrderRepository) GetAll() ([]models.PurchaseOrder, error) {
	sorted := append([]models.PurchaseOrder(nil), r.pos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderDate.After(sorted[j].OrderDate)
	})
	return sorted, nil
}

func (r *InMemoryPurchaseOrderRepository) GetByID(id int) (models.PurchaseOrder, error) {
	for _, po := range r.pos {
		if po.ID == id {
			return po, nil
		}
	}
	return models.PurchaseOrder{}, ErrNotFound
}

func (r *InMemoryPurchaseOrderRepository) Update(po models.PurchaseOrder) (models.PurchaseOrder, error) {
	for i, existing := range r.pos {
		if existing.ID == po.ID {
			po.CreatedAt = existing.CreatedAt
			r.pos[i] = po
			return po, nil
		}
	}
	return models.PurchaseOrder{}, ErrNotFound
}

func (r *InMemoryPurchaseOrderRepository) UpdateStatus(id int, status string) (models.PurchaseOrder, error) {
	for i, po := range r.pos {
		if po.ID == id {
			r.pos[i].Status = status
			r.pos[i].UpdatedAt = time.Now().UTC()
			return r.pos[i], nil
		}
	}
	return models.PurchaseOrder{}, ErrNotFound
}

func (r *InMemoryPurchaseOrderRepository) Delete(id int) error {
	for i, po := range r.pos {
		if po.ID == id {
			r.pos = append(r.pos[:i], r.pos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryPurchaseOrderRepository) RecentByStatus(status string, limit int) ([]models.PurchaseOrder, error) {
	var filtered []models.PurchaseOrder
	for _, po := range r.pos {
		if po.Status == status {
			filtered = append(filtered, po)
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

func (r *InMemoryPurchaseOrderRepository) Clear() {
	r.pos = nil
	r.nextID = 1
}
