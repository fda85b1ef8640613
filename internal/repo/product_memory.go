package repo

import (
	"sort"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository used by the handler test suites.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{nextID: 1}
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return models.Product{}, ErrDuplicateKey
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return append([]models.Product(nil), r.products...), nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (r *InMemoryProductRepository) Update(p models.Product) (models.Product, error) {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			p.CreatedAt = existing.CreatedAt
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryProductRepository) AdjustQuantity(id int, delta int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Quantity += delta
			r.products[i].UpdatedAt = time.Now().UTC()
			return r.products[i], nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (r *InMemoryProductRepository) RecentlyUpdated(limit int) ([]models.Product, error) {
	sorted := append([]models.Product(nil), r.products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *InMemoryProductRepository) LowStock(limit int) ([]models.Product, error) {
	var low []models.Product
	for _, p := range r.products {
		if p.LowStock() {
			low = append(low, p)
			if len(low) == limit {
				break
			}
		}
	}
	return low, nil
}

// Clear removes every stored product.
func (r *InMemoryProductRepository) Clear() {
	r.products = nil
	r.nextID = 1
}
