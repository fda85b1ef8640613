package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

type InMemoryVendorRepository struct {
	vendors []models.Vendor
	nextID  int
}

func NewInMemoryVendorRepository() *InMemoryVendorRepository {
	return &InMemoryVendorRepository{nextID: 1}
}

func (r *InMemoryVendorRepository) Create(v models.Vendor) (models.Vendor, error) {
	for _, existing := range r.vendors {
		if existing.Email == v.Email {
			return models.Vendor{}, ErrDuplicateKey
		}
	}
	v.ID = r.nextID
	r.nextID++
	r.vendors = append(r.vendors, v)
	return v, nil
}

func (r *InMemoryVendorRepository) GetAll() ([]models.Vendor, error) {
	return append([]models.Vendor(nil), r.vendors...), nil
}

func (r *InMemoryVendorRepository) GetByID(id int) (models.Vendor, error) {
	for _, v := range r.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (r *InMemoryVendorRepository) Update(v models.Vendor) (models.Vendor, error) {
	for i, existing := range r.vendors {
		if existing.ID == v.ID {
			v.CreatedAt = existing.CreatedAt
			r.vendors[i] = v
			return v, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (r *InMemoryVendorRepository) Delete(id int) error {
	for i, v := range r.vendors {
		if v.ID == id {
			r.vendors = append(r.vendors[:i], r.vendors[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryVendorRepository) Clear() {
	r.vendors = nil
	r.nextID = 1
}
