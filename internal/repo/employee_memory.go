package repo

import (
	"sort"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type InMemoryEmployeeRepository struct {
	employees []models.Employee
	nextID    int
}

func NewInMemoryEmployeeRepository() *InMemoryEmployeeRepository {
	return &InMemoryEmployeeRepository{nextID: 1}
}

func (r *InMemoryEmployeeRepository) Create(e models.Employee) (models.Employee, error) {
	e.ID = r.nextID
	r.nextID++
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *InMemoryEmployeeRepository) GetAll() ([]models.Employee, error) {
	return append([]models.Employee(nil), r.employees...), nil
}

func (r *InMemoryEmployeeRepository) GetByID(id int) (models.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employee{}, ErrNotFound
}

func (r *InMemoryEmployeeRepository) Update(e models.Employee) (models.Employee, error) {
	for i, existing := range r.employees {
		if existing.ID == e.ID {
			e.CreatedAt = existing.CreatedAt
			r.employees[i] = e
			return e, nil
		}
	}
	return models.Employee{}, ErrNotFound
}

func (r *InMemoryEmployeeRepository) Delete(id int) error {
	for i, e := range r.employees {
		if e.ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryEmployeeRepository) Recent(limit int) ([]models.Employee, error) {
	sorted := append([]models.Employee(nil), r.employees...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *InMemoryEmployeeRepository) Clear() {
	r.employees = nil
	r.nextID = 1
}
