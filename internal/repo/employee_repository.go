package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// EmployeeRepository defines the interface for employee data operations.
type EmployeeRepository interface {
	Create(employee models.Employee) (models.Employee, error)
	GetAll() ([]models.Employee, error)
	GetByID(id int) (models.Employee, error)
	Update(employee models.Employee) (models.Employee, error)
	Delete(id int) error
	// Recent returns up to limit employees ordered by createdAt descending.
	Recent(limit int) ([]models.Employee, error)
}
