package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type PostgresEmployeeRepository struct {
	db *sql.DB
}

func NewPostgresEmployeeRepository(db *sql.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

const employeeColumns = `id, first_name, last_name, email, phone, department, position, salary, join_date, status, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Department,
		&e.Position, &e.Salary, &e.JoinDate, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *PostgresEmployeeRepository) Create(e models.Employee) (models.Employee, error) {
	query := `INSERT INTO employees (first_name, last_name, email, phone, department, position, salary, join_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, e.FirstName, e.LastName, e.Email, e.Phone,
		e.Department, e.Position, e.Salary, e.JoinDate, e.Status, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
	if err != nil {
		return models.Employee{}, mapDuplicate(err)
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) GetAll() ([]models.Employee, error) {
	return r.queryEmployees(`SELECT ` + employeeColumns + ` FROM employees ORDER BY id`)
}

func (r *PostgresEmployeeRepository) GetByID(id int) (models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, ErrNotFound
	}
	return e, err
}

func (r *PostgresEmployeeRepository) Update(e models.Employee) (models.Employee, error) {
	query := `UPDATE employees SET first_name = $1, last_name = $2, email = $3, phone = $4,
		department = $5, position = $6, salary = $7, join_date = $8, status = $9, updated_at = $10
		WHERE id = $11`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, e.FirstName, e.LastName, e.Email, e.Phone,
		e.Department, e.Position, e.Salary, e.JoinDate, e.Status, e.UpdatedAt, e.ID)
	if err != nil {
		return models.Employee{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Employee{}, ErrNotFound
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) Delete(id int) error {
	query := `DELETE FROM employees WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresEmployeeRepository) Recent(limit int) ([]models.Employee, error) {
	return r.queryEmployees(`SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresEmployeeRepository) queryEmployees(query string, args ...any) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
