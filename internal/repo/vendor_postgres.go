package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type PostgresVendorRepository struct {
	db *sql.DB
}

func NewPostgresVendorRepository(db *sql.DB) *PostgresVendorRepository {
	return &PostgresVendorRepository{db: db}
}

const vendorColumns = `id, name, email, phone, address, city, country, payment_terms, rating, created_at, updated_at`

func scanVendor(row interface{ Scan(...any) error }) (models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Address, &v.City, &v.Country,
		&v.PaymentTerms, &v.Rating, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *PostgresVendorRepository) Create(v models.Vendor) (models.Vendor, error) {
	query := `INSERT INTO vendors (name, email, phone, address, city, country, payment_terms, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, v.Name, v.Email, v.Phone, v.Address, v.City,
		v.Country, v.PaymentTerms, v.Rating, v.CreatedAt, v.UpdatedAt).Scan(&v.ID)
	if err != nil {
		return models.Vendor{}, mapDuplicate(err)
	}
	return v, nil
}

func (r *PostgresVendorRepository) GetAll() ([]models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *PostgresVendorRepository) GetByID(id int) (models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	v, err := scanVendor(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vendor{}, ErrNotFound
	}
	return v, err
}

func (r *PostgresVendorRepository) Update(v models.Vendor) (models.Vendor, error) {
	query := `UPDATE vendors SET name = $1, email = $2, phone = $3, address = $4, city = $5,
		country = $6, payment_terms = $7, rating = $8, updated_at = $9 WHERE id = $10`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, v.Name, v.Email, v.Phone, v.Address, v.City,
		v.Country, v.PaymentTerms, v.Rating, v.UpdatedAt, v.ID)
	if err != nil {
		return models.Vendor{}, mapDuplicate(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Vendor{}, ErrNotFound
	}
	return v, nil
}

func (r *PostgresVendorRepository) Delete(id int) error {
	query := `DELETE FROM vendors WHERE id = $1`
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
