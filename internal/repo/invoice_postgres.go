package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type PostgresInvoiceRepository struct {
	db *sql.DB
}

func NewPostgresInvoiceRepository(db *sql.DB) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{db: db}
}

const invoiceColumns = `id, invoice_number, order_id, customer_id, customer_name, amount, tax, total, status, issue_date, due_date, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.OrderID, &inv.CustomerID, &inv.CustomerName,
		&inv.Amount, &inv.Tax, &inv.Total, &inv.Status, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func (r *PostgresInvoiceRepository) Create(inv models.Invoice) (models.Invoice, error) {
	query := `INSERT INTO invoices (invoice_number, order_id, customer_id, customer_name, amount, tax, total, status, issue_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, inv.InvoiceNumber, inv.OrderID, inv.CustomerID,
		inv.CustomerName, inv.Amount, inv.Tax, inv.Total, inv.Status, inv.IssueDate, inv.DueDate,
		inv.CreatedAt, inv.UpdatedAt).Scan(&inv.ID)
	if err != nil {
		return models.Invoice{}, mapDuplicate(err)
	}
	return inv, nil
}

func (r *PostgresInvoiceRepository) GetAll() ([]models.Invoice, error) {
	return r.queryInvoices(`SELECT ` + invoiceColumns + ` FROM invoices ORDER BY issue_date DESC`)
}

func (r *PostgresInvoiceRepository) GetByID(id int) (models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, ErrNotFound
	}
	return inv, err
}

func (r *PostgresInvoiceRepository) Update(inv models.Invoice) (models.Invoice, error) {
	query := `UPDATE invoices SET invoice_number = $1, order_id = $2, customer_id = $3,
		customer_name = $4, amount = $5, tax = $6, total = $7, status = $8, issue_date = $9,
		due_date = $10, updated_at = $11 WHERE id = $12`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, inv.InvoiceNumber, inv.OrderID, inv.CustomerID,
		inv.CustomerName, inv.Amount, inv.Tax, inv.Total, inv.Status, inv.IssueDate, inv.DueDate,
		inv.UpdatedAt, inv.ID)
	if err != nil {
		return models.Invoice{}, mapDuplicate(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Invoice{}, ErrNotFound
	}
	return inv, nil
}

func (r *PostgresInvoiceRepository) UpdateStatus(id int, status string) (models.Invoice, error) {
	query := `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3 RETURNING ` + invoiceColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, status, time.Now().UTC(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, ErrNotFound
	}
	return inv, err
}

func (r *PostgresInvoiceRepository) Delete(id int) error {
	query := `DELETE FROM invoices WHERE id = $1`
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

func (r *PostgresInvoiceRepository) Recent(limit int) ([]models.Invoice, error) {
	return r.queryInvoices(`SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresInvoiceRepository) queryInvoices(query string, args ...any) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
