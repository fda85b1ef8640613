package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

const orderColumns = `id, order_number, customer_id, customer_name, items, total_amount, status, order_date, due_date, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (models.Order, error) {
	var o models.Order
	var items []byte
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.CustomerName, &items,
		&o.TotalAmount, &o.Status, &o.OrderDate, &o.DueDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return models.Order{}, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return models.Order{}, err
	}
	query := `INSERT INTO orders (order_number, customer_id, customer_name, items, total_amount, status, order_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = r.db.QueryRowContext(ctx, query, o.OrderNumber, o.CustomerID, o.CustomerName,
		items, o.TotalAmount, o.Status, o.OrderDate, o.DueDate, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	if err != nil {
		return models.Order{}, mapDuplicate(err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	return r.queryOrders(`SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC`)
}

func (r *PostgresOrderRepository) GetByID(id int) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) Update(o models.Order) (models.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return models.Order{}, err
	}
	query := `UPDATE orders SET order_number = $1, customer_id = $2, customer_name = $3,
		items = $4, total_amount = $5, status = $6, order_date = $7, due_date = $8, updated_at = $9
		WHERE id = $10`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, o.OrderNumber, o.CustomerID, o.CustomerName,
		items, o.TotalAmount, o.Status, o.OrderDate, o.DueDate, o.UpdatedAt, o.ID)
	if err != nil {
		return models.Order{}, mapDuplicate(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Order{}, ErrNotFound
	}
	return o, nil
}

func (r *PostgresOrderRepository) UpdateStatus(id int, status string) (models.Order, error) {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 RETURNING ` + orderColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, status, time.Now().UTC(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) Delete(id int) error {
	query := `DELETE FROM orders WHERE id = $1`
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

func (r *PostgresOrderRepository) Recent(limit int) ([]models.Order, error) {
	return r.queryOrders(`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresOrderRepository) RecentByStatus(status string, limit int) ([]models.Order, error) {
	return r.queryOrders(`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2`, status, limit)
}

func (r *PostgresOrderRepository) queryOrders(query string, args ...any) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
