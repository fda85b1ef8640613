package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type PostgresPurchaseOrderRepository struct {
	db *sql.DB
}

func NewPostgresPurchaseOrderRepository(db *sql.DB) *PostgresPurchaseOrderRepository {
	return &PostgresPurchaseOrderRepository{db: db}
}

const purchaseOrderColumns = `id, po_number, vendor_id, vendor_name, items, total_amount, status, order_date, expected_delivery, created_at, updated_at`

func scanPurchaseOrder(row interface{ Scan(...any) error }) (models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	var items []byte
	err := row.Scan(&po.ID, &po.PONumber, &po.VendorID, &po.VendorName, &items,
		&po.TotalAmount, &po.Status, &po.OrderDate, &po.ExpectedDelivery, &po.CreatedAt, &po.UpdatedAt)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	if err := json.Unmarshal(items, &po.Items); err != nil {
		return models.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PostgresPurchaseOrderRepository) Create(po models.PurchaseOrder) (models.PurchaseOrder, error) {
	items, err := json.Marshal(po.Items)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	query := `INSERT INTO purchase_orders (po_number, vendor_id, vendor_name, items, total_amount, status, order_date, expected_delivery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = r.db.QueryRowContext(ctx, query, po.PONumber, po.VendorID, po.VendorName,
		items, po.TotalAmount, po.Status, po.OrderDate, po.ExpectedDelivery, po.CreatedAt, po.UpdatedAt).Scan(&po.ID)
	if err != nil {
		return models.PurchaseOrder{}, mapDuplicate(err)
	}
	return po, nil
}

func (r *PostgresPurchaseOrderRepository) GetAll() ([]models.PurchaseOrder, error) {
	return r.queryPurchaseOrders(`SELECT ` + purchaseOrderColumns + ` FROM purchase_orders ORDER BY order_date DESC`)
}

func (r *PostgresPurchaseOrderRepository) GetByID(id int) (models.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	po, err := scanPurchaseOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PurchaseOrder{}, ErrNotFound
	}
	return po, err
}

func (r *PostgresPurchaseOrderRepository) Update(po models.PurchaseOrder) (models.PurchaseOrder, error) {
	items, err := json.Marshal(po.Items)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	query := `UPDATE purchase_orders SET po_number = $1, vendor_id = $2, vendor_name = $3,
		items = $4, total_amount = $5, status = $6, order_date = $7, expected_delivery = $8, updated_at = $9
		WHERE id = $10`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, po.PONumber, po.VendorID, po.VendorName,
		items, po.TotalAmount, po.Status, po.OrderDate, po.ExpectedDelivery, po.UpdatedAt, po.ID)
	if err != nil {
		return models.PurchaseOrder{}, mapDuplicate(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.PurchaseOrder{}, ErrNotFound
	}
	return po, nil
}

func (r *PostgresPurchaseOrderRepository) UpdateStatus(id int, status string) (models.PurchaseOrder, error) {
	query := `UPDATE purchase_orders SET status = $1, updated_at = $2 WHERE id = $3 RETURNING ` + purchaseOrderColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	po, err := scanPurchaseOrder(r.db.QueryRowContext(ctx, query, status, time.Now().UTC(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PurchaseOrder{}, ErrNotFound
	}
	return po, err
}

func (r *PostgresPurchaseOrderRepository) Delete(id int) error {
	query := `DELETE FROM purchase_orders WHERE id = $1`
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

func (r *PostgresPurchaseOrderRepository) RecentByStatus(status string, limit int) ([]models.PurchaseOrder, error) {
	return r.queryPurchaseOrders(`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2`, status, limit)
}

func (r *PostgresPurchaseOrderRepository) queryPurchaseOrders(query string, args ...any) ([]models.PurchaseOrder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pos []models.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		pos = append(pos, po)
	}
	return pos, rows.Err()
}
