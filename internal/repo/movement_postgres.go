package repo

import (
	"context"
	"database/sql"
	"time"

	models "github.com/rogerio-castellano/erp-dashboard/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

func (r *PostgresMovementRepository) Log(m models.StockMovement) (models.StockMovement, error) {
	query := `INSERT INTO stock_movements (product_id, product_name, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, m.ProductID, m.ProductName, m.Quantity, m.Reason, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return models.StockMovement{}, err
	}
	return m, nil
}

func (r *PostgresMovementRepository) GetByProductID(productID int) ([]models.StockMovement, error) {
	query := `SELECT id, product_id, product_name, quantity, reason, created_at
		FROM stock_movements WHERE product_id = $1 ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Quantity, &m.Reason, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
