package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

// MovementRepository is the append-only audit log for stock adjustments.
type MovementRepository interface {
	Log(movement models.StockMovement) (models.StockMovement, error)
	GetByProductID(productID int) ([]models.StockMovement, error)
}
