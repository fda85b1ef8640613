package repo

import models "github.com/rogerio-castellano/erp-dashboard/internal/models"

type InMemoryMovementRepository struct {
	movements []models.StockMovement
	nextID    int
	failLog   bool
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{nextID: 1}
}

func (r *InMemoryMovementRepository) Log(m models.StockMovement) (models.StockMovement, error) {
	if r.failLog {
		return models.StockMovement{}, errLogUnavailable
	}
	m.ID = r.nextID
	r.nextID++
	r.movements = append(r.movements, m)
	return m, nil
}

func (r *InMemoryMovementRepository) GetByProductID(productID int) ([]models.StockMovement, error) {
	var out []models.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

// FailNextLogs makes every subsequent Log call fail, for exercising the
// adjust-then-log failure path in tests.
func (r *InMemoryMovementRepository) FailNextLogs(fail bool) {
	r.failLog = fail
}

func (r *InMemoryMovementRepository) Clear() {
	r.movements = nil
	r.nextID = 1
	r.failLog = false
}
