package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned when an insert violates a business-key
// uniqueness constraint (sku, order number, invoice number, po number,
// vendor or user email). The constraint lives in the database so that two
// concurrent creates cannot both pass an application-level existence check.
var ErrDuplicateKey = errors.New("duplicate business key")

// errLogUnavailable simulates a failed movement-log append in the in-memory
// repository.
var errLogUnavailable = errors.New("movement log unavailable")

const uniqueViolationCode = "23505"

// mapDuplicate converts a Postgres unique-violation into ErrDuplicateKey and
// passes every other error through.
func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicateKey
	}
	return err
}
