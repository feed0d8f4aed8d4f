package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned by writes rejected by a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

const pgUniqueViolation = "23505"

// translateWriteError normalises unique violations from any dialector to ErrDuplicateKey.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}
