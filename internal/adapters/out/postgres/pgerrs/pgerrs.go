// Package pgerrs classifies PostgreSQL driver errors for the repositories.
package pgerrs

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation   = "23505"
	numericOutOfRange = "22003"
)

// IsUniqueViolation reports whether err was caused by a duplicate key, either
// translated by GORM or straight from the driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return hasCode(err, uniqueViolation)
}

// IsNumericOutOfRange reports whether a value overflowed its numeric column.
func IsNumericOutOfRange(err error) bool {
	return hasCode(err, numericOutOfRange)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
