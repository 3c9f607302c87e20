package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return IsPgErrorWithCode(err, pgerrcode.UniqueViolation)
}

// IsInvalidInput нарушение CHECK или неверный формат значения (uuid, numeric)
func IsInvalidInput(err error) bool {
	return IsPgErrorWithCode(err, pgerrcode.CheckViolation) ||
		IsPgErrorWithCode(err, pgerrcode.InvalidTextRepresentation) ||
		IsPgErrorWithCode(err, pgerrcode.NumericValueOutOfRange)
}
