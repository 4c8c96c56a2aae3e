package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL error code for unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
// Duplicate inserts racing the same key rely on this to map the losing
// insert to the domain's "already exists" error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
