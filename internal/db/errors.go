package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const codeUniqueViolation = "23505"

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err comes from a violated unique constraint,
// e.g. a second account for the same email.
func IsUniqueViolation(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}
