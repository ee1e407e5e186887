package service

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const pqForeignKeyViolation = "23503"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isForeignKeyViolation reports whether the error is a Postgres FK failure,
// which here can only mean an item pointing at a missing category.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
