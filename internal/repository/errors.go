package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a row does not exist or is not visible to the
// requesting user (owner-scoped queries matching zero rows).
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert loses to a unique constraint.
var ErrDuplicate = errors.New("record already exists")

// isMissing reports whether err means the row cannot exist. Path parameters
// arrive as free text; a malformed id fails the uuid cast inside Postgres
// (code 22P02) before the query runs, which is the same outcome as an id
// that matches nothing.
func isMissing(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}

// isDuplicate reports a unique constraint violation (code 23505).
func isDuplicate(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
