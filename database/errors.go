package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is the "no rows" outcome, kept apart from real failures.
var ErrNotFound = errors.New("record not found")

// QueryError is a store failure: the backend was unreachable or rejected
// the request. It serializes to JSON for the user-facing alert.
type QueryError struct {
	Op      string `json:"op"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *QueryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed (%s): %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

func (e *QueryError) Unwrap() error { return e.Err }

// wrap classifies err for op. sql.ErrNoRows becomes ErrNotFound.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	qe := &QueryError{Op: op, Message: err.Error(), Err: err}
	var pgErr *pgconn.PgError
	var liteErr sqlite3.Error
	switch {
	case errors.As(err, &pgErr):
		qe.Code = pgErr.Code
		qe.Message = pgErr.Message
		qe.Details = pgErr.Detail
	case errors.As(err, &liteErr):
		qe.Code = fmt.Sprintf("SQLITE_%d", int(liteErr.Code))
		qe.Details = liteErr.ExtendedCode.Error()
	}
	return qe
}
