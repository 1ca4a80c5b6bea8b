package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when an id matches no live (non-deleted) row.
var ErrNotFound = errors.New("record not found")

// ConstraintError reports a store-level constraint violation, typically a
// relation id that references no existing row. It triggers a full rollback of
// the enclosing aggregate write.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation (%s): %v", e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Postgres error codes surfaced as ConstraintError.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// wrapConstraint converts Postgres integrity violations into ConstraintError.
// Every other error passes through unchanged.
func wrapConstraint(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgUniqueViolation, pgCheckViolation:
			return &ConstraintError{Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	return err
}
