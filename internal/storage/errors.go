package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports that no row matched the given id. Callers render
	// it as "not found", never as a store failure.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID reports an out-of-contract id (zero or negative). It is
	// returned before the store is queried.
	ErrInvalidID = errors.New("invalid id")

	// ErrDuplicateEmail reports a violated uniqueness constraint on the
	// User email column.
	ErrDuplicateEmail = errors.New("email already registered")
)

// SchemaError reports that creating one of the tables failed on open.
// It is fatal for the session: no handle is handed out after it.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("create %s table: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// TxError reports that a write unit could not commit. The underlying
// engine error is carried as the cause.
type TxError struct {
	Op  string
	Err error
}

func (e *TxError) Error() string {
	return fmt.Sprintf("transaction failed (%s): %v", e.Op, e.Err)
}

func (e *TxError) Unwrap() error { return e.Err }

// isUniqueViolation matches the driver's unique-constraint error text.
// modernc.org/sqlite surfaces SQLITE_CONSTRAINT_UNIQUE as a plain error
// containing this phrase.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
