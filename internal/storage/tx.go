package storage

import (
	"context"
	"database/sql"
)

// withTx runs fn inside a transaction. The row change and anything fn
// does alongside it commit together or not at all. Failures roll back
// and surface as a TxError carrying the cause; sentinel outcomes
// (ErrNotFound, ErrInvalidID, ErrDuplicateEmail, validation errors) pass
// through unchanged so callers can tell them from engine faults.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &TxError{Op: op, Err: err}
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if isContractError(err) {
			return err
		}
		return &TxError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &TxError{Op: op, Err: err}
	}
	return nil
}

func isContractError(err error) bool {
	switch err {
	case ErrNotFound, ErrInvalidID, ErrDuplicateEmail:
		return true
	}
	return false
}
