package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
)

// table binds the shared CRUD primitives to one of the two record
// tables. The name is a fixed constant, never caller input.
type table string

const (
	incomesTable  table = "Incomes"
	expensesTable table = "Expenses"
)

// CreateIncome inserts a new income row and returns the id the store
// assigned to it.
func (s *Store) CreateIncome(ctx context.Context, name string, value float64, date string) (int64, error) {
	return s.createRecord(ctx, incomesTable, name, value, date)
}

// CreateExpense inserts a new expense row and returns the assigned id.
func (s *Store) CreateExpense(ctx context.Context, name string, value float64, date string) (int64, error) {
	return s.createRecord(ctx, expensesTable, name, value, date)
}

// GetIncomeByID returns the income with the given id, or ErrNotFound.
func (s *Store) GetIncomeByID(ctx context.Context, id int64) (core.Record, error) {
	return s.getRecord(ctx, incomesTable, id)
}

// GetExpenseByID returns the expense with the given id, or ErrNotFound.
func (s *Store) GetExpenseByID(ctx context.Context, id int64) (core.Record, error) {
	return s.getRecord(ctx, expensesTable, id)
}

// ListIncomes returns every income ordered by name ascending.
func (s *Store) ListIncomes(ctx context.Context) ([]core.Record, error) {
	return s.listRecords(ctx, incomesTable)
}

// ListExpenses returns every expense ordered by name ascending.
func (s *Store) ListExpenses(ctx context.Context) ([]core.Record, error) {
	return s.listRecords(ctx, expensesTable)
}

// UpdateIncome replaces name, value and date of the income with the
// given id. ErrNotFound when no row matches.
func (s *Store) UpdateIncome(ctx context.Context, id int64, name string, value float64, date string) error {
	return s.updateRecord(ctx, incomesTable, id, name, value, date)
}

// UpdateExpense replaces name, value and date of the expense with the
// given id. ErrNotFound when no row matches.
func (s *Store) UpdateExpense(ctx context.Context, id int64, name string, value float64, date string) error {
	return s.updateRecord(ctx, expensesTable, id, name, value, date)
}

// DeleteIncome removes the income with the given id. Deletion is
// immediate and permanent; ErrNotFound when no row existed.
func (s *Store) DeleteIncome(ctx context.Context, id int64) error {
	return s.deleteRecord(ctx, incomesTable, id)
}

// DeleteExpense removes the expense with the given id. ErrNotFound when
// no row existed.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	return s.deleteRecord(ctx, expensesTable, id)
}

func (s *Store) createRecord(ctx context.Context, tbl table, name string, value float64, date string) (int64, error) {
	rec := core.Record{Name: name, Value: value, Date: date}
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := s.withTx(ctx, "create "+string(tbl), func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			fmt.Sprintf("INSERT INTO %s (name, value, date) VALUES (?, ?, ?)", tbl),
			rec.Name, rec.Value, rec.Date)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Record created",
		"table", string(tbl),
		"id", id,
		"name", rec.Name,
		"value", rec.Value,
		"date", rec.Date)

	return id, nil
}

func (s *Store) getRecord(ctx context.Context, tbl table, id int64) (core.Record, error) {
	if id <= 0 {
		return core.Record{}, ErrInvalidID
	}

	var rec core.Record
	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT id, name, value, date FROM %s WHERE id = ?", tbl), id)
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Value, &rec.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Record{}, ErrNotFound
		}
		return core.Record{}, fmt.Errorf("get record from %s: %w", tbl, err)
	}
	return rec, nil
}

func (s *Store) listRecords(ctx context.Context, tbl table) ([]core.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT id, name, value, date FROM %s ORDER BY name ASC", tbl))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", tbl, err)
	}
	defer rows.Close()

	var out []core.Record
	for rows.Next() {
		var rec core.Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Value, &rec.Date); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", tbl, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", tbl, err)
	}
	return out, nil
}

func (s *Store) updateRecord(ctx context.Context, tbl table, id int64, name string, value float64, date string) error {
	if id <= 0 {
		return ErrInvalidID
	}
	rec := core.Record{ID: id, Name: name, Value: value, Date: date}
	if err := rec.Validate(); err != nil {
		return err
	}

	err := s.withTx(ctx, "update "+string(tbl), func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			fmt.Sprintf("UPDATE %s SET name = ?, value = ?, date = ? WHERE id = ?", tbl),
			rec.Name, rec.Value, rec.Date, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Record updated", "table", string(tbl), "id", id)
	return nil
}

func (s *Store) deleteRecord(ctx context.Context, tbl table, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	err := s.withTx(ctx, "delete "+string(tbl), func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE id = ?", tbl), id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Record deleted", "table", string(tbl), "id", id)
	return nil
}
