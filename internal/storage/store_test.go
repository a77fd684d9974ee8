package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fintrack/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")
	s, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")
	ctx := context.Background()

	first, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := first.CreateIncome(ctx, "Salary", 100, "2024-03-05"); err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening the same file must rerun table creation without damage.
	second, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()

	incomes, err := second.ListIncomes(ctx)
	if err != nil {
		t.Fatalf("ListIncomes: %v", err)
	}
	if len(incomes) != 1 || incomes[0].Name != "Salary" {
		t.Fatalf("expected the income to survive reopen, got %+v", incomes)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		value float64
		date  string
	}{
		{"Salary", 2500.50, "2024-03-01"},
		{"Groceries", 84.20, "2024-03-12"},
		{"Refund", 0, "2024-04-02"},
	}
	for _, tc := range cases {
		id, err := s.CreateIncome(ctx, tc.name, tc.value, tc.date)
		if err != nil {
			t.Fatalf("CreateIncome(%q): %v", tc.name, err)
		}
		got, err := s.GetIncomeByID(ctx, id)
		if err != nil {
			t.Fatalf("GetIncomeByID(%d): %v", id, err)
		}
		want := core.Record{ID: id, Name: tc.name, Value: tc.value, Date: tc.date}
		if got != want {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cases := []struct {
		name string
		rec  core.Record
		want error
	}{
		{"empty name", core.Record{Name: "", Value: 1, Date: "2024-03-01"}, core.ErrEmptyName},
		{"name too long", core.Record{Name: "a very long description x", Value: 1, Date: "2024-03-01"}, core.ErrNameTooLong},
		{"bad date", core.Record{Name: "x", Value: 1, Date: "03/01/2024"}, core.ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.CreateExpense(ctx, tc.rec.Name, tc.rec.Value, tc.rec.Date); !errors.Is(err, tc.want) {
				t.Fatalf("CreateExpense = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGetByIDInvalidArgument(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []int64{0, -1, -42} {
		if _, err := s.GetIncomeByID(ctx, id); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("GetIncomeByID(%d) = %v, want ErrInvalidID", id, err)
		}
		if _, err := s.GetExpenseByID(ctx, id); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("GetExpenseByID(%d) = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetExpenseByID(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetExpenseByID(999) = %v, want ErrNotFound", err)
	}
}

func TestListOrderedByName(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Inserted out of order on purpose.
	for _, name := range []string{"zeta", "alpha", "mike", "bravo"} {
		if _, err := s.CreateExpense(ctx, name, 10, "2024-03-01"); err != nil {
			t.Fatalf("CreateExpense(%q): %v", name, err)
		}
	}

	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	want := []string{"alpha", "bravo", "mike", "zeta"}
	if len(expenses) != len(want) {
		t.Fatalf("got %d expenses, want %d", len(expenses), len(want))
	}
	for i, name := range want {
		if expenses[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, expenses[i].Name, name)
		}
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateIncome(ctx, "Salary", 2000, "2024-03-01")
	if err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}

	if err := s.UpdateIncome(ctx, id, "Bonus", 350.75, "2024-04-15"); err != nil {
		t.Fatalf("UpdateIncome: %v", err)
	}

	got, err := s.GetIncomeByID(ctx, id)
	if err != nil {
		t.Fatalf("GetIncomeByID: %v", err)
	}
	want := core.Record{ID: id, Name: "Bonus", Value: 350.75, Date: "2024-04-15"}
	if got != want {
		t.Fatalf("after update: got %+v, want %+v", got, want)
	}
}

func TestUpdateMissingRow(t *testing.T) {
	s := openTestStore(t)
	if err := s.UpdateExpense(context.Background(), 77, "x", 1, "2024-03-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateExpense = %v, want ErrNotFound", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateExpense(ctx, "Groceries", 40, "2024-03-10")
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if err := s.DeleteExpense(ctx, id); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	if _, err := s.GetExpenseByID(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetExpenseByID after delete = %v, want ErrNotFound", err)
	}
	// Deleting again reports that nothing existed.
	if err := s.DeleteExpense(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second DeleteExpense = %v, want ErrNotFound", err)
	}
}

func TestIncomesAndExpensesAreSeparate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	incID, err := s.CreateIncome(ctx, "Salary", 100, "2024-03-01")
	if err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}
	if _, err := s.GetExpenseByID(ctx, incID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("income id visible in Expenses table: %v", err)
	}
}
