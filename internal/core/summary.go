// Package core holds the domain types and the monthly aggregation logic.
// Summarize is the single aggregation contract every consumer calls;
// views must not roll their own filter/sum over the record lists.
package core

// Summary is the derived monthly aggregate. It is computed on demand and
// never persisted.
type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}

// Summarize filters both sequences to the records whose calendar month
// name equals monthName (any year) and sums their values. It is a pure
// function: the inputs are never mutated, identical inputs always yield
// the identical summary, and two empty sequences produce a valid
// zero-valued summary rather than an error.
//
// Records whose date fails to parse are skipped; dates are validated on
// every write, so that only happens with foreign data.
func Summarize(incomes, expenses []Record, monthName string) Summary {
	s := Summary{
		TotalIncome:  sumMonth(incomes, monthName),
		TotalExpense: sumMonth(expenses, monthName),
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

func sumMonth(records []Record, monthName string) float64 {
	var total float64
	for _, r := range records {
		m, ok := r.MonthName()
		if !ok || m != monthName {
			continue
		}
		total += r.Value
	}
	return total
}
