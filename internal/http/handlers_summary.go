package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/core"
)

type summaryResponse struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// handleSummary aggregates both tables for the requested month name
// ("March"). A month with no records yields a zero summary, not an
// error.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month == "" {
		month = time.Now().Month().String()
	}

	incomes, err := s.cachedList(r.Context(), s.incomeOps())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load incomes for summary", "error", err)
		respondError(w, statusFromError(err), err.Error())
		return
	}
	expenses, err := s.cachedList(r.Context(), s.expenseOps())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load expenses for summary", "error", err)
		respondError(w, statusFromError(err), err.Error())
		return
	}

	sum := core.Summarize(incomes, expenses, month)

	respondJSON(w, http.StatusOK, summaryResponse{
		Month:        month,
		TotalIncome:  sum.TotalIncome,
		TotalExpense: sum.TotalExpense,
		Balance:      sum.Balance,
	})
}
