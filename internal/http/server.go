// Package http exposes the store's operations as a JSON API: user
// registration and login, income/expense CRUD, and the monthly summary.
package http

import (
	"context"
	"net/http"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/middleware/trace"
)

// UserStore is the slice of the record store the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, u core.User) (int64, error)
	FindUserByCredentials(ctx context.Context, email, password string) (*core.User, error)
}

// RecordStore covers the income and expense operations.
type RecordStore interface {
	CreateIncome(ctx context.Context, name string, value float64, date string) (int64, error)
	CreateExpense(ctx context.Context, name string, value float64, date string) (int64, error)
	GetIncomeByID(ctx context.Context, id int64) (core.Record, error)
	GetExpenseByID(ctx context.Context, id int64) (core.Record, error)
	ListIncomes(ctx context.Context) ([]core.Record, error)
	ListExpenses(ctx context.Context) ([]core.Record, error)
	UpdateIncome(ctx context.Context, id int64, name string, value float64, date string) error
	UpdateExpense(ctx context.Context, id int64, name string, value float64, date string) error
	DeleteIncome(ctx context.Context, id int64) error
	DeleteExpense(ctx context.Context, id int64) error
}

// Server wires the handlers, the list cache and the tracing middleware
// around a standard http.Server.
type Server struct {
	http.Server

	users   UserStore
	records RecordStore

	listCache *cache.LRU[[]core.Record]
	sweeper   *cache.Manager
}

// Options tune the server; zero values fall back to defaults.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

func NewServer(addr string, users UserStore, records RecordStore, opts Options) *Server {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 64
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}

	mux := http.NewServeMux()

	s := &Server{
		users:     users,
		records:   records,
		listCache: cache.NewLRU[[]core.Record](opts.CacheSize, opts.CacheTTL),
		sweeper:   cache.NewManager(),
	}
	s.sweeper.Register(s.listCache)
	s.sweeper.StartCleanup(opts.CacheTTL)

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	incomes := s.incomeOps()
	mux.HandleFunc("POST /incomes", s.handleCreate(incomes))
	mux.HandleFunc("GET /incomes", s.handleList(incomes))
	mux.HandleFunc("GET /incomes/{id}", s.handleGet(incomes))
	mux.HandleFunc("PUT /incomes/{id}", s.handleUpdate(incomes))
	mux.HandleFunc("DELETE /incomes/{id}", s.handleDelete(incomes))

	expenses := s.expenseOps()
	mux.HandleFunc("POST /expenses", s.handleCreate(expenses))
	mux.HandleFunc("GET /expenses", s.handleList(expenses))
	mux.HandleFunc("GET /expenses/{id}", s.handleGet(expenses))
	mux.HandleFunc("PUT /expenses/{id}", s.handleUpdate(expenses))
	mux.HandleFunc("DELETE /expenses/{id}", s.handleDelete(expenses))

	mux.HandleFunc("GET /summary", s.handleSummary)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.Server = http.Server{
		Addr:    addr,
		Handler: trace.NewMiddleware().Handler(mux),
	}

	return s
}

// Shutdown stops the cache sweeper, then the underlying server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sweeper.Stop()
	return s.Server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recordOps binds the generic record handlers to one of the two tables.
type recordOps struct {
	kind     string // "income" | "expense"
	cacheKey string
	create   func(ctx context.Context, name string, value float64, date string) (int64, error)
	get      func(ctx context.Context, id int64) (core.Record, error)
	list     func(ctx context.Context) ([]core.Record, error)
	update   func(ctx context.Context, id int64, name string, value float64, date string) error
	delete   func(ctx context.Context, id int64) error
}

func (s *Server) incomeOps() recordOps {
	return recordOps{
		kind:     "income",
		cacheKey: "incomes",
		create:   s.records.CreateIncome,
		get:      s.records.GetIncomeByID,
		list:     s.records.ListIncomes,
		update:   s.records.UpdateIncome,
		delete:   s.records.DeleteIncome,
	}
}

func (s *Server) expenseOps() recordOps {
	return recordOps{
		kind:     "expense",
		cacheKey: "expenses",
		create:   s.records.CreateExpense,
		get:      s.records.GetExpenseByID,
		list:     s.records.ListExpenses,
		update:   s.records.UpdateExpense,
		delete:   s.records.DeleteExpense,
	}
}

// cachedList serves a table's rows through the list cache.
func (s *Server) cachedList(ctx context.Context, ops recordOps) ([]core.Record, error) {
	if records, ok := s.listCache.Get(ops.cacheKey); ok {
		return records, nil
	}
	records, err := ops.list(ctx)
	if err != nil {
		return nil, err
	}
	s.listCache.Set(ops.cacheKey, records)
	return records, nil
}
