package storage

import (
	"context"
	"database/sql"
)

// Fixed column sets for the three tables. SQLite treats the VARCHAR
// length as advisory; the real cap is enforced by core.Record.Validate.
var schemaStatements = []struct {
	table string
	ddl   string
}{
	{
		table: "User",
		ddl: `CREATE TABLE IF NOT EXISTS User (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			dateOfBirth TEXT,
			phoneNumber TEXT,
			address TEXT
		)`,
	},
	{
		table: "Incomes",
		ddl: `CREATE TABLE IF NOT EXISTS Incomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(20),
			value REAL,
			date TEXT
		)`,
	},
	{
		table: "Expenses",
		ddl: `CREATE TABLE IF NOT EXISTS Expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(20),
			value REAL,
			date TEXT
		)`,
	},
}

// ensureSchema creates the three tables if absent. It runs on every open
// and is idempotent; a failure names the table it stopped on and the
// caller must treat the session as unusable.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, st := range schemaStatements {
		if _, err := db.ExecContext(ctx, st.ddl); err != nil {
			return &SchemaError{Table: st.table, Err: err}
		}
	}
	return nil
}
