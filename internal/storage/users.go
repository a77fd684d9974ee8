package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
)

// CreateUser inserts a new account row and returns the assigned id.
// Email uniqueness is enforced by the table; a violation surfaces as
// ErrDuplicateEmail.
func (s *Store) CreateUser(ctx context.Context, u core.User) (int64, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := s.withTx(ctx, "create user", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO User (username, email, password, dateOfBirth, phoneNumber, address)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			u.Username, u.Email, u.Password, u.DateOfBirth, u.PhoneNumber, u.Address)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateEmail
			}
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "User created", "id", id, "username", u.Username)
	return id, nil
}

// FindUserByCredentials looks up the user matching email and password
// with exact string equality. No match returns (nil, nil) so callers can
// tell a failed login from a store fault. The plaintext comparison is
// the inherited contract of the User table.
func (s *Store) FindUserByCredentials(ctx context.Context, email, password string) (*core.User, error) {
	var u core.User
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password, dateOfBirth, phoneNumber, address
		 FROM User WHERE email = ? AND password = ?`,
		email, password)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.DateOfBirth, &u.PhoneNumber, &u.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
