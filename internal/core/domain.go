package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar-date form every stored record uses.
const DateLayout = "2006-01-02"

// MaxNameLen caps record descriptions, mirroring the table column width.
const MaxNameLen = 20

type (
	// User is an account row. Created once at registration and never
	// updated or deleted afterwards.
	User struct {
		ID          int64
		Username    string
		Email       string
		Password    string
		DateOfBirth string
		PhoneNumber string
		Address     string
	}

	// Record is the shape shared by incomes and expenses. The two live in
	// separate tables but carry identical fields.
	Record struct {
		ID    int64
		Name  string
		Value float64
		Date  string
	}
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrNameTooLong   = errors.New("name too long")
	ErrInvalidValue  = errors.New("invalid value")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyEmail    = errors.New("empty email")
	ErrEmptyUsername = errors.New("empty username")
	ErrEmptyPassword = errors.New("empty password")
)

// Validate checks the caller-supplied fields of a record. The id is store
// owned and intentionally not inspected here.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > MaxNameLen {
		return ErrNameTooLong
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return ErrInvalidValue
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// MonthName derives the English month name ("March") from the record's
// date. It matches the strings the month picker produces, so summaries
// filter on it directly. Returns false if the stored date does not parse.
func (r Record) MonthName() (string, bool) {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return "", false
	}
	return t.Month().String(), true
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
