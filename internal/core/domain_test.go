package core

import (
	"errors"
	"math"
	"testing"
)

func TestRecordValidate(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want error
	}{
		{"valid", Record{Name: "Salary", Value: 2500, Date: "2024-03-05"}, nil},
		{"valid zero value", Record{Name: "Adjustment", Value: 0, Date: "2024-01-31"}, nil},
		{"empty name", Record{Name: "", Value: 10, Date: "2024-03-05"}, ErrEmptyName},
		{"blank name", Record{Name: "   ", Value: 10, Date: "2024-03-05"}, ErrEmptyName},
		{"name too long", Record{Name: "this description is too long", Value: 10, Date: "2024-03-05"}, ErrNameTooLong},
		{"nan value", Record{Name: "x", Value: math.NaN(), Date: "2024-03-05"}, ErrInvalidValue},
		{"inf value", Record{Name: "x", Value: math.Inf(1), Date: "2024-03-05"}, ErrInvalidValue},
		{"bad date", Record{Name: "x", Value: 10, Date: "05-03-2024"}, ErrInvalidDate},
		{"impossible date", Record{Name: "x", Value: 10, Date: "2024-02-30"}, ErrInvalidDate},
		{"empty date", Record{Name: "x", Value: 10, Date: ""}, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.rec.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRecordMonthName(t *testing.T) {
	cases := []struct {
		date string
		want string
		ok   bool
	}{
		{"2024-03-05", "March", true},
		{"2023-03-31", "March", true},
		{"2024-12-01", "December", true},
		{"2024-01-15", "January", true},
		{"not-a-date", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Record{Name: "x", Value: 1, Date: tc.date}.MonthName()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("MonthName(%q) = %q, %v; want %q, %v", tc.date, got, ok, tc.want, tc.ok)
		}
	}
}

func TestUserValidate(t *testing.T) {
	valid := User{Username: "ann", Email: "ann@example.com", Password: "secret"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid user: %v", err)
	}

	cases := []struct {
		name string
		user User
		want error
	}{
		{"missing username", User{Email: "a@b.c", Password: "p"}, ErrEmptyUsername},
		{"missing email", User{Username: "a", Password: "p"}, ErrEmptyEmail},
		{"missing password", User{Username: "a", Email: "a@b.c"}, ErrEmptyPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.user.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}
