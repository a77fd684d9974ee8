package storage

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
)

func testUser() core.User {
	return core.User{
		Username:    "ann",
		Email:       "ann@example.com",
		Password:    "secret",
		DateOfBirth: "1990-06-15",
		PhoneNumber: "555-0101",
		Address:     "1 Main St",
	}
}

func TestCreateUserAndLogin(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateUser(ctx, testUser())
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	u, err := s.FindUserByCredentials(ctx, "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("FindUserByCredentials: %v", err)
	}
	if u == nil {
		t.Fatal("expected a user, got nil")
	}
	if u.ID != id || u.Username != "ann" || u.Address != "1 Main St" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestFindUserNoMatchIsNotAnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, testUser()); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ann@example.com", "nope"},
		{"unknown email", "bob@example.com", "secret"},
		// Lookup is exact string match: no trimming, no case folding.
		{"case differs", "Ann@example.com", "secret"},
		{"padded email", " ann@example.com", "secret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := s.FindUserByCredentials(ctx, tc.email, tc.password)
			if err != nil {
				t.Fatalf("FindUserByCredentials: %v", err)
			}
			if u != nil {
				t.Fatalf("expected no match, got %+v", u)
			}
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, testUser()); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}

	dup := testUser()
	dup.Username = "other"
	if _, err := s.CreateUser(ctx, dup); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("second CreateUser = %v, want ErrDuplicateEmail", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := testUser()
	u.Email = ""
	if _, err := s.CreateUser(ctx, u); !errors.Is(err, core.ErrEmptyEmail) {
		t.Fatalf("CreateUser = %v, want ErrEmptyEmail", err)
	}
}
