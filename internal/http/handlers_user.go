package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

type registerPayload struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var p registerPayload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := s.users.CreateUser(r.Context(), core.User{
		Username:    p.Username,
		Email:       p.Email,
		Password:    p.Password,
		DateOfBirth: p.DateOfBirth,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to register user",
			"error", err, "email", p.Email)
		respondError(w, statusFromError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, userResponse{ID: id, Username: p.Username, Email: p.Email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var p loginPayload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.users.FindUserByCredentials(r.Context(), p.Email, p.Password)
	if err != nil {
		slog.ErrorContext(r.Context(), "Login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	// No match is a normal outcome, not a store failure.
	if u == nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, userResponse{ID: u.ID, Username: u.Username, Email: u.Email})
}
