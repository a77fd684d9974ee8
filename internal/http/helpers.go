package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

const maxBodyBytes = 1 << 20 // 1MB

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// parseIDPath reads the {id} path value. A non-numeric id is shaped as
// the same out-of-contract outcome as a non-positive one, so the store's
// invalid-id rule applies before any query happens.
func parseIDPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, storage.ErrInvalidID
	}
	return id, nil
}

// statusFromError maps the store's error taxonomy onto HTTP statuses.
// "Not found" stays distinguishable from genuine failures.
func statusFromError(err error) int {
	var schemaErr *storage.SchemaError
	var txErr *storage.TxError
	switch {
	case errors.Is(err, storage.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateEmail):
		return http.StatusConflict
	case isValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.As(err, &schemaErr), errors.As(err, &txErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrEmptyName,
		core.ErrNameTooLong,
		core.ErrInvalidValue,
		core.ErrInvalidDate,
		core.ErrEmptyUsername,
		core.ErrEmptyEmail,
		core.ErrEmptyPassword,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
