package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

type recordPayload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

type recordResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

func toResponse(rec core.Record) recordResponse {
	return recordResponse{ID: rec.ID, Name: rec.Name, Value: rec.Value, Date: rec.Date}
}

func (s *Server) handleCreate(ops recordOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p recordPayload
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := ops.create(r.Context(), p.Name, p.Value, p.Date)
		if err != nil {
			slog.ErrorContext(r.Context(), "Failed to create record",
				"error", err, "kind", ops.kind, "name", p.Name)
			respondError(w, statusFromError(err), err.Error())
			return
		}

		s.listCache.Delete(ops.cacheKey)

		respondJSON(w, http.StatusCreated, recordResponse{
			ID: id, Name: p.Name, Value: p.Value, Date: p.Date,
		})
	}
}

func (s *Server) handleList(ops recordOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.cachedList(r.Context(), ops)
		if err != nil {
			slog.ErrorContext(r.Context(), "Failed to list records",
				"error", err, "kind", ops.kind)
			respondError(w, statusFromError(err), err.Error())
			return
		}

		out := make([]recordResponse, 0, len(records))
		for _, rec := range records {
			out = append(out, toResponse(rec))
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func (s *Server) handleGet(ops recordOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDPath(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}

		rec, err := ops.get(r.Context(), id)
		if err != nil {
			respondError(w, statusFromError(err), err.Error())
			return
		}
		respondJSON(w, http.StatusOK, toResponse(rec))
	}
}

func (s *Server) handleUpdate(ops recordOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDPath(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}

		var p recordPayload
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := ops.update(r.Context(), id, p.Name, p.Value, p.Date); err != nil {
			respondError(w, statusFromError(err), err.Error())
			return
		}

		s.listCache.Delete(ops.cacheKey)

		respondJSON(w, http.StatusOK, recordResponse{
			ID: id, Name: p.Name, Value: p.Value, Date: p.Date,
		})
	}
}

func (s *Server) handleDelete(ops recordOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDPath(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}

		if err := ops.delete(r.Context(), id); err != nil {
			respondError(w, statusFromError(err), err.Error())
			return
		}

		s.listCache.Delete(ops.cacheKey)

		w.WriteHeader(http.StatusNoContent)
	}
}
