package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"edl-backend/internal/domain"
	"edl-backend/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// respondError maps the domain error taxonomy onto HTTP statuses, always
// carrying the specific cause so the operator can correct input and
// resubmit.
func respondError(w http.ResponseWriter, err error) {
	var precondition *domain.PreconditionError
	var persistence *domain.PersistenceError

	switch {
	case errors.As(err, &precondition):
		status := http.StatusUnprocessableEntity
		if strings.Contains(precondition.Reason, "not found") {
			status = http.StatusNotFound
		} else if strings.Contains(precondition.Reason, "already completed") {
			status = http.StatusConflict
		}
		respondJSON(w, status, map[string]string{"error": precondition.Reason})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.As(err, &persistence):
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": persistence.Error()})
	default:
		logger.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
