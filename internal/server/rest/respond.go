package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

// apiResponse is the uniform wire envelope.
type apiResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, apiResponse{Success: true, Message: message, Data: data})
}

func writeList(w http.ResponseWriter, count int, data any) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Count: &count, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Success: false, Error: msg})
}

func writeValidationError(w http.ResponseWriter, details []string) {
	writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "validation failed", Details: details})
}

// writeServiceError maps sentinel errors raised by the core to wire statuses.
func (s *Server) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorConflict):
		writeError(w, http.StatusBadRequest, "user already exists with this email")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "task not found")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		s.logger.Error(ctx, err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
