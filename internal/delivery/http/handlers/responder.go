package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const unexpectedErrorMessage = "unexpected error"

type errorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Message   string            `json:"message,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Message:   message,
	}, logger)
}

func writeValidationError(w http.ResponseWriter, errs ValidationErrors, logger *slog.Logger) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Errors:    errs,
	}, logger)
}
