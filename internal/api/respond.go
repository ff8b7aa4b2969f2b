package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/dailydiet/internal/auth"
	"github.com/mmynk/dailydiet/internal/service"
	"github.com/mmynk/dailydiet/internal/storage"
)

type messageResponse struct {
	Message string `json:"message"`
}

type messagesResponse struct {
	Messages []string `json:"messages"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError translates an error from the core into a status code and body.
// Storage faults and anything unrecognized become a generic 500; details
// stay in the logs.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, messagesResponse{Messages: validationErr.Messages})
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrPasswordTooLong):
		writeJSON(w, http.StatusBadRequest, messagesResponse{Messages: []string{err.Error()}})
	case errors.Is(err, auth.ErrEmailExists):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: auth.ErrEmailExists.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: auth.ErrInvalidCredentials.Error()})
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: auth.ErrInvalidToken.Error()})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "not found"})
	default:
		slog.Error("Unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
}
