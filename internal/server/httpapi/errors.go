package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkovs/todolist/internal/common"
)

// errorResponse is the uniform error body returned for every failure.
// Stack is populated only for unexpected (HTTP 500) failures.
type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Stack      string `json:"stack"`
}

// statusForError maps domain errors to their documented client-facing
// statuses. Anything unrecognized is an unexpected failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorAccountExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, message, stack string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		StatusCode: status,
		Message:    message,
		Stack:      stack,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
