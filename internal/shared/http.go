package shared

import (
	"encoding/json"
	"errors"
	"net/http"
)

// RespondJSON writes v as a JSON response body.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes a JSON error envelope with a user-safe message.
func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, map[string]string{"error": UserSafeMessage(err)})
}

// StatusFor picks an HTTP status code for a service error.
func StatusFor(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrCredentialExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
