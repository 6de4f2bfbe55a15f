package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// WriteJSON writes a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	}
}

// WriteError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 with a generic body; the cause goes to the log,
// not the client.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, ErrInvalid):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUnauthorized):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrForbidden):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, ErrConflict):
		status, msg = http.StatusConflict, err.Error()
	default:
		log.Printf("Request failed: %v", err)
	}

	WriteJSON(w, status, map[string]string{"error": msg})
}
