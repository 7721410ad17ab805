// Package httpx provides HTTP response utilities. Failures use the
// service's JSON error envelope; successes stream raw bytes or JSON.
package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorBody is the inner error object of the envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Envelope is the JSON error envelope returned on every failure.
type Envelope struct {
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends the error envelope with the given status code.
func Error(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, Envelope{
		Error:     ErrorBody{Message: message, Details: details},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// DecodeJSON decodes a JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
