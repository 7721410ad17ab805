package httpx

import (
	"errors"
	"net/http"
)

// Sentinel error kinds for the domain layer.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrBadInput     = errors.New("bad input")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }
func (e *kindError) Unwrap() error { return e.kind }

// Wrap pairs a sentinel kind with a user-facing message. The message alone
// becomes the envelope text; the kind drives the status code.
func Wrap(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

// RespondError maps domain errors to envelope responses. Unrecognized
// errors surface the bounded fallback message; the original error is the
// caller's to log.
func RespondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, ErrBadInput):
		Error(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, ErrForbidden):
		Error(w, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, ErrUnauthorized):
		Error(w, http.StatusUnauthorized, err.Error(), "")
	default:
		Error(w, http.StatusInternalServerError, fallback, "")
	}
}
