package api

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned when a request exceeds the client timeout. The
// underlying context error never leaks to callers.
var ErrTimeout = errors.New("request timed out")

// HTTPError is a non-2xx backend response. Message carries the
// server-provided message when present, otherwise "HTTP <status>".
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError, substituting the status fallback
// when the server sent no message.
func NewHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &HTTPError{Status: status, Message: message}
}
