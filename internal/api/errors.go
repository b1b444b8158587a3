// internal/api/errors.go
package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for any 401 outside the login call, after the
// session-clearing side effect has run.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a non-2xx response from the backend. Message carries the
// server-provided reason when the body had one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// ServerMessage extracts the server-provided message from an error, if the
// error was an API error carrying one. Callers fall back to a generic
// localized message otherwise.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsStatus reports whether err is an API error with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
