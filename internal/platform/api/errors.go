package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized marks 401/403 responses so callers can prompt for a
	// fresh login instead of reporting a generic network failure.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks 404 responses.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx HTTP response from the backend. Message carries the
// server-supplied {message} body verbatim when one was parseable, otherwise a
// generic network-failure message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status=%d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return nil
}

// IsUnauthorized reports whether err stems from an expired or missing session.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
