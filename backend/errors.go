package backend

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks responses where the backend rejected the bearer
// token. Callers treat it uniformly: clear the session and send the user back
// to login.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is the failure variant of every backend call: a non-2xx response
// decoded into the backend's error envelope. Network-level failures are
// returned as wrapped transport errors instead.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // machine-readable error code, if the backend sent one
	Message string // human-readable message for the toast
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}

// UserMessage returns the message to surface in the UI. Remote errors are
// shown as transient notifications at the call site; nothing is retried.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong, please try again"
}

// IsAuthError reports whether err means the session's token was missing,
// expired, or otherwise rejected.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
