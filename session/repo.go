package session

import "errors"

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Repo is the storage interface for sessions, keyed by the opaque session ID
// held in the browser cookie.
type Repo interface {
	Upsert(sessionID string, session Session) error
	Get(sessionID string) (Session, error)
	Delete(sessionID string) error

	// All returns every stored session. Used by the Store to hydrate its
	// in-memory view at startup.
	All() (map[string]Session, error)
}
