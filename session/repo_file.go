package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileRepo is the durable side-channel for sessions: a JSON file written
// through on every mutation so a portal restart does not force every user to
// re-authenticate. A missing or malformed file reads as "no sessions".
type FileRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileRepo creates a file-backed session repository at path. The parent
// directory is created if needed.
func NewFileRepo(path string) (*FileRepo, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("session.NewFileRepo: %w", err)
	}
	return &FileRepo{path: path}, nil
}

// Upsert creates or updates a session and persists the file
func (r *FileRepo) Upsert(sessionID string, session Session) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.load()
	sessions[sessionID] = session
	return r.save(sessions)
}

// Get retrieves a session by ID
func (r *FileRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.load()[sessionID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// Delete removes a session and persists the file
func (r *FileRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.load()
	if _, ok := sessions[sessionID]; !ok {
		return nil // already gone, no error
	}
	delete(sessions, sessionID)
	return r.save(sessions)
}

// All returns every stored session
func (r *FileRepo) All() (map[string]Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// load reads the session file. Absent or unreadable content yields an empty
// map; the durable copy is a convenience mirror, never a hard dependency.
func (r *FileRepo) load() map[string]Session {
	sessions := make(map[string]Session)

	data, err := os.ReadFile(r.path)
	if err != nil {
		return sessions
	}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return make(map[string]Session)
	}
	return sessions
}

// save writes the session file atomically (temp file + rename) so a crash
// mid-write cannot corrupt the side-channel.
func (r *FileRepo) save(sessions map[string]Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("session.FileRepo save: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session.FileRepo save: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("session.FileRepo save: %w", err)
	}
	return nil
}

// Reset removes the backing file entirely. Used on full logout-everywhere and
// by tests.
func (r *FileRepo) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session.FileRepo reset: %w", err)
	}
	return nil
}
