package session

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Subscriber is notified synchronously after a session is set or cleared.
// A nil session means the session was cleared.
type Subscriber func(sessionID string, session *Session)

// Store is the single source of truth for "who is logged in". It keeps every
// live session in memory and mirrors mutations to a durable Repo so a restart
// does not force re-authentication. The in-memory value and the durable copy
// are eventually consistent: a failed mirror write is logged, not surfaced,
// and the in-memory value wins for the lifetime of the process.
//
// Writes are rare (login, logout, OAuth callback) and last-write-wins.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	durable  Repo // optional side-channel, may be nil
	subs     []Subscriber
}

// NewStore creates a Store mirrored to durable. Pass nil to run memory-only.
func NewStore(durable Repo) *Store {
	return &Store{
		sessions: make(map[string]Session),
		durable:  durable,
	}
}

// Hydrate loads the durable side-channel into memory. Called once at startup.
// An absent or malformed side-channel hydrates to "no sessions"; Hydrate
// never fails.
func (st *Store) Hydrate() {
	if st.durable == nil {
		return
	}

	all, err := st.durable.All()
	if err != nil {
		log.Warn().Err(err).Msg("session store: hydrate failed, starting unauthenticated")
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range all {
		if s.Expired() {
			continue
		}
		st.sessions[id] = s
	}
}

// Set replaces the session stored under sessionID and persists it.
// Subscribers observe the new value synchronously before Set returns.
func (st *Store) Set(sessionID string, s Session) error {
	st.mu.Lock()
	st.sessions[sessionID] = s
	subs := st.subs
	st.mu.Unlock()

	if st.durable != nil {
		if err := st.durable.Upsert(sessionID, s); err != nil {
			log.Warn().Err(err).Msg("session store: durable mirror write failed")
		}
	}

	for _, sub := range subs {
		sub(sessionID, &s)
	}
	return nil
}

// Get returns the session for sessionID, if any. Expired sessions read as
// absent.
func (st *Store) Get(sessionID string) (Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[sessionID]
	st.mu.RUnlock()

	if !ok || s.Expired() {
		return Session{}, false
	}
	return s, true
}

// Clear removes both the in-memory and durable copies. Used on logout, on
// authentication failure, and when a protected view detects an invalid token.
func (st *Store) Clear(sessionID string) {
	st.mu.Lock()
	delete(st.sessions, sessionID)
	subs := st.subs
	st.mu.Unlock()

	if st.durable != nil {
		if err := st.durable.Delete(sessionID); err != nil {
			log.Warn().Err(err).Msg("session store: durable mirror delete failed")
		}
	}

	for _, sub := range subs {
		sub(sessionID, nil)
	}
}

// Subscribe registers a callback observing every Set and Clear.
func (st *Store) Subscribe(sub Subscriber) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.subs = append(st.subs, sub)
}
