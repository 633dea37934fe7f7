package server

import (
	"context"
	"net/http"

	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySession stores the authenticated session
	ContextKeySession ContextKey = "session"
	// ContextKeySessionID stores the session's cookie ID
	ContextKeySessionID ContextKey = "session_id"
)

// RequireSession is the single route guard composed by every protected view.
// Missing, expired, or token-lapsed sessions redirect to login before any
// protected content renders.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				// No session cookie - redirect to login
				redirectWithError(w, r, RouteLogin, "Please log in")
				return
			}

			sess, ok := s.sessions.Get(cookie.Value)
			if !ok {
				s.clearSessionCookie(w, r)
				redirectWithError(w, r, RouteLogin, "Session expired, please log in again")
				return
			}

			// Fast path for lapsed JWTs; the backend still has the final say
			// and protected calls handle its 401s the same way.
			if backend.TokenExpired(sess.BearerToken) {
				s.sessions.Clear(cookie.Value)
				s.clearSessionCookie(w, r)
				redirectWithError(w, r, RouteLogin, "Session expired, please log in again")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			ctx = context.WithValue(ctx, ContextKeySessionID, cookie.Value)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireRole gates a route to the given roles. Must be chained after
// RequireSession.
func (s *Server) RequireRole(roles ...session.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFrom(r)
			if !ok {
				redirectWithError(w, r, RouteLogin, "Please log in")
				return
			}

			for _, role := range roles {
				if sess.Role == role {
					next(w, r)
					return
				}
			}

			s.renderForbidden(w, sess)
		}
	}
}

// SessionFrom returns the session injected by RequireSession.
func SessionFrom(r *http.Request) (session.Session, bool) {
	sess, ok := r.Context().Value(ContextKeySession).(session.Session)
	return sess, ok
}

// sessionIDFrom returns the cookie ID injected by RequireSession.
func sessionIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(ContextKeySessionID).(string)
	return id
}
