package server

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/session"
)

const (
	// sessionCookieName is the name of the cookie holding the session ID
	sessionCookieName = "uniguide_session"

	// sessionTTL bounds a portal session; the bearer token usually lapses
	// first and the backend's 401 wins either way.
	sessionTTL = 30 * 24 * time.Hour
)

// generateRandomString creates a random base64url string
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func (s *Server) SetSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string, maxAge int) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	s.SetSessionCookie(w, r, "", -1)
}

// establishSession stores an authenticated principal and sets the cookie.
// Called from login, signup/OTP verification, and the OAuth callback.
func (s *Server) establishSession(w http.ResponseWriter, r *http.Request, res backend.AuthResult) error {
	role := session.Role(res.Principal.Role)
	if !role.Valid() {
		return errors.New("backend returned an unknown role: " + res.Principal.Role)
	}

	sessionID := uuid.NewString()
	sess := session.Session{
		PrincipalID: res.Principal.ID,
		Role:        role,
		BearerToken: res.Token,
		DisplayName: res.Principal.DisplayName,
		Email:       res.Principal.Email,
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(sessionTTL),
	}
	if err := s.sessions.Set(sessionID, sess); err != nil {
		return err
	}

	s.SetSessionCookie(w, r, sessionID, int(sessionTTL.Seconds()))
	return nil
}

// expireSession clears both copies of the session and sends the user to
// login. The uniform handling for every authentication failure.
func (s *Server) expireSession(w http.ResponseWriter, r *http.Request) {
	if id := sessionIDFrom(r); id != "" {
		s.sessions.Clear(id)
	}
	s.clearSessionCookie(w, r)
	redirectWithError(w, r, RouteLogin, "Session expired, please log in again")
}

// handleBackendError is the single failure path for protected mutations:
// auth failures expire the session, anything else bounces back to returnPath
// with a transient notification. Nothing is retried.
func (s *Server) handleBackendError(w http.ResponseWriter, r *http.Request, err error, returnPath string) {
	if backend.IsAuthError(err) {
		s.expireSession(w, r)
		return
	}

	log.Err(err).Str("path", r.URL.Path).Msg("backend call failed")

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		redirectWithError(w, r, returnPath, apiErr.UserMessage())
		return
	}
	redirectWithError(w, r, returnPath, "Could not reach the server, please try again")
}

// pageError converts a backend failure into the transient message shown on a
// page that still renders (GET views degrade, mutations redirect).
func pageError(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "Could not reach the server, please try again"
}

// redirectSuccess helper for post-action redirects
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// redirectWithError helper for redirects carrying a transient error message
func redirectWithError(w http.ResponseWriter, r *http.Request, path, errorMsg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(errorMsg), http.StatusSeeOther)
}
