package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/server/forms"
)

// logoutTimeout bounds the best-effort token revocation call; the user is
// logged out locally either way.
const logoutTimeout = 5 * time.Second

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   string
	Email   string // Preserve email on error
}

// LoginPageUIHandler displays the login page (GET /login)
func (s *Server) LoginPageUIHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("login.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Email:   r.URL.Query().Get("email"),
		}
		render(w, tmpl, data)
	}
}

// LoginSubmissionHandler processes the login form submission
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := forms.Login{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		if err := forms.Validate(form); err != nil {
			s.renderLoginError(w, r, err.Error(), form.Email)
			return
		}

		res, err := s.api.Login(r.Context(), backend.LoginRequest{
			Email:    form.Email,
			Password: form.Password,
		})
		if err != nil {
			log.Err(err).Msg("login failed")
			s.renderLoginError(w, r, loginFailureMessage(err), form.Email)
			return
		}

		if err := s.establishSession(w, r, res); err != nil {
			log.Err(err).Msg("failed to establish session")
			s.renderLoginError(w, r, "Something went wrong, please try again", form.Email)
			return
		}

		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			redirectSuccess(w, r, "/")
			return
		}

		// Best-effort server-side token invalidation; the local session is
		// cleared regardless of the outcome.
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
			defer cancel()
			if err := s.api.Authed(sess.BearerToken).Logout(ctx); err != nil {
				log.Err(err).Msg("backend logout failed")
			}
		}

		s.sessions.Clear(cookie.Value)
		s.clearSessionCookie(w, r)
		redirectSuccess(w, r, "/")
	}
}

func loginFailureMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest {
			return "Invalid email or password"
		}
		return apiErr.UserMessage()
	}
	return "Could not reach the server, please try again"
}

// renderLoginError redirects to the login page with an error message
func (s *Server) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, email string) {
	redirectURL := RouteLogin + "?error=" + url.QueryEscape(errorMsg)
	if email != "" {
		redirectURL += "&email=" + url.QueryEscape(email)
	}
	redirectSuccess(w, r, redirectURL)
}
