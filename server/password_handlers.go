package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/server/forms"
	"github.com/uniguide/webapp/session"
)

// ForgotPasswordGetHandler renders the forgot-password page
func (s *Server) ForgotPasswordGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("forgot_password.html")

	return func(w http.ResponseWriter, r *http.Request) {
		render(w, tmpl, map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
			"Sent":    r.URL.Query().Get("sent") == "1",
		})
	}
}

// ForgotPasswordPostHandler asks the backend to email a reset link.
func (s *Server) ForgotPasswordPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := forms.ForgotPassword{Email: r.FormValue("email")}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, RouteForgotPassword, err.Error())
			return
		}

		if err := s.api.ForgotPassword(r.Context(), form.Email); err != nil {
			log.Err(err).Msg("forgot-password request failed")
			s.handleBackendError(w, r, err, RouteForgotPassword)
			return
		}

		redirectSuccess(w, r, RouteForgotPassword+"?sent=1")
	}
}

// ResetPasswordGetHandler renders the reset form reached from the email link
func (s *Server) ResetPasswordGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("reset_password.html")

	return func(w http.ResponseWriter, r *http.Request) {
		render(w, tmpl, map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
			"Token":   r.URL.Query().Get("token"),
		})
	}
}

// ResetPasswordPostHandler sets the new password using the emailed token.
func (s *Server) ResetPasswordPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := forms.ResetPassword{
			Token:    r.FormValue("token"),
			Password: r.FormValue("password"),
			Confirm:  r.FormValue("confirm"),
		}
		returnPath := RouteResetPassword + "?token=" + url.QueryEscape(form.Token)
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, returnPath, err.Error())
			return
		}

		if err := s.api.ResetPassword(r.Context(), form.Token, form.Password); err != nil {
			log.Err(err).Msg("password reset failed")
			redirectWithError(w, r, returnPath, "Reset link is invalid or expired")
			return
		}

		redirectSuccess(w, r, RouteLogin+"?error="+url.QueryEscape("Password updated, please log in"))
	}
}

// UpdatePasswordHandler changes the password from the profile page while
// signed in.
func (s *Server) UpdatePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		sess, _ := SessionFrom(r)
		returnPath := RouteDashboard
		switch sess.Role {
		case session.RoleStudent:
			returnPath = RouteStudentProfile
		case session.RoleMentor:
			returnPath = RouteMentorProfile
		}

		form := forms.UpdatePassword{
			Current:  r.FormValue("current_password"),
			Password: r.FormValue("password"),
			Confirm:  r.FormValue("confirm"),
		}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, returnPath, err.Error())
			return
		}

		if err := s.api.Authed(sess.BearerToken).UpdatePassword(r.Context(), form.Current, form.Password); err != nil {
			s.handleBackendError(w, r, err, returnPath)
			return
		}

		redirectSuccess(w, r, returnPath)
	}
}
