package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/server/forms"
)

// SignupGetHandler renders the signup page
func (s *Server) SignupGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("signup.html")

	return func(w http.ResponseWriter, r *http.Request) {
		render(w, tmpl, map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
			"Email":   r.URL.Query().Get("email"),
		})
	}
}

// SignupPostHandler registers an account and sends the user to OTP
// verification. The backend owns the account and mails the code.
func (s *Server) SignupPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := forms.Signup{
			DisplayName: r.FormValue("display_name"),
			Email:       r.FormValue("email"),
			Password:    r.FormValue("password"),
			Role:        r.FormValue("role"),
		}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, RouteSignup, err.Error())
			return
		}

		_, err := s.api.Signup(r.Context(), backend.SignupRequest{
			DisplayName: form.DisplayName,
			Email:       form.Email,
			Password:    form.Password,
			Role:        form.Role,
		})
		if err != nil {
			log.Err(err).Msg("signup failed")
			s.handleBackendError(w, r, err, RouteSignup)
			return
		}

		redirectSuccess(w, r, RouteVerifyOTP+"?email="+url.QueryEscape(form.Email))
	}
}

// VerifyOTPGetHandler renders the one-time-code page
func (s *Server) VerifyOTPGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("verify_otp.html")

	return func(w http.ResponseWriter, r *http.Request) {
		render(w, tmpl, map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
			"Email":   r.URL.Query().Get("email"),
		})
	}
}

// VerifyOTPPostHandler confirms the signup code and logs the user in.
func (s *Server) VerifyOTPPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := forms.OTPVerify{
			Email: r.FormValue("email"),
			Code:  r.FormValue("otp"),
		}
		returnPath := RouteVerifyOTP + "?email=" + url.QueryEscape(form.Email)
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, returnPath, err.Error())
			return
		}

		res, err := s.api.VerifyOTP(r.Context(), form.Email, form.Code)
		if err != nil {
			log.Err(err).Msg("OTP verification failed")
			redirectWithError(w, r, returnPath, "Invalid or expired code")
			return
		}

		if err := s.establishSession(w, r, res); err != nil {
			log.Err(err).Msg("failed to establish session")
			redirectWithError(w, r, RouteLogin, "Something went wrong, please log in")
			return
		}

		redirectSuccess(w, r, RouteDashboard)
	}
}
