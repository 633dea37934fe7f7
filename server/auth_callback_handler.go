package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"golang.org/x/oauth2"
)

// OAuthStartHandler begins social sign-in: it records a CSRF state/nonce
// pair and redirects to the provider's consent screen.
func (s *Server) OAuthStartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		oidcConfig, err := s.getOidcConfig(r.Context())
		if err != nil {
			log.Err(err).Msg("OAuth start: provider unavailable")
			redirectWithError(w, r, RouteLogin, "Social sign-in is unavailable right now")
			return
		}

		state := generateRandomString(24)
		nonce := generateRandomString(24)

		s.oauthStatesLock.Lock()
		s.oauthStates[state] = nonce
		s.oauthStatesLock.Unlock()

		authURL := oidcConfig.OAuth2Config.AuthCodeURL(state, oauth2.SetAuthURLParam("nonce", nonce))
		http.Redirect(w, r, authURL, http.StatusSeeOther)
	}
}

// takeOAuthState consumes a pending state value, returning its nonce.
func (s *Server) takeOAuthState(state string) (string, bool) {
	s.oauthStatesLock.Lock()
	defer s.oauthStatesLock.Unlock()

	nonce, ok := s.oauthStates[state]
	if ok {
		delete(s.oauthStates, state)
	}
	return nonce, ok
}

// OAuthCallbackHandler completes social sign-in: it verifies the provider's
// ID token, then exchanges the verified identity for a platform session with
// the backend.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")
		errorDesc := r.FormValue("error_description")

		// Check for authorization errors
		if errorParam != "" {
			log.Warn().Str("error", errorParam).Str("description", errorDesc).Msg("OAuth callback: provider error")
			redirectWithError(w, r, RouteLogin, "Sign-in was cancelled or failed")
			return
		}

		if code == "" || state == "" {
			http.Error(w, "Missing code or state parameter", http.StatusBadRequest)
			return
		}

		nonce, ok := s.takeOAuthState(state)
		if !ok {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		oidcConfig, err := s.getOidcConfig(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get OIDC config: %v", err), http.StatusInternalServerError)
			return
		}

		// Exchange authorization code for tokens using standard oauth2 library
		oauth2Token, err := oidcConfig.OAuth2Config.Exchange(r.Context(), code)
		if err != nil {
			http.Error(w, fmt.Sprintf("Token exchange failed: %v", err), http.StatusInternalServerError)
			return
		}

		rawIDToken, ok := oauth2Token.Extra("id_token").(string)
		if !ok {
			http.Error(w, "No ID token in response", http.StatusInternalServerError)
			return
		}

		// Verify the ID token signature and claims
		idToken, err := oidcConfig.OidcVerifier.Verify(r.Context(), rawIDToken)
		if err != nil {
			http.Error(w, fmt.Sprintf("ID token verification failed: %v", err), http.StatusInternalServerError)
			return
		}

		var claims struct {
			Nonce string `json:"nonce"`
			Sub   string `json:"sub"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := idToken.Claims(&claims); err != nil {
			http.Error(w, fmt.Sprintf("Failed to extract claims: %v", err), http.StatusInternalServerError)
			return
		}

		// Validate nonce to prevent replay attacks
		if claims.Nonce != nonce {
			http.Error(w, "Invalid nonce", http.StatusUnauthorized)
			return
		}

		// The provider vouched for the identity; the backend turns it into a
		// platform account and bearer token.
		res, err := s.api.OAuthExchange(r.Context(), backend.OAuthExchangeRequest{
			Provider:    "google",
			IDToken:     rawIDToken,
			Email:       claims.Email,
			DisplayName: claims.Name,
		})
		if err != nil {
			log.Err(err).Msg("OAuth exchange with backend failed")
			redirectWithError(w, r, RouteLogin, "Could not complete sign-in, please try again")
			return
		}

		if err := s.establishSession(w, r, res); err != nil {
			log.Err(err).Msg("failed to establish session")
			redirectWithError(w, r, RouteLogin, "Something went wrong, please try again")
			return
		}

		redirectSuccess(w, r, RouteDashboard)
	}
}
