package server

import (
	"net/http"
)

// IndexHandler renders the landing page. Logged-in users go straight to
// their dashboard.
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if _, ok := s.sessions.Get(cookie.Value); ok {
				redirectSuccess(w, r, RouteDashboard)
				return
			}
		}

		render(w, tmpl, map[string]any{
			"AppName": s.config.GetAppName(),
		})
	}
}
