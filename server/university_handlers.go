package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/server/forms"
	"github.com/uniguide/webapp/session"
)

// UniversitiesHandler renders the directory, filtered by country or by a
// full-text search query. Public: browsing needs no session.
func (s *Server) UniversitiesHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("universities.html")

	return func(w http.ResponseWriter, r *http.Request) {
		country := r.URL.Query().Get("country")
		query := r.URL.Query().Get("q")

		data := map[string]any{
			"AppName": s.config.GetAppName(),
			"Country": country,
			"Query":   query,
			"Error":   r.URL.Query().Get("error"),
			"IsAdmin": s.sessionRole(r) == session.RoleAdmin,
		}

		var (
			universities []backend.University
			err          error
		)
		switch {
		case query != "":
			universities, err = s.api.SearchUniversities(r.Context(), query)
		case country != "":
			universities, err = s.api.UniversitiesByCountry(r.Context(), country)
		}
		if err != nil {
			log.Err(err).Msg("university directory fetch failed")
			data["Error"] = pageError(err)
		}

		data["Universities"] = universities
		render(w, tmpl, data)
	}
}

func (s *Server) UniversityDetailHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("university_detail.html")

	return func(w http.ResponseWriter, r *http.Request) {
		university, err := s.api.University(r.Context(), r.PathValue("id"))
		if err != nil {
			log.Err(err).Msg("university detail fetch failed")
			redirectWithError(w, r, RouteUniversities, pageError(err))
			return
		}

		render(w, tmpl, map[string]any{
			"AppName":    s.config.GetAppName(),
			"University": university,
			"CanApply":   s.sessionRole(r) == session.RoleMentor,
			"Error":      r.URL.Query().Get("error"),
		})
	}
}

// UniversityAddHandler creates a directory entry. Admin only (route-gated).
func (s *Server) UniversityAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := forms.UniversityAdd{
			Name:    r.FormValue("name"),
			Country: r.FormValue("country"),
			City:    r.FormValue("city"),
			Website: r.FormValue("website"),
		}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, RouteUniversities, err.Error())
			return
		}

		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).AddUniversity(r.Context(), backend.University{
			Name:    form.Name,
			Country: form.Country,
			City:    form.City,
			Website: form.Website,
		})
		if err != nil {
			s.handleBackendError(w, r, err, RouteUniversities)
			return
		}

		redirectSuccess(w, r, RouteUniversities+"?country="+url.QueryEscape(form.Country))
	}
}

// sessionRole peeks at the session on public pages where the guard is not
// mounted; absent session reads as no role.
func (s *Server) sessionRole(r *http.Request) session.Role {
	if sess, ok := SessionFrom(r); ok {
		return sess.Role
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	sess, ok := s.sessions.Get(cookie.Value)
	if !ok {
		return ""
	}
	return sess.Role
}
