package server

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
)

// StudentProfileGetHandler renders the student's own profile editor.
func (s *Server) StudentProfileGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("student_profile.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)

		data := map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
		}

		profile, err := s.api.Authed(sess.BearerToken).StudentProfileMe(r.Context())
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("student profile fetch failed")
			data["Error"] = pageError(err)
		}

		data["Profile"] = profile
		render(w, tmpl, data)
	}
}

func (s *Server) StudentProfilePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
			redirectWithError(w, r, RouteStudentProfile, "Upload too large or malformed")
			return
		}

		fields := map[string]string{
			"display_name":   r.FormValue("display_name"),
			"bio":            r.FormValue("bio"),
			"target_country": r.FormValue("target_country"),
			"field_of_study": r.FormValue("field_of_study"),
		}

		var (
			avatarName string
			avatar     io.Reader
		)
		if file, header, err := r.FormFile("avatar"); err == nil {
			defer file.Close()
			avatar = file
			avatarName = header.Filename
		}

		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).UpdateStudentProfile(r.Context(), fields, avatarName, avatar)
		if err != nil {
			s.handleBackendError(w, r, err, RouteStudentProfile)
			return
		}

		redirectSuccess(w, r, RouteStudentProfile)
	}
}
