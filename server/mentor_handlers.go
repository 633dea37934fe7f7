package server

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/server/forms"
	"github.com/uniguide/webapp/session"
)

// maxAvatarBytes caps the profile picture upload.
const maxAvatarBytes = 5 << 20

func (s *Server) MentorsHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("mentors.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)

		data := map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
		}

		mentors, err := s.api.Authed(sess.BearerToken).Mentors(r.Context())
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("mentor list fetch failed")
			data["Error"] = pageError(err)
		}

		data["Mentors"] = mentors
		render(w, tmpl, data)
	}
}

// MentorDetailHandler renders a mentor profile. The connect action is
// student-only: gated here and again on the POST route.
func (s *Server) MentorDetailHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("mentor_detail.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		api := s.api.Authed(sess.BearerToken)

		mentor, err := api.Mentor(r.Context(), r.PathValue("id"))
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("mentor detail fetch failed")
			redirectWithError(w, r, RouteMentors, pageError(err))
			return
		}

		reviews, err := api.MentorReviews(r.Context(), mentor.ID)
		if err != nil && !backend.IsAuthError(err) {
			log.Err(err).Msg("mentor reviews fetch failed")
		}

		render(w, tmpl, map[string]any{
			"AppName":    s.config.GetAppName(),
			"Mentor":     mentor,
			"Reviews":    reviews,
			"CanConnect": sess.Role == session.RoleStudent,
			"CanReview":  sess.Role == session.RoleStudent,
			"Error":      r.URL.Query().Get("error"),
		})
	}
}

// MentorConnectHandler submits a consultation request. Student only.
func (s *Server) MentorConnectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		mentorID := r.PathValue("id")
		returnPath := "/mentor/" + url.PathEscape(mentorID)

		form := forms.ConnectionApply{
			MentorID: mentorID,
			Message:  r.FormValue("message"),
		}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, returnPath, err.Error())
			return
		}

		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).ApplyConnection(r.Context(), form.MentorID, form.Message)
		if err != nil {
			s.handleBackendError(w, r, err, returnPath)
			return
		}

		redirectSuccess(w, r, RouteDashboard)
	}
}

// MentorReviewHandler posts a rating and review. Student only.
func (s *Server) MentorReviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		mentorID := r.PathValue("id")
		returnPath := "/mentor/" + url.PathEscape(mentorID)

		rating, _ := strconv.Atoi(r.FormValue("rating"))
		form := forms.Review{
			Rating: rating,
			Body:   r.FormValue("body"),
		}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, returnPath, err.Error())
			return
		}

		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).RateMentor(r.Context(), mentorID, form.Rating, form.Body)
		if err != nil {
			s.handleBackendError(w, r, err, returnPath)
			return
		}

		redirectSuccess(w, r, returnPath)
	}
}

// MentorProfileGetHandler renders the mentor's own profile editor.
func (s *Server) MentorProfileGetHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("mentor_profile.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)

		data := map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
		}

		mentor, err := s.api.Authed(sess.BearerToken).Mentor(r.Context(), sess.PrincipalID)
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("mentor profile fetch failed")
			data["Error"] = pageError(err)
		}

		data["Mentor"] = mentor
		render(w, tmpl, data)
	}
}

// MentorProfilePostHandler updates the profile; the avatar, when attached,
// is forwarded as a multipart upload.
func (s *Server) MentorProfilePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
			redirectWithError(w, r, RouteMentorProfile, "Upload too large or malformed")
			return
		}

		fields := map[string]string{
			"headline":  r.FormValue("headline"),
			"bio":       r.FormValue("bio"),
			"fee_cents": r.FormValue("fee_cents"),
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
		_, err := s.api.Authed(sess.BearerToken).UpdateMentorProfile(r.Context(), fields, avatarName, avatar)
		if err != nil {
			s.handleBackendError(w, r, err, RouteMentorProfile)
			return
		}

		redirectSuccess(w, r, RouteMentorProfile)
	}
}
