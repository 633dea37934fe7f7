package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/session"
)

// DashboardHandler is the role-gated view selector: one entry point that
// renders the student, mentor, or admin view for the current session.
func (s *Server) DashboardHandler() http.HandlerFunc {
	studentTmpl := mustParseTemplate("dashboard_student.html")
	mentorTmpl := mustParseTemplate("dashboard_mentor.html")
	adminTmpl := mustParseTemplate("dashboard_admin.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		api := s.api.Authed(sess.BearerToken)

		data := map[string]any{
			"AppName":     s.config.GetAppName(),
			"DisplayName": sess.DisplayName,
			"Role":        string(sess.Role),
			"Error":       r.URL.Query().Get("error"),
		}

		switch sess.Role {
		case session.RoleStudent:
			pending, err := api.PendingConnections(r.Context())
			if err != nil {
				if backend.IsAuthError(err) {
					s.expireSession(w, r)
					return
				}
				log.Err(err).Msg("student dashboard: pending connections")
				data["Error"] = pageError(err)
			}
			approved, err := api.ApprovedConnections(r.Context())
			if err != nil && !backend.IsAuthError(err) {
				log.Err(err).Msg("student dashboard: approved connections")
			}
			data["Pending"] = pending
			data["Approved"] = approved
			render(w, studentTmpl, data)

		case session.RoleMentor:
			pending, err := api.PendingConnections(r.Context())
			if err != nil {
				if backend.IsAuthError(err) {
					s.expireSession(w, r)
					return
				}
				log.Err(err).Msg("mentor dashboard: pending connections")
				data["Error"] = pageError(err)
			}
			negotiations, err := api.Negotiations(r.Context())
			if err != nil && !backend.IsAuthError(err) {
				log.Err(err).Msg("mentor dashboard: negotiations")
			}
			data["Pending"] = pending
			data["Negotiations"] = negotiations
			render(w, mentorTmpl, data)

		case session.RoleAdmin:
			affiliations, err := api.PendingAffiliations(r.Context())
			if err != nil {
				if backend.IsAuthError(err) {
					s.expireSession(w, r)
					return
				}
				log.Err(err).Msg("admin dashboard: pending affiliations")
				data["Error"] = pageError(err)
			}
			rooms, err := api.PendingRooms(r.Context())
			if err != nil && !backend.IsAuthError(err) {
				log.Err(err).Msg("admin dashboard: pending rooms")
			}
			data["Affiliations"] = affiliations
			data["Rooms"] = rooms
			render(w, adminTmpl, data)

		default:
			// RequireSession only admits valid roles; treat anything else as
			// a broken session.
			s.expireSession(w, r)
		}
	}
}
