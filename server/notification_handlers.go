package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
)

func (s *Server) NotificationsHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("notifications.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)

		data := map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   r.URL.Query().Get("error"),
		}

		notifications, err := s.api.Authed(sess.BearerToken).Notifications(r.Context())
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("notification fetch failed")
			data["Error"] = pageError(err)
		}

		data["Notifications"] = notifications
		render(w, tmpl, data)
	}
}

func (s *Server) NotificationReadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		err := s.api.Authed(sess.BearerToken).MarkNotificationRead(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteNotifications)
			return
		}
		redirectSuccess(w, r, RouteNotifications)
	}
}

func (s *Server) NotificationUnreadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		err := s.api.Authed(sess.BearerToken).MarkNotificationUnread(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteNotifications)
			return
		}
		redirectSuccess(w, r, RouteNotifications)
	}
}

func (s *Server) NotificationDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		err := s.api.Authed(sess.BearerToken).DeleteNotification(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteNotifications)
			return
		}
		redirectSuccess(w, r, RouteNotifications)
	}
}
