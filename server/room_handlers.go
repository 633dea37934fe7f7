package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/server/forms"
	"github.com/uniguide/webapp/session"
)

// RoomsHandler lists approved discussion rooms for any signed-in role.
func (s *Server) RoomsHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("rooms.html")

	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)

		data := map[string]any{
			"AppName": s.config.GetAppName(),
			"IsAdmin": sess.Role == session.RoleAdmin,
			"Error":   r.URL.Query().Get("error"),
		}

		rooms, err := s.api.Authed(sess.BearerToken).Rooms(r.Context())
		if err != nil {
			if backend.IsAuthError(err) {
				s.expireSession(w, r)
				return
			}
			log.Err(err).Msg("room list fetch failed")
			data["Error"] = pageError(err)
		}

		data["Rooms"] = rooms
		render(w, tmpl, data)
	}
}

// RoomCreateHandler proposes a room; it shows up once an admin approves.
func (s *Server) RoomCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := forms.RoomCreate{
			Topic:       r.FormValue("topic"),
			Description: r.FormValue("description"),
		}
		if err := forms.Validate(form); err != nil {
			redirectWithError(w, r, RouteRooms, err.Error())
			return
		}

		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).CreateRoom(r.Context(), form.Topic, form.Description)
		if err != nil {
			s.handleBackendError(w, r, err, RouteRooms)
			return
		}

		redirectSuccess(w, r, RouteRooms)
	}
}

func (s *Server) RoomJoinHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		err := s.api.Authed(sess.BearerToken).JoinRoom(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteRooms)
			return
		}
		redirectSuccess(w, r, RouteRooms)
	}
}

func (s *Server) RoomApproveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).ApproveRoom(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) RoomRejectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).RejectRoom(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}
