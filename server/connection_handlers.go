package server

import (
	"net/http"
)

// Connection decisions land back on the dashboard, which lists them.

func (s *Server) ConnectionApproveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).ApproveConnection(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) ConnectionRejectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).RejectConnection(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

// ConnectionDeleteHandler lets a student withdraw their own pending request.
func (s *Server) ConnectionDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		err := s.api.Authed(sess.BearerToken).DeleteConnection(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

// AffiliationApplyHandler submits a mentor's request to join a university's
// mentor roster.
func (s *Server) AffiliationApplyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		universityID := r.FormValue("university_id")
		if universityID == "" {
			redirectWithError(w, r, RouteUniversities, "university is required")
			return
		}

		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).ApplyAffiliation(r.Context(), universityID)
		if err != nil {
			s.handleBackendError(w, r, err, RouteUniversities)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) AffiliationApproveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).ApproveAffiliation(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) AffiliationRejectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFrom(r)
		_, err := s.api.Authed(sess.BearerToken).RejectAffiliation(r.Context(), r.PathValue("id"))
		if err != nil {
			s.handleBackendError(w, r, err, RouteDashboard)
			return
		}
		redirectSuccess(w, r, RouteDashboard)
	}
}
