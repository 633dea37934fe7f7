package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/session"
)

func jsonResponse(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func unauthorized(t *testing.T, w http.ResponseWriter) {
	t.Helper()
	jsonResponse(t, w, http.StatusUnauthorized, map[string]string{
		"code":    "token_expired",
		"message": "token expired",
	})
}

func TestMentorDetailConnectGating(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mentor/m1", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, backend.Mentor{
			ID:          "m1",
			DisplayName: "Grace Hopper",
			Headline:    "Admissions mentor",
			FeeCents:    5000,
			Currency:    "USD",
		})
	})
	mux.HandleFunc("GET /mentor/m1/reviews", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, []backend.Review{})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	srv, store := newTestServer(t, ts.URL)
	addSession(t, store, "student-1", session.RoleStudent, "tok-student")
	addSession(t, store, "mentor-2", session.RoleMentor, "tok-mentor")

	t.Run("student sees the connect form", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/mentor/m1", nil)
		req.AddCookie(sessionCookie("student-1"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Request consultation")
	})

	t.Run("mentor does not see the connect form", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/mentor/m1", nil)
		req.AddCookie(sessionCookie("mentor-2"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Grace Hopper")
		require.NotContains(t, rec.Body.String(), "Request consultation")
	})
}

func TestBackendUnauthorizedExpiresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mentors", func(w http.ResponseWriter, r *http.Request) {
		unauthorized(t, w)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	srv, store := newTestServer(t, ts.URL)
	addSession(t, store, "student-1", session.RoleStudent, "tok-student")

	req := httptest.NewRequest("GET", "/mentors", nil)
	req.AddCookie(sessionCookie("student-1"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "Session expired, please log in again", redirectError(t, rec))

	_, ok := store.Get("student-1")
	require.False(t, ok, "session should be cleared after a backend 401")
}

func TestLoginSubmission(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "correct-horse" {
			unauthorized(t, w)
			return
		}
		jsonResponse(t, w, http.StatusOK, backend.AuthResult{
			Token: "tok-123",
			Principal: backend.Principal{
				ID:          "p1",
				Role:        "student",
				DisplayName: "Ada",
				Email:       "ada@example.com",
			},
		})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	srv, store := newTestServer(t, ts.URL)

	postLogin := func(password string) *httptest.ResponseRecorder {
		form := url.Values{"email": {"ada@example.com"}, "password": {password}}
		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid credentials establish a session", func(t *testing.T) {
		rec := postLogin("correct-horse")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, RouteDashboard, rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, sessionCookieName, cookies[0].Name)
		require.NotEmpty(t, cookies[0].Value)

		sess, ok := store.Get(cookies[0].Value)
		require.True(t, ok)
		require.Equal(t, session.RoleStudent, sess.Role)
		require.Equal(t, "tok-123", sess.BearerToken)
	})

	t.Run("bad credentials bounce back to login", func(t *testing.T) {
		rec := postLogin("wrong")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "Invalid email or password", redirectError(t, rec))
		require.Empty(t, rec.Result().Cookies())
	})
}

func TestDashboardRendersRoleView(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /connections", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("status") {
		case "pending":
			jsonResponse(t, w, http.StatusOK, []backend.Connection{
				{ID: "c1", MentorName: "Grace", StudentName: "Ada", Status: "pending"},
			})
		default:
			jsonResponse(t, w, http.StatusOK, []backend.Connection{})
		}
	})
	mux.HandleFunc("GET /negotiations", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, []backend.Negotiation{})
	})
	mux.HandleFunc("GET /affiliations", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, []backend.Affiliation{
			{ID: "a1", MentorName: "Grace", UniversityName: "MIT", Status: "pending"},
		})
	})
	mux.HandleFunc("GET /rooms", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, []backend.DiscussionRoom{})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	srv, store := newTestServer(t, ts.URL)
	addSession(t, store, "student-1", session.RoleStudent, "tok")
	addSession(t, store, "mentor-1", session.RoleMentor, "tok")
	addSession(t, store, "admin-1", session.RoleAdmin, "tok")

	getDashboard := func(sessionID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.AddCookie(sessionCookie(sessionID))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	t.Run("student view lists pending mentors", func(t *testing.T) {
		rec := getDashboard("student-1")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Grace")
		require.Contains(t, rec.Body.String(), "Pending requests")
	})

	t.Run("mentor view lists consultation requests", func(t *testing.T) {
		rec := getDashboard("mentor-1")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Consultation requests")
		require.Contains(t, rec.Body.String(), "Ada")
	})

	t.Run("admin view lists moderation queues", func(t *testing.T) {
		rec := getDashboard("admin-1")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Affiliation requests")
		require.Contains(t, rec.Body.String(), "MIT")
	})
}

func TestConnectionApproveRedirectsToDashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /connections/c1/approve", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-mentor", r.Header.Get("Authorization"))
		jsonResponse(t, w, http.StatusOK, backend.Connection{ID: "c1", Status: "approved"})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	srv, store := newTestServer(t, ts.URL)
	addSession(t, store, "mentor-1", session.RoleMentor, "tok-mentor")

	req := httptest.NewRequest("POST", "/connections/c1/approve", nil)
	req.AddCookie(sessionCookie("mentor-1"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, RouteDashboard, rec.Header().Get("Location"))
}

func TestNegotiationRespondValidation(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /negotiations/n1/respond", func(w http.ResponseWriter, r *http.Request) {
		called = true
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "counter", body["action"])
		require.EqualValues(t, 7500, body["counter_cents"])
		jsonResponse(t, w, http.StatusOK, backend.Negotiation{ID: "n1", Status: "countered"})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	srv, store := newTestServer(t, ts.URL)
	addSession(t, store, "mentor-1", session.RoleMentor, "tok")

	respond := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/negotiations/n1/respond", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(sessionCookie("mentor-1"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	t.Run("unsupported action never reaches the backend", func(t *testing.T) {
		rec := respond(url.Values{"action": {"haggle"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.False(t, called)
		require.Contains(t, redirectError(t, rec), "unsupported")
	})

	t.Run("counter offer is forwarded", func(t *testing.T) {
		rec := respond(url.Values{"action": {"counter"}, "counter_cents": {"7500"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.True(t, called)
		require.Equal(t, RouteNegotiations, rec.Header().Get("Location"))
	})
}

func TestUniversitiesPublicBrowse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /universities", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		require.Equal(t, "Germany", r.URL.Query().Get("country"))
		jsonResponse(t, w, http.StatusOK, []backend.University{
			{ID: "u1", Name: "TU Munich", Country: "Germany", City: "Munich"},
		})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	srv, _ := newTestServer(t, ts.URL)

	req := httptest.NewRequest("GET", "/universities?country=Germany", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "TU Munich")
}
