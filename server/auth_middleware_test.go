package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/uniguide/webapp/backend"
	"github.com/uniguide/webapp/internal/config"
	"github.com/uniguide/webapp/session"
)

func newTestServer(t *testing.T, backendURL string) (*Server, *session.Store) {
	t.Helper()
	store := session.NewStore(session.NewInMemoryRepo())
	return New(config.New(), backend.New(backendURL), store), store
}

func addSession(t *testing.T, store *session.Store, id string, role session.Role, token string) {
	t.Helper()
	err := store.Set(id, session.Session{
		PrincipalID: "p-" + id,
		Role:        role,
		BearerToken: token,
		DisplayName: "Test User",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
}

func sessionCookie(id string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: id}
}

func redirectError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	return loc.Query().Get("error")
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "p1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestRequireSession(t *testing.T) {
	srv, store := newTestServer(t, "http://backend.invalid")

	t.Run("no cookie redirects to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "Please log in", redirectError(t, rec))
	})

	t.Run("unknown session redirects and clears the cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.AddCookie(sessionCookie("no-such-session"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "Session expired, please log in again", redirectError(t, rec))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, sessionCookieName, cookies[0].Name)
		require.Empty(t, cookies[0].Value)
	})

	t.Run("expired bearer token clears the session", func(t *testing.T) {
		addSession(t, store, "lapsed", session.RoleStudent, expiredJWT(t))

		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.AddCookie(sessionCookie("lapsed"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "Session expired, please log in again", redirectError(t, rec))

		_, ok := store.Get("lapsed")
		require.False(t, ok)
	})
}

func TestRequireRole(t *testing.T) {
	srv, store := newTestServer(t, "http://backend.invalid")

	t.Run("wrong role gets forbidden", func(t *testing.T) {
		addSession(t, store, "mentor-1", session.RoleMentor, "opaque-token")

		req := httptest.NewRequest("GET", "/student/profile", nil)
		req.AddCookie(sessionCookie("mentor-1"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "Not allowed")
	})

	t.Run("student cannot reach admin moderation routes", func(t *testing.T) {
		addSession(t, store, "student-1", session.RoleStudent, "opaque-token")

		req := httptest.NewRequest("POST", "/rooms/r1/approve", nil)
		req.AddCookie(sessionCookie("student-1"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
