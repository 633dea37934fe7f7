package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/uniguide/webapp/backend"
)

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m1","display_name":"Dr. Rao","rating":4.5,"review_count":12,"fee_cents":5000}`))
	}))
	defer srv.Close()

	client := backend.NewWithHTTPClient(srv.URL, srv.Client())

	t.Run("authed client attaches the session token", func(t *testing.T) {
		mentor, err := client.Authed("t1").Mentor(context.Background(), "m1")
		require.NoError(t, err)
		require.Equal(t, "Bearer t1", gotAuth)
		require.Equal(t, "Dr. Rao", mentor.DisplayName)
	})

	t.Run("public client omits the header", func(t *testing.T) {
		_, err := client.Mentor(context.Background(), "m1")
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})
}

func TestClient_UnauthorizedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"token_expired","message":"token has expired"}`))
	}))
	defer srv.Close()

	client := backend.NewWithHTTPClient(srv.URL, srv.Client())
	_, err := client.Authed("stale").Mentor(context.Background(), "m1")

	require.Error(t, err)
	require.True(t, backend.IsAuthError(err))

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "token_expired", apiErr.Code)
	require.Equal(t, "token has expired", apiErr.UserMessage())
}

func TestClient_RemoteErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"you already sent a request to this mentor"}`))
	}))
	defer srv.Close()

	client := backend.NewWithHTTPClient(srv.URL, srv.Client())
	_, err := client.Authed("t1").ApplyConnection(context.Background(), "m1", "hi")

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.False(t, backend.IsAuthError(err))
	require.Equal(t, "you already sent a request to this mentor", apiErr.UserMessage())
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := backend.NewWithHTTPClient(srv.URL, srv.Client())
	_, err := client.Rooms(context.Background())

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "Something went wrong, please try again", apiErr.UserMessage())
}

func TestClient_ContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	client := backend.NewWithHTTPClient(srv.URL, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.Notifications(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTokenExpired(t *testing.T) {
	signed := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u1",
			"exp": exp.Unix(),
		})
		s, err := tok.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return s
	}

	t.Run("expired JWT", func(t *testing.T) {
		require.True(t, backend.TokenExpired(signed(time.Now().Add(-time.Hour))))
	})

	t.Run("live JWT", func(t *testing.T) {
		require.False(t, backend.TokenExpired(signed(time.Now().Add(time.Hour))))
	})

	t.Run("opaque token defers to the backend", func(t *testing.T) {
		require.False(t, backend.TokenExpired("not-a-jwt"))
	})
}
