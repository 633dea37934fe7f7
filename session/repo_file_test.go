package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uniguide/webapp/session"
)

func TestFileRepo_EmptyStore(t *testing.T) {
	repo, err := session.NewFileRepo(filepath.Join(t.TempDir(), "sessions.json"))
	require.NoError(t, err)

	t.Run("all on empty store yields no sessions", func(t *testing.T) {
		all, err := repo.All()
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("get on empty store yields not found", func(t *testing.T) {
		_, err := repo.Get("missing")
		require.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("delete on empty store is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete("missing"))
	})
}

func TestFileRepo_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	repo, err := session.NewFileRepo(path)
	require.NoError(t, err)

	all, err := repo.All()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestFileRepo_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")

	repo, err := session.NewFileRepo(path)
	require.NoError(t, err)

	want := session.Session{
		PrincipalID: "u1",
		Role:        session.RoleStudent,
		BearerToken: "t1",
		DisplayName: "Asha",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Upsert("sid-1", want))

	t.Run("get returns the stored session", func(t *testing.T) {
		got, err := repo.Get("sid-1")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("a fresh repo on the same file sees the session", func(t *testing.T) {
		// Simulates a portal restart.
		reopened, err := session.NewFileRepo(path)
		require.NoError(t, err)

		got, err := reopened.Get("sid-1")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("delete removes the session durably", func(t *testing.T) {
		require.NoError(t, repo.Delete("sid-1"))

		reopened, err := session.NewFileRepo(path)
		require.NoError(t, err)
		_, err = reopened.Get("sid-1")
		require.ErrorIs(t, err, session.ErrNotFound)
	})
}
