package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/stagiaire/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "session.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetThenGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("token", "abc"))

	v, ok, err := s.Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestGetUnknownKey(t *testing.T) {
	s := newTestStore(t)

	v, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSetOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("token", "first"))
	require.NoError(t, s.Set("token", "second"))

	v, _, err := s.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("token", "abc"))
	require.NoError(t, s.Delete("token"))
	require.NoError(t, s.Delete("never-set"))

	_, ok, err := s.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValuesSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "session.db")

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, SaveIdentity(s, "65f0c0ffee"))
	require.NoError(t, SaveToken(s, "jwt-token"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	sess, err := Load(reopened)
	require.NoError(t, err)
	assert.Equal(t, model.Session{Identity: "65f0c0ffee", Token: "jwt-token"}, sess)
}
