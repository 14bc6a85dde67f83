package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"HBnB/internal/cli/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*TokenStoreSQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "session.sqlite")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestTokenStoreSQLite_SaveLoadClear(t *testing.T) {
	s, _ := openTemp(t)

	// пустая БД
	_, err := s.Load()
	assert.ErrorIs(t, err, repo.ErrNoToken)

	exp := time.Date(2031, 5, 6, 7, 8, 9, 0, time.UTC)
	require.NoError(t, s.Save(repo.StoredToken{Token: "tok-1", ExpiresAt: exp}))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.True(t, exp.Equal(got.ExpiresAt))

	// upsert перезаписывает
	require.NoError(t, s.Save(repo.StoredToken{Token: "tok-2"}))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.Token)
	assert.True(t, got.ExpiresAt.IsZero())

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.ErrorIs(t, err, repo.ErrNoToken)
}

func TestTokenStoreSQLite_PersistsAcrossReopen(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Save(repo.StoredToken{Token: "persisted"}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.Load()
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Token)
}

func TestTokenStoreSQLite_SaveEmptyToken(t *testing.T) {
	s, _ := openTemp(t)
	assert.Error(t, s.Save(repo.StoredToken{}))
}
