package creds

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLiteStore(db)

	token, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store must hold no token")

	require.NoError(t, store.SetToken(ctx, "abc"))
	token, err = store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	// Overwrite in place.
	require.NoError(t, store.SetToken(ctx, "def"))
	token, err = store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def", token)

	require.NoError(t, store.ClearToken(ctx))
	token, err = store.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing an already-empty slot is fine.
	require.NoError(t, store.ClearToken(ctx))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).SetToken(ctx, "persisted"))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	token, err := NewSQLiteStore(db).GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "creds.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
