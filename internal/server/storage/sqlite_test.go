package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkovs/todolist/internal/common"
	"github.com/avolkovs/todolist/internal/server/users"
)

func TestOpen_SQLite_RunsMigrationsAndStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todolist.db")

	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	u, err := store.Users().Save(ctx, users.New("a@b.com", "secret1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	got, err := store.Users().FindByAccount(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = store.Users().Save(ctx, users.New("a@b.com", "other12"))
	assert.True(t, errors.Is(err, common.ErrorAccountExists))
}

func TestOpen_SQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todolist.db")
	ctx := context.Background()

	store, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = store.Users().Save(ctx, users.New("a@b.com", "secret1"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// reopening must not fail on already-applied migrations
	store, err = Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Users().FindByAccount(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Account)
}
