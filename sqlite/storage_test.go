package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_GetItem(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing key", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewLocalStorage(MustOpenDB(t))

		_, err := s.GetItem(context.Background(), mdview.ThemeKey)

		assert.Equal(t, mdview.ENOTFOUND, mdview.ErrorCode(err))
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewLocalStorage(MustOpenDB(t))

		_, err := s.GetItem(context.Background(), "")

		assert.Equal(t, mdview.EINVALID, mdview.ErrorCode(err))
	})
}

func TestLocalStorage_SetItem(t *testing.T) {
	t.Parallel()

	t.Run("stores and replaces value", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewLocalStorage(MustOpenDB(t))

		require.NoError(t, s.SetItem(ctx, mdview.ThemeKey, "dark"))
		require.NoError(t, s.SetItem(ctx, mdview.ThemeKey, "light"))

		v, err := s.GetItem(ctx, mdview.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "light", v)
	})

	t.Run("records update time", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewLocalStorage(MustOpenDB(t))
		before := time.Now().Add(-time.Second)

		require.NoError(t, s.SetItem(ctx, "k", "v"))

		updated, err := s.UpdatedAt(ctx, "k")
		require.NoError(t, err)
		assert.True(t, updated.After(before))
	})

	t.Run("persists across reopen", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := t.TempDir() + "/mdview.db"

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, sqlite.NewLocalStorage(db).SetItem(ctx, mdview.ThemeKey, "dark"))
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		v, err := sqlite.NewLocalStorage(db).GetItem(ctx, mdview.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "dark", v)
	})
}
