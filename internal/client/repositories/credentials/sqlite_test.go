package credentials

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM credentials;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetAbsentKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSQLiteRepository_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyToken, "tok-1"))
	require.NoError(t, repo.Set(ctx, KeyUsername, "ada"))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)

	// overwrite wins
	require.NoError(t, repo.Set(ctx, KeyToken, "tok-2"))
	v, err = repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", v)
}

func TestSQLiteRepository_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyToken, "tok-1"))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestOpen_RunsMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, KeyUsername, "ada"))

	v, err := repo.Get(ctx, KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, "ada", v)
}
