package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOpenAppliesEmbeddedMigrations(t *testing.T) {
	conn := openTestDB(t)

	for _, table := range []string{"gerbangs", "lalins", "users"} {
		var name string
		err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	applied, err := NewMigrationManager(conn).GetAppliedMigrations(context.Background())
	require.NoError(t, err)
	assert.True(t, applied[1])
	assert.True(t, applied[2])
	assert.True(t, applied[3])
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, NewMigrationManager(conn).RunMigrations(context.Background()))

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 3, count)
}

func TestLoadMigrationsSkipsInvalidNames(t *testing.T) {
	source := fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"readme.sql":     {Data: []byte("-- not a migration")},
		"notes.txt":      {Data: []byte("ignored")},
	}

	migrations, err := NewMigrationManager(nil).WithSource(source).LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "001_first", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := Transaction(ctx, conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO users (username, password_hash) VALUES ('a', 'x')"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Zero(t, count)
}
