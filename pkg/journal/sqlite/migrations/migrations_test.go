package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateTwice(t *testing.T) {
	db := openDB(t)
	log := zap.NewNop().Sugar()

	v, err := Migrate(db, log)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)

	v, err = Migrate(db, log)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)

	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM actions").Scan(&n))
	assert.Zero(t, n)
}

func TestMigrateRefusesDirtySchema(t *testing.T) {
	db := openDB(t)
	log := zap.NewNop().Sugar()

	_, err := Migrate(db, log)
	require.NoError(t, err)

	_, err = db.Exec("UPDATE schema_migrations SET dirty = 1")
	require.NoError(t, err)

	_, err = Migrate(db, log)
	assert.ErrorIs(t, err, ErrDirty)
}
