package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/miketth/hyprinput/pkg/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "journal.db"), zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	at := time.UnixMilli(1700000000123)

	for _, action := range []string{"workspace", "focus", "spawn"} {
		require.NoError(t, store.Record(ctx, journal.Entry{
			Session: "s1",
			Seat:    "seat0",
			Action:  action,
			Arg:     action + "-arg",
			At:      at,
		}))
	}

	recent, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "spawn", recent[0].Action)
	assert.Equal(t, "focus", recent[1].Action)
	assert.Equal(t, "focus-arg", recent[1].Arg)
	assert.Equal(t, at.UnixMilli(), recent[0].At.UnixMilli())
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	store, err := NewStore(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, journal.Entry{Session: "s", Seat: "seat0", Action: "close", At: time.Now()}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer reopened.Close()

	recent, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "close", recent[0].Action)
}

func TestDumpSchema(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tables, err := store.querier.DumpTables(ctx)
	require.NoError(t, err)

	var found bool
	for _, stmt := range tables {
		if stmt != nil && strings.Contains(strings.ToLower(*stmt), "create table actions") {
			found = true
		}
	}
	assert.True(t, found)

	rest, err := store.querier.DumpRest(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, rest)
}
