package sqlite

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/runlog/internal/kv"
	"github.com/roach88/runlog/internal/kv/kvtest"
)

// createTestStore opens a fresh database in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store { return createTestStore(t) })
}

func TestPragmas(t *testing.T) {
	s := createTestStore(t)
	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "runs_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestWriteCount(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
	}
	n, err := s.WriteCount(ctx, "runs_v1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestWriteCountResetsAfterRemove(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
	require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
	require.NoError(t, s.Remove(ctx, "runs_v1"))

	n, err := s.WriteCount(ctx, "runs_v1")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
	n, err = s.WriteCount(ctx, "runs_v1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSetLogsWriteCount(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := Open(filepath.Join(t.TempDir(), "test.db"), WithLogger(logger))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
	require.NoError(t, s.Set(ctx, "runs_v1", "[1]"))

	assert.Contains(t, buf.String(), "key=runs_v1 seq=1")
	assert.Contains(t, buf.String(), "key=runs_v1 seq=2")
}

func TestRemoveRejectsInvalidKey(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	require.NoError(t, s.Set(ctx, "runs_v1", "[]"))

	assert.Error(t, s.Remove(ctx, ""))
	assert.Error(t, s.Remove(ctx, "../runs_v1"))

	_, err := s.WriteCount(ctx, "..")
	assert.Error(t, err)

	v, ok, err := s.Get(ctx, "runs_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestMigrateLegacySchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "legacy.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec(`DROP TABLE kv`)
	require.NoError(t, err)
	_, err = s.db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO kv (key, value) VALUES ('runs_v1', '[]')`)
	require.NoError(t, err)
	_, err = s.db.Exec(`PRAGMA user_version = 0`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "runs_v1", "[1]"))
	n, err := s.WriteCount(ctx, "runs_v1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}
