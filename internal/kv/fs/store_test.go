package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/runlog/internal/kv"
	"github.com/roach88/runlog/internal/kv/kvtest"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		s, err := New(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "data")
	s, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, root, s.Root())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSetLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := New(root)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "runs_v1.json", entries[0].Name())
}

func TestValuesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	s, err := New(root)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "runs_v1", `[{"id":"a"}]`))

	reopened, err := New(root)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "runs_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
}
