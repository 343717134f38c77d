package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/runlog/internal/kv/fs"
	"github.com/roach88/runlog/internal/kv/memory"
	"github.com/roach88/runlog/internal/model"
)

func TestLoadWithoutDraft(t *testing.T) {
	s := New(memory.New())
	assert.Equal(t, model.EmptyDraft(), s.Load(context.Background()))
	assert.Equal(t, "active", s.Load(context.Background()).Mood)
}

func TestSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	s := New(backend)

	d := model.Draft{Date: "2025-03-01", Distance: "3.1", Time: "25:00", Mood: "slow", Weight: ""}
	require.NoError(t, s.Save(ctx, d))
	assert.Equal(t, d, New(backend).Load(ctx))

	raw, ok, err := backend.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"date":"2025-03-01","distance":"3.1","time":"25:00","mood":"slow","weight":""}`, raw)

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, model.EmptyDraft(), s.Load(ctx))
}

func TestLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"null", "{", "[1,2]", "42"} {
		backend := memory.New()
		require.NoError(t, backend.Set(ctx, DefaultKey, raw))
		assert.Equal(t, model.EmptyDraft(), New(backend).Load(ctx), "content %q", raw)
	}
}

func TestClearWithoutDraft(t *testing.T) {
	backend, err := fs.New(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, New(backend).Clear(context.Background()))
}

func TestDraftIndependentOfRuns(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	require.NoError(t, backend.Set(ctx, "runs_v1", "[]"))

	s := New(backend, WithKey("other_draft"))
	require.NoError(t, s.Save(ctx, model.Draft{Date: "2025-01-01"}))

	runs, _, err := backend.Get(ctx, "runs_v1")
	require.NoError(t, err)
	assert.Equal(t, "[]", runs)
	_, ok, err := backend.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
