// Package kvtest holds the behavior every kv.Store backend must share.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/runlog/internal/kv"
)

// Run exercises a backend produced by open. Each subtest gets a fresh store.
func Run(t *testing.T, open func(t *testing.T) kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key is absent", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Get(ctx, "runs_v1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "runs_v1", `[{"id":"a"}]`))

		v, ok, err := s.Get(ctx, "runs_v1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"a"}]`, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "run_draft_v1", `{"date":"a"}`))
		require.NoError(t, s.Set(ctx, "run_draft_v1", `{"date":"b"}`))

		v, ok, err := s.Get(ctx, "run_draft_v1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"date":"b"}`, v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "runs_v1", ""))

		_, ok, err := s.Get(ctx, "runs_v1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
		require.NoError(t, s.Set(ctx, "run_draft_v1", "{}"))
		require.NoError(t, s.Remove(ctx, "run_draft_v1"))

		v, ok, err := s.Get(ctx, "runs_v1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", v)
	})

	t.Run("remove", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "runs_v1", "[]"))
		require.NoError(t, s.Remove(ctx, "runs_v1"))

		_, ok, err := s.Get(ctx, "runs_v1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove absent key", func(t *testing.T) {
		s := open(t)
		assert.NoError(t, s.Remove(ctx, "never_written"))
	})

	t.Run("invalid key", func(t *testing.T) {
		s := open(t)
		assert.Error(t, s.Set(ctx, "", "x"))
		assert.Error(t, s.Set(ctx, "../escape", "x"))

		for _, key := range []string{"", "..", "../escape", `a\b`} {
			_, _, err := s.Get(ctx, key)
			assert.Error(t, err, "Get(%q)", key)
			assert.Error(t, s.Remove(ctx, key), "Remove(%q)", key)
		}
	})

	t.Run("driver is known", func(t *testing.T) {
		s := open(t)
		assert.Contains(t, kv.Drivers, s.Driver())
	})
}
