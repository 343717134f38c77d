package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.Mutation("create")
	m.Mutation("create")
	m.Mutation("delete")
	m.ValidationFailure("date")
	m.Export("empty")
	m.SetRecords(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("date")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("empty")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.records))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Mutation("create")
		m.ValidationFailure("time")
		m.Export("ok")
		m.SetRecords(1)
	})
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Mutation("update")
	m.SetRecords(2)

	path := filepath.Join(t.TempDir(), "runlog.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `runlog_store_mutations_total{op="update"} 1`)
	assert.Contains(t, string(data), "runlog_records 2")
}
