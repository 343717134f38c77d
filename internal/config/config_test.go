package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "runlog.db", cfg.Storage.Path)
	assert.Equal(t, "runs_v1", cfg.Storage.CollectionKey)
	assert.Equal(t, "run_draft_v1", cfg.Storage.DraftKey)
	assert.Equal(t, "running-log.csv", cfg.Export.Filename)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Empty(t, cfg.Metrics.Textfile)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runlog.yaml")
	content := `
storage:
  driver: fs
  path: /tmp/runs
export:
  filename: runs.csv
logging:
  level: debug
  format: json
metrics:
  textfile: /var/lib/node_exporter/runlog.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fs", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/runs", cfg.Storage.Path)
	assert.Equal(t, "runs_v1", cfg.Storage.CollectionKey)
	assert.Equal(t, "runs.csv", cfg.Export.Filename)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/var/lib/node_exporter/runlog.prom", cfg.Metrics.Textfile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse([]byte("# nothing configured\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseEmptySection(t *testing.T) {
	cfg, err := Parse([]byte("storage:\nlogging:\n  level: info\n"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseS3(t *testing.T) {
	cfg, err := Parse([]byte(`
storage:
  driver: s3
  s3:
    bucket: my-runs
    prefix: me
    path_style: true
`))
	require.NoError(t, err)
	assert.Equal(t, "my-runs", cfg.Storage.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.Storage.S3.Region)
	assert.True(t, cfg.Storage.S3.PathStyle)
	assert.Empty(t, cfg.Storage.Path)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown driver", "storage:\n  driver: postgres\n", "invalid config"},
		{"unknown key", "storage:\n  drvier: fs\n", "invalid config"},
		{"unknown section", "server:\n  port: 80\n", "invalid config"},
		{"bad level", "logging:\n  level: loud\n", "invalid config"},
		{"bad export name", "export:\n  filename: runs.txt\n", "invalid config"},
		{"bad key", "storage:\n  draft_key: a/b\n", "invalid config"},
		{"wrong type", "storage:\n  s3:\n    path_style: yes-please\n", "invalid config"},
		{"same keys", "storage:\n  collection_key: k\n  draft_key: k\n", "must differ"},
		{"s3 without bucket", "storage:\n  driver: s3\n", "bucket is required"},
		{"secret missing", "storage:\n  s3:\n    access_key_id: AKIA\n", "secret_access_key"},
		{"not yaml", "storage: [\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
