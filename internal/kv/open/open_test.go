package open

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/runlog/internal/config"
	"github.com/roach88/runlog/internal/kv"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.StorageConfig
		want kv.Driver
	}{
		{"memory", config.StorageConfig{Driver: "memory"}, kv.DriverMemory},
		{"fs", config.StorageConfig{Driver: "fs", Path: filepath.Join(dir, "data")}, kv.DriverFS},
		{"sqlite", config.StorageConfig{Driver: "sqlite", Path: filepath.Join(dir, "runlog.db")}, kv.DriverSQLite},
		{"s3", config.StorageConfig{Driver: "s3", S3: config.S3Config{
			Bucket: "runs", Region: "us-east-1", AccessKeyID: "AKIA", SecretAccessKey: "SECRET",
		}}, kv.DriverS3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.cfg, nil)
			require.NoError(t, err)
			defer s.Close()
			assert.Equal(t, tt.want, s.Driver())
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "postgres"}, nil)
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestOpenS3RequiresBucket(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "s3"}, nil)
	assert.Error(t, err)
}
