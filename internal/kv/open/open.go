// Package open selects a kv.Store backend from configuration.
package open

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/runlog/internal/config"
	"github.com/roach88/runlog/internal/kv"
	"github.com/roach88/runlog/internal/kv/fs"
	"github.com/roach88/runlog/internal/kv/memory"
	"github.com/roach88/runlog/internal/kv/s3"
	"github.com/roach88/runlog/internal/kv/sqlite"
)

// Open returns the backend named by cfg.Driver.
//
//	memory: process memory, nothing survives exit
//	fs:     cfg.Path is the root directory
//	sqlite: cfg.Path is the database file
//	s3:     cfg.S3 names the bucket
//
// logger may be nil; the sqlite backend logs each write to it at debug level.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (kv.Store, error) {
	switch kv.Driver(cfg.Driver) {
	case kv.DriverMemory:
		return memory.New(), nil
	case kv.DriverFS:
		return fs.New(cfg.Path)
	case kv.DriverSQLite:
		return sqlite.Open(cfg.Path, sqlite.WithLogger(logger))
	case kv.DriverS3:
		return s3.New(ctx, s3.Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Prefix:          cfg.S3.Prefix,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
