// Package kv defines the string key-value boundary the run log persists to.
//
// The run log uses exactly two keys: one for the committed collection and one
// for the in-progress draft. Backends live in subpackages:
//
//   - memory: process memory (tests, throwaway sessions)
//   - fs:     one file per key under a directory
//   - sqlite: a single-table SQLite database
//   - s3:     one object per key in an S3-compatible bucket
//
// Writers are last-writer-wins. Two processes writing the same key will
// silently clobber each other; the run log assumes a single user.
package kv

import (
	"context"
	"fmt"
	"strings"
)

// Driver identifies a concrete backend.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFS     Driver = "fs"
	DriverSQLite Driver = "sqlite"
	DriverS3     Driver = "s3"
)

// Drivers lists every supported driver.
var Drivers = []Driver{DriverMemory, DriverFS, DriverSQLite, DriverS3}

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Driver reports the backend kind.
	Driver() Driver
	// Close releases backend resources.
	Close() error
}

// ValidateKey rejects keys that some backends cannot represent.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("kv: empty key")
	}
	if strings.ContainsAny(key, "/\\") || key == "." || key == ".." {
		return fmt.Errorf("kv: invalid key %q", key)
	}
	return nil
}
