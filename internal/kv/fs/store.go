// Package fs implements a kv.Store that keeps one file per key under a root
// directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/runlog/internal/kv"
)

// DefaultRoot is used when no root directory is configured.
const DefaultRoot = "runlog-data"

// Store implements kv.Store on the local filesystem.
type Store struct {
	root string
}

// New creates the root directory if needed and returns a store rooted there.
func New(root string) (*Store, error) {
	if root == "" {
		root = DefaultRoot
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create kv root: %w", err)
	}
	return &Store{root: root}, nil
}

// Driver returns the backend identifier.
func (s *Store) Driver() kv.Driver { return kv.DriverFS }

// Root returns the directory holding the key files.
func (s *Store) Root() string { return s.root }

func (s *Store) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

// Get reads the file for key.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value to a temp file and renames it over the key file, so a
// reader never sees a half-written value.
func (s *Store) Set(_ context.Context, key, value string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.root, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Remove deletes the file for key.
func (s *Store) Remove(_ context.Context, key string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
