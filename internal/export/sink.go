package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink delivers a rendered export under a filename.
type Sink interface {
	Deliver(ctx context.Context, filename string, data []byte) error
}

// FileSink writes exports into Dir, replacing any existing file.
type FileSink struct {
	Dir string
}

// Path returns where filename is written.
func (s FileSink) Path(filename string) string {
	return filepath.Join(s.Dir, filename)
}

// Deliver writes data to a temp file in Dir and renames it into place.
func (s FileSink) Deliver(_ context.Context, filename string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filename+".*")
	if err != nil {
		return fmt.Errorf("export %s: %w", filename, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("export %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export %s: %w", filename, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, filename)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export %s: %w", filename, err)
	}
	return nil
}

// WriterSink writes exports to W, ignoring the filename.
type WriterSink struct {
	W io.Writer
}

// Deliver copies data to W.
func (s WriterSink) Deliver(_ context.Context, _ string, data []byte) error {
	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
