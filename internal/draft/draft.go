// Package draft autosaves the single in-progress run entry.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/runlog/internal/kv"
	"github.com/roach88/runlog/internal/logging"
	"github.com/roach88/runlog/internal/model"
)

// DefaultKey is the key holding the draft.
const DefaultKey = "run_draft_v1"

// Store persists one Draft under a fixed key. The draft is independent of
// the run collection and survives restarts until cleared.
type Store struct {
	kv     kv.Store
	key    string
	logger *slog.Logger

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the draft key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a draft store over backend.
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{kv: backend, key: DefaultKey, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save overwrites the persisted draft.
func (s *Store) Save(ctx context.Context, d model.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load returns the persisted draft, or the empty draft when there is none or
// the stored value cannot be read.
func (s *Store) Load(ctx context.Context) model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read draft", "key", s.key, "error", err)
		return model.EmptyDraft()
	}
	if !ok || data == "null" {
		return model.EmptyDraft()
	}

	var d model.Draft
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		s.logger.Warn("stored draft is malformed", "key", s.key, "error", err)
		return model.EmptyDraft()
	}
	return d
}

// Clear removes the persisted draft.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
