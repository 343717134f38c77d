// Package store owns the committed run collection.
//
// The collection is an ordered list of records in insertion order, persisted
// as one JSON array under a single key. Every mutation writes the whole
// collection before returning; the in-memory copy is swapped only after the
// write succeeds, so callers never observe a state that was not persisted.
//
// Unknown ids are not errors: Update and Delete on an id that is not in the
// collection do nothing.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/runlog/internal/confirm"
	"github.com/roach88/runlog/internal/kv"
	"github.com/roach88/runlog/internal/logging"
	"github.com/roach88/runlog/internal/metrics"
	"github.com/roach88/runlog/internal/model"
)

// DefaultKey is the key holding the collection.
const DefaultKey = "runs_v1"

// ClearQuestion is asked before Clear truncates the collection.
const ClearQuestion = "Delete ALL runs?"

// ErrDuplicateID is returned by Create when the id is already taken.
var ErrDuplicateID = errors.New("record id already exists")

// RunStore is the single source of truth for committed records.
type RunStore struct {
	kv      kv.Store
	key     string
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	records []model.Record
}

// Option configures a RunStore.
type Option func(*RunStore)

// WithKey overrides the collection key.
func WithKey(key string) Option {
	return func(s *RunStore) { s.key = key }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *RunStore) { s.logger = logger }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *RunStore) { s.metrics = m }
}

// New creates a RunStore over backend. Call Load to read persisted records.
func New(backend kv.Store, opts ...Option) *RunStore {
	s := &RunStore{
		kv:      backend,
		key:     DefaultKey,
		logger:  logging.Discard(),
		records: []model.Record{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the collection from the backend, replacing the in-memory copy.
// A missing key, a read failure, or malformed content all yield an empty
// collection; Load never fails.
func (s *RunStore) Load(ctx context.Context) []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.read(ctx)
	s.metrics.SetRecords(len(s.records))
	return model.CloneAll(s.records)
}

func (s *RunStore) read(ctx context.Context) []model.Record {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read runs, starting empty", "key", s.key, "error", err)
		return []model.Record{}
	}
	if !ok {
		return []model.Record{}
	}

	records, err := unmarshalRecords(data)
	if err != nil {
		s.logger.Warn("stored runs are malformed, starting empty", "key", s.key, "error", err)
		return []model.Record{}
	}
	s.logger.Debug("loaded runs", "key", s.key, "count", len(records))
	return records
}

// Records returns a snapshot of the collection in insertion order.
func (s *RunStore) Records() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneAll(s.records)
}

// Len returns the number of records.
func (s *RunStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Get returns the record with id.
func (s *RunStore) Get(id string) (model.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return model.CloneAll(s.records[i : i+1])[0], true
	}
	return model.Record{}, false
}

// Create appends rec and persists the collection.
func (s *RunStore) Create(ctx context.Context, rec model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		return fmt.Errorf("create run: record has no id")
	}
	if s.indexOf(rec.ID) >= 0 {
		return fmt.Errorf("create run %s: %w", rec.ID, ErrDuplicateID)
	}

	next := make([]model.Record, 0, len(s.records)+1)
	next = append(next, s.records...)
	next = append(next, model.CloneAll([]model.Record{rec})...)
	return s.commit(ctx, "create", next, "id", rec.ID)
}

// Update merges patch onto the record with id, keeping its position, and
// persists. Pace and speed are derived again when distance or time change.
// An unknown id is ignored.
func (s *RunStore) Update(ctx context.Context, id string, patch model.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("update ignored, no such run", "id", id)
		return nil
	}

	next := model.CloneAll(s.records)
	next[i] = next[i].Apply(patch)
	return s.commit(ctx, "update", next, "id", id)
}

// Delete removes the record with id and persists. An unknown id is ignored.
func (s *RunStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("delete ignored, no such run", "id", id)
		return nil
	}

	next := make([]model.Record, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)
	return s.commit(ctx, "delete", next, "id", id)
}

// Clear empties the collection once c confirms. It reports whether the
// collection was cleared.
func (s *RunStore) Clear(ctx context.Context, c confirm.Confirmer) (bool, error) {
	if c == nil || !c.Confirm(ClearQuestion) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, "clear", []model.Record{}, "previous", len(s.records)); err != nil {
		return false, err
	}
	return true, nil
}

// commit persists next and, on success, makes it the current collection.
// Must be called with mu held.
func (s *RunStore) commit(ctx context.Context, op string, next []model.Record, logArgs ...any) error {
	data, err := marshalRecords(next)
	if err != nil {
		return fmt.Errorf("%s run: %w", op, err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("%s run: persist: %w", op, err)
	}

	s.records = next
	s.metrics.Mutation(op)
	s.metrics.SetRecords(len(next))
	s.logger.Debug("runs persisted", append([]any{"op", op, "count", len(next)}, logArgs...)...)
	return nil
}

func (s *RunStore) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
