package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/config"
	"github.com/roach88/runlog/internal/draft"
	"github.com/roach88/runlog/internal/kv"
	"github.com/roach88/runlog/internal/kv/open"
	"github.com/roach88/runlog/internal/logging"
	"github.com/roach88/runlog/internal/metrics"
	"github.com/roach88/runlog/internal/normalize"
	"github.com/roach88/runlog/internal/store"
)

// session wires one command invocation: config, logger, backend, stores.
type session struct {
	ctx     context.Context
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	backend kv.Store
	runs    *store.RunStore
	drafts  *draft.Store
	norm    *normalize.Normalizer

	closers []io.Closer
}

// openSession loads configuration and opens storage. Failures are reported
// through f and returned as ExitCommandError.
func openSession(opts *RootOptions, cmd *cobra.Command, f *OutputFormatter) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, f.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
		}
		cfg = loaded
	}

	logCfg := logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Output:    cfg.Logging.Output,
		AddSource: cfg.Logging.AddSource,
	}
	if opts.Verbose {
		logCfg.Level = "debug"
	}
	logger, logCloser, err := logging.New(logCfg)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeConfig, "failed to configure logging", err)
	}

	s := &session{
		ctx:     ctx,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
		closers: []io.Closer{logCloser},
	}

	backend := opts.Backend
	if backend == nil {
		logger.Debug("opening storage", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)
		backend, err = open.Open(ctx, cfg.Storage, logger)
		if err != nil {
			s.close()
			return nil, f.Fail(ExitCommandError, ErrCodeStorage, "failed to open storage", err)
		}
		s.closers = append([]io.Closer{backend}, s.closers...)
	}
	s.backend = backend

	s.runs = store.New(backend,
		store.WithKey(cfg.Storage.CollectionKey),
		store.WithLogger(logger),
		store.WithMetrics(s.metrics),
	)
	s.runs.Load(ctx)
	s.drafts = draft.New(backend,
		draft.WithKey(cfg.Storage.DraftKey),
		draft.WithLogger(logger),
	)
	s.norm = normalize.New(opts.IDs)

	return s, nil
}

// close writes the metrics textfile, if configured, and releases resources.
func (s *session) close() {
	if path := s.cfg.Metrics.Textfile; path != "" && s.metrics != nil {
		if err := s.metrics.WriteTextfile(path); err != nil {
			s.logger.Warn("failed to write metrics textfile", "path", path, "error", err)
		}
	}
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Error("error closing", "error", err)
		}
	}
}
