package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jacksmith/adminui/internal/cli"
	"github.com/jacksmith/adminui/internal/model"
	"github.com/jacksmith/adminui/internal/query"
	"github.com/jacksmith/adminui/internal/source"
	"github.com/jacksmith/adminui/internal/storage"
)

// session is the configuration, logger and loader shared by the commands.
type session struct {
	cfg    *storage.Config
	logger *slog.Logger
	source source.Source
	where  *query.Where
	closer io.Closer
}

// openSession loads the config, applies flag overrides and opens the record
// source. stderrLogs sends warnings to stderr when no log file is set; the
// TUI passes false because it owns the terminal.
func openSession(ctx context.Context, stderrLogs bool) (*session, error) {
	cfg, err := storage.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagSource != "" {
		cfg.Source = flagSource
	}
	if flagPageSize < 0 {
		return nil, &cli.ValidationError{Field: "page-size", Message: "must be positive"}
	}
	if flagPageSize > 0 {
		cfg.PageSize = flagPageSize
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if flagColor != "" {
		cfg.Color = flagColor
	}
	if cfg.Source == "" {
		return nil, &cli.ValidationError{Message: "no record source configured (use --source or set source in .adminui.yaml)"}
	}

	s := &session{cfg: cfg}
	if err := s.setupLogger(stderrLogs); err != nil {
		return nil, err
	}

	if flagWhere != "" {
		w, err := query.Compile(flagWhere)
		if err != nil {
			s.Close()
			return nil, &cli.ValidationError{Field: "where", Message: err.Error()}
		}
		s.where = w
	}

	src, err := source.Open(ctx, cfg.Source, source.Options{S3: cfg.S3})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	s.source = src
	s.logger.Debug("session opened", "source", src.String(), "page_size", cfg.PageSize, "where", flagWhere)
	return s, nil
}

func (s *session) setupLogger(stderrLogs bool) error {
	level, err := storage.ParseLogLevel(s.cfg.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer
	switch {
	case s.cfg.LogFile != "":
		f, err := tea.LogToFile(s.cfg.LogFile, "adminui")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		s.closer = f
		w = f
	case stderrLogs:
		w = os.Stderr
		level = max(level, slog.LevelWarn)
	default:
		w = io.Discard
	}
	s.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// Load fetches the records within the configured timeout and applies --where.
func (s *session) Load(ctx context.Context) ([]model.Record, error) {
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}
	records, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Warn("fetch failed", "source", s.source.String(), "error", err)
		return nil, err
	}
	records, err = s.where.Apply(records)
	if err != nil {
		return nil, fmt.Errorf("failed to apply --where: %w", err)
	}
	s.logger.Info("fetched records", "source", s.source.String(), "count", len(records))
	return records, nil
}

// Close releases the log file, if any.
func (s *session) Close() {
	if s.closer != nil {
		s.closer.Close()
	}
}
