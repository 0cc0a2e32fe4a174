package cmd

import (
	"fmt"

	"github.com/cristianoliveira/rolodex/internal/config"
	"github.com/cristianoliveira/rolodex/internal/engine"
	"github.com/cristianoliveira/rolodex/internal/export"
	"github.com/cristianoliveira/rolodex/internal/logging"
	"github.com/cristianoliveira/rolodex/internal/model"
	"github.com/cristianoliveira/rolodex/internal/storage"
	"github.com/google/uuid"
)

// Session is an engine bound to the storage it saves through.
type Session struct {
	*engine.Engine
	store storage.Storage
}

// SessionOpener opens the session a subcommand runs against.
type SessionOpener func() (*Session, error)

// NewSession wraps an engine. store may be nil.
func NewSession(eng *engine.Engine, store storage.Storage) *Session {
	return &Session{Engine: eng, store: store}
}

// OpenSession loads the contacts through the configured backend and
// returns an idle engine over them.
func OpenSession() (*Session, error) {
	store, err := storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	persons, err := store.Load()
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	logger := logging.With("session", uuid.NewString(), "backend", config.Get("storage_backend", storage.BackendJSON))
	logger.Info("session opened", "count", len(persons))

	eng := engine.New(model.New(persons), store,
		engine.WithLogger(logger.With("component", "engine")),
		engine.WithExporter(export.NewFileExporter()),
		engine.WithExportDir(config.ExportDir()),
	)
	return NewSession(eng, store), nil
}

// Close releases the storage.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
