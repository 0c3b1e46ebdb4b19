package root

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"wellquest/internal/config"
	"wellquest/internal/engine"
	"wellquest/internal/logging"
	"wellquest/internal/storage"
)

func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

type app struct {
	cfg    *config.Config
	logger hclog.Logger
	eng    *engine.Engine
}

// openApp wires config, logging, storage and the engine. When the database
// can't be opened the session runs on an in-memory store and nothing is saved.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	var store engine.Store
	cleanup := func() {}
	db, err := storage.Open(ctx, cfg.DBPath)
	switch {
	case errors.Is(err, storage.ErrStorageUnavailable):
		logger.Warn("storage unavailable, progress will not be saved", "path", cfg.DBPath, "error", err)
		store = storage.NewMemoryStore()
	case err != nil:
		return nil, nil, err
	default:
		store = storage.NewRecordStore(db, logger)
		cleanup = func() { _ = db.Close() }
	}

	eng := engine.New(ctx, store, engine.WithLogger(logger))
	return &app{cfg: cfg, logger: logger, eng: eng}, cleanup, nil
}
