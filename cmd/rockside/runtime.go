package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/rockside/internal/client/config"
	"github.com/dmitrijs2005/rockside/internal/client/services"
	"github.com/dmitrijs2005/rockside/internal/client/storage"
	"github.com/dmitrijs2005/rockside/internal/logging"
	"github.com/dmitrijs2005/rockside/internal/metrics"
)

const databaseFile = "rockside.db"

// runtime holds what every subcommand opens: logger, database, stores and
// metrics.
type runtime struct {
	cfg     *config.Config
	dataDir string
	log     logging.Logger
	db      *sql.DB
	metrics *metrics.Recorder
	creds   services.CredentialStore
	form    services.QuestionnaireStore
}

func openRuntime(ctx context.Context, cfg *config.Config, logOut io.Writer) (*runtime, error) {
	log, err := logging.New(cfg.LogBackend, cfg.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	dataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := storage.OpenDatabase(ctx, filepath.Join(dataDir, databaseFile))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	rt := &runtime{
		cfg:     cfg,
		dataDir: dataDir,
		log:     log,
		db:      db,
		metrics: metrics.New(),
	}
	repo := storage.NewSQLiteRepository(db)
	rt.creds = services.NewCredentialStore(repo, rt.serviceOptions()...)
	rt.form = services.NewQuestionnaireStore(repo, rt.serviceOptions()...)

	log.Debug(ctx, "runtime ready", "data_dir", dataDir, "sealed", cfg.SealRecords)
	return rt, nil
}

func (rt *runtime) serviceOptions() []services.Option {
	return []services.Option{
		services.WithLogger(rt.log.With("component", "services")),
		services.WithObserver(rt.metrics),
		services.WithSealing(rt.cfg.SealRecords),
	}
}

// Close writes the metrics file when configured and releases the database.
func (rt *runtime) Close(ctx context.Context) {
	if rt.cfg.MetricsFile != "" {
		if err := rt.metrics.WriteTextfile(rt.cfg.MetricsFile); err != nil {
			rt.log.Error(ctx, "write metrics file", "path", rt.cfg.MetricsFile, "error", err)
		}
	}
	if err := rt.db.Close(); err != nil {
		rt.log.Error(ctx, "close database", "error", err)
	}
	if s, ok := rt.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
