package common

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/docuvault/field-extractor/gen/ent"
	"github.com/docuvault/field-extractor/internal/repository"
)

// DBResult bundles the open database handles with their cleanup.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for the in-memory database
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or, when inmem
// is set, a throwaway in-process SQLite database with the schema migrated.
// The SQLite path needs no running server, which is what the batch CLI wants.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		return openInMemory(ctx, logger)
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		repository.Close(entc, pool, logger)
		return nil, err
	}
	return &DBResult{
		Client:  entc,
		Pool:    pool,
		Cleanup: func() { repository.Close(entc, pool, logger) },
	}, nil
}

func openInMemory(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	// shared cache keeps the database alive across pooled connections
	db, err := sql.Open("sqlite", "file:fieldextractor?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open in-memory database", "error", err)
		return nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate in-memory schema", "error", err)
		_ = client.Close()
		return nil, err
	}
	logger.Info("in-memory database ready")

	return &DBResult{
		Client: client,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}
