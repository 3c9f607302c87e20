package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"storefront/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate накатывает встроенные миграции через database/sql обёртку над пулом.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations,
		goose.WithVerbose(false),
	)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied",
			logger.NewField("version", r.Source.Version),
			logger.NewField("path", r.Source.Path),
			logger.NewField("duration", r.Duration.String()),
		)
	}
	return nil
}
