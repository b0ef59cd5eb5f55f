package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"spendbook/internal/config"
	"spendbook/internal/logger"
	"spendbook/migrations"
)

// DB wraps *sql.DB together with the driver-specific pieces the repositories
// need: a squirrel statement builder configured with the right placeholder
// format, an error classifier for the driver's error codes, and the goose
// dialect name used when running migrations.
type DB struct {
	*sql.DB
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	dialect         string
	logger          *logger.Logger
}

// Connect opens the database backend selected by the DSN: postgres:// and
// postgresql:// schemes go to PostgreSQL via pgx, anything else is treated
// as a SQLite file path.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all embedded goose migrations using the dialect of the
// connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
