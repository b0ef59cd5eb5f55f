package store

import (
	"context"
	"fmt"

	"spendbook/internal/config"
	"spendbook/internal/logger"
)

// Storages bundles all persistence-layer dependencies handed to the service
// layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to the configured database, applies pending
// migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
