// Package storage selects the backend that holds users, their records and the catalogs.
package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"junebug/internal/app/server/config"
	"junebug/internal/domain/catalog"
	"junebug/internal/domain/journal"
	"junebug/internal/domain/note"
	"junebug/internal/domain/plant"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
	"junebug/internal/infrastructure/migration"
	"junebug/internal/infrastructure/storage/memory"
	"junebug/internal/infrastructure/storage/postgres"
)

type Storage interface {
	Users() user.Repository
	Plants() plant.Repository
	Tasks() task.Repository
	Notes() note.Repository
	Journal() journal.Repository
	Catalog() catalog.Repository

	Ping(ctx context.Context) error
	Close() error
}

// Open returns the backend named by cfg.Storage.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	case config.StoragePostgres, "":
		return postgres.New(ctx, cfg, migration.DefaultEngine, log)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
