package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/config"
	"junebug/internal/domain/catalog"
	"junebug/internal/domain/journal"
	"junebug/internal/domain/note"
	"junebug/internal/domain/plant"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
	"junebug/internal/infrastructure/migration"
)

// Storage держит пул pgx и *sql.DB поверх него, репозитории работают через database/sql.
type Storage struct {
	pool *pgxpool.Pool
	db   *sql.DB
	log  *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, engine migration.MigrationEngine, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg := migration.NewMigration(cfg, engine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	log.Info("postgres storage ready", "migrations", mg.SourceURL())
	return &Storage{
		pool: pool,
		db:   stdlib.OpenDBFromPool(pool),
		log:  log.With("component", "postgres"),
	}, nil
}

// NewWithDB собирает Storage поверх готового *sql.DB (тесты, sqlmock).
func NewWithDB(db *sql.DB, log *slog.Logger) *Storage {
	return &Storage{db: db, log: log.With("component", "postgres")}
}

func (s *Storage) Users() user.Repository {
	return NewUserRepository(s.db)
}

func (s *Storage) Plants() plant.Repository {
	return NewPlantRepository(s.db)
}

func (s *Storage) Tasks() task.Repository {
	return NewTaskRepository(s.db)
}

func (s *Storage) Notes() note.Repository {
	return NewNoteRepository(s.db)
}

func (s *Storage) Journal() journal.Repository {
	return NewJournalRepository(s.db)
}

func (s *Storage) Catalog() catalog.Repository {
	return NewCatalogRepository(s.db)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	err := s.db.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}
