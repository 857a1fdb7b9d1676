package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"junebug/internal/dbx"
	"junebug/internal/domain/catalog"
)

// ErrCacheEmpty - в кэше нет семян, нужен хотя бы один запрос к серверу.
var ErrCacheEmpty = errors.New("кэш семян пуст, выполните junebug-client seeds без --offline")

// SeedCache хранит последний полученный каталог семян для офлайн-просмотра.
type SeedCache struct {
	db *sql.DB
}

func NewSeedCache(path string) (*SeedCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	cache := &SeedCache{db: db}

	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return cache, nil
}

func (s *SeedCache) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS seeds (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			class TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT '',
			years TEXT NOT NULL DEFAULT '',
			position TEXT NOT NULL DEFAULT '',
			height INTEGER NOT NULL DEFAULT 0,
			sowing_type TEXT NOT NULL DEFAULT '',
			sowing_start TEXT NOT NULL DEFAULT '',
			sowing_end TEXT NOT NULL DEFAULT '',
			harvest_start TEXT NOT NULL DEFAULT '',
			harvest_end TEXT NOT NULL DEFAULT '',
			days_germination INTEGER NOT NULL DEFAULT 0,
			days_harvest INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			cultivation_info TEXT NOT NULL DEFAULT '',
			cached_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_seeds_name ON seeds(name);
	`)

	return err
}

// Replace заменяет содержимое кэша одним снимком.
func (s *SeedCache) Replace(ctx context.Context, seeds []catalog.Seed) error {
	now := time.Now().UTC()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM seeds"); err != nil {
			return err
		}
		for _, seed := range seeds {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO seeds (id, name, class, type, years, position, height, sowing_type,
				                   sowing_start, sowing_end, harvest_start, harvest_end,
				                   days_germination, days_harvest, description, cultivation_info, cached_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, seed.ID, seed.Name, seed.Class, seed.Type, seed.Years, seed.Position, seed.Height, seed.SowingType,
				seed.SowingStart, seed.SowingEnd, seed.HarvestStart, seed.HarvestEnd,
				seed.DaysGermination, seed.DaysHarvest, seed.Description, seed.CultivationInfo, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения семян: %w", err)
	}

	return nil
}

func (s *SeedCache) Seeds(ctx context.Context) ([]catalog.Seed, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, class, type, years, position, height, sowing_type,
		       sowing_start, sowing_end, harvest_start, harvest_end,
		       days_germination, days_harvest, description, cultivation_info
		FROM seeds
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	var seeds []catalog.Seed
	for rows.Next() {
		var seed catalog.Seed
		if err := rows.Scan(&seed.ID, &seed.Name, &seed.Class, &seed.Type, &seed.Years, &seed.Position,
			&seed.Height, &seed.SowingType, &seed.SowingStart, &seed.SowingEnd, &seed.HarvestStart,
			&seed.HarvestEnd, &seed.DaysGermination, &seed.DaysHarvest, &seed.Description,
			&seed.CultivationInfo); err != nil {
			return nil, fmt.Errorf("ошибка сканирования семени: %w", err)
		}
		seeds = append(seeds, seed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения семян: %w", err)
	}

	if len(seeds) == 0 {
		return nil, ErrCacheEmpty
	}
	return seeds, nil
}

// CachedAt - время последнего обновления кэша, ноль если кэш пуст.
func (s *SeedCache) CachedAt(ctx context.Context) (time.Time, error) {
	var cachedAt time.Time
	err := s.db.QueryRowContext(ctx, "SELECT cached_at FROM seeds ORDER BY cached_at DESC LIMIT 1").Scan(&cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("ошибка чтения кэша: %w", err)
	}
	return cachedAt, nil
}

func (s *SeedCache) Close() error {
	return s.db.Close()
}
