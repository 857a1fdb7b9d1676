package postgres

import (
	"context"
	"database/sql"

	"junebug/internal/dbx"
	"junebug/internal/domain/catalog"
)

const seedColumns = `id, name, class, type, years, position, height, sowing_type, sowing_start, sowing_end,
	harvest_start, harvest_end, days_germination, days_harvest, description, cultivation_info`

// CatalogRepository needs the *sql.DB itself, replacements run in one transaction.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListSeeds(ctx context.Context) ([]catalog.Seed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+seedColumns+` FROM seeds ORDER BY id`)
	if err != nil {
		return nil, translate(err, catalog.ErrSeedNotFound)
	}
	defer rows.Close()

	seeds := []catalog.Seed{}
	for rows.Next() {
		s, err := scanSeed(rows)
		if err != nil {
			return nil, translate(err, catalog.ErrSeedNotFound)
		}
		seeds = append(seeds, s)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, catalog.ErrSeedNotFound)
	}
	return seeds, nil
}

func (r *CatalogRepository) FindSeed(ctx context.Context, id int) (catalog.Seed, error) {
	s, err := scanSeed(r.db.QueryRowContext(ctx, `SELECT `+seedColumns+` FROM seeds WHERE id = $1`, id))
	if err != nil {
		return catalog.Seed{}, translate(err, catalog.ErrSeedNotFound)
	}
	return s, nil
}

func (r *CatalogRepository) ListTips(ctx context.Context) ([]catalog.Tip, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, category, text FROM tips ORDER BY id`)
	if err != nil {
		return nil, translate(err, catalog.ErrNoTips)
	}
	defer rows.Close()

	tips := []catalog.Tip{}
	for rows.Next() {
		var t catalog.Tip
		if err := rows.Scan(&t.ID, &t.Category, &t.Text); err != nil {
			return nil, translate(err, catalog.ErrNoTips)
		}
		tips = append(tips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, catalog.ErrNoTips)
	}
	return tips, nil
}

func (r *CatalogRepository) ReplaceSeeds(ctx context.Context, seeds []catalog.Seed) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM seeds`); err != nil {
			return err
		}
		query := `INSERT INTO seeds (` + seedColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
		for _, s := range seeds {
			_, err := tx.ExecContext(ctx, query,
				s.ID, s.Name, s.Class, s.Type, s.Years, s.Position, s.Height, s.SowingType,
				s.SowingStart, s.SowingEnd, s.HarvestStart, s.HarvestEnd,
				s.DaysGermination, s.DaysHarvest, s.Description, s.CultivationInfo)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err, catalog.ErrSeedNotFound)
}

func (r *CatalogRepository) ReplaceTips(ctx context.Context, tips []catalog.Tip) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tips`); err != nil {
			return err
		}
		for _, t := range tips {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tips (id, category, text) VALUES ($1, $2, $3)`, t.ID, t.Category, t.Text)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err, catalog.ErrNoTips)
}

func scanSeed(s scanner) (catalog.Seed, error) {
	var c catalog.Seed
	err := s.Scan(&c.ID, &c.Name, &c.Class, &c.Type, &c.Years, &c.Position, &c.Height, &c.SowingType,
		&c.SowingStart, &c.SowingEnd, &c.HarvestStart, &c.HarvestEnd,
		&c.DaysGermination, &c.DaysHarvest, &c.Description, &c.CultivationInfo)
	return c, err
}
