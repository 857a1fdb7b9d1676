package postgres

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/dbx"
	"junebug/internal/domain/plant"
)

const plantColumns = `id, seed_id, name, class, type, years, position, sowing_start, sowing_end,
	harvest_start, harvest_end, days_germination, days_harvest, description, user_id, created_at`

type PlantRepository struct {
	db dbx.DBTX
}

func NewPlantRepository(db dbx.DBTX) *PlantRepository {
	return &PlantRepository{db: db}
}

func (r *PlantRepository) Create(ctx context.Context, p *plant.Plant) error {
	query := `INSERT INTO plants (` + plantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.SeedID, p.Name, p.Class, p.Type, p.Years, p.Position, p.SowingStart, p.SowingEnd,
		p.HarvestStart, p.HarvestEnd, p.DaysGermination, p.DaysHarvest, p.Description, p.User, p.Created)
	return translate(err, plant.ErrNotFound)
}

func (r *PlantRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]plant.Plant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+plantColumns+` FROM plants WHERE user_id = $1 ORDER BY created_at`, owner)
	if err != nil {
		return nil, translate(err, plant.ErrNotFound)
	}
	defer rows.Close()

	plants := []plant.Plant{}
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, translate(err, plant.ErrNotFound)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, plant.ErrNotFound)
	}
	return plants, nil
}

func (r *PlantRepository) Delete(ctx context.Context, owner, id uuid.UUID) (plant.Plant, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM plants WHERE id = $1 AND user_id = $2 RETURNING `+plantColumns, id, owner)

	p, err := scanPlant(row)
	if err != nil {
		return plant.Plant{}, translate(err, plant.ErrNotFound)
	}
	return p, nil
}

func scanPlant(s scanner) (plant.Plant, error) {
	var p plant.Plant
	err := s.Scan(&p.ID, &p.SeedID, &p.Name, &p.Class, &p.Type, &p.Years, &p.Position,
		&p.SowingStart, &p.SowingEnd, &p.HarvestStart, &p.HarvestEnd,
		&p.DaysGermination, &p.DaysHarvest, &p.Description, &p.User, &p.Created)
	return p, err
}

// scanner - общее у *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}
