package plant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"junebug/internal/domain/catalog"
)

// SeedFinder looks up catalog entries, catalog.Service satisfies it.
type SeedFinder interface {
	Seed(ctx context.Context, id int) (catalog.Seed, error)
}

type Service struct {
	repo  Repository
	seeds SeedFinder
	log   *slog.Logger
	now   func() time.Time
}

func NewService(repo Repository, seeds SeedFinder, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		seeds: seeds,
		log:   log.With("component", "plant_service"),
		now:   time.Now,
	}
}

func (s *Service) Create(ctx context.Context, owner uuid.UUID, req CreateRequest) (Plant, error) {
	seed, err := s.seeds.Seed(ctx, req.SeedID)
	if err != nil {
		return Plant{}, err
	}

	p := FromSeed(seed, owner, s.now().UTC())
	if err := s.repo.Create(ctx, &p); err != nil {
		return Plant{}, fmt.Errorf("create plant: %w", err)
	}

	s.log.Debug("plant created", "plant_id", p.ID, "user_id", owner, "seed_id", seed.ID)
	return p, nil
}

func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]Plant, error) {
	plants, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	if plants == nil {
		plants = []Plant{}
	}
	return plants, nil
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) (Plant, error) {
	return s.repo.Delete(ctx, owner, id)
}
