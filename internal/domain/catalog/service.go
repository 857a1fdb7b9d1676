package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Seeds(ctx context.Context) ([]Seed, error)
	Seed(ctx context.Context, id int) (Seed, error)
	RandomTip(ctx context.Context) (Tip, error)
	Reset(ctx context.Context, b Bundle) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	pick func(n int) int
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "catalog_service"),
		pick: rand.IntN,
	}
}

func (s *Service) Seeds(ctx context.Context) ([]Seed, error) {
	seeds, err := s.repo.ListSeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seeds: %w", err)
	}
	if seeds == nil {
		seeds = []Seed{}
	}
	return seeds, nil
}

func (s *Service) Seed(ctx context.Context, id int) (Seed, error) {
	return s.repo.FindSeed(ctx, id)
}

// RandomTip draws uniformly from the whole tip catalog.
func (s *Service) RandomTip(ctx context.Context) (Tip, error) {
	tips, err := s.repo.ListTips(ctx)
	if err != nil {
		return Tip{}, fmt.Errorf("list tips: %w", err)
	}
	if len(tips) == 0 {
		return Tip{}, ErrNoTips
	}
	return tips[s.pick(len(tips))], nil
}

// Reset replaces both catalogs with the given bundle.
func (s *Service) Reset(ctx context.Context, b Bundle) error {
	if err := s.repo.ReplaceSeeds(ctx, b.Seeds); err != nil {
		return fmt.Errorf("reset seeds: %w", err)
	}
	if err := s.repo.ReplaceTips(ctx, b.Tips); err != nil {
		return fmt.Errorf("reset tips: %w", err)
	}

	s.log.Info("reference data reset", "seeds", len(b.Seeds), "tips", len(b.Tips))
	return nil
}
