package memory

import (
	"context"
	"slices"

	"junebug/internal/domain/catalog"
)

type CatalogRepository struct {
	s *Store
}

func (r *CatalogRepository) ListSeeds(_ context.Context) ([]catalog.Seed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seeds := slices.Clone(r.s.seeds)
	slices.SortFunc(seeds, func(a, b catalog.Seed) int { return a.ID - b.ID })
	if seeds == nil {
		seeds = []catalog.Seed{}
	}
	return seeds, nil
}

func (r *CatalogRepository) FindSeed(_ context.Context, id int) (catalog.Seed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, s := range r.s.seeds {
		if s.ID == id {
			return s, nil
		}
	}
	return catalog.Seed{}, catalog.ErrSeedNotFound
}

func (r *CatalogRepository) ListTips(_ context.Context) ([]catalog.Tip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.tips == nil {
		return []catalog.Tip{}, nil
	}
	return slices.Clone(r.s.tips), nil
}

func (r *CatalogRepository) ReplaceSeeds(_ context.Context, seeds []catalog.Seed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seeds = slices.Clone(seeds)
	return nil
}

func (r *CatalogRepository) ReplaceTips(_ context.Context, tips []catalog.Tip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.tips = slices.Clone(tips)
	return nil
}
