package memory

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/domain/plant"
	"junebug/internal/domain/user"
)

type PlantRepository struct {
	s *Store
}

func (r *PlantRepository) Create(_ context.Context, p *plant.Plant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.userExists(p.User) {
		return user.ErrNotFound
	}
	r.s.plants = append(r.s.plants, *p)
	return nil
}

func (r *PlantRepository) ListByOwner(_ context.Context, owner uuid.UUID) ([]plant.Plant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	plants := []plant.Plant{}
	for _, p := range r.s.plants {
		if p.User == owner {
			plants = append(plants, p)
		}
	}
	return plants, nil
}

func (r *PlantRepository) Delete(_ context.Context, owner, id uuid.UUID) (plant.Plant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.plants {
		if p.ID == id && p.User == owner {
			r.s.plants = append(r.s.plants[:i], r.s.plants[i+1:]...)
			return p, nil
		}
	}
	return plant.Plant{}, plant.ErrNotFound
}
