package plant

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Plant) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]Plant, error)
	// Delete returns ErrNotFound unless the plant exists and belongs to owner.
	Delete(ctx context.Context, owner, id uuid.UUID) (Plant, error)
}
