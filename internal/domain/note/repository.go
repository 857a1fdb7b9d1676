package note

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, n *Note) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]Note, error)
	UpdateText(ctx context.Context, owner, id uuid.UUID, text string) (Note, error)
	Delete(ctx context.Context, owner, id uuid.UUID) (Note, error)
}
