package task

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]Task, error)
	// Update merges the non-nil patch fields. Both Update and Delete return
	// ErrNotFound unless the task exists and belongs to owner.
	Update(ctx context.Context, owner, id uuid.UUID, patch Patch) (Task, error)
	Delete(ctx context.Context, owner, id uuid.UUID) (Task, error)
}
