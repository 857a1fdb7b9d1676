package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create returns ErrUsernameTaken when the username is already in use.
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByToken(ctx context.Context, token string) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (User, error)
}
