package memory

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/domain/user"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.byUsername[u.Username]; ok {
		return user.ErrUsernameTaken
	}
	if _, ok := r.s.byToken[u.AccessToken]; ok {
		return user.ErrTokenTaken
	}
	if u.Name != "" && textLen(u.Name) < user.MinNameLen {
		return user.ErrNameTooShort
	}

	r.s.users[u.ID] = *u
	r.s.byUsername[u.Username] = u.ID
	r.s.byToken[u.AccessToken] = u.ID
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	r.s.mu.RLock()
	id, ok := r.s.byUsername[username]
	r.s.mu.RUnlock()
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (user.User, error) {
	r.s.mu.RLock()
	id, ok := r.s.byToken[token]
	r.s.mu.RUnlock()
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) UpdateProfile(_ context.Context, id uuid.UUID, patch user.ProfilePatch) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if patch.Name != nil {
		if *patch.Name != "" && textLen(*patch.Name) < user.MinNameLen {
			return user.User{}, user.ErrNameTooShort
		}
		u.Name = *patch.Name
	}
	if patch.Location != nil {
		u.Location = *patch.Location
	}

	r.s.users[id] = u
	return u, nil
}
