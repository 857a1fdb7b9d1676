package postgres

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/dbx"
	"junebug/internal/domain/user"
)

const userColumns = `id, username, password, access_token, name, location, created_at`

type UserRepository struct {
	db dbx.DBTX
}

func NewUserRepository(db dbx.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query :=
		`INSERT INTO users (id, username, password, access_token, name, location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.PasswordHash, u.AccessToken, u.Name, u.Location, u.CreatedAt)
	return translate(err, user.ErrNotFound)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE access_token = $1`, token)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch user.ProfilePatch) (user.User, error) {
	query :=
		`UPDATE users SET name = COALESCE($2, name), location = COALESCE($3, location)
		 WHERE id = $1
		 RETURNING ` + userColumns

	return r.findOne(ctx, query, id, patch.Name, patch.Location)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (user.User, error) {
	var u user.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.AccessToken, &u.Name, &u.Location, &u.CreatedAt)
	if err != nil {
		return user.User{}, translate(err, user.ErrNotFound)
	}
	return u, nil
}
