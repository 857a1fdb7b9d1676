package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"junebug/internal/domain/errs"
)

type Servicer interface {
	Register(ctx context.Context, req SignUpRequest) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	ResolveToken(ctx context.Context, token string) (User, error)
	Profile(ctx context.Context, id uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	newToken  func() (string, error)
	now       func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
		newToken:  GenerateToken,
		now:       time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req SignUpRequest) (User, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		s.log.Debug("validation failed", "username", req.Username, "error", err)
		if errors.Is(err, errs.ErrInvalidInput) {
			return User{}, err
		}
		return User{}, errs.New(errs.ErrInvalidInput, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	token, err := s.newToken()
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		AccessToken:  token,
		Name:         strings.TrimSpace(req.Name),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Authenticate never tells apart an unknown username from a wrong password.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return User{}, fmt.Errorf("find user: %w", err)
		}
		// выравниваем время ответа с веткой неверного пароля
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) ResolveToken(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrNotFound
	}
	return s.repo.FindByToken(ctx, token)
}

func (s *Service) Profile(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (User, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.Location != nil {
		location := strings.TrimSpace(*patch.Location)
		patch.Location = &location
	}

	if err := s.validator.ValidateProfile(patch); err != nil {
		return User{}, errs.New(errs.ErrInvalidInput, err.Error())
	}

	u, err := s.repo.UpdateProfile(ctx, id, patch)
	if err != nil {
		return User{}, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

func (s *Service) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("junebug-dummy-password"), bcrypt.DefaultCost)
	})
	return s.dummyHash
}
