package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, owner uuid.UUID, req CreateRequest) (Note, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		text = strings.TrimSpace(req.Note)
	}
	if text == "" {
		return Note{}, ErrTextRequired
	}

	n := Note{
		ID:   uuid.New(),
		Text: text,
		Time: s.now().UTC(),
		User: owner,
	}
	if err := s.repo.Create(ctx, &n); err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]Note, error) {
	notes, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

func (s *Service) Update(ctx context.Context, owner, id uuid.UUID, patch Patch) (Note, error) {
	text := strings.TrimSpace(patch.Text)
	if text == "" {
		return Note{}, ErrTextRequired
	}
	return s.repo.UpdateText(ctx, owner, id, text)
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) (Note, error) {
	return s.repo.Delete(ctx, owner, id)
}
