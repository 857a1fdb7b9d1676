package task

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
		log:  log.With("component", "task_service"),
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, owner uuid.UUID, req CreateRequest) (Task, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		text = strings.TrimSpace(req.Message)
	}
	if text == "" {
		return Task{}, ErrTextRequired
	}

	now := s.now().UTC()
	due := strings.TrimSpace(req.DueDate)
	if due == "" {
		due = now.Format(dueDateLayout)
	}

	t := Task{
		ID:      uuid.New(),
		Text:    text,
		DueDate: due,
		User:    owner,
		Created: now,
	}
	if err := s.repo.Create(ctx, &t); err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	s.log.Debug("task created", "task_id", t.ID, "user_id", owner)
	return t, nil
}

func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (s *Service) Update(ctx context.Context, owner, id uuid.UUID, patch Patch) (Task, error) {
	// пустой срок не затирает сохраненный
	if patch.DueDate != nil {
		due := strings.TrimSpace(*patch.DueDate)
		patch.DueDate = &due
		if due == "" {
			patch.DueDate = nil
		}
	}
	if patch.empty() {
		return Task{}, ErrNothingToEdit
	}
	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		patch.Text = &text
	}

	return s.repo.Update(ctx, owner, id, patch)
}

// Complete sets the completion flag only.
func (s *Service) Complete(ctx context.Context, owner, id uuid.UUID, done bool) (Task, error) {
	return s.repo.Update(ctx, owner, id, Patch{IsCompleted: &done})
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) (Task, error) {
	return s.repo.Delete(ctx, owner, id)
}
