package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Entry, error)
	Post(ctx context.Context, message string) ([]Entry, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "journal_service"),
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Post appends message when it is not blank and returns the whole log.
func (s *Service) Post(ctx context.Context, message string) ([]Entry, error) {
	message = strings.TrimSpace(message)
	if message != "" {
		e := Entry{ID: uuid.New(), Message: message, Created: s.now().UTC()}
		if err := s.repo.Append(ctx, &e); err != nil {
			return nil, fmt.Errorf("append journal: %w", err)
		}
	}
	return s.List(ctx)
}
