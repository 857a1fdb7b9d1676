// Package memory is a process-local backend for local runs and tests.
// It enforces the same uniqueness and length rules as the Postgres schema.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"junebug/internal/domain/catalog"
	"junebug/internal/domain/journal"
	"junebug/internal/domain/note"
	"junebug/internal/domain/plant"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
)

// Store держит все коллекции под одним мьютексом. Слайсы хранят порядок вставки.
type Store struct {
	mu sync.RWMutex

	users      map[uuid.UUID]user.User
	byUsername map[string]uuid.UUID
	byToken    map[string]uuid.UUID

	plants  []plant.Plant
	tasks   []task.Task
	notes   []note.Note
	journal []journal.Entry

	seeds []catalog.Seed
	tips  []catalog.Tip
}

func New() *Store {
	return &Store{
		users:      make(map[uuid.UUID]user.User),
		byUsername: make(map[string]uuid.UUID),
		byToken:    make(map[string]uuid.UUID),
	}
}

func (s *Store) Users() user.Repository { return &UserRepository{s: s} }
func (s *Store) Plants() plant.Repository { return &PlantRepository{s: s} }
func (s *Store) Tasks() task.Repository { return &TaskRepository{s: s} }
func (s *Store) Notes() note.Repository { return &NoteRepository{s: s} }
func (s *Store) Journal() journal.Repository { return &JournalRepository{s: s} }
func (s *Store) Catalog() catalog.Repository { return &CatalogRepository{s: s} }
func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close() error { return nil }

func (s *Store) userExists(id uuid.UUID) bool {
	_, ok := s.users[id]
	return ok
}

func textLen(s string) int {
	return len([]rune(s))
}
