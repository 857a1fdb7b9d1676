package memory

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
)

type TaskRepository struct {
	s *Store
}

func checkTaskText(text string) error {
	if n := textLen(text); n < task.MinTextLen || n > task.MaxTextLen {
		return task.ErrTextLength
	}
	return nil
}

func (r *TaskRepository) Create(_ context.Context, t *task.Task) error {
	if err := checkTaskText(t.Text); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.userExists(t.User) {
		return user.ErrNotFound
	}
	r.s.tasks = append(r.s.tasks, *t)
	return nil
}

func (r *TaskRepository) ListByOwner(_ context.Context, owner uuid.UUID) ([]task.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tasks := []task.Task{}
	for _, t := range r.s.tasks {
		if t.User == owner {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Update(_ context.Context, owner, id uuid.UUID, patch task.Patch) (task.Task, error) {
	if patch.Text != nil {
		if err := checkTaskText(*patch.Text); err != nil {
			return task.Task{}, err
		}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(owner, id)
	if i < 0 {
		return task.Task{}, task.ErrNotFound
	}

	t := r.s.tasks[i]
	if patch.Text != nil {
		t.Text = *patch.Text
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.IsCompleted != nil {
		t.IsCompleted = *patch.IsCompleted
	}
	r.s.tasks[i] = t
	return t, nil
}

func (r *TaskRepository) Delete(_ context.Context, owner, id uuid.UUID) (task.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(owner, id)
	if i < 0 {
		return task.Task{}, task.ErrNotFound
	}
	t := r.s.tasks[i]
	r.s.tasks = append(r.s.tasks[:i], r.s.tasks[i+1:]...)
	return t, nil
}

// index ищет задачу владельца, вызывать под блокировкой.
func (r *TaskRepository) index(owner, id uuid.UUID) int {
	for i, t := range r.s.tasks {
		if t.ID == id && t.User == owner {
			return i
		}
	}
	return -1
}
