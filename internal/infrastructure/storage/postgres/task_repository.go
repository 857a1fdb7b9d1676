package postgres

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/dbx"
	"junebug/internal/domain/task"
)

const taskColumns = `id, text, due_date, is_completed, user_id, created_at`

type TaskRepository struct {
	db dbx.DBTX
}

func NewTaskRepository(db dbx.DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	query :=
		`INSERT INTO tasks (id, text, due_date, is_completed, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query, t.ID, t.Text, t.DueDate, t.IsCompleted, t.User, t.Created)
	return translate(err, task.ErrNotFound)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]task.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at`, owner)
	if err != nil {
		return nil, translate(err, task.ErrNotFound)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, translate(err, task.ErrNotFound)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, task.ErrNotFound)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, owner, id uuid.UUID, patch task.Patch) (task.Task, error) {
	query :=
		`UPDATE tasks SET
		   text = COALESCE($3, text),
		   due_date = COALESCE($4, due_date),
		   is_completed = COALESCE($5, is_completed)
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + taskColumns

	row := r.db.QueryRowContext(ctx, query, id, owner, patch.Text, patch.DueDate, patch.IsCompleted)
	t, err := scanTask(row)
	if err != nil {
		return task.Task{}, translate(err, task.ErrNotFound)
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, owner, id uuid.UUID) (task.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2 RETURNING `+taskColumns, id, owner)

	t, err := scanTask(row)
	if err != nil {
		return task.Task{}, translate(err, task.ErrNotFound)
	}
	return t, nil
}

func scanTask(s scanner) (task.Task, error) {
	var t task.Task
	err := s.Scan(&t.ID, &t.Text, &t.DueDate, &t.IsCompleted, &t.User, &t.Created)
	return t, err
}
