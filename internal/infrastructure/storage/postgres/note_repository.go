package postgres

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/dbx"
	"junebug/internal/domain/note"
)

const noteColumns = `id, text, time, user_id`

type NoteRepository struct {
	db dbx.DBTX
}

func NewNoteRepository(db dbx.DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, text, time, user_id) VALUES ($1, $2, $3, $4)`,
		n.ID, n.Text, n.Time, n.User)
	return translate(err, note.ErrNotFound)
}

func (r *NoteRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]note.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = $1 ORDER BY time`, owner)
	if err != nil {
		return nil, translate(err, note.ErrNotFound)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.Text, &n.Time, &n.User); err != nil {
			return nil, translate(err, note.ErrNotFound)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, note.ErrNotFound)
	}
	return notes, nil
}

func (r *NoteRepository) UpdateText(ctx context.Context, owner, id uuid.UUID, text string) (note.Note, error) {
	return r.one(ctx,
		`UPDATE notes SET text = $3 WHERE id = $1 AND user_id = $2 RETURNING `+noteColumns,
		id, owner, text)
}

func (r *NoteRepository) Delete(ctx context.Context, owner, id uuid.UUID) (note.Note, error) {
	return r.one(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2 RETURNING `+noteColumns,
		id, owner)
}

func (r *NoteRepository) one(ctx context.Context, query string, args ...any) (note.Note, error) {
	var n note.Note
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.Text, &n.Time, &n.User)
	if err != nil {
		return note.Note{}, translate(err, note.ErrNotFound)
	}
	return n, nil
}
