package memory

import (
	"context"

	"github.com/google/uuid"

	"junebug/internal/domain/note"
	"junebug/internal/domain/user"
)

type NoteRepository struct {
	s *Store
}

func checkNoteText(text string) error {
	if n := textLen(text); n < note.MinTextLen || n > note.MaxTextLen {
		return note.ErrTextLength
	}
	return nil
}

func (r *NoteRepository) Create(_ context.Context, n *note.Note) error {
	if err := checkNoteText(n.Text); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.userExists(n.User) {
		return user.ErrNotFound
	}
	r.s.notes = append(r.s.notes, *n)
	return nil
}

func (r *NoteRepository) ListByOwner(_ context.Context, owner uuid.UUID) ([]note.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	notes := []note.Note{}
	for _, n := range r.s.notes {
		if n.User == owner {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (r *NoteRepository) UpdateText(_ context.Context, owner, id uuid.UUID, text string) (note.Note, error) {
	if err := checkNoteText(text); err != nil {
		return note.Note{}, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, n := range r.s.notes {
		if n.ID == id && n.User == owner {
			n.Text = text
			r.s.notes[i] = n
			return n, nil
		}
	}
	return note.Note{}, note.ErrNotFound
}

func (r *NoteRepository) Delete(_ context.Context, owner, id uuid.UUID) (note.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, n := range r.s.notes {
		if n.ID == id && n.User == owner {
			r.s.notes = append(r.s.notes[:i], r.s.notes[i+1:]...)
			return n, nil
		}
	}
	return note.Note{}, note.ErrNotFound
}
