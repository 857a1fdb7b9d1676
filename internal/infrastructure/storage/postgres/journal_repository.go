package postgres

import (
	"context"

	"junebug/internal/dbx"
	"junebug/internal/domain/errs"
	"junebug/internal/domain/journal"
)

var errEntryNotFound = errs.New(errs.ErrNotFound, "journal entry not found")

type JournalRepository struct {
	db dbx.DBTX
}

func NewJournalRepository(db dbx.DBTX) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Append(ctx context.Context, e *journal.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO journal_entries (id, message, created_at) VALUES ($1, $2, $3)`,
		e.ID, e.Message, e.Created)
	return translate(err, errEntryNotFound)
}

func (r *JournalRepository) List(ctx context.Context) ([]journal.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, message, created_at FROM journal_entries ORDER BY created_at, id`)
	if err != nil {
		return nil, translate(err, errEntryNotFound)
	}
	defer rows.Close()

	entries := []journal.Entry{}
	for rows.Next() {
		var e journal.Entry
		if err := rows.Scan(&e.ID, &e.Message, &e.Created); err != nil {
			return nil, translate(err, errEntryNotFound)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, errEntryNotFound)
	}
	return entries, nil
}
