package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"junebug/internal/domain/errs"
	"junebug/internal/domain/note"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// Ограничения из миграций, которые пользователь может нарушить сам.
var constraintErrors = map[string]error{
	"users_username_key":                user.ErrUsernameTaken,
	"users_access_token_key":            user.ErrTokenTaken,
	"users_name_length":                 user.ErrNameTooShort,
	"tasks_text_length":                 task.ErrTextLength,
	"notes_text_length":                 note.ErrTextLength,
	"journal_entries_message_not_empty": errs.Invalid("message is required"),
}

// translate maps driver errors onto domain errors. notFound is returned for sql.ErrNoRows.
func translate(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if known, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return known
		}
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.New(errs.ErrConflict, pgErr.Detail)
		case codeCheckViolation:
			return errs.Invalid("invalid value: %s", pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return user.ErrNotFound
		}
	}

	return fmt.Errorf("db error: %w", err)
}
