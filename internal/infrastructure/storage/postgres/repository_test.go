package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"junebug/internal/domain/catalog"
	"junebug/internal/domain/errs"
	"junebug/internal/domain/journal"
	"junebug/internal/domain/note"
	"junebug/internal/domain/plant"
	"junebug/internal/domain/task"
	"junebug/internal/domain/user"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestUserRepository_Create(t *testing.T) {
	u := &user.User{
		ID:           uuid.New(),
		Username:     "june",
		PasswordHash: "hash",
		AccessToken:  "T",
		CreatedAt:    created,
	}

	t.Run("ok", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(u.ID, "june", "hash", "T", "", "", created).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_username_key"})

		err := NewUserRepository(db).Create(context.Background(), u)
		assert.ErrorIs(t, err, user.ErrUsernameTaken)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("db down"))

		err := NewUserRepository(db).Create(context.Background(), u)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error: db down")
		assert.NotErrorIs(t, err, errs.ErrConflict)
	})
}

func userRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password", "access_token", "name", "location", "created_at"}).
		AddRow(id.String(), "june", "hash", "T", "June", "", created)
}

func TestUserRepository_FindByToken(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE access_token = \$1`).
			WithArgs("T").
			WillReturnRows(userRows(id))

		u, err := NewUserRepository(db).FindByToken(context.Background(), "T")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "June", u.Name)
		assert.Equal(t, created, u.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE access_token = \$1`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := NewUserRepository(db).FindByToken(context.Background(), "nope")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db, mock := newMock(t)
	id := uuid.New()
	name := "June"

	mock.ExpectQuery(`UPDATE users SET name = COALESCE\(\$2, name\), location = COALESCE\(\$3, location\)`).
		WithArgs(id, "June", nil).
		WillReturnRows(userRows(id))

	u, err := NewUserRepository(db).UpdateProfile(context.Background(), id, user.ProfilePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "June", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Create_TextLength(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO tasks`).
		WillReturnError(&pgconn.PgError{Code: codeCheckViolation, ConstraintName: "tasks_text_length"})

	err := NewTaskRepository(db).Create(context.Background(), &task.Task{ID: uuid.New(), Text: "ab"})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	assert.Equal(t, "text must be between 3 and 150 characters", err.Error())
}

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "text", "due_date", "is_completed", "user_id", "created_at"})
}

func TestTaskRepository_ListByOwner(t *testing.T) {
	db, mock := newMock(t)
	owner := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM tasks WHERE user_id = \$1 ORDER BY created_at`).
		WithArgs(owner).
		WillReturnRows(taskRows().AddRow(id.String(), "water ferns", "2024-05-01", false, owner.String(), created))

	tasks, err := NewTaskRepository(db).ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, id, tasks[0].ID)
	assert.Equal(t, "water ferns", tasks[0].Text)
	assert.Equal(t, owner, tasks[0].User)
}

func TestTaskRepository_ListByOwner_Empty(t *testing.T) {
	db, mock := newMock(t)
	owner := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM tasks`).WithArgs(owner).WillReturnRows(taskRows())

	tasks, err := NewTaskRepository(db).ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_Update(t *testing.T) {
	owner, id := uuid.New(), uuid.New()
	done := true

	t.Run("merges patch", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`UPDATE tasks SET`).
			WithArgs(id, owner, nil, nil, true).
			WillReturnRows(taskRows().AddRow(id.String(), "water ferns", "2024-05-01", true, owner.String(), created))

		got, err := NewTaskRepository(db).Update(context.Background(), owner, id, task.Patch{IsCompleted: &done})
		require.NoError(t, err)
		assert.True(t, got.IsCompleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign task is not found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`UPDATE tasks SET`).WillReturnError(sql.ErrNoRows)

		_, err := NewTaskRepository(db).Update(context.Background(), owner, id, task.Patch{IsCompleted: &done})
		assert.ErrorIs(t, err, task.ErrNotFound)
	})
}

func TestTaskRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	owner, id := uuid.New(), uuid.New()

	mock.ExpectQuery(`DELETE FROM tasks WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, owner).
		WillReturnRows(taskRows().AddRow(id.String(), "water ferns", "2024-05-01", true, owner.String(), created))
	mock.ExpectQuery(`DELETE FROM tasks`).WithArgs(id, owner).WillReturnError(sql.ErrNoRows)

	repo := NewTaskRepository(db)
	got, err := repo.Delete(context.Background(), owner, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = repo.Delete(context.Background(), owner, id)
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestNoteRepository(t *testing.T) {
	db, mock := newMock(t)
	owner, id := uuid.New(), uuid.New()
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "text", "time", "user_id"})
	}

	mock.ExpectExec(`INSERT INTO notes`).
		WillReturnError(&pgconn.PgError{Code: codeCheckViolation, ConstraintName: "notes_text_length"})
	mock.ExpectQuery(`UPDATE notes SET text = \$3`).
		WithArgs(id, owner, "first frost tonight").
		WillReturnRows(rows().AddRow(id.String(), "first frost tonight", created, owner.String()))
	mock.ExpectQuery(`DELETE FROM notes`).WithArgs(id, owner).WillReturnError(sql.ErrNoRows)

	repo := NewNoteRepository(db)

	err := repo.Create(context.Background(), &note.Note{ID: id, Text: "short", User: owner})
	assert.ErrorIs(t, err, note.ErrTextLength)

	n, err := repo.UpdateText(context.Background(), owner, id, "first frost tonight")
	require.NoError(t, err)
	assert.Equal(t, "first frost tonight", n.Text)

	_, err = repo.Delete(context.Background(), owner, id)
	assert.ErrorIs(t, err, note.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlantRepository(t *testing.T) {
	db, mock := newMock(t)
	owner := uuid.New()
	p := plant.FromSeed(catalog.Seed{ID: 3, Name: "Basil", DaysHarvest: 60}, owner, created)

	cols := []string{"id", "seed_id", "name", "class", "type", "years", "position", "sowing_start", "sowing_end",
		"harvest_start", "harvest_end", "days_germination", "days_harvest", "description", "user_id", "created_at"}

	mock.ExpectExec(`INSERT INTO plants`).
		WithArgs(p.ID, 3, "Basil", "", "", "", "", "", "", "", "", 0, 60, "", owner, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO plants`).
		WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "plants_user_id_fkey"})
	mock.ExpectQuery(`DELETE FROM plants WHERE id = \$1 AND user_id = \$2`).
		WithArgs(p.ID, owner).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(p.ID.String(), 3, "Basil", "", "", "", "", "", "", "", "", 0, 60, "", owner.String(), created))

	repo := NewPlantRepository(db)
	require.NoError(t, repo.Create(context.Background(), &p))

	err := repo.Create(context.Background(), &p)
	assert.ErrorIs(t, err, user.ErrNotFound)

	got, err := repo.Delete(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Basil", got.Name)
	assert.Equal(t, 60, got.DaysHarvest)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepository(t *testing.T) {
	db, mock := newMock(t)
	a, b := uuid.New(), uuid.New()

	mock.ExpectExec(`INSERT INTO journal_entries`).
		WithArgs(a, "first light", created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, message, created_at FROM journal_entries ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "message", "created_at"}).
			AddRow(a.String(), "first light", created).
			AddRow(b.String(), "second light", created.Add(time.Minute)))

	repo := NewJournalRepository(db)
	require.NoError(t, repo.Append(context.Background(), &journal.Entry{ID: a, Message: "first light", Created: created}))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first light", entries[0].Message)
	assert.Equal(t, b, entries[1].ID)
}

func TestCatalogRepository_ReplaceSeeds(t *testing.T) {
	seeds := []catalog.Seed{{ID: 1, Name: "Tomato"}, {ID: 2, Name: "Basil"}}

	t.Run("commit", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM seeds`).WillReturnResult(sqlmock.NewResult(0, 8))
		mock.ExpectExec(`INSERT INTO seeds`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO seeds`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewCatalogRepository(db).ReplaceSeeds(context.Background(), seeds))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on insert failure", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM seeds`).WillReturnResult(sqlmock.NewResult(0, 8))
		mock.ExpectExec(`INSERT INTO seeds`).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := NewCatalogRepository(db).ReplaceSeeds(context.Background(), seeds)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_Reads(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT .* FROM seeds WHERE id = \$1`).WithArgs(99).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT id, category, text FROM tips ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "text"}).AddRow(1, "water", "Water early"))

	repo := NewCatalogRepository(db)

	_, err := repo.FindSeed(context.Background(), 99)
	assert.ErrorIs(t, err, catalog.ErrSeedNotFound)

	tips, err := repo.ListTips(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Tip{{ID: 1, Category: "water", Text: "Water early"}}, tips)
}

func TestStorage_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	s := NewWithDB(db, slog.Default())
	assert.EqualError(t, s.Ping(context.Background()), "connection refused")
	assert.NotNil(t, s.Tasks())
}
