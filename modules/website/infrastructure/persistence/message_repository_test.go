package persistence_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/contactmessage"
	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence"
)

func TestInmemMessageRepository(t *testing.T) {
	t.Parallel()
	repo := persistence.NewInmemMessageRepository()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	older := contactmessage.New("Asha", "asha@example.org", "Volunteering", "Hello", contactmessage.WithCreatedAt(base))
	newer := contactmessage.New("Ravi", "ravi@example.org", "Donation", "Hi", contactmessage.WithCreatedAt(base.Add(time.Hour)))
	_, err := repo.Save(ctx, older)
	require.NoError(t, err)
	_, err = repo.Save(ctx, newer)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, older.ID())
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name())

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, contactmessage.ErrMessageNotFound)

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID(), list[0].ID())

	list, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func newMockRepo(t *testing.T) (*persistence.PgMessageRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return persistence.NewPgMessageRepository(sqlx.NewDb(db, "postgres")), mock
}

var messageColumns = []string{"id", "name", "email", "subject", "message", "created_at"}

func TestPgMessageRepository_Save(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msg := contactmessage.New("Asha", "asha@example.org", "Volunteering", "Hello", contactmessage.WithCreatedAt(createdAt))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contact_messages (id, name, email, subject, message, created_at)")).
		WithArgs(msg.ID().String(), "Asha", "asha@example.org", "Volunteering", "Hello", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Save(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, msg.ID(), saved.ID())
}

func TestPgMessageRepository_GetByID(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(id.String(), "Asha", "asha@example.org", "Volunteering", "Hello", createdAt))
	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE id = $1")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(messageColumns))

	msg, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, msg.ID())
	assert.Equal(t, createdAt, msg.CreatedAt())

	_, err = repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, contactmessage.ErrMessageNotFound)
}

func TestPgMessageRepository_ListAndCount(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(uuid.NewString(), "Ravi", "ravi@example.org", "Donation", "Hi", now).
			AddRow(uuid.NewString(), "Asha", "asha@example.org", "Volunteering", "Hello", now.Add(-time.Hour)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contact_messages")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	list, err := repo.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ravi", list[0].Name())

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPgMessageRepository_BadRowID(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow("not-a-uuid", "Ravi", "ravi@example.org", "Donation", "Hi", time.Now()))

	_, err := repo.List(context.Background(), 0)
	require.Error(t, err)
}
