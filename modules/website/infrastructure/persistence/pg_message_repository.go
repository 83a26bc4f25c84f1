package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/contactmessage"
	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence/models"
)

const (
	insertMessageQuery = `INSERT INTO contact_messages (id, name, email, subject, message, created_at)
VALUES (:id, :name, :email, :subject, :message, :created_at)`
	selectMessageQuery = `SELECT id, name, email, subject, message, created_at FROM contact_messages`
	countMessagesQuery = `SELECT COUNT(*) FROM contact_messages`
)

type PgMessageRepository struct {
	db *sqlx.DB
}

func NewPgMessageRepository(db *sqlx.DB) *PgMessageRepository {
	return &PgMessageRepository{db: db}
}

func (r *PgMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (contactmessage.ContactMessage, error) {
	var row models.ContactMessage
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectMessageQuery+" WHERE id = ?"), id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contactmessage.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return ToDomainContactMessage(row)
}

func (r *PgMessageRepository) Save(ctx context.Context, msg contactmessage.ContactMessage) (contactmessage.ContactMessage, error) {
	if _, err := r.db.NamedExecContext(ctx, insertMessageQuery, ToDBContactMessage(msg)); err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *PgMessageRepository) List(ctx context.Context, limit int) ([]contactmessage.ContactMessage, error) {
	query := selectMessageQuery + " ORDER BY created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	var rows []models.ContactMessage
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	messages := make([]contactmessage.ContactMessage, 0, len(rows))
	for _, row := range rows {
		msg, err := ToDomainContactMessage(row)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *PgMessageRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, countMessagesQuery); err != nil {
		return 0, err
	}
	return count, nil
}
