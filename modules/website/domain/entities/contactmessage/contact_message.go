package contactmessage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMessageNotFound = errors.New("contact message not found")

const (
	MaxNameLength    = 200
	MaxSubjectLength = 300
	MaxMessageLength = 5000
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (ContactMessage, error)
	Save(ctx context.Context, msg ContactMessage) (ContactMessage, error)
	// List returns the newest messages first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]ContactMessage, error)
	Count(ctx context.Context) (int, error)
}

type ContactMessage interface {
	ID() uuid.UUID
	Name() string
	Email() string
	Subject() string
	Message() string
	CreatedAt() time.Time
}

type contactMessage struct {
	id        uuid.UUID
	name      string
	email     string
	subject   string
	message   string
	createdAt time.Time
}

func New(name, email, subject, message string, opts ...Option) ContactMessage {
	msg := &contactMessage{
		id:        uuid.New(),
		name:      name,
		email:     email,
		subject:   subject,
		message:   message,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(msg)
	}
	return msg
}

type Option func(*contactMessage)

func WithID(id uuid.UUID) Option {
	return func(m *contactMessage) {
		if id != uuid.Nil {
			m.id = id
		}
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(m *contactMessage) {
		if !createdAt.IsZero() {
			m.createdAt = createdAt
		}
	}
}

func (m *contactMessage) ID() uuid.UUID {
	return m.id
}

func (m *contactMessage) Name() string {
	return m.name
}

func (m *contactMessage) Email() string {
	return m.email
}

func (m *contactMessage) Subject() string {
	return m.subject
}

func (m *contactMessage) Message() string {
	return m.message
}

func (m *contactMessage) CreatedAt() time.Time {
	return m.createdAt
}
