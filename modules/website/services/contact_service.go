package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/contactmessage"
	"github.com/apper-apps/india-website-drive/pkg/composables"
	"github.com/apper-apps/india-website-drive/pkg/eventbus"
	"github.com/apper-apps/india-website-drive/pkg/intl"
	"github.com/apper-apps/india-website-drive/pkg/shared"
)

type SubmitMessageDTO struct {
	Name    string `form:"name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required,max=300"`
	Message string `form:"message" validate:"required,max=5000"`
}

func (d *SubmitMessageDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Subject = strings.TrimSpace(d.Subject)
	d.Message = strings.TrimSpace(d.Message)
}

// ValidationErrors maps a form field to its localized message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid contact message: " + strings.Join(fields, ", ")
}

type Receipt struct {
	ID          uuid.UUID
	SubmittedAt time.Time
}

type ContactService struct {
	repo      contactmessage.Repository
	publisher eventbus.EventBus
	now       func() time.Time
}

func NewContactService(repo contactmessage.Repository, publisher eventbus.EventBus) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// localizeFieldError looks up Contact.Validation.<field>.<tag> in the
// request locale.
func localizeFieldError(ctx context.Context) func(fe validator.FieldError) (string, bool) {
	return func(fe validator.FieldError) (string, bool) {
		l, ok := intl.UseLocalizer(ctx)
		if !ok {
			return "", false
		}
		msg, err := l.Localize(&i18n.LocalizeConfig{
			MessageID: "Contact.Validation." + fe.Field() + "." + fe.Tag(),
		})
		if err != nil {
			return "", false
		}
		return msg, true
	}
}

func (s *ContactService) validate(ctx context.Context, dto *SubmitMessageDTO) error {
	dto.Normalize()
	err := shared.Validate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return ValidationErrors(shared.FieldErrors(verrs, localizeFieldError(ctx)))
}

// Submit validates and stores a contact form message. Invalid input yields
// ValidationErrors and nothing is stored.
func (s *ContactService) Submit(ctx context.Context, dto SubmitMessageDTO) (Receipt, error) {
	if err := s.validate(ctx, &dto); err != nil {
		recordContactMessage("invalid")
		return Receipt{}, err
	}

	msg := contactmessage.New(dto.Name, dto.Email, dto.Subject, dto.Message,
		contactmessage.WithCreatedAt(s.now()))
	saved, err := s.repo.Save(ctx, msg)
	if err != nil {
		recordContactMessage("error")
		return Receipt{}, errors.Wrap(err, "failed to save contact message")
	}
	recordContactMessage("ok")
	composables.UseLogger(ctx).WithField("message-id", saved.ID()).Debug("contact message stored")

	s.publisher.Publish(&contactmessage.MessageSubmittedEvent{
		MessageID: saved.ID(),
		Email:     saved.Email(),
		Subject:   saved.Subject(),
		At:        saved.CreatedAt(),
	})
	return Receipt{ID: saved.ID(), SubmittedAt: saved.CreatedAt()}, nil
}

func (s *ContactService) Recent(ctx context.Context, limit int) ([]contactmessage.ContactMessage, error) {
	return s.repo.List(ctx, limit)
}

func (s *ContactService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
