package persistence

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/contactmessage"
	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence/models"
)

const postDateLayout = "2006-01-02"

func ToDomainSlide(m models.Slide) content.Slide {
	cta := m.CTAText
	if cta == "" {
		cta = content.DefaultCTAText
	}
	return content.Slide{
		ID:       m.ID,
		Image:    m.Image,
		Title:    m.Title,
		Subtitle: m.Subtitle,
		CTAText:  cta,
		CTALink:  m.CTALink,
	}
}

func ToDomainPhoto(m models.Photo) content.Photo {
	return content.Photo{
		ID:          m.ID,
		Image:       m.Image,
		Title:       m.Title,
		Description: m.Description,
	}
}

func ToDomainStat(m models.Stat) content.Stat {
	return content.Stat{
		ID:          m.ID,
		Icon:        m.Icon,
		Value:       m.Value,
		Label:       m.Label,
		Description: m.Description,
	}
}

func ToDomainValue(m models.Value) content.Value {
	return content.Value{
		ID:          m.ID,
		Icon:        m.Icon,
		Title:       m.Title,
		Description: m.Description,
	}
}

func ToDomainContactInfo(m models.ContactInfo) content.ContactInfo {
	return content.ContactInfo{
		Organization: m.Organization,
		Address:      m.Address,
		Phones:       m.Phones,
		Emails:       m.Emails,
		Hours:        m.Hours,
		MapURL:       m.MapURL,
	}
}

func ToDomainPost(m models.Post) (content.Post, error) {
	date, err := time.Parse(postDateLayout, m.Date)
	if err != nil {
		return content.Post{}, errors.Wrap(err, fmt.Sprintf("invalid date for post %d", m.ID))
	}
	return content.Post{
		ID:       m.ID,
		Title:    m.Title,
		Excerpt:  m.Excerpt,
		Image:    m.Image,
		Author:   m.Author,
		Date:     date,
		Category: m.Category,
		ReadTime: m.ReadTime,
	}, nil
}

func ToDBContactMessage(msg contactmessage.ContactMessage) models.ContactMessage {
	return models.ContactMessage{
		ID:        msg.ID().String(),
		Name:      msg.Name(),
		Email:     msg.Email(),
		Subject:   msg.Subject(),
		Message:   msg.Message(),
		CreatedAt: msg.CreatedAt(),
	}
}

func ToDomainContactMessage(m models.ContactMessage) (contactmessage.ContactMessage, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse contact message id")
	}
	return contactmessage.New(
		m.Name,
		m.Email,
		m.Subject,
		m.Message,
		contactmessage.WithID(id),
		contactmessage.WithCreatedAt(m.CreatedAt),
	), nil
}

func mapAll[M, D any](in []M, fn func(M) D) []D {
	out := make([]D, 0, len(in))
	for _, m := range in {
		out = append(out, fn(m))
	}
	return out
}
