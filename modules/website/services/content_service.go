package services

import (
	"context"
	"fmt"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
)

const DefaultHomePhotoLimit = 6

type HomeContent struct {
	Slides     []content.Slide
	Photos     []content.Photo
	Stats      []content.Stat
	FocusAreas []content.Value
}

type AboutContent struct {
	Values     []content.Value
	Approaches []content.Value
	Photos     []content.Photo
}

type ContactContent struct {
	Info   content.ContactInfo
	Photos []content.Photo
}

type ContentService struct {
	repo           content.Repository
	homePhotoLimit int
}

func NewContentService(repo content.Repository, homePhotoLimit int) *ContentService {
	if homePhotoLimit <= 0 {
		homePhotoLimit = DefaultHomePhotoLimit
	}
	return &ContentService{repo: repo, homePhotoLimit: homePhotoLimit}
}

func unavailable(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", content.ErrContentUnavailable, what, err)
}

// Home gathers the landing page; the gallery shows only the first photos.
func (s *ContentService) Home(ctx context.Context) (HomeContent, error) {
	slides, err := s.repo.Slides(ctx)
	if err != nil {
		return HomeContent{}, unavailable("slides", err)
	}
	photos, err := s.repo.HomePhotos(ctx)
	if err != nil {
		return HomeContent{}, unavailable("home photos", err)
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return HomeContent{}, unavailable("stats", err)
	}
	focusAreas, err := s.repo.FocusAreas(ctx)
	if err != nil {
		return HomeContent{}, unavailable("focus areas", err)
	}
	if len(photos) > s.homePhotoLimit {
		photos = photos[:s.homePhotoLimit]
	}
	return HomeContent{
		Slides:     slides,
		Photos:     photos,
		Stats:      stats,
		FocusAreas: focusAreas,
	}, nil
}

func (s *ContentService) About(ctx context.Context) (AboutContent, error) {
	values, err := s.repo.Values(ctx)
	if err != nil {
		return AboutContent{}, unavailable("values", err)
	}
	approaches, err := s.repo.Approaches(ctx)
	if err != nil {
		return AboutContent{}, unavailable("approaches", err)
	}
	photos, err := s.repo.AboutPhotos(ctx)
	if err != nil {
		return AboutContent{}, unavailable("about photos", err)
	}
	return AboutContent{Values: values, Approaches: approaches, Photos: photos}, nil
}

func (s *ContentService) Contact(ctx context.Context) (ContactContent, error) {
	info, err := s.repo.ContactInfo(ctx)
	if err != nil {
		return ContactContent{}, unavailable("contact info", err)
	}
	photos, err := s.repo.ContactPhotos(ctx)
	if err != nil {
		return ContactContent{}, unavailable("contact photos", err)
	}
	return ContactContent{Info: info, Photos: photos}, nil
}
