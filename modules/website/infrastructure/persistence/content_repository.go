package persistence

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"

	"github.com/go-faster/errors"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence/models"
)

//go:embed data/*.json
var contentFiles embed.FS

// EmbeddedContentRepository serves page content decoded once from JSON files.
// Callers get copies; the decoded data is never handed out.
type EmbeddedContentRepository struct {
	slides        []content.Slide
	homePhotos    []content.Photo
	stats         []content.Stat
	focusAreas    []content.Value
	aboutPhotos   []content.Photo
	values        []content.Value
	approaches    []content.Value
	contactPhotos []content.Photo
	contactInfo   content.ContactInfo
	posts         []content.Post
}

// NewEmbeddedContentRepository decodes the built-in content.
func NewEmbeddedContentRepository() (*EmbeddedContentRepository, error) {
	return NewContentRepositoryFromFS(contentFiles, "data")
}

// NewContentRepositoryFromFS decodes content files from dir of fsys.
func NewContentRepositoryFromFS(fsys fs.FS, dir string) (*EmbeddedContentRepository, error) {
	var (
		slides        []models.Slide
		homePhotos    []models.Photo
		stats         []models.Stat
		focusAreas    []models.Value
		aboutPhotos   []models.Photo
		values        []models.Value
		approaches    []models.Value
		contactPhotos []models.Photo
		contactInfo   models.ContactInfo
		posts         []models.Post
	)
	files := []struct {
		name string
		dst  any
	}{
		{"slides.json", &slides},
		{"home_photos.json", &homePhotos},
		{"stats.json", &stats},
		{"focus_areas.json", &focusAreas},
		{"about_photos.json", &aboutPhotos},
		{"values.json", &values},
		{"approaches.json", &approaches},
		{"contact_photos.json", &contactPhotos},
		{"contact_info.json", &contactInfo},
		{"posts.json", &posts},
	}
	for _, f := range files {
		if err := decodeFile(fsys, dir+"/"+f.name, f.dst); err != nil {
			return nil, err
		}
	}

	domainPosts := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		post, err := ToDomainPost(p)
		if err != nil {
			return nil, err
		}
		domainPosts = append(domainPosts, post)
	}

	return &EmbeddedContentRepository{
		slides:        mapAll(slides, ToDomainSlide),
		homePhotos:    mapAll(homePhotos, ToDomainPhoto),
		stats:         mapAll(stats, ToDomainStat),
		focusAreas:    mapAll(focusAreas, ToDomainValue),
		aboutPhotos:   mapAll(aboutPhotos, ToDomainPhoto),
		values:        mapAll(values, ToDomainValue),
		approaches:    mapAll(approaches, ToDomainValue),
		contactPhotos: mapAll(contactPhotos, ToDomainPhoto),
		contactInfo:   ToDomainContactInfo(contactInfo),
		posts:         domainPosts,
	}, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to read %s", name))
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to decode %s", name))
	}
	return nil
}

func (r *EmbeddedContentRepository) Slides(ctx context.Context) ([]content.Slide, error) {
	return slices.Clone(r.slides), ctx.Err()
}

func (r *EmbeddedContentRepository) HomePhotos(ctx context.Context) ([]content.Photo, error) {
	return slices.Clone(r.homePhotos), ctx.Err()
}

func (r *EmbeddedContentRepository) Stats(ctx context.Context) ([]content.Stat, error) {
	return slices.Clone(r.stats), ctx.Err()
}

func (r *EmbeddedContentRepository) FocusAreas(ctx context.Context) ([]content.Value, error) {
	return slices.Clone(r.focusAreas), ctx.Err()
}

func (r *EmbeddedContentRepository) AboutPhotos(ctx context.Context) ([]content.Photo, error) {
	return slices.Clone(r.aboutPhotos), ctx.Err()
}

func (r *EmbeddedContentRepository) Values(ctx context.Context) ([]content.Value, error) {
	return slices.Clone(r.values), ctx.Err()
}

func (r *EmbeddedContentRepository) Approaches(ctx context.Context) ([]content.Value, error) {
	return slices.Clone(r.approaches), ctx.Err()
}

func (r *EmbeddedContentRepository) ContactPhotos(ctx context.Context) ([]content.Photo, error) {
	return slices.Clone(r.contactPhotos), ctx.Err()
}

func (r *EmbeddedContentRepository) ContactInfo(ctx context.Context) (content.ContactInfo, error) {
	info := r.contactInfo
	info.Address = slices.Clone(info.Address)
	info.Phones = slices.Clone(info.Phones)
	info.Emails = slices.Clone(info.Emails)
	info.Hours = slices.Clone(info.Hours)
	return info, ctx.Err()
}

func (r *EmbeddedContentRepository) Posts(ctx context.Context) ([]content.Post, error) {
	return slices.Clone(r.posts), ctx.Err()
}
