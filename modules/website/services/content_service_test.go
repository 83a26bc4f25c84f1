package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence"
	"github.com/apper-apps/india-website-drive/modules/website/services"
)

func contentRepo(t *testing.T) content.Repository {
	t.Helper()
	repo, err := persistence.NewEmbeddedContentRepository()
	require.NoError(t, err)
	return repo
}

// brokenRepo fails the methods it overrides and delegates the rest.
type brokenRepo struct {
	content.Repository
	err error
}

func (r brokenRepo) Stats(context.Context) ([]content.Stat, error) {
	return nil, r.err
}

func (r brokenRepo) Posts(context.Context) ([]content.Post, error) {
	return nil, r.err
}

func TestContentService_Home(t *testing.T) {
	t.Parallel()
	svc := services.NewContentService(contentRepo(t), 3)

	home, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Len(t, home.Photos, 3)
	assert.NotEmpty(t, home.Slides)
	assert.Len(t, home.Stats, 3)
	assert.NotEmpty(t, home.FocusAreas)
}

func TestContentService_HomeDefaultPhotoLimit(t *testing.T) {
	t.Parallel()
	svc := services.NewContentService(contentRepo(t), 0)

	home, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Len(t, home.Photos, services.DefaultHomePhotoLimit)
}

func TestContentService_AboutAndContact(t *testing.T) {
	t.Parallel()
	svc := services.NewContentService(contentRepo(t), 0)
	ctx := context.Background()

	about, err := svc.About(ctx)
	require.NoError(t, err)
	assert.Len(t, about.Values, 4)
	assert.Len(t, about.Approaches, 3)
	assert.NotEmpty(t, about.Photos)

	contact, err := svc.Contact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Institute for Global Development", contact.Info.Organization)
	assert.NotEmpty(t, contact.Photos)
}

func TestContentService_Unavailable(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk gone")
	svc := services.NewContentService(brokenRepo{Repository: contentRepo(t), err: boom}, 0)

	_, err := svc.Home(context.Background())
	require.ErrorIs(t, err, content.ErrContentUnavailable)
	require.ErrorIs(t, err, boom)

	_, err = svc.About(context.Background())
	require.NoError(t, err)
}
