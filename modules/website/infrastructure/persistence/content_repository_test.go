package persistence_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence"
)

func TestEmbeddedContentRepository_Defaults(t *testing.T) {
	t.Parallel()
	repo, err := persistence.NewEmbeddedContentRepository()
	require.NoError(t, err)
	ctx := context.Background()

	slides, err := repo.Slides(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, slides)
	for _, s := range slides {
		assert.NotEmpty(t, s.CTAText, "slide %d", s.ID)
	}
	assert.Equal(t, content.DefaultCTAText, slides[1].CTAText)

	posts, err := repo.Posts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	assert.False(t, posts[0].Date.IsZero())

	info, err := repo.ContactInfo(ctx)
	require.NoError(t, err)
	assert.Contains(t, info.Emails, "info@igdindia.org")
}

func TestEmbeddedContentRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()
	repo, err := persistence.NewEmbeddedContentRepository()
	require.NoError(t, err)
	ctx := context.Background()

	photos, err := repo.HomePhotos(ctx)
	require.NoError(t, err)
	photos[0].Title = "changed"

	again, err := repo.HomePhotos(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again[0].Title)
}

func validFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, name := range []string{
		"slides.json", "home_photos.json", "stats.json", "focus_areas.json", "about_photos.json",
		"values.json", "approaches.json", "contact_photos.json", "posts.json",
	} {
		fsys["c/"+name] = &fstest.MapFile{Data: []byte("[]")}
	}
	fsys["c/contact_info.json"] = &fstest.MapFile{Data: []byte(`{"emails":["a@b.org"]}`)}
	return fsys
}

func TestNewContentRepositoryFromFS(t *testing.T) {
	t.Parallel()

	repo, err := persistence.NewContentRepositoryFromFS(validFS(), "c")
	require.NoError(t, err)
	slides, err := repo.Slides(context.Background())
	require.NoError(t, err)
	assert.Empty(t, slides)

	missing := validFS()
	delete(missing, "c/stats.json")
	_, err = persistence.NewContentRepositoryFromFS(missing, "c")
	require.ErrorContains(t, err, "stats.json")

	badDate := validFS()
	badDate["c/posts.json"] = &fstest.MapFile{Data: []byte(`[{"id":9,"date":"15/01/2024"}]`)}
	_, err = persistence.NewContentRepositoryFromFS(badDate, "c")
	require.ErrorContains(t, err, "post 9")

	badJSON := validFS()
	badJSON["c/values.json"] = &fstest.MapFile{Data: []byte(`{`)}
	_, err = persistence.NewContentRepositoryFromFS(badJSON, "c")
	require.ErrorContains(t, err, "values.json")
}

func TestEmbeddedContentRepository_CancelledContext(t *testing.T) {
	t.Parallel()
	repo, err := persistence.NewEmbeddedContentRepository()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.Posts(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
