package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/services"
)

func postIDs(posts []content.Post) []int {
	ids := make([]int, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestBlogService_NewestFirstAndPaging(t *testing.T) {
	t.Parallel()
	svc := services.NewBlogService(contentRepo(t), 0)
	ctx := context.Background()

	first, err := svc.List(ctx, services.BlogQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 1, 2, 3, 4, 5}, postIDs(first.Posts))
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 7, first.Total)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	second, err := svc.List(ctx, services.BlogQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{6}, postIDs(second.Posts))
	assert.True(t, second.HasPrev)
	assert.False(t, second.HasNext)
}

func TestBlogService_ClampsPage(t *testing.T) {
	t.Parallel()
	svc := services.NewBlogService(contentRepo(t), 3)
	ctx := context.Background()

	page, err := svc.List(ctx, services.BlogQuery{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, []int{6}, postIDs(page.Posts))

	page, err = svc.List(ctx, services.BlogQuery{Page: -4})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestBlogService_SearchAndCategory(t *testing.T) {
	t.Parallel()
	svc := services.NewBlogService(contentRepo(t), 0)
	ctx := context.Background()

	page, err := svc.List(ctx, services.BlogQuery{Query: "  water "})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, postIDs(page.Posts))
	assert.Equal(t, "water", page.Query)

	page, err = svc.List(ctx, services.BlogQuery{Query: "PRIYA"})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, postIDs(page.Posts))

	page, err = svc.List(ctx, services.BlogQuery{Category: "environment"})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 4}, postIDs(page.Posts))
	assert.Equal(t, []string{"Development", "Education", "Environment", "Finance", "Healthcare", "Social Impact"}, page.Categories)

	page, err = svc.List(ctx, services.BlogQuery{Category: "Healthcare", Query: "water"})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
}

func TestBlogService_Unavailable(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	svc := services.NewBlogService(brokenRepo{Repository: contentRepo(t), err: boom}, 0)

	_, err := svc.List(context.Background(), services.BlogQuery{})
	require.ErrorIs(t, err, content.ErrContentUnavailable)
}
