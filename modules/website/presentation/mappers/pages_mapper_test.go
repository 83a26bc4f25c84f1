package mappers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/presentation/mappers"
	"github.com/apper-apps/india-website-drive/modules/website/services"
)

func TestHeroSlider(t *testing.T) {
	t.Parallel()
	slides := []content.Slide{{ID: 1}, {ID: 2}, {ID: 3}}

	s := mappers.HeroSlider(slides, 0, 5*time.Second)
	assert.Equal(t, 0, s.Current)
	assert.True(t, s.Slides[0].Active)
	assert.Equal(t, "/?slide=2", s.PrevURL)
	assert.Equal(t, "/?slide=1", s.NextURL)
	assert.Equal(t, int64(5000), s.IntervalMs)

	s = mappers.HeroSlider(slides, 5, time.Second)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, "/?slide=0", s.NextURL)

	single := mappers.HeroSlider(slides[:1], 0, time.Second)
	assert.False(t, single.HasControls)
	assert.Empty(t, single.NextURL)

	empty := mappers.HeroSlider(nil, 3, time.Second)
	assert.Empty(t, empty.Slides)
	assert.Equal(t, 0, empty.Current)
}

func TestBlogURL(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/blog", mappers.BlogURL(1, "", ""))
	assert.Equal(t, "/blog?page=2", mappers.BlogURL(2, "", ""))
	assert.Equal(t, "/blog?category=Social+Impact&page=3&q=women", mappers.BlogURL(3, "women", "Social Impact"))
}

func TestBlogPage(t *testing.T) {
	t.Parallel()
	page := mappers.BlogPage(services.BlogPage{
		Posts: []content.Post{{
			ID: 1, Author: "Dr. Sarah Johnson", Category: "Healthcare",
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		}},
		Page: 2, TotalPages: 3, HasPrev: true, HasNext: true,
		Query: "health", Categories: []string{"Healthcare", "Finance"},
	})

	assert.Equal(t, "DSJ", page.Posts[0].Initials)
	assert.Equal(t, "January 15, 2024", page.Posts[0].DateLabel)
	assert.Equal(t, "bg-red-100 text-red-600", page.Posts[0].CategoryClass)
	assert.Equal(t, "/blog?q=health", page.PrevURL)
	assert.Equal(t, "/blog?page=3&q=health", page.NextURL)
	assert.Len(t, page.Pages, 3)
	assert.True(t, page.Pages[1].Current)
	assert.Equal(t, "/blog?category=Finance&q=health", page.Categories[1].URL)
}

func TestCategoryStyleFallback(t *testing.T) {
	t.Parallel()
	class, icon := mappers.CategoryStyle("Unknown")
	assert.Equal(t, "bg-gray-100 text-gray-600", class)
	assert.Equal(t, "file-text", icon)
}
