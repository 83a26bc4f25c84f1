package services

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
)

const DefaultBlogPageSize = 6

type BlogQuery struct {
	Page     int    `form:"page"`
	Query    string `form:"q"`
	Category string `form:"category"`
}

type BlogPage struct {
	Posts      []content.Post
	Page       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
	Query      string
	Category   string
	Categories []string
}

type BlogService struct {
	repo     content.Repository
	pageSize int
}

func NewBlogService(repo content.Repository, pageSize int) *BlogService {
	if pageSize <= 0 {
		pageSize = DefaultBlogPageSize
	}
	return &BlogService{repo: repo, pageSize: pageSize}
}

func matchesQuery(p content.Post, query string) bool {
	if query == "" {
		return true
	}
	return fuzzy.MatchNormalizedFold(query, p.Title) ||
		fuzzy.MatchNormalizedFold(query, p.Author) ||
		strings.Contains(strings.ToLower(p.Excerpt), strings.ToLower(query))
}

func categories(posts []content.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.Category != "" && !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	slices.Sort(out)
	return out
}

// List returns one page of posts, newest first. Out-of-range pages are
// clamped to the nearest valid page.
func (s *BlogService) List(ctx context.Context, q BlogQuery) (BlogPage, error) {
	posts, err := s.repo.Posts(ctx)
	if err != nil {
		return BlogPage{}, unavailable("posts", err)
	}
	slices.SortStableFunc(posts, func(a, b content.Post) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	query := strings.TrimSpace(q.Query)
	category := strings.TrimSpace(q.Category)
	filtered := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	totalPages := (total + s.pageSize - 1) / s.pageSize
	page := min(max(q.Page, 1), max(totalPages, 1))
	start := min((page-1)*s.pageSize, total)
	end := min(start+s.pageSize, total)

	return BlogPage{
		Posts:      filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Query:      query,
		Category:   category,
		Categories: categories(posts),
	}, nil
}
