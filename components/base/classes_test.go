package base_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/components/base"
)

func hasClass(classes, cls string) bool {
	for _, c := range strings.Fields(classes) {
		if c == cls {
			return true
		}
	}
	return false
}

func TestButtonClass_OverridesConflictingUtilities(t *testing.T) {
	t.Parallel()

	got := base.ButtonClass("primary", "md", "px-2")
	assert.True(t, hasClass(got, "px-2"))
	assert.False(t, hasClass(got, "px-6"), "px-2 must replace the size padding: %s", got)
	assert.True(t, hasClass(got, "py-3"))

	fallback := base.ButtonClass("unknown", "huge")
	assert.Equal(t, base.ButtonClass("primary", "md"), fallback)
}

func TestCardAndInputClass(t *testing.T) {
	t.Parallel()

	assert.True(t, hasClass(base.CardClass("elevated"), "shadow-lg"))
	assert.False(t, hasClass(base.CardClass("elevated", "shadow-none"), "shadow-lg"))

	withErr := base.InputClass(true)
	assert.True(t, hasClass(withErr, "border-error"))
	assert.False(t, hasClass(withErr, "border-gray-300"))
	assert.True(t, hasClass(base.TextAreaClass(false), "resize-y"))
}

func render(t *testing.T, html func(*bytes.Buffer)) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	html(&buf)
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	doc := render(t, func(buf *bytes.Buffer) {
		require.NoError(t, base.ErrorState(base.ErrorStateProps{
			Message:     "Failed <to> load",
			RetryURL:    "/organization",
			RetryTarget: "#org-chart",
		}).Render(context.Background(), buf))
	})
	assert.Equal(t, "Failed <to> load", doc.Find("p").Text())
	retry := doc.Find("a[data-retry]")
	require.Equal(t, 1, retry.Length())
	assert.Equal(t, "/organization", retry.AttrOr("hx-get", ""))
	assert.Equal(t, "#org-chart", retry.AttrOr("hx-target", ""))
	assert.Contains(t, retry.Text(), "Try Again")

	noRetry := render(t, func(buf *bytes.Buffer) {
		require.NoError(t, base.ErrorState(base.ErrorStateProps{}).Render(context.Background(), buf))
	})
	assert.Equal(t, 0, noRetry.Find("a[data-retry]").Length())
	assert.Equal(t, "Something went wrong", noRetry.Find("p").Text())
}

func TestEmptyState(t *testing.T) {
	t.Parallel()

	doc := render(t, func(buf *bytes.Buffer) {
		require.NoError(t, base.EmptyState(base.EmptyStateProps{ActionURL: "/"}).Render(context.Background(), buf))
	})
	assert.Equal(t, "No data available", doc.Find("h3").Text())
	assert.Equal(t, "Learn More", doc.Find("a").Text())
	assert.Equal(t, "folder-open", doc.Find("svg").AttrOr("data-icon", ""))
}
