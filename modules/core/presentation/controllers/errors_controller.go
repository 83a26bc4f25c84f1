package controllers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/apper-apps/india-website-drive/components/base"
	"github.com/apper-apps/india-website-drive/modules/core/presentation/templates/layouts"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/htmx"
	"github.com/apper-apps/india-website-drive/pkg/httpapi"
	"github.com/apper-apps/india-website-drive/pkg/intl"
	"github.com/apper-apps/india-website-drive/pkg/middleware"
)

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

func requestIDFromResponse(w http.ResponseWriter, r *http.Request) string {
	if w != nil {
		if requestID := strings.TrimSpace(w.Header().Get("X-Request-Id")); requestID != "" {
			return requestID
		}
	}
	if r != nil {
		return strings.TrimSpace(r.Header.Get("X-Request-Id"))
	}
	return ""
}

func errorMeta(w http.ResponseWriter, r *http.Request) map[string]string {
	meta := map[string]string{
		"path": r.URL.Path,
	}
	if requestID := requestIDFromResponse(w, r); requestID != "" {
		meta["request_id"] = requestID
	}
	return meta
}

func notFoundContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return base.EmptyState(base.EmptyStateProps{
			Title:       intl.MustT(ctx, "ErrorPages.NotFound.Title"),
			Message:     intl.MustT(ctx, "ErrorPages.NotFound.Message"),
			ActionLabel: intl.MustT(ctx, "ErrorPages.NotFound.Action"),
			ActionURL:   "/",
			Icon:        "search",
		}).Render(ctx, w)
	})
}

// RenderNotFound writes a 404 page, or just the content block for htmx requests.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	component := notFoundContent()
	if !htmx.IsHxRequest(r) {
		component = layouts.Page(&layouts.BaseProps{Title: intl.MustT(r.Context(), "ErrorPages.NotFound.Title")}, component)
	}
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound answers JSON under /api and an HTML page elsewhere. The router
// wraps it in the global middleware, so localizer and page context are set.
func NotFound(app application.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isAPIPath(r.URL.Path) {
			_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeNotFound, "not found", errorMeta(w, r))
			return
		}
		if _, ok := intl.UseLocalizer(r.Context()); !ok {
			handler := middleware.WithPageContext(app)(http.HandlerFunc(RenderNotFound))
			middleware.ProvideLocalizer(app)(handler).ServeHTTP(w, r)
			return
		}
		RenderNotFound(w, r)
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isAPIPath(r.URL.Path) {
			meta := errorMeta(w, r)
			meta["method"] = r.Method
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, httpapi.CodeMethodNotAllowed, "method not allowed", meta)
			return
		}
		http.Error(w, intl.MustT(r.Context(), "ErrorPages.MethodNotAllowed"), http.StatusMethodNotAllowed)
	}
}
