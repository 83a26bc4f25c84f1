package base

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type ErrorStateProps struct {
	Title   string
	Message string
	// RetryURL is fetched with htmx into RetryTarget; no button is shown when empty.
	RetryURL    string
	RetryTarget string
	RetryLabel  string
}

func ErrorState(p ErrorStateProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Title == "" {
			p.Title = "Oops! Something went wrong"
		}
		if p.Message == "" {
			p.Message = "Something went wrong"
		}
		if p.RetryLabel == "" {
			p.RetryLabel = "Try Again"
		}
		html := `<div class="flex flex-col items-center justify-center py-16 px-4" data-state="error" role="alert">` +
			`<div class="bg-gradient-to-br from-red-50 to-red-100 p-8 rounded-2xl shadow-lg max-w-md w-full text-center">` +
			`<div class="w-16 h-16 bg-error/10 rounded-full flex items-center justify-center mx-auto mb-4">` +
			IconSVG("alert-circle", "w-8 h-8 text-error") + `</div>` +
			`<h3 class="text-xl font-semibold text-gray-900 mb-2">` + templ.EscapeString(p.Title) + `</h3>` +
			`<p class="text-gray-600 mb-6">` + templ.EscapeString(p.Message) + `</p>`
		if p.RetryURL != "" {
			target := p.RetryTarget
			if target == "" {
				target = "this"
			}
			html += `<a href="` + templ.EscapeString(p.RetryURL) + `" hx-get="` + templ.EscapeString(p.RetryURL) +
				`" hx-target="` + templ.EscapeString(target) + `" hx-swap="outerHTML" class="` +
				ButtonClass("primary", "md", "px-6 py-2 inline-flex items-center gap-2 mx-auto shadow-none") + `" data-retry>` +
				IconSVG("refresh-cw", "w-4 h-4") + templ.EscapeString(p.RetryLabel) + `</a>`
		}
		html += `</div></div>`
		_, err := io.WriteString(w, html)
		return err
	})
}

type EmptyStateProps struct {
	Title       string
	Message     string
	ActionLabel string
	ActionURL   string
	Icon        string
}

func EmptyState(p EmptyStateProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Title == "" {
			p.Title = "No data available"
		}
		if p.Message == "" {
			p.Message = "There's nothing to display at the moment."
		}
		if p.Icon == "" {
			p.Icon = "folder-open"
		}
		html := `<div class="flex flex-col items-center justify-center py-16 px-4" data-state="empty">` +
			`<div class="bg-gradient-to-br from-primary/5 to-secondary/5 p-8 rounded-2xl shadow-lg max-w-md w-full text-center">` +
			`<div class="w-20 h-20 bg-gradient-to-br from-primary/10 to-secondary/10 rounded-full flex items-center justify-center mx-auto mb-6">` +
			IconSVG(p.Icon, "w-10 h-10 text-primary") + `</div>` +
			`<h3 class="text-xl font-semibold text-gray-900 mb-2">` + templ.EscapeString(p.Title) + `</h3>` +
			`<p class="text-gray-600 mb-6">` + templ.EscapeString(p.Message) + `</p>`
		if p.ActionURL != "" {
			label := p.ActionLabel
			if label == "" {
				label = "Learn More"
			}
			html += `<a href="` + templ.EscapeString(p.ActionURL) + `" class="` + ButtonClass("primary", "md") + `">` +
				templ.EscapeString(label) + `</a>`
		}
		html += `</div></div>`
		_, err := io.WriteString(w, html)
		return err
	})
}

// ChartSkeleton is shown while the organization chart loads.
func ChartSkeleton() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="bg-white p-6 rounded-lg shadow-lg" data-state="loading">`+
			`<div class="animate-skeleton h-8 w-48 bg-gray-200 rounded mb-6"></div>`+
			`<div class="space-y-4"><div class="animate-skeleton h-12 w-full bg-gray-200 rounded"></div>`+
			`<div class="ml-8 space-y-2"><div class="animate-skeleton h-10 w-3/4 bg-gray-200 rounded"></div>`+
			`<div class="animate-skeleton h-10 w-1/2 bg-gray-200 rounded"></div></div>`+
			`<div class="ml-16 space-y-2"><div class="animate-skeleton h-8 w-2/3 bg-gray-200 rounded"></div>`+
			`<div class="animate-skeleton h-8 w-1/2 bg-gray-200 rounded"></div></div></div></div>`)
		return err
	})
}
