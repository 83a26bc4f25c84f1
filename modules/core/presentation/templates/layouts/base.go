package layouts

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/apper-apps/india-website-drive/components/base"
	"github.com/apper-apps/india-website-drive/internal/assets"
	"github.com/apper-apps/india-website-drive/pkg/composables"
	"github.com/apper-apps/india-website-drive/pkg/intl"
	"github.com/apper-apps/india-website-drive/pkg/types"
)

const (
	htmxScript     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindScript = "https://cdn.tailwindcss.com"
)

const tailwindConfig = `tailwind.config={theme:{extend:{colors:{primary:"var(--color-primary)",secondary:"var(--color-secondary)",accent:"var(--color-accent)",error:"var(--color-error)",background:"var(--color-background)"}}}}`

const navItemClass = "px-4 py-2 rounded-lg font-medium transition-all duration-200 hover:bg-primary/10 hover:text-primary"

type BaseProps struct {
	Title       string
	Description string
}

// Base renders the full document around the children in ctx.
func Base(props *BaseProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		pageCtx, _ := composables.UsePageCtx(ctx)

		siteName := intl.MustT(ctx, "Site.Name")
		title := siteName
		if props != nil && strings.TrimSpace(props.Title) != "" {
			title = props.Title + " | " + siteName
		}
		description := intl.MustT(ctx, "Site.Tagline")
		if props != nil && props.Description != "" {
			description = props.Description
		}
		lang := "en"
		if pageCtx != nil {
			if b, _ := pageCtx.Locale.Base(); b.String() != "" {
				lang = b.String()
			}
		}

		w.Str(`<!DOCTYPE html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8">`)
		w.Str(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Str(`<title>` + templ.EscapeString(title) + `</title>`)
		w.Str(`<meta name="description" content="` + templ.EscapeString(description) + `">`)
		w.Str(`<link rel="icon" href="` + assets.Path("images/logo.svg") + `">`)
		w.Str(`<link rel="stylesheet" href="` + assets.Path("css/app.css") + `">`)
		w.Str(`<script src="` + tailwindScript + `"></script><script>` + tailwindConfig + `</script>`)
		w.Str(`<script src="` + htmxScript + `" defer></script>`)
		w.Str(`<script src="` + assets.Path("js/app.js") + `" defer></script>`)
		w.Str(`</head><body class="min-h-screen bg-background">`)

		w.Render(ctx, Header(pageCtx))
		w.Str(`<main id="main">`)
		w.Render(ctx, templ.GetChildren(ctx))
		w.Str(`</main>`)
		w.Render(ctx, Footer())
		w.Str(`</body></html>`)
		return w.Err()
	})
}

func navLink(pageCtx *types.PageContext, item types.NavigationItem, extra string) string {
	cls := navItemClass
	current := ""
	if pageCtx != nil && pageCtx.IsActive(item.Href) {
		cls = base.Cn(cls, "bg-primary/10 text-primary")
		current = ` aria-current="page"`
	}
	if extra != "" {
		cls = base.Cn(cls, extra)
	}
	return `<a href="` + templ.EscapeString(item.Href) + `" class="` + cls + `"` + current + `>` +
		templ.EscapeString(item.Name) + `</a>`
}

func Header(pageCtx *types.PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		var items []types.NavigationItem
		if pageCtx != nil {
			items = pageCtx.NavItems
		}

		w.Str(`<header class="bg-white shadow-lg sticky top-0 z-50"><div class="container mx-auto px-4">`)
		w.Str(`<div class="flex items-center justify-between h-16">`)
		w.Str(`<a href="/" class="flex items-center space-x-3"><img src="` + assets.Path("images/logo.svg") +
			`" class="h-10 w-auto" alt="` + templ.EscapeString(intl.MustT(ctx, "Site.Name")) + `"></a>`)
		w.Str(`<nav class="hidden md:flex items-center space-x-1" data-nav="desktop">`)
		for _, item := range items {
			w.Str(navLink(pageCtx, item, ""))
		}
		w.Render(ctx, languageSwitcher(pageCtx))
		w.Str(`</nav>`)
		w.Str(`<button type="button" class="md:hidden p-2 rounded-lg hover:bg-gray-100 transition-colors" data-menu-toggle aria-expanded="false" aria-label="` +
			templ.EscapeString(intl.MustT(ctx, "Navigation.Menu")) + `">` + base.IconSVG("menu", "w-6 h-6 text-gray-700") + `</button>`)
		w.Str(`</div>`)
		w.Str(`<div class="md:hidden border-t border-gray-200 py-4" data-mobile-menu hidden><nav class="flex flex-col space-y-2" data-nav="mobile">`)
		for _, item := range items {
			w.Str(navLink(pageCtx, item, ""))
		}
		w.Str(`</nav></div></div></header>`)
		return w.Err()
	})
}

func languageSwitcher(pageCtx *types.PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if pageCtx == nil || len(pageCtx.Languages) < 2 {
			return nil
		}
		w := base.NewWriter(out)
		current, _ := pageCtx.Locale.Base()
		w.Str(`<div class="ml-4 flex items-center gap-1 text-sm" data-languages>`)
		for _, lang := range intl.GetSupportedLanguages(pageCtx.Languages) {
			cls := "px-2 py-1 rounded text-gray-600 hover:text-primary"
			if lang.Code == current.String() {
				cls = base.Cn(cls, "text-primary font-semibold")
			}
			w.Str(`<a href="?lang=` + templ.EscapeString(lang.Code) + `" hreflang="` + templ.EscapeString(lang.Code) +
				`" class="` + cls + `">` + templ.EscapeString(lang.VerboseName) + `</a>`)
		}
		w.Str(`</div>`)
		return w.Err()
	})
}

func Footer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		t := func(id string) string { return templ.EscapeString(intl.MustT(ctx, id)) }
		link := func(href, id string) string {
			return `<li><a href="` + href + `" class="text-white/80 hover:text-white transition-colors">` + t(id) + `</a></li>`
		}

		w.Str(`<footer class="bg-gradient-to-br from-primary to-secondary text-white"><div class="container mx-auto px-4 py-12">`)
		w.Str(`<div class="grid grid-cols-1 md:grid-cols-3 gap-8">`)
		w.Str(`<div><div class="flex items-center space-x-3 mb-4"><div class="w-10 h-10 bg-white/20 rounded-lg flex items-center justify-center">` +
			base.IconSVG("heart", "w-6 h-6 text-white") + `</div><div><h3 class="text-xl font-bold">` + t("Site.Name") +
			`</h3><p class="text-sm text-white/80">` + t("Site.FullName") + `</p></div></div>`)
		w.Str(`<p class="text-white/80 mb-4">` + t("Footer.About") + `</p></div>`)

		w.Str(`<div><h4 class="text-lg font-semibold mb-4">` + t("Footer.QuickLinks") + `</h4><ul class="space-y-2">`)
		w.Str(link("/", "NavigationLinks.Home"))
		w.Str(link("/about", "NavigationLinks.About"))
		w.Str(link("/blog", "NavigationLinks.Blog"))
		w.Str(link("/contact", "NavigationLinks.Contact"))
		w.Str(`</ul></div>`)

		w.Str(`<div><h4 class="text-lg font-semibold mb-4">` + t("Footer.StayConnected") + `</h4><p class="text-white/80 mb-4">` +
			t("Footer.Newsletter") + `</p>`)
		w.Str(`<a href="/contact" class="` + base.ButtonClass("accent", "md", "px-4 py-2 whitespace-nowrap inline-block") + `">` +
			t("Footer.GetInTouch") + `</a></div>`)
		w.Str(`</div>`)

		w.Str(`<div class="border-t border-white/20 mt-8 pt-8 text-center"><p class="text-white/80">` + t("Footer.Copyright") +
			`</p><p class="text-white/60 text-sm mt-2">` + t("Footer.Address") + `</p></div>`)
		w.Str(`</div></footer>`)
		return w.Err()
	})
}
