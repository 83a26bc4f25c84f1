// Package templates renders the website pages. Page bodies are html/template
// files bridged into the templ layout.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/apper-apps/india-website-drive/components/base"
	"github.com/apper-apps/india-website-drive/modules/website/presentation/viewmodels"
	"github.com/apper-apps/india-website-drive/pkg/intl"
)

//go:embed pages/*.html
var pageFiles embed.FS

// The parsed set is never executed directly; each render clones it with
// funcs bound to the request context.
var pages = template.Must(template.New("website").Funcs(funcMap(context.Background())).ParseFS(pageFiles, "pages/*.html"))

func funcMap(ctx context.Context) template.FuncMap {
	render := func(c templ.Component) (template.HTML, error) {
		if c == nil {
			return "", nil
		}
		return templ.ToGoHTML(ctx, c)
	}
	return template.FuncMap{
		"t": func(id string) string {
			return intl.MustT(ctx, id)
		},
		"icon": func(name, class string) template.HTML {
			return template.HTML(base.IconSVG(name, class))
		},
		"button":   base.ButtonClass,
		"card":     base.CardClass,
		"input":    base.InputClass,
		"textarea": base.TextAreaClass,
		"render":   render,
		"empty": func(titleID, messageID, icon string) (template.HTML, error) {
			return render(base.EmptyState(base.EmptyStateProps{
				Title:   intl.MustT(ctx, titleID),
				Message: intl.MustT(ctx, messageID),
				Icon:    icon,
			}))
		},
	}
}

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		set, err := pages.Clone()
		if err != nil {
			return err
		}
		tmpl := set.Funcs(funcMap(ctx)).Lookup(name)
		if tmpl == nil {
			return fmt.Errorf("website template %q is not defined", name)
		}
		return templ.FromGoHTML(tmpl, data).Render(ctx, w)
	})
}

func Home(vm *viewmodels.HomePage) templ.Component {
	return page("home", vm)
}

func About(vm *viewmodels.AboutPage) templ.Component {
	return page("about", vm)
}

func Blog(vm *viewmodels.BlogPage) templ.Component {
	return page("blog", vm)
}

func Contact(vm *viewmodels.ContactPage) templ.Component {
	return page("contact", vm)
}

// ContactFormID is the element replaced after an htmx submission.
const ContactFormID = "contact-form"

func ContactForm(form viewmodels.ContactForm) templ.Component {
	return page("contact_form", form)
}

// PageError replaces a page body whose content could not be loaded.
func PageError(messageID, retryURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := base.NewWriter(out)
		w.Str(`<div id="page-content" class="container mx-auto px-4 py-16">`)
		w.Render(ctx, base.ErrorState(base.ErrorStateProps{
			Title:       intl.MustT(ctx, "Website.Error.Title"),
			Message:     intl.MustT(ctx, messageID),
			RetryURL:    retryURL,
			RetryTarget: "#page-content",
			RetryLabel:  intl.MustT(ctx, "Website.Error.Retry"),
		}))
		w.Str(`</div>`)
		return w.Err()
	})
}
