package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/apper-apps/india-website-drive/modules/core/presentation/templates/layouts"
	orgtemplates "github.com/apper-apps/india-website-drive/modules/org/presentation/templates"
	"github.com/apper-apps/india-website-drive/modules/website/presentation/mappers"
	"github.com/apper-apps/india-website-drive/modules/website/presentation/templates"
	"github.com/apper-apps/india-website-drive/modules/website/presentation/viewmodels"
	"github.com/apper-apps/india-website-drive/modules/website/services"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/composables"
	"github.com/apper-apps/india-website-drive/pkg/htmx"
	"github.com/apper-apps/india-website-drive/pkg/intl"
)

const (
	contactPath  = "/contact"
	orgChartPath = "/organization"
)

type PagesControllerOptions struct {
	SliderInterval time.Duration
}

type PagesController struct {
	app            application.Application
	content        *services.ContentService
	blog           *services.BlogService
	contact        *services.ContactService
	sliderInterval time.Duration
}

func NewPagesController(app application.Application, opts PagesControllerOptions) application.Controller {
	interval := opts.SliderInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &PagesController{
		app:            app,
		content:        app.Service(services.ContentService{}).(*services.ContentService),
		blog:           app.Service(services.BlogService{}).(*services.BlogService),
		contact:        app.Service(services.ContactService{}).(*services.ContactService),
		sliderInterval: interval,
	}
}

func (c *PagesController) Key() string {
	return "/"
}

func (c *PagesController) Register(r *mux.Router) {
	r.HandleFunc("/", c.Home).Methods(http.MethodGet)
	r.HandleFunc("/about", c.About).Methods(http.MethodGet)
	r.HandleFunc("/blog", c.Blog).Methods(http.MethodGet)
	r.HandleFunc(contactPath, c.Contact).Methods(http.MethodGet)
	r.HandleFunc(contactPath, c.SubmitContact).Methods(http.MethodPost)
}

// render writes body alone for htmx requests and inside the layout otherwise.
func (c *PagesController) render(w http.ResponseWriter, r *http.Request, page string, status int, body templ.Component) {
	defer observeRender(page, time.Now())
	component := body
	if !htmx.IsHxRequest(r) {
		component = layouts.Page(&layouts.BaseProps{
			Title:       intl.MustT(r.Context(), "Website."+page+".Title"),
			Description: intl.MustT(r.Context(), "Website."+page+".Summary"),
		}, body)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).WithField("page", page).Error("failed to render page")
	}
}

func (c *PagesController) renderError(w http.ResponseWriter, r *http.Request, page, retryURL string, err error) {
	composables.UseLogger(r.Context()).WithError(err).WithField("page", page).Error("failed to load page content")
	status := http.StatusInternalServerError
	if htmx.IsHxRequest(r) {
		// htmx skips swapping error responses.
		status = http.StatusOK
	}
	c.render(w, r, page, status, templates.PageError("Website."+page+".Error", retryURL))
}

type homeQuery struct {
	Slide int `form:"slide"`
}

func (c *PagesController) Home(w http.ResponseWriter, r *http.Request) {
	q, err := composables.UseQuery(&homeQuery{}, r)
	if err != nil {
		q = &homeQuery{}
	}
	home, err := c.content.Home(r.Context())
	if err != nil {
		c.renderError(w, r, "Home", "/", err)
		return
	}
	c.render(w, r, "Home", http.StatusOK, templates.Home(mappers.HomePage(home, q.Slide, c.sliderInterval)))
}

func (c *PagesController) About(w http.ResponseWriter, r *http.Request) {
	about, err := c.content.About(r.Context())
	if err != nil {
		c.renderError(w, r, "About", "/about", err)
		return
	}
	c.render(w, r, "About", http.StatusOK, templates.About(&viewmodels.AboutPage{
		Values:     about.Values,
		Approaches: about.Approaches,
		Gallery:    viewmodels.Gallery{TitleKey: "About.Gallery.Title", Photos: about.Photos},
		OrgChart:   orgtemplates.OrgChartSection(orgtemplates.OrgChartPlaceholder(orgChartPath)),
	}))
}

func (c *PagesController) Blog(w http.ResponseWriter, r *http.Request) {
	q, err := composables.UseQuery(&services.BlogQuery{}, r)
	if err != nil {
		// A malformed page number falls back to the first page.
		q = &services.BlogQuery{
			Query:    r.URL.Query().Get("q"),
			Category: r.URL.Query().Get("category"),
		}
	}
	page, err := c.blog.List(r.Context(), *q)
	if err != nil {
		c.renderError(w, r, "Blog", "/blog", err)
		return
	}
	c.render(w, r, "Blog", http.StatusOK, templates.Blog(mappers.BlogPage(page)))
}

func (c *PagesController) contactPage(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	form viewmodels.ContactForm,
	sent bool,
) {
	data, err := c.content.Contact(r.Context())
	if err != nil {
		c.renderError(w, r, "Contact", contactPath, err)
		return
	}
	c.render(w, r, "Contact", status, templates.Contact(mappers.ContactPage(data, form, sent)))
}

func (c *PagesController) Contact(w http.ResponseWriter, r *http.Request) {
	sent := r.URL.Query().Get("sent") == "1"
	c.contactPage(w, r, http.StatusOK, mappers.ContactForm(contactPath, services.SubmitMessageDTO{}, nil), sent)
}

// SubmitContact follows post/redirect/get for plain form posts. htmx posts
// get the form fragment back with a toast.
func (c *PagesController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dto, err := composables.UseForm(&services.SubmitMessageDTO{}, r)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("failed to decode contact form")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	_, err = c.contact.Submit(ctx, *dto)
	if err == nil {
		if !htmx.IsHxRequest(r) {
			http.Redirect(w, r, contactPath+"?sent=1", http.StatusSeeOther)
			return
		}
		htmx.ToastSuccess(w, intl.MustT(ctx, "Contact.Form.Success"))
		c.render(w, r, "Contact", http.StatusOK, templates.ContactForm(mappers.ContactForm(contactPath, services.SubmitMessageDTO{}, nil)))
		return
	}

	dto.Normalize()
	var verrs services.ValidationErrors
	status := http.StatusUnprocessableEntity
	var errs map[string]string
	if errors.As(err, &verrs) {
		errs = verrs
	} else {
		composables.UseLogger(ctx).WithError(err).Error("failed to submit contact message")
		status = http.StatusInternalServerError
		errs = map[string]string{"form": intl.MustT(ctx, "Contact.Form.Failed")}
	}
	form := mappers.ContactForm(contactPath, *dto, errs)

	if htmx.IsHxRequest(r) {
		if _, ok := errs["form"]; ok {
			htmx.ToastError(w, errs["form"])
		}
		c.render(w, r, "Contact", http.StatusOK, templates.ContactForm(form))
		return
	}
	c.contactPage(w, r, status, form, false)
}
