package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	corecontrollers "github.com/apper-apps/india-website-drive/modules/core/presentation/controllers"
	"github.com/apper-apps/india-website-drive/modules/core/presentation/templates/layouts"
	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/presentation/mappers"
	"github.com/apper-apps/india-website-drive/modules/org/presentation/templates"
	"github.com/apper-apps/india-website-drive/modules/org/services"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/composables"
	"github.com/apper-apps/india-website-drive/pkg/htmx"
	"github.com/apper-apps/india-website-drive/pkg/httpapi"
	"github.com/apper-apps/india-website-drive/pkg/intl"
)

const (
	ViewQueryParam = "view"
	apiBasePath    = "/api/v1/organization"
)

type OrgChartController struct {
	app       application.Application
	hierarchy *services.HierarchyService
	basePath  string
}

func NewOrgChartController(app application.Application) application.Controller {
	return &OrgChartController{
		app:       app,
		hierarchy: app.Service(services.HierarchyService{}).(*services.HierarchyService),
		basePath:  "/organization",
	}
}

func (c *OrgChartController) Key() string {
	return c.basePath
}

func (c *OrgChartController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", instrument("page", c.Page)).Methods(http.MethodGet)
	router.HandleFunc("/views/{viewID}/nodes/{nodeID}/toggle", instrument("toggle", c.Toggle)).Methods(http.MethodPost)

	api := r.PathPrefix(apiBasePath).Subrouter()
	api.HandleFunc("/views", instrument("api.create_view", c.CreateView)).Methods(http.MethodPost)
	api.HandleFunc("/views/{viewID}", instrument("api.get_view", c.GetView)).Methods(http.MethodGet)
	api.HandleFunc("/views/{viewID}", instrument("api.delete_view", c.DeleteView)).Methods(http.MethodDelete)
}

func viewURL(basePath string, id uuid.UUID) string {
	q := url.Values{}
	q.Set(ViewQueryParam, id.String())
	return basePath + "?" + q.Encode()
}

func (c *OrgChartController) render(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component) {
	component := fragment
	if !htmx.IsHxRequest(r) {
		component = layouts.Page(&layouts.BaseProps{
			Title:       intl.MustT(r.Context(), "OrgChart.Title"),
			Description: intl.MustT(r.Context(), "OrgChart.Subtitle"),
		}, templates.OrgChartSection(fragment))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render org chart")
	}
}

// Page renders the chart for ?view=, opening a fresh view when the id is
// missing or expired.
func (c *OrgChartController) Page(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())
	viewID, err := uuid.Parse(r.URL.Query().Get(ViewQueryParam))
	if err != nil {
		viewID = uuid.Nil
	}
	view, err := c.hierarchy.ViewOrOpen(r.Context(), viewID)
	if err != nil {
		logger.WithError(err).Error("failed to load organization structure")
		status := http.StatusInternalServerError
		if htmx.IsHxRequest(r) {
			// htmx skips swapping error responses.
			status = http.StatusOK
		}
		c.render(w, r, status, templates.OrgChartError(c.basePath))
		return
	}
	c.render(w, r, http.StatusOK, templates.OrgChart(mappers.ForestToChart(view.ID, view.Forest)))
}

func (c *OrgChartController) Toggle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	viewID, err := uuid.Parse(vars["viewID"])
	if err != nil {
		corecontrollers.RenderNotFound(w, r)
		return
	}
	// The router matches the escaped path so ids containing "/" stay in one segment.
	nodeID, err := url.PathUnescape(vars["nodeID"])
	if err != nil {
		corecontrollers.RenderNotFound(w, r)
		return
	}
	view, err := c.hierarchy.Toggle(r.Context(), viewID, hierarchy.NodeID(nodeID))
	if errors.Is(err, hierarchy.ErrViewNotFound) {
		if htmx.IsHxRequest(r) {
			c.render(w, r, http.StatusOK, templates.OrgChartError(c.basePath))
			return
		}
		corecontrollers.RenderNotFound(w, r)
		return
	}
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to toggle org chart node")
		c.render(w, r, http.StatusInternalServerError, templates.OrgChartError(viewURL(c.basePath, viewID)))
		return
	}
	if !htmx.IsHxRequest(r) {
		http.Redirect(w, r, viewURL(c.basePath, view.ID), http.StatusSeeOther)
		return
	}
	c.render(w, r, http.StatusOK, templates.OrgChart(mappers.ForestToChart(view.ID, view.Forest)))
}

func writeViewError(w http.ResponseWriter, r *http.Request, err error) {
	meta := map[string]string{"path": r.URL.Path}
	if errors.Is(err, hierarchy.ErrViewNotFound) {
		_ = httpapi.WriteError(w, http.StatusNotFound, httpapi.CodeNotFound, "view not found", meta)
		return
	}
	composables.UseLogger(r.Context()).WithError(err).Error("org chart api request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, httpapi.CodeInternal, "internal server error", meta)
}

func parseViewID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["viewID"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeInvalidRequest, "invalid view id", map[string]string{
			"path": r.URL.Path,
		})
		return uuid.Nil, false
	}
	return id, true
}

func (c *OrgChartController) CreateView(w http.ResponseWriter, r *http.Request) {
	view, err := c.hierarchy.OpenView(r.Context())
	if err != nil {
		writeViewError(w, r, err)
		return
	}
	w.Header().Set("Location", apiBasePath+"/views/"+view.ID.String())
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.ViewToResponse(view))
}

func (c *OrgChartController) GetView(w http.ResponseWriter, r *http.Request) {
	id, ok := parseViewID(w, r)
	if !ok {
		return
	}
	view, err := c.hierarchy.View(r.Context(), id)
	if err != nil {
		writeViewError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ViewToResponse(view))
}

func (c *OrgChartController) DeleteView(w http.ResponseWriter, r *http.Request) {
	id, ok := parseViewID(w, r)
	if !ok {
		return
	}
	if err := c.hierarchy.CloseView(r.Context(), id); err != nil {
		writeViewError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
