package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/core"
	corecontrollers "github.com/apper-apps/india-website-drive/modules/core/presentation/controllers"
	"github.com/apper-apps/india-website-drive/modules/org"
	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/presentation/viewmodels"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
	"github.com/apper-apps/india-website-drive/pkg/middleware"
	"github.com/apper-apps/india-website-drive/pkg/server"
)

type failingLoader struct{}

func (failingLoader) Load(context.Context) (hierarchy.Forest, error) {
	return nil, errors.New("structure unavailable")
}

type staticLoader hierarchy.Forest

func (l staticLoader) Load(context.Context) (hierarchy.Forest, error) {
	return hierarchy.Clone(hierarchy.Forest(l)), nil
}

func testForest() hierarchy.Forest {
	return hierarchy.Forest{
		{ID: "1", Title: "Board of Trustees", Children: hierarchy.Forest{
			{ID: "2", Title: "Executive Director", Children: hierarchy.Forest{
				{ID: "3", Title: "Programs Director"},
				{ID: "4", Title: "Operations Director"},
			}},
		}},
	}
}

func newRouter(t *testing.T, loader hierarchy.StructureLoader) *mux.Router {
	t.Helper()

	logger, _ := test.NewNullLogger()
	app := application.New(&application.ApplicationOptions{Logger: logger})
	app.RegisterMiddleware(
		middleware.ProvideLocalizer(app),
		middleware.WithPageContext(app),
	)
	require.NoError(t, core.NewModule(nil).Register(app))
	require.NoError(t, org.NewModule(&org.ModuleOptions{
		Config: &configuration.OrgChartOptions{
			ViewStorage:     "memory",
			ViewTTL:         time.Minute,
			JanitorInterval: time.Minute,
		},
		Loader: loader,
	}).Register(app))

	srv := server.NewHTTPServer(app, corecontrollers.NotFound(app), corecontrollers.MethodNotAllowed())
	return srv.Router()
}

func do(router http.Handler, method, target string, hx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if hx {
		req.Header.Set("Hx-Request", "true")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

func TestOrgChartController_PageFragmentAndFullPage(t *testing.T) {
	t.Parallel()
	router := newRouter(t, staticLoader(testForest()))

	rec := do(router, http.MethodGet, "/organization", true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	chart := doc.Find("#org-chart")
	require.Equal(t, 1, chart.Length())
	assert.Equal(t, "4", chart.AttrOr("data-total-nodes", ""))
	assert.Equal(t, "1", chart.AttrOr("data-visible-nodes", ""))
	assert.NotContains(t, rec.Body.String(), "<!DOCTYPE html>")

	rec = do(router, http.MethodGet, "/organization", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	doc = parse(t, rec)
	assert.Equal(t, 1, doc.Find("section#organization #org-chart").Length())
}

func TestOrgChartController_ToggleFlow(t *testing.T) {
	t.Parallel()
	router := newRouter(t, staticLoader(testForest()))

	doc := parse(t, do(router, http.MethodGet, "/organization", true))
	viewID := doc.Find("#org-chart").AttrOr("data-view-id", "")
	require.NotEmpty(t, viewID)
	toggleURL := "/organization/views/" + viewID + "/nodes/1/toggle"

	rec := do(router, http.MethodPost, toggleURL, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/organization?view="+viewID, rec.Header().Get("Location"))

	rec = do(router, http.MethodGet, "/organization?view="+viewID, true)
	doc = parse(t, rec)
	assert.Equal(t, 1, doc.Find(`[data-node-id="2"]`).Length(), "child of expanded root is rendered")
	assert.Equal(t, "true", doc.Find(`[data-node-id="1"] [data-toggle]`).First().AttrOr("aria-expanded", ""))

	rec = do(router, http.MethodPost, toggleURL, true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc = parse(t, rec)
	assert.Equal(t, 0, doc.Find(`[data-node-id="2"]`).Length(), "second toggle collapses the root")

	rec = do(router, http.MethodPost, "/organization/views/"+viewID+"/nodes/missing/toggle", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", parse(t, rec).Find("#org-chart").AttrOr("data-visible-nodes", ""))
}

func TestOrgChartController_ToggleIDWithReservedCharacters(t *testing.T) {
	t.Parallel()
	router := newRouter(t, staticLoader(hierarchy.Forest{
		{ID: "ops/finance", Title: "Finance & Operations", Children: hierarchy.Forest{
			{ID: "x", Title: "Accounts"},
		}},
	}))

	doc := parse(t, do(router, http.MethodGet, "/organization", true))
	viewID := doc.Find("#org-chart").AttrOr("data-view-id", "")
	require.NotEmpty(t, viewID)
	action := doc.Find(`[data-node-id="ops/finance"] form`).First().AttrOr("action", "")
	assert.Equal(t, "/organization/views/"+viewID+"/nodes/ops%2Ffinance/toggle", action)

	rec := do(router, http.MethodPost, action, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc = parse(t, do(router, http.MethodGet, "/organization?view="+viewID, true))
	assert.Equal(t, 1, doc.Find(`[data-node-id="x"]`).Length())
}

func TestOrgChartController_UnknownView(t *testing.T) {
	t.Parallel()
	router := newRouter(t, staticLoader(testForest()))

	rec := do(router, http.MethodPost, "/organization/views/4b1a6f2e-0d7c-4f5e-9a53-2f0c1f0f3a11/nodes/1/toggle", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodPost, "/organization/views/not-a-uuid/nodes/1/toggle", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodPost, "/organization/views/4b1a6f2e-0d7c-4f5e-9a53-2f0c1f0f3a11/nodes/1/toggle", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, parse(t, rec).Find("#org-chart [data-retry]").Length())
}

func TestOrgChartController_LoaderError(t *testing.T) {
	t.Parallel()
	router := newRouter(t, failingLoader{})

	rec := do(router, http.MethodGet, "/organization", false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load organization structure. Please try again.")

	rec = do(router, http.MethodGet, "/organization", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/organization", parse(t, rec).Find("[data-retry]").AttrOr("href", ""))
}

func TestOrgChartController_API(t *testing.T) {
	t.Parallel()
	router := newRouter(t, staticLoader(testForest()))

	rec := do(router, http.MethodPost, "/api/v1/organization/views", false)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created viewmodels.OrgChartViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 4, created.TotalNodes)
	require.Len(t, created.Nodes, 1)
	assert.Equal(t, "1", created.Nodes[0].ID)
	assert.False(t, created.Nodes[0].Expanded)
	assert.Equal(t, "/api/v1/organization/views/"+created.ID, rec.Header().Get("Location"))

	rec = do(router, http.MethodGet, "/api/v1/organization/views/"+created.ID, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = do(router, http.MethodDelete, "/api/v1/organization/views/"+created.ID, false)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(router, http.MethodGet, "/api/v1/organization/views/"+created.ID, false)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope["code"])

	rec = do(router, http.MethodGet, "/api/v1/organization/views/bogus", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
