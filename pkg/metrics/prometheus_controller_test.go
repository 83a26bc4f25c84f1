package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/pkg/metrics"
)

func TestPrometheusController(t *testing.T) {
	t.Parallel()

	r := mux.NewRouter()
	controller := metrics.NewPrometheusController("")
	assert.Equal(t, metrics.DefaultPath, controller.Key())
	controller.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, metrics.DefaultPath, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, metrics.DefaultPath, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
