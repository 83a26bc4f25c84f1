package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/internal/server"
	"github.com/apper-apps/india-website-drive/modules/core"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
)

func newHandler(t *testing.T, conf *configuration.Configuration) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()
	app := application.New(&application.ApplicationOptions{Logger: logger})
	require.NoError(t, core.NewModule(&core.ModuleOptions{ModuleNames: []string{"core"}}).Register(app))

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	require.NoError(t, err)
	return srv.Router()
}

func TestDefault_RequestIDAndNotFound(t *testing.T) {
	t.Parallel()
	h := newHandler(t, &configuration.Configuration{
		CorsOrigins:     "http://localhost:3000",
		RequestIDHeader: "X-Request-ID",
		RealIPHeader:    "X-Real-IP",
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"), "fallback handlers run through the middleware stack")
}

func TestDefault_RateLimit(t *testing.T) {
	t.Parallel()
	h := newHandler(t, &configuration.Configuration{
		RateLimit: configuration.RateLimitOptions{Enabled: true, GlobalRPS: 1, Storage: "memory"},
	})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
