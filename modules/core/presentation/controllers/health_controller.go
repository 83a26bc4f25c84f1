package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/httpapi"
)

type HealthResponse struct {
	Status  string   `json:"status"`
	Uptime  string   `json:"uptime"`
	Modules []string `json:"modules"`
}

type HealthController struct {
	started time.Time
	modules []string
}

func NewHealthController(modules []string) application.Controller {
	return &HealthController{started: time.Now(), modules: modules}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Get).Methods(http.MethodGet, http.MethodHead)
}

func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	_ = httpapi.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(c.started).Round(time.Second).String(),
		Modules: c.modules,
	})
}
