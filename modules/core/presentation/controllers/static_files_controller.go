package controllers

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/apper-apps/india-website-drive/pkg/application"
)

type StaticFilesController struct {
	fsInstances []*hashfs.FS
	servers     []http.Handler
}

func (s *StaticFilesController) Key() string {
	return "/assets"
}

// Register serves /assets/ from the first registered filesystem holding the
// file. Hashed names are cached forever by hashfs; plain names are not cached.
func (s *StaticFilesController) Register(r *mux.Router) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/assets/")
		for i, fsys := range s.fsInstances {
			if _, err := fs.Stat(fsys, name); err != nil {
				continue
			}
			if _, hash := hashfs.ParseName(name); hash == "" {
				w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			}
			http.StripPrefix("/assets", s.servers[i]).ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
	r.PathPrefix("/assets/").Handler(handler).Methods(http.MethodGet, http.MethodHead)
}

func NewStaticFilesController(fsInstances []*hashfs.FS) application.Controller {
	servers := make([]http.Handler, len(fsInstances))
	for i, fsys := range fsInstances {
		servers[i] = hashfs.FileServer(fsys)
	}
	return &StaticFilesController{
		fsInstances: fsInstances,
		servers:     servers,
	}
}
