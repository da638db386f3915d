package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campusfound/campusfound/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
// submitter may be nil to run read-only.
func NewRouter(repo store.Repository, submitter store.Submitter) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Repo: repo, Submitter: submitter}

	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Submit)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("GET /api/items/{id}/related", itemsHandler.Related)

	mux.HandleFunc("GET /api/categories", itemsHandler.Categories)
	mux.HandleFunc("GET /api/locations", itemsHandler.Locations)

	mux.HandleFunc("GET /api/healthz", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
