package web

import (
	"net/http"

	"github.com/campusfound/campusfound/internal/store"
	webembed "github.com/campusfound/campusfound/web"
)

// NewRouter creates the web page router with all page routes registered.
// submitter may be nil, in which case the submission form is disabled.
func NewRouter(repo store.Repository, submitter store.Submitter) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Repo:      repo,
		Submitter: submitter,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/lost", http.StatusSeeOther)
	})

	mux.HandleFunc("GET /lost", s.LostItemsPage)
	mux.HandleFunc("GET /found", s.FoundItemsPage)
	mux.HandleFunc("GET /items/{id}", s.ItemDetailPage)
	mux.HandleFunc("GET /submit", s.SubmitPage)
	mux.HandleFunc("POST /submit", s.SubmitForm)

	return mux, nil
}
