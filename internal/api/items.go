package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/campusfound/campusfound/internal/imaging"
	"github.com/campusfound/campusfound/internal/model"
	"github.com/campusfound/campusfound/internal/store"
)

// maxImageBytes caps uploaded item photos.
const maxImageBytes = 5 << 20

// ItemsHandler handles item endpoints. Submitter is nil when the server
// runs without a write backend, which disables submissions.
type ItemsHandler struct {
	Repo      store.Repository
	Submitter store.Submitter
}

// List handles GET /api/items. The type parameter is required; search,
// category, location and status narrow the result.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	if !model.ValidKind(kind) {
		jsonError(w, http.StatusBadRequest, "type must be 'lost' or 'found'")
		return
	}

	filter := model.Filter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Location: r.URL.Query().Get("location"),
		Status:   r.URL.Query().Get("status"),
	}

	items := filter.Apply(h.Repo.ListByKind(r.Context(), kind))
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item := h.Repo.FindByID(r.Context(), r.PathValue("id"))
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Related handles GET /api/items/{id}/related.
func (h *ItemsHandler) Related(w http.ResponseWriter, r *http.Request) {
	item := h.Repo.FindByID(r.Context(), r.PathValue("id"))
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	limit := store.DefaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			jsonError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	related := h.Repo.FindRelated(r.Context(), *item, limit)
	if related == nil {
		related = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, related)
}

// Submit handles POST /api/items: a multipart form with the report fields
// and an optional image file.
func (h *ItemsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.Submitter == nil {
		jsonError(w, http.StatusServiceUnavailable, "submissions are disabled")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	sub, errMsg := submissionFromForm(r)
	if errMsg != "" {
		jsonError(w, http.StatusBadRequest, errMsg)
		return
	}

	image, errMsg := imageFromForm(r)
	if errMsg != "" {
		jsonError(w, http.StatusBadRequest, errMsg)
		return
	}

	item, err := h.Submitter.Submit(r.Context(), sub, image)
	if err != nil {
		slog.Error("item submission failed", "title", sub.Title, "error", err)
		if errors.Is(err, store.ErrUploadFailed) {
			jsonError(w, http.StatusBadGateway, "failed to upload image")
			return
		}
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// submissionFromForm builds a Submission from the posted fields. Category
// and location are passed through as sent: their vocabulary is a form
// concern, not a storage one. There is no status field to read; every
// submission starts pending.
func submissionFromForm(r *http.Request) (store.Submission, string) {
	sub := store.Submission{
		Kind:         r.FormValue("type"),
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Category:     r.FormValue("category"),
		Location:     r.FormValue("location"),
		ContactEmail: r.FormValue("contactEmail"),
		ContactPhone: r.FormValue("contactPhone"),
	}

	if !model.ValidKind(sub.Kind) {
		return sub, "type must be 'lost' or 'found'"
	}
	if sub.Title == "" || sub.Description == "" {
		return sub, "title and description are required"
	}
	if sub.ContactEmail == "" {
		return sub, "contact email is required"
	}

	date, err := time.Parse(time.DateOnly, r.FormValue("date"))
	if err != nil {
		return sub, "date must be YYYY-MM-DD"
	}
	sub.Date = date

	return sub, ""
}

// imageFromForm reads and validates the optional image file. A missing
// file is (nil, "").
func imageFromForm(r *http.Request) (*store.ImageUpload, string) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, ""
	}
	if err != nil {
		return nil, "invalid image upload"
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "failed to read image"
	}

	mime, err := imaging.Validate(data)
	if err != nil {
		return nil, err.Error()
	}

	return &store.ImageUpload{
		Filename:    header.Filename,
		ContentType: mime,
		Data:        data,
	}, ""
}

// Categories handles GET /api/categories.
func (h *ItemsHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, model.Categories)
}

// Locations handles GET /api/locations.
func (h *ItemsHandler) Locations(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, model.Locations)
}
