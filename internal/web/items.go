package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/campusfound/campusfound/internal/imaging"
	"github.com/campusfound/campusfound/internal/model"
	"github.com/campusfound/campusfound/internal/store"
)

const maxImageBytes = 5 << 20

// itemsPageData feeds the browse page.
type itemsPageData struct {
	PageData
	Kind       string
	Items      []model.Item
	Filter     model.Filter
	Categories []string
	Locations  []string
	Statuses   []string
}

// LostItemsPage handles GET /lost.
func (s *Server) LostItemsPage(w http.ResponseWriter, r *http.Request) {
	s.itemsPage(w, r, model.KindLost, "Lost Items")
}

// FoundItemsPage handles GET /found.
func (s *Server) FoundItemsPage(w http.ResponseWriter, r *http.Request) {
	s.itemsPage(w, r, model.KindFound, "Found Items")
}

func (s *Server) itemsPage(w http.ResponseWriter, r *http.Request, kind, title string) {
	filter := model.Filter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Location: r.URL.Query().Get("location"),
		Status:   r.URL.Query().Get("status"),
	}

	items := filter.Apply(s.Repo.ListByKind(r.Context(), kind))

	s.Templates.Render(w, "items.html", &itemsPageData{
		PageData:   PageData{Title: title},
		Kind:       kind,
		Items:      items,
		Filter:     filter,
		Categories: model.Categories,
		Locations:  model.Locations,
		Statuses:   []string{model.StatusPending, model.StatusClaimed, model.StatusResolved},
	})
}

// ItemDetailPage handles GET /items/{id}.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	item := s.Repo.FindByID(r.Context(), r.PathValue("id"))
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	related := s.Repo.FindRelated(r.Context(), *item, store.DefaultRelatedLimit)

	s.Templates.Render(w, "item_detail.html", &struct {
		PageData
		Item    *model.Item
		Related []model.Item
	}{
		PageData: PageData{Title: item.Title},
		Item:     item,
		Related:  related,
	})
}

// submitPageData feeds the submission form.
type submitPageData struct {
	PageData
	Disabled   bool
	Categories []string
	Locations  []string
}

// SubmitPage handles GET /submit.
func (s *Server) SubmitPage(w http.ResponseWriter, r *http.Request) {
	s.renderSubmit(w, "")
}

func (s *Server) renderSubmit(w http.ResponseWriter, errMsg string) {
	s.Templates.Render(w, "submit.html", &submitPageData{
		PageData:   PageData{Title: "Report an Item", Error: errMsg},
		Disabled:   s.Submitter == nil,
		Categories: model.Categories,
		Locations:  model.Locations,
	})
}

// SubmitForm handles POST /submit.
func (s *Server) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if s.Submitter == nil {
		s.renderSubmit(w, "Submissions are disabled on this server.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		s.renderSubmit(w, "The uploaded file is too large (5 MB limit).")
		return
	}

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
		s.renderSubmit(w, "Choose whether the item was lost or found.")
		return
	}
	if sub.Title == "" || sub.Description == "" || sub.ContactEmail == "" {
		s.renderSubmit(w, "Title, description and contact email are required.")
		return
	}

	date, err := time.Parse(time.DateOnly, r.FormValue("date"))
	if err != nil {
		s.renderSubmit(w, "Enter the date as YYYY-MM-DD.")
		return
	}
	sub.Date = date

	image, errMsg := s.imageFromForm(r)
	if errMsg != "" {
		s.renderSubmit(w, errMsg)
		return
	}

	item, err := s.Submitter.Submit(r.Context(), sub, image)
	if err != nil {
		slog.Error("item submission failed", "title", sub.Title, "error", err)
		if errors.Is(err, store.ErrUploadFailed) {
			s.renderSubmit(w, "Failed to upload the image. Please try again.")
		} else {
			s.renderSubmit(w, "Failed to submit the report. Please try again.")
		}
		return
	}

	http.Redirect(w, r, "/items/"+item.ID, http.StatusSeeOther)
}

func (s *Server) imageFromForm(r *http.Request) (*store.ImageUpload, string) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, ""
	}
	if err != nil {
		return nil, "Invalid image upload."
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "Failed to read the image."
	}

	mime, err := imaging.Validate(data)
	if err != nil {
		return nil, "The uploaded file must be a JPEG, PNG or WebP image."
	}

	return &store.ImageUpload{
		Filename:    header.Filename,
		ContentType: mime,
		Data:        data,
	}, ""
}
