package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/campusfound/campusfound/internal/db"
	"github.com/campusfound/campusfound/internal/model"
)

// fakeObjectStore records uploads in memory and can be told to fail.
type fakeObjectStore struct {
	uploads map[string][]byte
	fail    bool
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploads: make(map[string][]byte)}
}

func (f *fakeObjectStore) Upload(_ context.Context, objectPath, _ string, data []byte) error {
	if f.fail {
		return errors.New("bucket unavailable")
	}
	f.uploads[objectPath] = data
	return nil
}

func (f *fakeObjectStore) PublicURL(objectPath string) string {
	return "https://cdn.test/item-images/" + objectPath
}

func testSubmission() Submission {
	return Submission{
		Kind:         model.KindLost,
		Title:        "Green Water Bottle",
		Description:  "Left my water bottle at the gym.",
		Category:     "Others",
		Location:     "Gym",
		Date:         time.Date(2023, 10, 20, 14, 30, 0, 0, time.UTC),
		ContactEmail: "student9@abc.edu",
	}
}

func TestSubmitAndFindByID(t *testing.T) {
	repo := NewSQLite(db.NewTestDB(t), newFakeObjectStore())
	ctx := context.Background()

	created, err := repo.Submit(ctx, testSubmission(), nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if created.ID == "" {
		t.Error("expected assigned id")
	}
	if created.Status != model.StatusPending {
		t.Errorf("expected status pending, got %q", created.Status)
	}
	if created.Date != "2023-10-20" {
		t.Errorf("expected calendar date 2023-10-20, got %q", created.Date)
	}
	if created.Image != model.DefaultImageURL {
		t.Errorf("expected default placeholder image, got %q", created.Image)
	}
	if created.ContactPhone != "" {
		t.Errorf("expected empty contact phone, got %q", created.ContactPhone)
	}

	got := repo.FindByID(ctx, created.ID)
	if got == nil {
		t.Fatal("expected created item to be findable")
	}
	if *got != *created {
		t.Errorf("round trip mismatch:\n submit: %+v\n find:   %+v", *created, *got)
	}
}

func TestSubmitWithImage(t *testing.T) {
	objects := newFakeObjectStore()
	repo := NewSQLite(db.NewTestDB(t), objects)

	image := &ImageUpload{
		Filename:    "bottle.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg bytes"),
	}
	created, err := repo.Submit(context.Background(), testSubmission(), image)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(objects.uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(objects.uploads))
	}
	for path := range objects.uploads {
		if !strings.HasPrefix(path, "lost/") {
			t.Errorf("expected object path under lost/, got %q", path)
		}
		if !strings.HasSuffix(path, ".jpg") {
			t.Errorf("expected original extension preserved, got %q", path)
		}
		if created.Image != objects.PublicURL(path) {
			t.Errorf("expected image %q, got %q", objects.PublicURL(path), created.Image)
		}
	}
}

func TestSubmitUploadFailureInsertsNothing(t *testing.T) {
	database := db.NewTestDB(t)
	objects := newFakeObjectStore()
	objects.fail = true
	repo := NewSQLite(database, objects)

	sub := testSubmission()
	image := &ImageUpload{Filename: "bottle.png", ContentType: "image/png", Data: []byte("png bytes")}
	if _, err := repo.Submit(context.Background(), sub, image); err == nil {
		t.Fatal("expected submit to fail when the upload fails")
	}

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM items WHERE title = ?`, sub.Title).Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no rows after failed upload, got %d", count)
	}
}

func TestSubmitImageWithoutStorage(t *testing.T) {
	repo := NewSQLite(db.NewTestDB(t), nil)

	image := &ImageUpload{Filename: "bottle.jpg", ContentType: "image/jpeg", Data: []byte("jpeg bytes")}
	if _, err := repo.Submit(context.Background(), testSubmission(), image); err == nil {
		t.Fatal("expected submit with image to fail without object storage")
	}

	// Imageless submissions still work.
	if _, err := repo.Submit(context.Background(), testSubmission(), nil); err != nil {
		t.Fatalf("Submit without image: %v", err)
	}
}

func TestSubmitStoresContactPhone(t *testing.T) {
	repo := NewSQLite(db.NewTestDB(t), nil)

	sub := testSubmission()
	sub.ContactPhone = "555-0142"
	created, err := repo.Submit(context.Background(), sub, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.ContactPhone != "555-0142" {
		t.Errorf("expected contact phone preserved, got %q", created.ContactPhone)
	}
}

func TestListByKindNewestFirst(t *testing.T) {
	repo := NewSQLite(db.NewTestDB(t), nil)
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		sub := testSubmission()
		sub.Title = title
		if _, err := repo.Submit(ctx, sub, nil); err != nil {
			t.Fatalf("Submit %q: %v", title, err)
		}
		// Keep created_at strictly increasing on coarse clocks.
		time.Sleep(time.Millisecond)
	}

	items := repo.ListByKind(ctx, model.KindLost)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"Third", "Second", "First"} {
		if items[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, items[i].Title)
		}
	}

	if found := repo.ListByKind(ctx, model.KindFound); len(found) != 0 {
		t.Errorf("expected no found items, got %d", len(found))
	}
}

func TestSQLiteFindRelated(t *testing.T) {
	repo := NewSQLite(db.NewTestDB(t), nil)
	ctx := context.Background()

	var anchor *model.Item
	for i := 0; i < 5; i++ {
		sub := testSubmission()
		sub.Category = "Books"
		item, err := repo.Submit(ctx, sub, nil)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if anchor == nil {
			anchor = item
		}
	}

	related := repo.FindRelated(ctx, *anchor, 3)
	if len(related) != 3 {
		t.Fatalf("expected 3 related items, got %d", len(related))
	}
	for _, r := range related {
		if r.ID == anchor.ID {
			t.Error("related items must exclude the item itself")
		}
		if r.Category != "Books" {
			t.Errorf("expected category Books, got %q", r.Category)
		}
	}
}

func TestReadsDegradeToEmptyOnFailure(t *testing.T) {
	database := db.NewTestDB(t)
	repo := NewSQLite(database, nil)
	ctx := context.Background()

	created, err := repo.Submit(ctx, testSubmission(), nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	database.Close()

	if items := repo.ListByKind(ctx, model.KindLost); len(items) != 0 {
		t.Errorf("expected empty list on closed database, got %d items", len(items))
	}
	if item := repo.FindByID(ctx, created.ID); item != nil {
		t.Error("expected nil item on closed database")
	}
	if related := repo.FindRelated(ctx, *created, 3); len(related) != 0 {
		t.Errorf("expected no related items on closed database, got %d", len(related))
	}
}
