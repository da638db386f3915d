package store

import (
	"context"
	"testing"

	"github.com/campusfound/campusfound/internal/model"
)

func TestMemoryListByKind(t *testing.T) {
	repo := NewMemory(Fixtures())
	ctx := context.Background()

	lost := repo.ListByKind(ctx, model.KindLost)
	found := repo.ListByKind(ctx, model.KindFound)

	if len(lost)+len(found) != len(Fixtures()) {
		t.Errorf("expected %d items across both kinds, got %d", len(Fixtures()), len(lost)+len(found))
	}
	for _, item := range lost {
		if item.Kind != model.KindLost {
			t.Errorf("item %s: expected kind lost, got %q", item.ID, item.Kind)
		}
	}
	for _, item := range found {
		if item.Kind != model.KindFound {
			t.Errorf("item %s: expected kind found, got %q", item.ID, item.Kind)
		}
	}

	// Collection order is preserved.
	if lost[0].ID != "1" || lost[len(lost)-1].ID != "7" {
		t.Errorf("expected lost items in collection order, got %v", ids(lost))
	}
}

func TestMemoryListUnknownKindIsEmpty(t *testing.T) {
	repo := NewMemory(Fixtures())

	if items := repo.ListByKind(context.Background(), "misplaced"); len(items) != 0 {
		t.Errorf("expected no items, got %v", ids(items))
	}
}

func TestMemoryFindByID(t *testing.T) {
	repo := NewMemory(Fixtures())
	ctx := context.Background()

	item := repo.FindByID(ctx, "4")
	if item == nil {
		t.Fatal("expected item 4")
	}
	if item.Title != "Student ID Card" {
		t.Errorf("expected 'Student ID Card', got %q", item.Title)
	}

	if repo.FindByID(ctx, "999") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestMemoryFindRelated(t *testing.T) {
	repo := NewMemory(Fixtures())
	ctx := context.Background()

	macbook := repo.FindByID(ctx, "1")
	related := repo.FindRelated(ctx, *macbook, 3)

	// Item 2 is the only other Electronics fixture.
	if len(related) != 1 || related[0].ID != "2" {
		t.Fatalf("expected [2], got %v", ids(related))
	}
	for _, r := range related {
		if r.ID == macbook.ID {
			t.Error("related items must exclude the item itself")
		}
		if r.Category != macbook.Category {
			t.Errorf("item %s: expected category %q, got %q", r.ID, macbook.Category, r.Category)
		}
	}
}

func TestMemoryFindRelatedFirstNInCollectionOrder(t *testing.T) {
	items := []model.Item{
		{ID: "a", Category: "Keys"},
		{ID: "b", Category: "Keys"},
		{ID: "c", Category: "Keys"},
		{ID: "d", Category: "Keys"},
		{ID: "e", Category: "Books"},
	}
	repo := NewMemory(items)

	related := repo.FindRelated(context.Background(), items[1], 2)
	if len(related) != 2 || related[0].ID != "a" || related[1].ID != "c" {
		t.Fatalf("expected first matches [a c], got %v", ids(related))
	}

	// Zero limit falls back to the default cap.
	related = repo.FindRelated(context.Background(), items[4], 0)
	if len(related) != 0 {
		t.Errorf("expected no related Books items, got %v", ids(related))
	}
	related = repo.FindRelated(context.Background(), model.Item{ID: "x", Category: "Keys"}, 0)
	if len(related) != DefaultRelatedLimit {
		t.Errorf("expected %d related items with default limit, got %d", DefaultRelatedLimit, len(related))
	}
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
