package store

import (
	"context"

	"github.com/campusfound/campusfound/internal/model"
)

var _ Repository = (*Memory)(nil)

// Memory is a read-only repository over a fixed item collection, for
// demos and tests that run without a backend. The collection is injected
// at construction and never mutated.
type Memory struct {
	items []model.Item
}

// NewMemory creates a memory repository over the given collection.
func NewMemory(items []model.Item) *Memory {
	return &Memory{items: items}
}

// ListByKind returns all items of the given kind in collection order.
func (m *Memory) ListByKind(_ context.Context, kind string) []model.Item {
	var items []model.Item
	for _, item := range m.items {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	return items
}

// FindByID returns the item with the given id, or nil. Linear scan; the
// collection is small.
func (m *Memory) FindByID(_ context.Context, id string) *model.Item {
	for _, item := range m.items {
		if item.ID == id {
			found := item
			return &found
		}
	}
	return nil
}

// FindRelated returns up to limit items sharing the item's category,
// excluding the item itself. First matches in collection order, not
// ranked by similarity.
func (m *Memory) FindRelated(_ context.Context, item model.Item, limit int) []model.Item {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	var related []model.Item
	for _, candidate := range m.items {
		if candidate.ID == item.ID || candidate.Category != item.Category {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}
	return related
}
