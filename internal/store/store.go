// Package store provides the item repositories: an in-memory fixture
// implementation for running without a backend, and a SQLite-backed one
// with object storage for images.
//
// Read operations never return an error. A failed read logs its cause,
// bumps a failure counter and degrades to an empty result so listing
// surfaces stay up through transient backend trouble. Submit is the one
// operation whose failure is surfaced, since a dropped submission must
// not look successful to the reporter.
package store

import (
	"context"
	"time"

	"github.com/campusfound/campusfound/internal/model"
)

// DefaultRelatedLimit caps FindRelated results when callers pass no limit.
const DefaultRelatedLimit = 3

// Repository is read access to item reports.
type Repository interface {
	// ListByKind returns all items of the given kind. The memory
	// repository returns collection order; the SQLite repository returns
	// newest first. Filtering semantics are identical, ordering is not
	// part of the contract.
	ListByKind(ctx context.Context, kind string) []model.Item

	// FindByID returns the item with the given id, or nil.
	FindByID(ctx context.Context, id string) *model.Item

	// FindRelated returns up to limit items sharing the item's category,
	// excluding the item itself.
	FindRelated(ctx context.Context, item model.Item, limit int) []model.Item
}

// Submission is the reporter-supplied input for a new item. It carries no
// status: every created item starts as pending regardless of caller intent.
type Submission struct {
	Kind         string
	Title        string
	Description  string
	Category     string
	Location     string
	Date         time.Time
	ContactEmail string
	ContactPhone string // optional
}

// ImageUpload is an optional photo accompanying a submission.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submitter accepts new item reports.
type Submitter interface {
	// Submit stores a new item, uploading the image first if one is
	// given. On success it returns the created item as it will be read
	// back. An upload failure aborts the whole submission.
	Submit(ctx context.Context, sub Submission, image *ImageUpload) (*model.Item, error)
}

// ObjectStore is the object storage the SQLite repository uploads item
// images to.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) error
	PublicURL(objectPath string) string
}
