package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/campusfound/campusfound/internal/model"
)

var _ Repository = (*SQLite)(nil)
var _ Submitter = (*SQLite)(nil)

// ErrUploadFailed marks submit failures caused by the image upload, so
// callers can report them generically instead of leaking storage detail.
var ErrUploadFailed = errors.New("image upload failed")

// itemColumns is the column list every item query selects, in scanRow order.
const itemColumns = `id, type, title, description, category, location, date,
	image_url, status, contact_email, contact_phone`

// SQLite is the persisted item repository: rows in SQLite, images in an
// object store. It holds no state of its own; the database is the owner
// of record.
type SQLite struct {
	db      *sql.DB
	objects ObjectStore
}

// NewSQLite creates a repository over the given database. objects may be
// nil, in which case submissions with images are rejected.
func NewSQLite(db *sql.DB, objects ObjectStore) *SQLite {
	return &SQLite{db: db, objects: objects}
}

// ListByKind returns all items of the given kind, newest first. On query
// failure it logs, counts, and returns an empty list.
func (s *SQLite) ListByKind(ctx context.Context, kind string) []model.Item {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE type = ? ORDER BY created_at DESC`, kind,
	)
	if err != nil {
		s.readFailed("list", err)
		return nil
	}
	defer rows.Close()

	items, err := scanRows(rows)
	if err != nil {
		s.readFailed("list", err)
		return nil
	}
	return items
}

// FindByID returns the item with the given id, or nil if there is no such
// row or the lookup fails.
func (s *SQLite) FindByID(ctx context.Context, id string) *model.Item {
	item, err := s.getItem(ctx, id)
	if err != nil {
		s.readFailed("get", err)
		return nil
	}
	return item
}

// FindRelated returns up to limit items sharing the item's category,
// excluding the item itself, in store order.
func (s *SQLite) FindRelated(ctx context.Context, item model.Item, limit int) []model.Item {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE category = ? AND id <> ? LIMIT ?`,
		item.Category, item.ID, limit,
	)
	if err != nil {
		s.readFailed("related", err)
		return nil
	}
	defer rows.Close()

	items, err := scanRows(rows)
	if err != nil {
		s.readFailed("related", err)
		return nil
	}
	return items
}

// Submit stores a new item. If an image is given it is uploaded first and
// the submission fails outright when the upload does; an item is never
// created without its supplied photo. The row insert runs after the
// upload with no compensating cleanup, so a failed insert can leave the
// uploaded object orphaned. The created item always starts pending.
func (s *SQLite) Submit(ctx context.Context, sub Submission, image *ImageUpload) (*model.Item, error) {
	var imageURL sql.NullString
	if image != nil {
		if s.objects == nil {
			return nil, errors.New("image storage not configured")
		}

		objectPath := fmt.Sprintf("%s/%s%s", sub.Kind, uuid.NewString(), filepath.Ext(image.Filename))
		if err := s.objects.Upload(ctx, objectPath, image.ContentType, image.Data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		imageURL = sql.NullString{String: s.objects.PublicURL(objectPath), Valid: true}
	}

	var phone sql.NullString
	if sub.ContactPhone != "" {
		phone = sql.NullString{String: sub.ContactPhone, Valid: true}
	}

	id := uuid.NewString()
	now := time.Now().UnixNano()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, type, title, description, category, location, date,
		                    image_url, status, contact_email, contact_phone, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'pending', ?, ?, ?, ?)`,
		id, sub.Kind, sub.Title, sub.Description, sub.Category, sub.Location,
		sub.Date.Format(time.DateOnly), imageURL, sub.ContactEmail, phone, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}

	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading back item: %w", err)
	}
	if item == nil {
		return nil, errors.New("inserted item not found")
	}
	return item, nil
}

// getItem looks up a single row. A missing row is (nil, nil).
func (s *SQLite) getItem(ctx context.Context, id string) (*model.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	item, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *SQLite) readFailed(op string, err error) {
	slog.Error("item read failed, degrading to empty result", "op", op, "error", err)
	readFailures.WithLabelValues(op).Inc()
}

type scannable interface {
	Scan(dest ...any) error
}

// scanRow maps one row to the application item shape: a null image_url
// becomes the default placeholder, a null contact_phone becomes empty.
func scanRow(row scannable) (model.Item, error) {
	var item model.Item
	var imageURL, contactPhone sql.NullString
	err := row.Scan(
		&item.ID, &item.Kind, &item.Title, &item.Description, &item.Category,
		&item.Location, &item.Date, &imageURL, &item.Status,
		&item.ContactEmail, &contactPhone,
	)
	if err != nil {
		return model.Item{}, err
	}

	item.Image = model.DefaultImageURL
	if imageURL.Valid {
		item.Image = imageURL.String
	}
	item.ContactPhone = contactPhone.String
	return item, nil
}

func scanRows(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		item, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
