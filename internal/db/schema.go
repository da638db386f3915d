package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Category and location are free text
// on purpose: their vocabulary is enforced by the submission forms, not by
// the store.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id            TEXT PRIMARY KEY,
    type          TEXT NOT NULL CHECK (type IN ('lost', 'found')),
    title         TEXT NOT NULL,
    description   TEXT NOT NULL,
    category      TEXT NOT NULL,
    location      TEXT NOT NULL,
    date          TEXT NOT NULL,
    image_url     TEXT,
    status        TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'claimed', 'resolved')),
    contact_email TEXT NOT NULL,
    contact_phone TEXT,
    created_at    INTEGER NOT NULL,
    updated_at    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_type_created
    ON items(type, created_at DESC);

CREATE INDEX IF NOT EXISTS idx_items_category
    ON items(category);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{}

// Migrate creates the schema and applies pending migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
