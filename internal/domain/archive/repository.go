package archive

import (
	"context"
	"encoding/json"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *Record) error
	// FindActive returns the most recent active record, or nil, nil.
	FindActive(ctx context.Context, table Table, entityID uint) (*Record, error)
	MarkRestored(ctx context.Context, r *Record) error
	// List returns records newest first; an empty table lists every table.
	List(ctx context.Context, table Table, offset, limit int) ([]*Record, int64, error)
}

// EntityStore reads and hides the live rows of archivable tables.
type EntityStore interface {
	// Snapshot returns the row as JSON with its display fields, and the live
	// row's archive stamp. It returns NotFound when the row does not exist.
	Snapshot(ctx context.Context, table Table, id uint) (json.RawMessage, *time.Time, error)
	SetArchivedAt(ctx context.Context, table Table, id uint, at *time.Time) error
}
