package attachment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Attachment) error
	// GetByID returns nil, nil when no row exists.
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	ListByIntervention(ctx context.Context, interventionID uint) ([]*Attachment, error)
	Delete(ctx context.Context, id uint) error
}

// FileStore is the on-disk side of attachments.
type FileStore interface {
	Exists(path string) (bool, error)
	// Remove deletes path; a missing file is not an error.
	Remove(path string) error
}
