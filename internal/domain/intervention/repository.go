package intervention

import "context"

type Repository interface {
	Create(ctx context.Context, i *Intervention) error
	// SaveAnswer writes the answer fields only.
	SaveAnswer(ctx context.Context, i *Intervention) error
	// SaveRating writes the satisfaction only if none is stored yet, and
	// returns ErrAlreadyRated otherwise.
	SaveRating(ctx context.Context, i *Intervention) error
	// GetByID returns nil, nil when no row exists. Archived rows are returned.
	GetByID(ctx context.Context, id uint) (*Intervention, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]*Intervention, error)
}
