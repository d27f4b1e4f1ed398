package user

import (
	"context"

	"tag/internal/shared/authorization"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	// GetByID and GetByEmail return nil, nil when no row exists.
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List returns live users only.
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

type ListFilter struct {
	Role   *authorization.UserRole
	Search string
	Offset int
	Limit  int
}
