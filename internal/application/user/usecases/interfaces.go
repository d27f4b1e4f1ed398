package usecases

import (
	"context"

	"tag/internal/application/user/dto"
	"tag/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// IssuedToken is a signed access token and its lifetime in seconds.
type IssuedToken struct {
	Token     string
	ExpiresIn int64
}

type TokenIssuer interface {
	Issue(userID uint, role authorization.UserRole) (*IssuedToken, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error)
}

type GetMeExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) (*dto.UserDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*dto.UserListDTO, error)
}

type SetUserActifExecutor interface {
	Execute(ctx context.Context, cmd SetUserActifCommand) (*dto.UserDTO, error)
}
