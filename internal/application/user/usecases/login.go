package usecases

import (
	"context"
	"strings"

	"tag/internal/application/user/dto"
	"tag/internal/domain/user"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

const invalidCredentials = "Email ou mot de passe incorrect"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("Email et mot de passe requis")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	// same answer for unknown email and wrong password
	if existing == nil {
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}
	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}
	if !existing.CanLogin() {
		uc.logger.Warnw("login refused for disabled account", "user_id", existing.ID())
		return nil, errors.NewForbiddenError("Compte désactivé")
	}

	token, err := uc.tokens.Issue(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID(), "role", existing.Role())

	return &dto.LoginDTO{
		Token:     token.Token,
		ExpiresIn: token.ExpiresIn,
		User:      dto.ToUserDTO(existing),
	}, nil
}
