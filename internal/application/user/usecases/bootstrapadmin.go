package usecases

import (
	"context"
	"strings"
	"unicode/utf8"

	"tag/internal/application/user/dto"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

// BootstrapAdminCommand creates an administrator from the command line,
// where no authenticated actor exists yet.
type BootstrapAdminCommand struct {
	Nom      string
	Prenom   string
	Email    string
	Password string
}

type BootstrapAdminUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewBootstrapAdminUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *BootstrapAdminUseCase {
	return &BootstrapAdminUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *BootstrapAdminUseCase) Execute(ctx context.Context, cmd BootstrapAdminCommand) (*dto.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" {
		return nil, errors.NewValidationError("Email requis")
	}
	if utf8.RuneCountInString(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("Le mot de passe doit contenir au moins 8 caractères")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to check existing user")
	}
	if exists {
		return nil, errors.NewConflictError("Un compte existe déjà avec cet email", email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Nom, cmd.Prenom, email, hash, authorization.RoleAdmin, nil)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist admin", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("administrator created", "user_id", u.ID(), "email", email)

	result := dto.ToUserDTO(u)
	return &result, nil
}
