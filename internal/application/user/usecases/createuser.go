package usecases

import (
	"context"
	"strings"
	"unicode/utf8"

	"tag/internal/application/common/access"
	"tag/internal/application/user/dto"
	"tag/internal/domain/commune"
	"tag/internal/domain/permission"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

const minPasswordLength = 8

type CreateUserCommand struct {
	Actor     authorization.Actor
	Nom       string
	Prenom    string
	Email     string
	Password  string
	Role      string
	CommuneID *uint
}

type CreateUserUseCase struct {
	userRepo    user.Repository
	communeRepo commune.Repository
	hasher      PasswordHasher
	policy      permission.Policy
	logger      logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	communeRepo commune.Repository,
	hasher PasswordHasher,
	policy permission.Policy,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:    userRepo,
		communeRepo: communeRepo,
		hasher:      hasher,
		policy:      policy,
		logger:      logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email, "role", cmd.Role)

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceUser, permission.ActionManage, false); err != nil {
		return nil, err
	}

	role, ok := authorization.ParseRole(strings.TrimSpace(cmd.Role))
	if !ok {
		return nil, errors.NewValidationError("Rôle invalide", cmd.Role)
	}
	if utf8.RuneCountInString(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("Le mot de passe doit contenir au moins 8 caractères")
	}

	communeID := cmd.CommuneID
	if role == authorization.RoleCommune {
		if communeID == nil || *communeID == 0 {
			return nil, errors.NewValidationError("Une commune est requise pour ce rôle")
		}
		c, err := uc.communeRepo.GetByID(ctx, *communeID)
		if err != nil {
			uc.logger.Errorw("failed to get commune", "commune_id", *communeID, "error", err)
			return nil, errors.NewInternalError("failed to get commune")
		}
		if c == nil {
			return nil, errors.NewValidationError("Commune introuvable")
		}
	} else {
		communeID = nil
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to check existing user")
	}
	if exists {
		uc.logger.Warnw("user with email already exists", "email", email)
		return nil, errors.NewConflictError("Un compte existe déjà avec cet email", email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Nom, cmd.Prenom, email, hash, role, communeID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist user", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", role)

	result := dto.ToUserDTO(u)
	return &result, nil
}
