package usecases

import (
	"context"

	"tag/internal/application/common/access"
	"tag/internal/application/user/dto"
	"tag/internal/domain/permission"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type SetUserActifCommand struct {
	Actor  authorization.Actor
	UserID uint
	Actif  bool
}

type SetUserActifUseCase struct {
	userRepo user.Repository
	policy   permission.Policy
	logger   logger.Interface
}

func NewSetUserActifUseCase(userRepo user.Repository, policy permission.Policy, logger logger.Interface) *SetUserActifUseCase {
	return &SetUserActifUseCase{userRepo: userRepo, policy: policy, logger: logger}
}

func (uc *SetUserActifUseCase) Execute(ctx context.Context, cmd SetUserActifCommand) (*dto.UserDTO, error) {
	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceUser, permission.ActionManage, false); err != nil {
		return nil, err
	}
	if cmd.UserID == cmd.Actor.UserID && !cmd.Actif {
		return nil, errors.NewValidationError("Impossible de désactiver votre propre compte")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("Utilisateur introuvable")
	}

	u.SetActif(cmd.Actif)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user active flag changed", "user_id", cmd.UserID, "actif", cmd.Actif, "by", cmd.Actor.UserID)

	result := dto.ToUserDTO(u)
	return &result, nil
}
