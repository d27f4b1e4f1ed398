package usecases

import (
	"context"

	"tag/internal/application/user/dto"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type GetMeUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetMeUseCase(userRepo user.Repository, logger logger.Interface) *GetMeUseCase {
	return &GetMeUseCase{userRepo: userRepo, logger: logger}
}

// Execute returns the caller's account. A token outliving its account is
// treated as expired.
func (uc *GetMeUseCase) Execute(ctx context.Context, actor authorization.Actor) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", actor.UserID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	if u == nil || !u.CanLogin() {
		return nil, errors.NewUnauthorizedError("Session invalide")
	}

	result := dto.ToUserDTO(u)
	return &result, nil
}
