package usecases

import (
	"context"
	"strings"

	"tag/internal/application/common/access"
	"tag/internal/application/user/dto"
	"tag/internal/domain/permission"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type ListUsersQuery struct {
	Actor      authorization.Actor
	Role       string
	Search     string
	Pagination utils.Pagination
}

type ListUsersUseCase struct {
	userRepo user.Repository
	policy   permission.Policy
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, policy permission.Policy, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, policy: policy, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*dto.UserListDTO, error) {
	if err := access.Require(uc.policy, query.Actor, permission.ResourceUser, permission.ActionManage, false); err != nil {
		return nil, err
	}

	page := utils.ValidatePagination(query.Pagination.Page, query.Pagination.Limit)
	filter := user.ListFilter{
		Search: strings.TrimSpace(query.Search),
		Offset: page.Offset(),
		Limit:  page.Limit,
	}
	if query.Role != "" {
		role, ok := authorization.ParseRole(query.Role)
		if !ok {
			return nil, errors.NewValidationError("Rôle invalide", query.Role)
		}
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &dto.UserListDTO{
		Users:      dto.ToUserDTOs(users),
		Pagination: utils.NewPageInfo(page, total),
	}, nil
}
