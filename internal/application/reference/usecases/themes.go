package usecases

import (
	"context"

	"tag/internal/application/common/access"
	"tag/internal/application/reference/dto"
	"tag/internal/domain/permission"
	"tag/internal/domain/theme"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type ListThemesUseCase struct {
	repo   theme.Repository
	policy permission.Policy
	logger logger.Interface
}

func NewListThemesUseCase(repo theme.Repository, policy permission.Policy, logger logger.Interface) *ListThemesUseCase {
	return &ListThemesUseCase{repo: repo, policy: policy, logger: logger}
}

// Execute lists live themes by designation with their intervention counts.
func (uc *ListThemesUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]dto.ThemeDTO, error) {
	if err := access.Require(uc.policy, actor, permission.ResourceReference, permission.ActionRead, false); err != nil {
		return nil, err
	}

	themes, err := uc.repo.ListLive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list themes", "error", err)
		return nil, errors.NewInternalError("failed to list themes")
	}

	out := make([]dto.ThemeDTO, 0, len(themes))
	for _, t := range themes {
		out = append(out, dto.ToThemeDTO(t))
	}
	return out, nil
}

type CreateThemeCommand struct {
	Actor       authorization.Actor
	Designation string
}

type CreateThemeUseCase struct {
	repo   theme.Repository
	policy permission.Policy
	logger logger.Interface
}

func NewCreateThemeUseCase(repo theme.Repository, policy permission.Policy, logger logger.Interface) *CreateThemeUseCase {
	return &CreateThemeUseCase{repo: repo, policy: policy, logger: logger}
}

func (uc *CreateThemeUseCase) Execute(ctx context.Context, cmd CreateThemeCommand) (*dto.ThemeDTO, error) {
	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceReference, permission.ActionManage, false); err != nil {
		return nil, err
	}

	t, err := theme.NewTheme(cmd.Designation)
	if err != nil {
		return nil, errors.NewValidationError("La désignation du thème est requise")
	}

	exists, err := uc.repo.ExistsByDesignation(ctx, t.Designation())
	if err != nil {
		uc.logger.Errorw("failed to check theme designation", "designation", t.Designation(), "error", err)
		return nil, errors.NewInternalError("failed to check theme designation")
	}
	if exists {
		return nil, errors.NewConflictError("Ce thème existe déjà", t.Designation())
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create theme", "designation", t.Designation(), "error", err)
		return nil, errors.NewInternalError("failed to create theme")
	}

	uc.logger.Infow("theme created", "theme_id", t.ID(), "designation", t.Designation())

	result := dto.ToThemeDTO(t)
	return &result, nil
}

type SetThemeActifCommand struct {
	Actor   authorization.Actor
	ThemeID uint
	Actif   bool
}

type SetThemeActifUseCase struct {
	repo   theme.Repository
	policy permission.Policy
	logger logger.Interface
}

func NewSetThemeActifUseCase(repo theme.Repository, policy permission.Policy, logger logger.Interface) *SetThemeActifUseCase {
	return &SetThemeActifUseCase{repo: repo, policy: policy, logger: logger}
}

func (uc *SetThemeActifUseCase) Execute(ctx context.Context, cmd SetThemeActifCommand) (*dto.ThemeDTO, error) {
	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceReference, permission.ActionManage, false); err != nil {
		return nil, err
	}

	t, err := uc.repo.GetByID(ctx, cmd.ThemeID)
	if err != nil {
		uc.logger.Errorw("failed to get theme", "theme_id", cmd.ThemeID, "error", err)
		return nil, errors.NewInternalError("failed to get theme")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Thème introuvable")
	}

	t.SetActif(cmd.Actif)
	if err := uc.repo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update theme", "theme_id", cmd.ThemeID, "error", err)
		return nil, errors.NewInternalError("failed to update theme")
	}

	result := dto.ToThemeDTO(t)
	return &result, nil
}
