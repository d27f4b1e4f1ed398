package usecases

import (
	"context"

	"tag/internal/application/common/access"
	"tag/internal/application/intervention/dto"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/domain/theme"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type CreateInterventionCommand struct {
	Actor       authorization.Actor
	Titre       string
	Description string
	Urgent      bool
	ThemeID     uint
}

type CreateInterventionUseCase struct {
	interventionRepo intervention.Repository
	userRepo         user.Repository
	themeRepo        theme.Repository
	policy           permission.Policy
	logger           logger.Interface
}

func NewCreateInterventionUseCase(
	interventionRepo intervention.Repository,
	userRepo user.Repository,
	themeRepo theme.Repository,
	policy permission.Policy,
	logger logger.Interface,
) *CreateInterventionUseCase {
	return &CreateInterventionUseCase{
		interventionRepo: interventionRepo,
		userRepo:         userRepo,
		themeRepo:        themeRepo,
		policy:           policy,
		logger:           logger,
	}
}

// Execute files a question on behalf of the acting commune user. The commune
// is taken from the user's account, never from the request.
func (uc *CreateInterventionUseCase) Execute(ctx context.Context, cmd CreateInterventionCommand) (*dto.InterventionDTO, error) {
	uc.logger.Infow("executing create intervention use case", "user_id", cmd.Actor.UserID, "theme_id", cmd.ThemeID)

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceIntervention, permission.ActionCreate, true); err != nil {
		return nil, err
	}

	requester, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load requester", "user_id", cmd.Actor.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if requester == nil || requester.CommuneID() == nil {
		return nil, errors.NewForbiddenError("Aucune commune n'est rattachée à ce compte")
	}

	th, err := uc.themeRepo.GetByID(ctx, cmd.ThemeID)
	if err != nil {
		uc.logger.Errorw("failed to load theme", "theme_id", cmd.ThemeID, "error", err)
		return nil, errors.NewInternalError("failed to load theme")
	}
	if th == nil {
		return nil, errors.NewValidationError("Thème introuvable")
	}
	if !th.Actif() {
		return nil, errors.NewValidationError("Thème inactif")
	}

	i, err := intervention.NewIntervention(cmd.Titre, cmd.Description, cmd.Urgent, requester.ID(), *requester.CommuneID(), th.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.interventionRepo.Create(ctx, i); err != nil {
		uc.logger.Errorw("failed to create intervention", "error", err)
		return nil, errors.NewInternalError("failed to create intervention")
	}

	uc.logger.Infow("intervention created successfully", "intervention_id", i.ID(), "commune_id", i.CommuneID())

	result := dto.ToInterventionDTO(i, false)
	return &result, nil
}
