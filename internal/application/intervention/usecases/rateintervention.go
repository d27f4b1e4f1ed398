package usecases

import (
	"context"
	stderrors "errors"

	"tag/internal/application/common/access"
	"tag/internal/application/intervention/dto"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type RateInterventionCommand struct {
	Actor          authorization.Actor
	InterventionID uint
	Satisfaction   int
}

type RateInterventionUseCase struct {
	interventionRepo intervention.Repository
	policy           permission.Policy
	logger           logger.Interface
}

func NewRateInterventionUseCase(
	interventionRepo intervention.Repository,
	policy permission.Policy,
	logger logger.Interface,
) *RateInterventionUseCase {
	return &RateInterventionUseCase{
		interventionRepo: interventionRepo,
		policy:           policy,
		logger:           logger,
	}
}

// Execute records the requester's satisfaction, closing the intervention.
func (uc *RateInterventionUseCase) Execute(ctx context.Context, cmd RateInterventionCommand) (*dto.InterventionDTO, error) {
	i, err := loadIntervention(ctx, uc.interventionRepo, uc.logger, cmd.InterventionID)
	if err != nil {
		return nil, err
	}

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceIntervention, permission.ActionRate, i.IsRequestedBy(cmd.Actor.UserID)); err != nil {
		return nil, err
	}

	if err := i.Rate(cmd.Satisfaction); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.interventionRepo.SaveRating(ctx, i); err != nil {
		if stderrors.Is(err, intervention.ErrAlreadyRated) {
			return nil, errors.NewValidationError(err.Error())
		}
		uc.logger.Errorw("failed to save satisfaction", "intervention_id", i.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save satisfaction")
	}

	uc.logger.Infow("intervention rated", "intervention_id", i.ID(), "satisfaction", cmd.Satisfaction)

	result := dto.ToInterventionDTO(i, false)
	return &result, nil
}
