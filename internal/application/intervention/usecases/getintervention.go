package usecases

import (
	"context"

	"tag/internal/application/common/access"
	"tag/internal/application/intervention/dto"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
	"tag/internal/shared/services/markdown"
)

const interventionNotFound = "Intervention introuvable"

type GetInterventionQuery struct {
	Actor          authorization.Actor
	InterventionID uint
}

type GetInterventionUseCase struct {
	interventionRepo intervention.Repository
	policy           permission.Policy
	renderer         markdown.Renderer
	logger           logger.Interface
}

func NewGetInterventionUseCase(
	interventionRepo intervention.Repository,
	policy permission.Policy,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetInterventionUseCase {
	return &GetInterventionUseCase{
		interventionRepo: interventionRepo,
		policy:           policy,
		renderer:         renderer,
		logger:           logger,
	}
}

func (uc *GetInterventionUseCase) Execute(ctx context.Context, query GetInterventionQuery) (*dto.InterventionDTO, error) {
	i, err := loadIntervention(ctx, uc.interventionRepo, uc.logger, query.InterventionID)
	if err != nil {
		return nil, err
	}

	if err := access.Require(uc.policy, query.Actor, permission.ResourceIntervention, permission.ActionRead, i.IsRequestedBy(query.Actor.UserID)); err != nil {
		return nil, err
	}

	return detailDTO(i, query.Actor, uc.renderer, uc.logger), nil
}

func loadIntervention(ctx context.Context, repo intervention.Repository, log logger.Interface, id uint) (*intervention.Intervention, error) {
	i, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get intervention", "intervention_id", id, "error", err)
		return nil, errors.NewInternalError("failed to get intervention")
	}
	if i == nil {
		return nil, errors.NewNotFoundError(interventionNotFound)
	}
	return i, nil
}

// detailDTO adds the rendered answer. A rendering failure only drops the HTML.
func detailDTO(i *intervention.Intervention, actor authorization.Actor, renderer markdown.Renderer, log logger.Interface) *dto.InterventionDTO {
	result := dto.ToInterventionDTO(i, actor.Role != authorization.RoleCommune)
	if r := i.Reponse(); r != nil && renderer != nil {
		html, err := renderer.Render(*r)
		if err != nil {
			log.Warnw("failed to render answer", "intervention_id", i.ID(), "error", err)
		} else {
			result.ReponseHTML = html
		}
	}
	return &result
}
