package usecases

import (
	"context"

	"tag/internal/application/intervention/dto"
	"tag/internal/shared/authorization"
	"tag/internal/shared/logger"
)

type ListInterventionsQuery struct {
	Params   dto.InterventionQuery
	Archived bool
	Actor    authorization.Actor
}

type ListInterventionsUseCase struct {
	builder *FilterBuilder
	finder  *FindInterventionsUseCase
	logger  logger.Interface
}

func NewListInterventionsUseCase(
	builder *FilterBuilder,
	finder *FindInterventionsUseCase,
	logger logger.Interface,
) *ListInterventionsUseCase {
	return &ListInterventionsUseCase{
		builder: builder,
		finder:  finder,
		logger:  logger,
	}
}

func (uc *ListInterventionsUseCase) Execute(ctx context.Context, query ListInterventionsQuery) (*dto.InterventionListDTO, error) {
	uc.logger.Debugw("executing list interventions use case",
		"user_id", query.Actor.UserID,
		"archived", query.Archived)

	spec, err := uc.builder.Build(query.Params, query.Archived, query.Actor)
	if err != nil {
		return nil, err
	}

	found, err := uc.finder.Execute(ctx, spec)
	if err != nil {
		return nil, err
	}

	return &dto.InterventionListDTO{
		Interventions: dto.ToInterventionDTOs(found.Interventions, query.Actor.Role != authorization.RoleCommune),
		Pagination:    found.PageInfo,
	}, nil
}
