package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tag/internal/domain/intervention"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

// FoundInterventions is one page of a listing plus its pagination block.
type FoundInterventions struct {
	Interventions []*intervention.Intervention
	PageInfo      utils.PageInfo
}

type FindInterventionsUseCase struct {
	interventionRepo intervention.Repository
	logger           logger.Interface
}

func NewFindInterventionsUseCase(
	interventionRepo intervention.Repository,
	logger logger.Interface,
) *FindInterventionsUseCase {
	return &FindInterventionsUseCase{
		interventionRepo: interventionRepo,
		logger:           logger,
	}
}

// Execute counts and fetches the page concurrently against the same filter.
func (uc *FindInterventionsUseCase) Execute(ctx context.Context, spec *FilterSpec) (*FoundInterventions, error) {
	var (
		total int64
		list  []*intervention.Intervention
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.interventionRepo.Count(gctx, spec.Filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	g.Go(func() error {
		page, err := uc.interventionRepo.List(gctx, spec.Filter, intervention.ListOptions{
			Offset:  spec.Pagination.Offset(),
			Limit:   spec.Pagination.Limit,
			Include: spec.Include,
			Order:   spec.Order,
		})
		if err != nil {
			return err
		}
		list = page
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to find interventions", "error", err, "archived", spec.Filter.Archived())
		return nil, errors.NewInternalError("failed to list interventions")
	}

	return &FoundInterventions{
		Interventions: list,
		PageInfo:      utils.NewPageInfo(spec.Pagination, total),
	}, nil
}
