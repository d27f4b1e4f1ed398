package usecases

import (
	"context"

	"tag/internal/application/archive/dto"
	"tag/internal/application/common/access"
	"tag/internal/domain/archive"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type ListArchivesQuery struct {
	Actor      authorization.Actor
	Table      string
	Pagination utils.Pagination
}

type ListArchivesUseCase struct {
	archiveRepo archive.Repository
	policy      permission.Policy
	logger      logger.Interface
}

func NewListArchivesUseCase(
	archiveRepo archive.Repository,
	policy permission.Policy,
	logger logger.Interface,
) *ListArchivesUseCase {
	return &ListArchivesUseCase{
		archiveRepo: archiveRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Execute pages through archive history, newest first. An empty table lists
// every table.
func (uc *ListArchivesUseCase) Execute(ctx context.Context, query ListArchivesQuery) (*dto.ArchiveListDTO, error) {
	if err := access.Require(uc.policy, query.Actor, permission.ResourceArchive, permission.ActionList, false); err != nil {
		return nil, err
	}

	var table archive.Table
	if query.Table != "" && query.Table != "all" {
		t, err := archive.ParseTable(query.Table)
		if err != nil {
			return nil, errors.NewValidationError("Table non archivable", query.Table)
		}
		table = t
	}

	page := utils.ValidatePagination(query.Pagination.Page, query.Pagination.Limit)
	records, total, err := uc.archiveRepo.List(ctx, table, page.Offset(), page.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list archives", "table", table, "error", err)
		return nil, errors.NewInternalError("failed to list archives")
	}

	items := make([]dto.ArchiveRecordDTO, 0, len(records))
	for _, r := range records {
		items = append(items, dto.ToArchiveRecordDTO(r))
	}

	return &dto.ArchiveListDTO{
		Archives:   items,
		Pagination: utils.NewPageInfo(page, total),
	}, nil
}
