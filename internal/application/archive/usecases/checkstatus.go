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
)

type CheckStatusQuery struct {
	Actor    authorization.Actor
	Table    string
	EntityID uint
}

type CheckStatusUseCase struct {
	archiveRepo archive.Repository
	entities    archive.EntityStore
	policy      permission.Policy
	logger      logger.Interface
}

func NewCheckStatusUseCase(
	archiveRepo archive.Repository,
	entities archive.EntityStore,
	policy permission.Policy,
	logger logger.Interface,
) *CheckStatusUseCase {
	return &CheckStatusUseCase{
		archiveRepo: archiveRepo,
		entities:    entities,
		policy:      policy,
		logger:      logger,
	}
}

// Execute reports an entity as archived when it has an active archive record
// and its live row is hidden.
func (uc *CheckStatusUseCase) Execute(ctx context.Context, query CheckStatusQuery) (*dto.ArchiveStatusDTO, error) {
	table, err := parseTarget(query.Table, query.EntityID)
	if err != nil {
		return nil, err
	}

	if err := access.Require(uc.policy, query.Actor, permission.ResourceArchive, permission.ActionStatus, false); err != nil {
		return nil, err
	}

	_, archivedAt, err := uc.entities.Snapshot(ctx, table, query.EntityID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to read entity", "table", table, "entity_id", query.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to check archive status")
	}

	active, err := uc.archiveRepo.FindActive(ctx, table, query.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to find archive record", "table", table, "entity_id", query.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to check archive status")
	}

	if active == nil || archivedAt == nil {
		return &dto.ArchiveStatusDTO{Archived: false}, nil
	}
	return &dto.ArchiveStatusDTO{Archived: true, Archive: dto.ToArchiveSummaryDTO(active)}, nil
}
