package usecases

import (
	"context"
	"time"

	"tag/internal/application/archive/dto"
	"tag/internal/application/common/access"
	"tag/internal/domain/archive"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type RestoreEntityCommand struct {
	Actor    authorization.Actor
	Table    string
	EntityID uint
}

type RestoreEntityUseCase struct {
	archiveRepo archive.Repository
	entities    archive.EntityStore
	tx          TransactionRunner
	policy      permission.Policy
	logger      logger.Interface
	now         func() time.Time
}

func NewRestoreEntityUseCase(
	archiveRepo archive.Repository,
	entities archive.EntityStore,
	tx TransactionRunner,
	policy permission.Policy,
	logger logger.Interface,
) *RestoreEntityUseCase {
	return &RestoreEntityUseCase{
		archiveRepo: archiveRepo,
		entities:    entities,
		tx:          tx,
		policy:      policy,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Execute makes the row live again. The archive record is kept as history,
// stamped with who restored it and when.
func (uc *RestoreEntityUseCase) Execute(ctx context.Context, cmd RestoreEntityCommand) (*dto.RestoredEntityDTO, error) {
	uc.logger.Infow("executing restore entity use case",
		"table", cmd.Table,
		"entity_id", cmd.EntityID,
		"user_id", cmd.Actor.UserID)

	table, err := parseTarget(cmd.Table, cmd.EntityID)
	if err != nil {
		return nil, err
	}

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceArchive, permission.ActionRestore, false); err != nil {
		return nil, err
	}

	var entity []byte
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		active, err := uc.archiveRepo.FindActive(ctx, table, cmd.EntityID)
		if err != nil {
			return err
		}
		if active == nil {
			return errors.NewNotArchivedError("Aucune archive active pour cette entité")
		}

		if err := uc.entities.SetArchivedAt(ctx, table, cmd.EntityID, nil); err != nil {
			return err
		}
		if err := active.MarkRestored(cmd.Actor.UserID, uc.now()); err != nil {
			return errors.NewNotArchivedError(err.Error())
		}
		if err := uc.archiveRepo.MarkRestored(ctx, active); err != nil {
			return err
		}

		entity, _, err = uc.entities.Snapshot(ctx, table, cmd.EntityID)
		return err
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to restore entity", "table", table, "entity_id", cmd.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to restore entity")
	}

	uc.logger.Infow("entity restored", "table", table, "entity_id", cmd.EntityID)

	return &dto.RestoredEntityDTO{
		TableName: table.String(),
		EntityID:  cmd.EntityID,
		Entity:    entity,
	}, nil
}
