package usecases

import (
	"context"
	"strings"
	"time"

	"tag/internal/application/archive/dto"
	"tag/internal/application/common/access"
	"tag/internal/domain/archive"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

const alreadyArchived = "Cette entité est déjà archivée"

type ArchiveEntityCommand struct {
	Actor    authorization.Actor
	Table    string
	EntityID uint
	Reason   string
}

type ArchiveEntityUseCase struct {
	archiveRepo archive.Repository
	entities    archive.EntityStore
	tx          TransactionRunner
	policy      permission.Policy
	logger      logger.Interface
	now         func() time.Time
}

func NewArchiveEntityUseCase(
	archiveRepo archive.Repository,
	entities archive.EntityStore,
	tx TransactionRunner,
	policy permission.Policy,
	logger logger.Interface,
) *ArchiveEntityUseCase {
	return &ArchiveEntityUseCase{
		archiveRepo: archiveRepo,
		entities:    entities,
		tx:          tx,
		policy:      policy,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Execute snapshots the live row into an archive record and hides it, both
// in one transaction.
func (uc *ArchiveEntityUseCase) Execute(ctx context.Context, cmd ArchiveEntityCommand) (*dto.ArchiveRecordDTO, error) {
	uc.logger.Infow("executing archive entity use case",
		"table", cmd.Table,
		"entity_id", cmd.EntityID,
		"user_id", cmd.Actor.UserID)

	table, err := parseTarget(cmd.Table, cmd.EntityID)
	if err != nil {
		return nil, err
	}

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceArchive, permission.ActionArchive, false); err != nil {
		return nil, err
	}

	if table == archive.TableUsers && cmd.EntityID == cmd.Actor.UserID {
		return nil, errors.NewValidationError("Impossible d'archiver votre propre compte")
	}

	var record *archive.Record
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		active, err := uc.archiveRepo.FindActive(ctx, table, cmd.EntityID)
		if err != nil {
			return err
		}
		if active != nil {
			return errors.NewAlreadyArchivedError(alreadyArchived)
		}

		snapshot, archivedAt, err := uc.entities.Snapshot(ctx, table, cmd.EntityID)
		if err != nil {
			return err
		}
		if archivedAt != nil {
			return errors.NewAlreadyArchivedError(alreadyArchived)
		}

		now := uc.now()
		record, err = archive.NewRecord(table, cmd.EntityID, snapshot, strings.TrimSpace(cmd.Reason), cmd.Actor.UserID, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.archiveRepo.Create(ctx, record); err != nil {
			return err
		}
		return uc.entities.SetArchivedAt(ctx, table, cmd.EntityID, &now)
	})
	if err != nil {
		return nil, uc.wrap(err, "failed to archive entity", table, cmd.EntityID)
	}

	uc.logger.Infow("entity archived", "table", table, "entity_id", cmd.EntityID, "archive_id", record.ID())

	result := dto.ToArchiveRecordDTO(record)
	return &result, nil
}

func (uc *ArchiveEntityUseCase) wrap(err error, message string, table archive.Table, id uint) error {
	if errors.IsAppError(err) {
		return err
	}
	uc.logger.Errorw(message, "table", table, "entity_id", id, "error", err)
	return errors.NewInternalError(message)
}

func parseTarget(value string, id uint) (archive.Table, error) {
	table, err := archive.ParseTable(value)
	if err != nil {
		return "", errors.NewValidationError("Table non archivable", value)
	}
	if id == 0 {
		return "", errors.NewValidationError("Identifiant invalide")
	}
	return table, nil
}
