package usecases

import (
	"context"

	"tag/internal/application/common/access"
	"tag/internal/domain/attachment"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	Actor        authorization.Actor
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	attachmentRepo   attachment.Repository
	interventionRepo intervention.Repository
	files            attachment.FileStore
	policy           permission.Policy
	logger           logger.Interface
}

func NewDeleteAttachmentUseCase(
	attachmentRepo attachment.Repository,
	interventionRepo intervention.Repository,
	files attachment.FileStore,
	policy permission.Policy,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo:   attachmentRepo,
		interventionRepo: interventionRepo,
		files:            files,
		policy:           policy,
		logger:           logger,
	}
}

// Execute removes the file, then the row. Jurists may read attachments but
// not delete them.
func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	uc.logger.Infow("executing delete attachment use case", "attachment_id", cmd.AttachmentID, "user_id", cmd.Actor.UserID)

	a, owner, err := loadWithOwner(ctx, uc.attachmentRepo, uc.interventionRepo, uc.logger, cmd.AttachmentID)
	if err != nil {
		return err
	}

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceAttachment, permission.ActionDelete, owner.IsRequestedBy(cmd.Actor.UserID)); err != nil {
		return err
	}

	if err := uc.files.Remove(a.Chemin()); err != nil {
		uc.logger.Errorw("failed to remove attachment file", "attachment_id", a.ID(), "path", a.Chemin(), "error", err)
		return errors.NewInternalError("failed to delete attachment")
	}

	if err := uc.attachmentRepo.Delete(ctx, a.ID()); err != nil {
		uc.logger.Errorw("failed to delete attachment row", "attachment_id", a.ID(), "error", err)
		return errors.NewInternalError("failed to delete attachment")
	}

	uc.logger.Infow("attachment deleted", "attachment_id", a.ID(), "intervention_id", a.InterventionID())
	return nil
}
