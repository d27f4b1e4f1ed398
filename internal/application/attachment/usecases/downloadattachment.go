package usecases

import (
	"context"

	"tag/internal/application/attachment/dto"
	"tag/internal/application/common/access"
	"tag/internal/domain/attachment"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

const attachmentNotFound = "Pièce jointe introuvable"

type DownloadAttachmentQuery struct {
	Actor        authorization.Actor
	AttachmentID uint
}

type DownloadAttachmentUseCase struct {
	attachmentRepo   attachment.Repository
	interventionRepo intervention.Repository
	files            attachment.FileStore
	policy           permission.Policy
	logger           logger.Interface
}

func NewDownloadAttachmentUseCase(
	attachmentRepo attachment.Repository,
	interventionRepo intervention.Repository,
	files attachment.FileStore,
	policy permission.Policy,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		attachmentRepo:   attachmentRepo,
		interventionRepo: interventionRepo,
		files:            files,
		policy:           policy,
		logger:           logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*dto.DownloadDTO, error) {
	a, owner, err := loadWithOwner(ctx, uc.attachmentRepo, uc.interventionRepo, uc.logger, query.AttachmentID)
	if err != nil {
		return nil, err
	}

	if err := access.Require(uc.policy, query.Actor, permission.ResourceAttachment, permission.ActionDownload, owner.IsRequestedBy(query.Actor.UserID)); err != nil {
		return nil, err
	}

	exists, err := uc.files.Exists(a.Chemin())
	if err != nil {
		uc.logger.Errorw("failed to check attachment file", "attachment_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to read attachment")
	}
	if !exists {
		uc.logger.Warnw("attachment file missing on disk", "attachment_id", a.ID(), "path", a.Chemin())
		return nil, errors.NewNotFoundError("Fichier introuvable")
	}

	return &dto.DownloadDTO{FilePath: a.Chemin(), OriginalName: a.NomOriginal()}, nil
}

// loadWithOwner returns the attachment and the intervention it belongs to.
func loadWithOwner(
	ctx context.Context,
	attachments attachment.Repository,
	interventions intervention.Repository,
	log logger.Interface,
	id uint,
) (*attachment.Attachment, *intervention.Intervention, error) {
	a, err := attachments.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get attachment", "attachment_id", id, "error", err)
		return nil, nil, errors.NewInternalError("failed to get attachment")
	}
	if a == nil {
		return nil, nil, errors.NewNotFoundError(attachmentNotFound)
	}

	owner, err := interventions.GetByID(ctx, a.InterventionID())
	if err != nil {
		log.Errorw("failed to get intervention", "intervention_id", a.InterventionID(), "error", err)
		return nil, nil, errors.NewInternalError("failed to get intervention")
	}
	if owner == nil {
		return nil, nil, errors.NewNotFoundError(interventionNotFound)
	}
	return a, owner, nil
}
