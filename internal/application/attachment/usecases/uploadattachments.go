package usecases

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"tag/internal/application/attachment/dto"
	"tag/internal/application/common/access"
	"tag/internal/domain/attachment"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

const interventionNotFound = "Intervention introuvable"

type UploadAttachmentsCommand struct {
	Actor          authorization.Actor
	InterventionID uint
	Files          []attachment.StoredFile
}

type UploadAttachmentsUseCase struct {
	attachmentRepo   attachment.Repository
	interventionRepo intervention.Repository
	cleaner          *FileCleaner
	policy           permission.Policy
	logger           logger.Interface
}

func NewUploadAttachmentsUseCase(
	attachmentRepo attachment.Repository,
	interventionRepo intervention.Repository,
	cleaner *FileCleaner,
	policy permission.Policy,
	logger logger.Interface,
) *UploadAttachmentsUseCase {
	return &UploadAttachmentsUseCase{
		attachmentRepo:   attachmentRepo,
		interventionRepo: interventionRepo,
		cleaner:          cleaner,
		policy:           policy,
		logger:           logger,
	}
}

// Execute records files already written to disk. Every rejection removes
// exactly the files of this call.
func (uc *UploadAttachmentsUseCase) Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*dto.UploadResultDTO, error) {
	uc.logger.Infow("executing upload attachments use case",
		"intervention_id", cmd.InterventionID,
		"user_id", cmd.Actor.UserID,
		"files", len(cmd.Files))

	result, err := uc.execute(ctx, cmd)
	if err != nil {
		uc.cleaner.Remove(cmd.Files)
		return nil, err
	}
	return result, nil
}

func (uc *UploadAttachmentsUseCase) execute(ctx context.Context, cmd UploadAttachmentsCommand) (*dto.UploadResultDTO, error) {
	if len(cmd.Files) == 0 {
		return nil, errors.NewValidationError("Aucun fichier fourni")
	}

	i, err := uc.interventionRepo.GetByID(ctx, cmd.InterventionID)
	if err != nil {
		uc.logger.Errorw("failed to get intervention", "intervention_id", cmd.InterventionID, "error", err)
		return nil, errors.NewInternalError("failed to get intervention")
	}
	if i == nil {
		return nil, errors.NewNotFoundError(interventionNotFound)
	}

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceAttachment, permission.ActionUpload, i.IsRequestedBy(cmd.Actor.UserID)); err != nil {
		return nil, err
	}
	if i.IsArchived() {
		return nil, errors.NewValidationError("Intervention archivée")
	}

	attachments := make([]*attachment.Attachment, 0, len(cmd.Files))
	for _, f := range cmd.Files {
		a, err := attachment.NewAttachment(i.ID(), f)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		attachments = append(attachments, a)
	}

	if err := uc.createAll(ctx, attachments); err != nil {
		return nil, err
	}

	uc.logger.Infow("attachments uploaded", "intervention_id", i.ID(), "count", len(attachments))

	return &dto.UploadResultDTO{
		Message:     fmt.Sprintf("%d fichier(s) ajouté(s) avec succès", len(attachments)),
		Attachments: dto.ToAttachmentDTOs(attachments),
	}, nil
}

// createAll inserts the rows concurrently. When any insert fails the rows
// that made it are deleted again, best effort.
func (uc *UploadAttachmentsUseCase) createAll(ctx context.Context, attachments []*attachment.Attachment) error {
	var (
		g       errgroup.Group
		mu      sync.Mutex
		created []uint
	)

	for _, a := range attachments {
		g.Go(func() error {
			if err := uc.attachmentRepo.Create(ctx, a); err != nil {
				return err
			}
			mu.Lock()
			created = append(created, a.ID())
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		return nil
	}

	uc.logger.Errorw("failed to create attachments", "error", err, "created", len(created), "requested", len(attachments))
	for _, id := range created {
		if delErr := uc.attachmentRepo.Delete(ctx, id); delErr != nil {
			uc.logger.Warnw("failed to remove partially created attachment", "attachment_id", id, "error", delErr)
		}
	}
	return errors.NewInternalError("failed to save attachments")
}
