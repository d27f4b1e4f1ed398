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

type ListAttachmentsQuery struct {
	Actor          authorization.Actor
	InterventionID uint
}

type ListAttachmentsUseCase struct {
	attachmentRepo   attachment.Repository
	interventionRepo intervention.Repository
	policy           permission.Policy
	logger           logger.Interface
}

func NewListAttachmentsUseCase(
	attachmentRepo attachment.Repository,
	interventionRepo intervention.Repository,
	policy permission.Policy,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		attachmentRepo:   attachmentRepo,
		interventionRepo: interventionRepo,
		policy:           policy,
		logger:           logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	i, err := uc.interventionRepo.GetByID(ctx, query.InterventionID)
	if err != nil {
		uc.logger.Errorw("failed to get intervention", "intervention_id", query.InterventionID, "error", err)
		return nil, errors.NewInternalError("failed to get intervention")
	}
	if i == nil {
		return nil, errors.NewNotFoundError(interventionNotFound)
	}

	if err := access.Require(uc.policy, query.Actor, permission.ResourceAttachment, permission.ActionList, i.IsRequestedBy(query.Actor.UserID)); err != nil {
		return nil, err
	}

	list, err := uc.attachmentRepo.ListByIntervention(ctx, i.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "intervention_id", i.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list attachments")
	}

	return dto.ToAttachmentDTOs(list), nil
}
