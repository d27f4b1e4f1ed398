package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tag/internal/domain/attachment"
	"tag/internal/infrastructure/persistence/mappers"
	"tag/internal/infrastructure/persistence/models"
	"tag/internal/shared/db"
	"tag/internal/shared/logger"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
	logger logger.Interface
}

func NewAttachmentRepository(db *gorm.DB, logger logger.Interface) attachment.Repository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewAttachmentMapper(),
		logger: logger,
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *attachment.Attachment) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create attachment", "intervention_id", model.InterventionID, "error", err)
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*attachment.Attachment, error) {
	var model models.PieceJointeModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get attachment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AttachmentRepository) ListByIntervention(ctx context.Context, interventionID uint) ([]*attachment.Attachment, error) {
	var list []*models.PieceJointeModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("intervention_id = ?", interventionID).
		Order("date_creation ASC, id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list attachments", "intervention_id", interventionID, "error", err)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	out := make([]*attachment.Attachment, 0, len(list))
	for _, model := range list {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			r.logger.Warnw("failed to map attachment, skipping", "id", model.ID, "error", err)
			continue
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PieceJointeModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete attachment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("attachment not found")
	}
	return nil
}
