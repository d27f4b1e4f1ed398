package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tag/internal/domain/archive"
	"tag/internal/infrastructure/persistence/mappers"
	"tag/internal/infrastructure/persistence/models"
	"tag/internal/shared/db"
	"tag/internal/shared/logger"
)

type ArchiveRepository struct {
	db     *gorm.DB
	mapper mappers.ArchiveMapper
	logger logger.Interface
}

func NewArchiveRepository(db *gorm.DB, logger logger.Interface) archive.Repository {
	return &ArchiveRepository{
		db:     db,
		mapper: mappers.NewArchiveMapper(),
		logger: logger,
	}
}

func (r *ArchiveRepository) Create(ctx context.Context, rec *archive.Record) error {
	model := r.mapper.ToModel(rec)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create archive record", "table", model.SourceTable, "entity_id", model.EntityID, "error", err)
		return fmt.Errorf("failed to create archive record: %w", err)
	}

	return rec.SetID(model.ID)
}

func (r *ArchiveRepository) FindActive(ctx context.Context, table archive.Table, entityID uint) (*archive.Record, error) {
	var model models.ArchiveModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("table_name = ? AND entity_id = ? AND restored_at IS NULL", table.String(), entityID).
		Order("date_archivage DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find active archive record", "table", table, "entity_id", entityID, "error", err)
		return nil, fmt.Errorf("failed to find archive record: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ArchiveRepository) MarkRestored(ctx context.Context, rec *archive.Record) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ArchiveModel{}).
		Where("id = ? AND restored_at IS NULL", rec.ID()).
		Updates(map[string]interface{}{
			"restored_at": rec.RestoredAt(),
			"restored_by": rec.RestoredBy(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to mark archive record restored", "id", rec.ID(), "error", result.Error)
		return fmt.Errorf("failed to mark archive record restored: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("archive record %d is not active", rec.ID())
	}
	return nil
}

func (r *ArchiveRepository) List(ctx context.Context, table archive.Table, offset, limit int) ([]*archive.Record, int64, error) {
	var (
		list  []*models.ArchiveModel
		total int64
	)

	query := db.GetTxFromContext(ctx, r.db).Model(&models.ArchiveModel{})
	if table != "" {
		query = query.Where("table_name = ?", table.String())
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count archive records", "error", err)
		return nil, 0, fmt.Errorf("failed to count archive records: %w", err)
	}

	err := query.Order("date_archivage DESC, id DESC").
		Scopes(db.Paginate(offset, limit)).
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list archive records", "error", err)
		return nil, 0, fmt.Errorf("failed to list archive records: %w", err)
	}

	out := make([]*archive.Record, 0, len(list))
	for _, model := range list {
		out = append(out, r.mapper.ToEntity(model))
	}
	return out, total, nil
}
