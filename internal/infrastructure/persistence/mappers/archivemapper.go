package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"tag/internal/domain/archive"
	"tag/internal/infrastructure/persistence/models"
)

type ArchiveMapper interface {
	ToModel(r *archive.Record) *models.ArchiveModel
	ToEntity(model *models.ArchiveModel) *archive.Record
}

type ArchiveMapperImpl struct{}

func NewArchiveMapper() ArchiveMapper {
	return &ArchiveMapperImpl{}
}

func (m *ArchiveMapperImpl) ToModel(r *archive.Record) *models.ArchiveModel {
	return &models.ArchiveModel{
		ID:            r.ID(),
		SourceTable:   r.Table().String(),
		EntityID:      r.EntityID(),
		EntityData:    datatypes.JSON(r.EntityData()),
		Reason:        r.Reason(),
		DateArchivage: r.DateArchivage(),
		ArchivedBy:    r.ArchivedBy(),
		RestoredAt:    r.RestoredAt(),
		RestoredBy:    r.RestoredBy(),
	}
}

func (m *ArchiveMapperImpl) ToEntity(model *models.ArchiveModel) *archive.Record {
	if model == nil {
		return nil
	}
	return archive.ReconstructRecord(
		model.ID,
		archive.Table(model.SourceTable),
		model.EntityID,
		json.RawMessage(model.EntityData),
		model.Reason,
		model.DateArchivage.UTC(),
		model.ArchivedBy,
		utcPtr(model.RestoredAt),
		model.RestoredBy,
	)
}
