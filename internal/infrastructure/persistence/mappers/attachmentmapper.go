package mappers

import (
	"tag/internal/domain/attachment"
	"tag/internal/infrastructure/persistence/models"
)

type AttachmentMapper interface {
	ToModel(a *attachment.Attachment) *models.PieceJointeModel
	ToEntity(model *models.PieceJointeModel) (*attachment.Attachment, error)
}

type AttachmentMapperImpl struct{}

func NewAttachmentMapper() AttachmentMapper {
	return &AttachmentMapperImpl{}
}

func (m *AttachmentMapperImpl) ToModel(a *attachment.Attachment) *models.PieceJointeModel {
	return &models.PieceJointeModel{
		ID:             a.ID(),
		NomOriginal:    a.NomOriginal(),
		NomFichier:     a.NomFichier(),
		Chemin:         a.Chemin(),
		InterventionID: a.InterventionID(),
		DateCreation:   a.DateCreation(),
	}
}

func (m *AttachmentMapperImpl) ToEntity(model *models.PieceJointeModel) (*attachment.Attachment, error) {
	if model == nil {
		return nil, nil
	}
	return attachment.ReconstructAttachment(
		model.ID,
		model.NomOriginal,
		model.NomFichier,
		model.Chemin,
		model.InterventionID,
		model.DateCreation.UTC(),
	)
}
