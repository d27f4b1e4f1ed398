package dto

import (
	"time"

	"tag/internal/domain/attachment"
)

type AttachmentDTO struct {
	ID             uint      `json:"id"`
	NomOriginal    string    `json:"nom_original"`
	NomFichier     string    `json:"nom_fichier"`
	InterventionID uint      `json:"intervention_id"`
	DateCreation   time.Time `json:"date_creation"`
}

type UploadResultDTO struct {
	Message     string          `json:"message"`
	Attachments []AttachmentDTO `json:"attachments"`
}

// DownloadDTO points the transport layer at the file to stream.
type DownloadDTO struct {
	FilePath     string
	OriginalName string
}

func ToAttachmentDTO(a *attachment.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:             a.ID(),
		NomOriginal:    a.NomOriginal(),
		NomFichier:     a.NomFichier(),
		InterventionID: a.InterventionID(),
		DateCreation:   a.DateCreation(),
	}
}

func ToAttachmentDTOs(list []*attachment.Attachment) []AttachmentDTO {
	out := make([]AttachmentDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ToAttachmentDTO(a))
	}
	return out
}
