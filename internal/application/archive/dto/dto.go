package dto

import (
	"encoding/json"
	"time"

	"tag/internal/domain/archive"
	"tag/internal/shared/utils"
)

type ArchiveRecordDTO struct {
	ID            uint            `json:"id"`
	TableName     string          `json:"table_name"`
	EntityID      uint            `json:"entity_id"`
	EntityData    json.RawMessage `json:"entity_data"`
	Reason        string          `json:"reason,omitempty"`
	DateArchivage time.Time       `json:"date_archivage"`
	ArchivedBy    uint            `json:"archived_by"`
	RestoredAt    *time.Time      `json:"restored_at,omitempty"`
	RestoredBy    *uint           `json:"restored_by,omitempty"`
}

// ArchiveSummaryDTO is the record as shown in a status answer.
type ArchiveSummaryDTO struct {
	ID            uint            `json:"id"`
	DateArchivage time.Time       `json:"date_archivage"`
	ArchivedBy    uint            `json:"archived_by"`
	EntityData    json.RawMessage `json:"entity_data"`
}

type ArchiveStatusDTO struct {
	Archived bool               `json:"archived"`
	Archive  *ArchiveSummaryDTO `json:"archive,omitempty"`
}

// RestoredEntityDTO is the entity as it reads once live again.
type RestoredEntityDTO struct {
	TableName string          `json:"table_name"`
	EntityID  uint            `json:"entity_id"`
	Entity    json.RawMessage `json:"entity"`
}

type ArchiveListDTO struct {
	Archives   []ArchiveRecordDTO `json:"archives"`
	Pagination utils.PageInfo     `json:"pagination"`
}

func ToArchiveRecordDTO(r *archive.Record) ArchiveRecordDTO {
	return ArchiveRecordDTO{
		ID:            r.ID(),
		TableName:     r.Table().String(),
		EntityID:      r.EntityID(),
		EntityData:    r.EntityData(),
		Reason:        r.Reason(),
		DateArchivage: r.DateArchivage(),
		ArchivedBy:    r.ArchivedBy(),
		RestoredAt:    r.RestoredAt(),
		RestoredBy:    r.RestoredBy(),
	}
}

func ToArchiveSummaryDTO(r *archive.Record) *ArchiveSummaryDTO {
	return &ArchiveSummaryDTO{
		ID:            r.ID(),
		DateArchivage: r.DateArchivage(),
		ArchivedBy:    r.ArchivedBy(),
		EntityData:    r.EntityData(),
	}
}
