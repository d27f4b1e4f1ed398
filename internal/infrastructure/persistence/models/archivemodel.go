package models

import (
	"time"

	"gorm.io/datatypes"

	"tag/internal/shared/constants"
)

type ArchiveModel struct {
	ID            uint           `gorm:"primaryKey"`
	SourceTable   string         `gorm:"column:table_name;size:50;not null;index:idx_archives_entity,priority:1"`
	EntityID      uint           `gorm:"not null;index:idx_archives_entity,priority:2"`
	EntityData    datatypes.JSON `gorm:"not null"`
	Reason        string         `gorm:"type:text"`
	DateArchivage time.Time      `gorm:"not null;index"`
	ArchivedBy    uint           `gorm:"not null"`
	RestoredAt    *time.Time
	RestoredBy    *uint
}

func (ArchiveModel) TableName() string {
	return constants.TableArchives
}
