package models

import (
	"time"

	"tag/internal/shared/constants"
)

type CommuneModel struct {
	ID            uint       `gorm:"primaryKey"`
	Nom           string     `gorm:"size:150;not null;uniqueIndex"`
	Actif         bool       `gorm:"not null;default:true"`
	DateArchivage *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (CommuneModel) TableName() string {
	return constants.TableCommunes
}

// CommuneWithCounts is the scan target of live listings.
type CommuneWithCounts struct {
	CommuneModel
	UserCount         int64 `gorm:"column:user_count"`
	InterventionCount int64 `gorm:"column:intervention_count"`
}
