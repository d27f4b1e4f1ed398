package models

import (
	"time"

	"tag/internal/shared/constants"
)

type ThemeModel struct {
	ID            uint       `gorm:"primaryKey"`
	Designation   string     `gorm:"size:150;not null;uniqueIndex"`
	Actif         bool       `gorm:"not null;default:true"`
	DateArchivage *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (ThemeModel) TableName() string {
	return constants.TableThemes
}

type ThemeWithCounts struct {
	ThemeModel
	InterventionCount int64 `gorm:"column:intervention_count"`
}
