package models

import (
	"time"

	"tag/internal/shared/constants"
)

type InterventionModel struct {
	ID            uint    `gorm:"primaryKey"`
	Titre         string  `gorm:"size:255;not null"`
	Description   string  `gorm:"type:text;not null"`
	Reponse       *string `gorm:"type:text"`
	Notes         *string `gorm:"type:text"`
	Satisfaction  *int
	Urgent        bool      `gorm:"not null;default:false"`
	DemandeurID   uint      `gorm:"not null;index"`
	JuristeID     *uint     `gorm:"index"`
	CommuneID     uint      `gorm:"not null;index"`
	ThemeID       uint      `gorm:"not null;index"`
	DateQuestion  time.Time `gorm:"not null;index"`
	DateReponse   *time.Time
	DateArchivage *time.Time `gorm:"index"`

	// Display projections, loaded with Preload only.
	Commune   *CommuneModel `gorm:"foreignKey:CommuneID"`
	Theme     *ThemeModel   `gorm:"foreignKey:ThemeID"`
	Demandeur *UserModel    `gorm:"foreignKey:DemandeurID"`
	Juriste   *UserModel    `gorm:"foreignKey:JuristeID"`
}

func (InterventionModel) TableName() string {
	return constants.TableInterventions
}
