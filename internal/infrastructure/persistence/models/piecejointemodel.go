package models

import (
	"time"

	"tag/internal/shared/constants"
)

type PieceJointeModel struct {
	ID             uint      `gorm:"primaryKey"`
	NomOriginal    string    `gorm:"size:255;not null"`
	NomFichier     string    `gorm:"size:255;not null"`
	Chemin         string    `gorm:"size:500;not null"`
	InterventionID uint      `gorm:"not null;index"`
	DateCreation   time.Time `gorm:"not null"`
}

func (PieceJointeModel) TableName() string {
	return constants.TableAttachments
}
