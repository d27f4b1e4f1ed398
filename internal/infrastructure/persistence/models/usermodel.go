package models

import (
	"time"

	"tag/internal/shared/constants"
)

type UserModel struct {
	ID            uint       `gorm:"primaryKey"`
	Nom           string     `gorm:"size:100;not null"`
	Prenom        string     `gorm:"size:100;not null"`
	Email         string     `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash  string     `gorm:"size:255;not null"`
	Role          string     `gorm:"size:20;not null;index"`
	CommuneID     *uint      `gorm:"index"`
	Actif         bool       `gorm:"not null;default:true"`
	DateArchivage *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
