package dto

import (
	"tag/internal/domain/commune"
	"tag/internal/domain/theme"
)

type CommuneDTO struct {
	ID                uint   `json:"id"`
	Nom               string `json:"nom"`
	Actif             bool   `json:"actif"`
	UserCount         int64  `json:"user_count"`
	InterventionCount int64  `json:"intervention_count"`
}

type ThemeDTO struct {
	ID                uint   `json:"id"`
	Designation       string `json:"designation"`
	Actif             bool   `json:"actif"`
	InterventionCount int64  `json:"intervention_count"`
}

func ToCommuneDTO(c *commune.Commune) CommuneDTO {
	return CommuneDTO{
		ID:                c.ID(),
		Nom:               c.Nom(),
		Actif:             c.Actif(),
		UserCount:         c.UserCount(),
		InterventionCount: c.InterventionCount(),
	}
}

func ToThemeDTO(t *theme.Theme) ThemeDTO {
	return ThemeDTO{
		ID:                t.ID(),
		Designation:       t.Designation(),
		Actif:             t.Actif(),
		InterventionCount: t.InterventionCount(),
	}
}
