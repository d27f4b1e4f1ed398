package mappers

import (
	"tag/internal/domain/commune"
	"tag/internal/domain/theme"
	"tag/internal/infrastructure/persistence/models"
)

func CommuneToModel(c *commune.Commune) *models.CommuneModel {
	return &models.CommuneModel{
		ID:            c.ID(),
		Nom:           c.Nom(),
		Actif:         c.Actif(),
		DateArchivage: c.DateArchivage(),
	}
}

func CommuneToEntity(row *models.CommuneWithCounts) *commune.Commune {
	return commune.ReconstructCommune(row.ID, row.Nom, row.Actif, utcPtr(row.DateArchivage), row.UserCount, row.InterventionCount)
}

func ThemeToModel(t *theme.Theme) *models.ThemeModel {
	return &models.ThemeModel{
		ID:            t.ID(),
		Designation:   t.Designation(),
		Actif:         t.Actif(),
		DateArchivage: t.DateArchivage(),
	}
}

func ThemeToEntity(row *models.ThemeWithCounts) *theme.Theme {
	return theme.ReconstructTheme(row.ID, row.Designation, row.Actif, utcPtr(row.DateArchivage), row.InterventionCount)
}
