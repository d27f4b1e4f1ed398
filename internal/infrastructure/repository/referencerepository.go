package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tag/internal/domain/commune"
	"tag/internal/domain/theme"
	"tag/internal/infrastructure/persistence/mappers"
	"tag/internal/infrastructure/persistence/models"
	"tag/internal/shared/db"
	"tag/internal/shared/logger"
)

// Counts only consider live rows.
const (
	communeCountsSelect = `communes.*,` +
		` (SELECT COUNT(*) FROM users WHERE users.commune_id = communes.id AND users.date_archivage IS NULL) AS user_count,` +
		` (SELECT COUNT(*) FROM interventions WHERE interventions.commune_id = communes.id AND interventions.date_archivage IS NULL) AS intervention_count`
	themeCountsSelect = `themes.*,` +
		` (SELECT COUNT(*) FROM interventions WHERE interventions.theme_id = themes.id AND interventions.date_archivage IS NULL) AS intervention_count`
)

func communeCountsQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.CommuneModel{}).Select(communeCountsSelect)
}

func themeCountsQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.ThemeModel{}).Select(themeCountsSelect)
}

type CommuneRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCommuneRepository(db *gorm.DB, logger logger.Interface) commune.Repository {
	return &CommuneRepository{db: db, logger: logger}
}

func (r *CommuneRepository) Create(ctx context.Context, c *commune.Commune) error {
	model := mappers.CommuneToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create commune", "nom", model.Nom, "error", err)
		return fmt.Errorf("failed to create commune: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CommuneRepository) Update(ctx context.Context, c *commune.Commune) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CommuneModel{ID: c.ID()}).
		Updates(map[string]interface{}{"nom": c.Nom(), "actif": c.Actif()})
	if result.Error != nil {
		r.logger.Errorw("failed to update commune", "id", c.ID(), "error", result.Error)
		return fmt.Errorf("failed to update commune: %w", result.Error)
	}
	return nil
}

func (r *CommuneRepository) GetByID(ctx context.Context, id uint) (*commune.Commune, error) {
	var row models.CommuneWithCounts

	err := communeCountsQuery(db.GetTxFromContext(ctx, r.db)).
		Scopes(db.LiveWithAlias("communes")).
		Where("communes.id = ?", id).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get commune", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get commune: %w", err)
	}
	return mappers.CommuneToEntity(&row), nil
}

func (r *CommuneRepository) ExistsByNom(ctx context.Context, nom string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.CommuneModel{}).Where("LOWER(nom) = LOWER(?)", nom).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check commune name: %w", err)
	}
	return count > 0, nil
}

func (r *CommuneRepository) ListLive(ctx context.Context) ([]*commune.Commune, error) {
	var rows []*models.CommuneWithCounts

	err := communeCountsQuery(db.GetTxFromContext(ctx, r.db)).
		Scopes(db.LiveWithAlias("communes")).
		Order("communes.nom ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list communes", "error", err)
		return nil, fmt.Errorf("failed to list communes: %w", err)
	}

	out := make([]*commune.Commune, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.CommuneToEntity(row))
	}
	return out, nil
}

type ThemeRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewThemeRepository(db *gorm.DB, logger logger.Interface) theme.Repository {
	return &ThemeRepository{db: db, logger: logger}
}

func (r *ThemeRepository) Create(ctx context.Context, t *theme.Theme) error {
	model := mappers.ThemeToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create theme", "designation", model.Designation, "error", err)
		return fmt.Errorf("failed to create theme: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *ThemeRepository) Update(ctx context.Context, t *theme.Theme) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ThemeModel{ID: t.ID()}).
		Updates(map[string]interface{}{"designation": t.Designation(), "actif": t.Actif()})
	if result.Error != nil {
		r.logger.Errorw("failed to update theme", "id", t.ID(), "error", result.Error)
		return fmt.Errorf("failed to update theme: %w", result.Error)
	}
	return nil
}

func (r *ThemeRepository) GetByID(ctx context.Context, id uint) (*theme.Theme, error) {
	var row models.ThemeWithCounts

	err := themeCountsQuery(db.GetTxFromContext(ctx, r.db)).
		Scopes(db.LiveWithAlias("themes")).
		Where("themes.id = ?", id).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get theme", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return mappers.ThemeToEntity(&row), nil
}

func (r *ThemeRepository) ExistsByDesignation(ctx context.Context, designation string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ThemeModel{}).Where("LOWER(designation) = LOWER(?)", designation).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check theme designation: %w", err)
	}
	return count > 0, nil
}

func (r *ThemeRepository) ListLive(ctx context.Context) ([]*theme.Theme, error) {
	var rows []*models.ThemeWithCounts

	err := themeCountsQuery(db.GetTxFromContext(ctx, r.db)).
		Scopes(db.LiveWithAlias("themes")).
		Order("themes.designation ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list themes", "error", err)
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	out := make([]*theme.Theme, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.ThemeToEntity(row))
	}
	return out, nil
}
