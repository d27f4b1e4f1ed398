package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tag/internal/domain/intervention"
	"tag/internal/infrastructure/persistence/mappers"
	"tag/internal/infrastructure/persistence/models"
	"tag/internal/shared/db"
	"tag/internal/shared/logger"
)

const interventionsTable = "interventions"

// searchClause matches one lower-cased token against every searchable column.
// Commune and theme names go through subqueries so Count needs no join.
const searchClause = `(LOWER(interventions.titre) LIKE ? ESCAPE '!'` +
	` OR LOWER(interventions.description) LIKE ? ESCAPE '!'` +
	` OR LOWER(COALESCE(interventions.reponse, '')) LIKE ? ESCAPE '!'` +
	` OR LOWER(COALESCE(interventions.notes, '')) LIKE ? ESCAPE '!'` +
	` OR interventions.commune_id IN (SELECT communes.id FROM communes WHERE LOWER(communes.nom) LIKE ? ESCAPE '!')` +
	` OR interventions.theme_id IN (SELECT themes.id FROM themes WHERE LOWER(themes.designation) LIKE ? ESCAPE '!'))`

type InterventionRepository struct {
	db     *gorm.DB
	mapper mappers.InterventionMapper
	logger logger.Interface
}

func NewInterventionRepository(db *gorm.DB, logger logger.Interface) intervention.Repository {
	return &InterventionRepository{
		db:     db,
		mapper: mappers.NewInterventionMapper(),
		logger: logger,
	}
}

func (r *InterventionRepository) Create(ctx context.Context, i *intervention.Intervention) error {
	model := r.mapper.ToModel(i)

	if err := db.GetTxFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create intervention", "error", err)
		return fmt.Errorf("failed to create intervention: %w", err)
	}

	if err := i.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set intervention ID: %w", err)
	}

	r.logger.Infow("intervention created", "id", model.ID, "demandeur_id", model.DemandeurID)
	return nil
}

// SaveAnswer persists the answer fields. The question itself is immutable
// once submitted and the satisfaction belongs to SaveRating.
func (r *InterventionRepository) SaveAnswer(ctx context.Context, i *intervention.Intervention) error {
	model := r.mapper.ToModel(i)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InterventionModel{ID: model.ID}).
		Select("reponse", "notes", "juriste_id", "date_reponse").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to save answer", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to save answer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("intervention not found")
	}

	return nil
}

// SaveRating stores the satisfaction only while the row has none, so a
// concurrent rating or answer cannot overwrite it.
func (r *InterventionRepository) SaveRating(ctx context.Context, i *intervention.Intervention) error {
	if i.Satisfaction() == nil {
		return fmt.Errorf("intervention %d has no satisfaction to save", i.ID())
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InterventionModel{ID: i.ID()}).
		Where("satisfaction IS NULL").
		UpdateColumn("satisfaction", *i.Satisfaction())
	if result.Error != nil {
		r.logger.Errorw("failed to save satisfaction", "id", i.ID(), "error", result.Error)
		return fmt.Errorf("failed to save satisfaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return intervention.ErrAlreadyRated
	}

	return nil
}

func (r *InterventionRepository) GetByID(ctx context.Context, id uint) (*intervention.Intervention, error) {
	var model models.InterventionModel

	query := preloadRelations(db.GetTxFromContext(ctx, r.db), intervention.DefaultInclude())
	if err := query.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get intervention", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get intervention: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InterventionRepository) Count(ctx context.Context, filter intervention.Filter) (int64, error) {
	var total int64

	query := db.GetTxFromContext(ctx, r.db).Model(&models.InterventionModel{})
	if err := applyInterventionFilter(query, filter).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count interventions", "error", err)
		return 0, fmt.Errorf("failed to count interventions: %w", err)
	}

	return total, nil
}

func (r *InterventionRepository) List(ctx context.Context, filter intervention.Filter, opts intervention.ListOptions) ([]*intervention.Intervention, error) {
	var list []*models.InterventionModel

	query := db.GetTxFromContext(ctx, r.db).Model(&models.InterventionModel{})
	query = applyInterventionFilter(query, filter)
	query = applyInterventionOrder(query, opts.Order)
	query = preloadRelations(query, opts.Include).Scopes(db.Paginate(opts.Offset, opts.Limit))

	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list interventions", "error", err)
		return nil, fmt.Errorf("failed to list interventions: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func applyInterventionFilter(query *gorm.DB, f intervention.Filter) *gorm.DB {
	if f.Archived() {
		query = query.Scopes(db.ArchivedWithAlias(interventionsTable))
	} else {
		query = query.Scopes(db.LiveWithAlias(interventionsTable))
	}

	for _, token := range f.SearchTokens() {
		p := db.ContainsPattern(token)
		query = query.Where(searchClause, p, p, p, p, p, p)
	}

	if s := f.Status(); s != nil {
		switch *s {
		case intervention.StatusPending:
			query = query.Where("interventions.reponse IS NULL")
		case intervention.StatusAnswered:
			query = query.Where("interventions.reponse IS NOT NULL AND interventions.satisfaction IS NULL")
		case intervention.StatusClosed:
			query = query.Where("interventions.reponse IS NOT NULL AND interventions.satisfaction IS NOT NULL")
		}
	}

	if id := f.ThemeID(); id != nil {
		query = query.Where("interventions.theme_id = ?", *id)
	}
	if id := f.CommuneID(); id != nil {
		query = query.Where("interventions.commune_id = ?", *id)
	}
	if id := f.DemandeurID(); id != nil {
		query = query.Where("interventions.demandeur_id = ?", *id)
	}

	query = applyDateRange(query, "interventions.date_question", f.QuestionDate())
	query = applyDateRange(query, "interventions.date_archivage", f.ArchiveDate())

	return query
}

func applyDateRange(query *gorm.DB, column string, r intervention.DateRange) *gorm.DB {
	if r.From != nil {
		query = query.Where(column+" >= ?", r.From.UTC())
	}
	if r.To != nil {
		query = query.Where(column+" <= ?", r.To.UTC())
	}
	return query
}

func applyInterventionOrder(query *gorm.DB, order intervention.Order) *gorm.DB {
	if !order.Field.IsValid() {
		order = intervention.DefaultOrder()
	}

	query = query.Order(clause.OrderByColumn{
		Column: clause.Column{Table: interventionsTable, Name: string(order.Field)},
		Desc:   order.Desc,
	})
	// id breaks ties so pages never overlap
	if order.Field != intervention.OrderByID {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Table: interventionsTable, Name: "id"},
			Desc:   order.Desc,
		})
	}
	return query
}

func preloadRelations(query *gorm.DB, inc intervention.Include) *gorm.DB {
	if inc.Commune {
		query = query.Preload("Commune", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "nom")
		})
	}
	if inc.Theme {
		query = query.Preload("Theme", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "designation")
		})
	}
	if inc.Demandeur {
		query = query.Preload("Demandeur", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "nom", "prenom", "actif")
		})
	}
	if inc.Juriste {
		query = query.Preload("Juriste", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "nom", "prenom", "actif")
		})
	}
	return query
}
