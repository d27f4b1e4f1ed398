package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tag/internal/domain/archive"
	"tag/internal/infrastructure/persistence/models"
	"tag/internal/shared/db"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

type partySnapshot struct {
	ID     uint   `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom,omitempty"`
}

type interventionSnapshot struct {
	ID            uint           `json:"id"`
	Titre         string         `json:"titre"`
	Description   string         `json:"description"`
	Reponse       *string        `json:"reponse"`
	Notes         *string        `json:"notes"`
	Satisfaction  *int           `json:"satisfaction"`
	Urgent        bool           `json:"urgent"`
	DemandeurID   uint           `json:"demandeur_id"`
	JuristeID     *uint          `json:"juriste_id"`
	CommuneID     uint           `json:"commune_id"`
	ThemeID       uint           `json:"theme_id"`
	DateQuestion  time.Time      `json:"date_question"`
	DateReponse   *time.Time     `json:"date_reponse"`
	DateArchivage *time.Time     `json:"date_archivage"`
	Commune       *partySnapshot `json:"commune,omitempty"`
	Theme         *partySnapshot `json:"theme,omitempty"`
	Demandeur     *partySnapshot `json:"demandeur,omitempty"`
	Juriste       *partySnapshot `json:"juriste,omitempty"`
}

type userSnapshot struct {
	ID            uint           `json:"id"`
	Nom           string         `json:"nom"`
	Prenom        string         `json:"prenom"`
	Email         string         `json:"email"`
	Role          string         `json:"role"`
	CommuneID     *uint          `json:"commune_id"`
	Actif         bool           `json:"actif"`
	DateArchivage *time.Time     `json:"date_archivage"`
	CreatedAt     time.Time      `json:"created_at"`
	Commune       *partySnapshot `json:"commune,omitempty"`
}

type communeSnapshot struct {
	ID                uint       `json:"id"`
	Nom               string     `json:"nom"`
	Actif             bool       `json:"actif"`
	DateArchivage     *time.Time `json:"date_archivage"`
	CreatedAt         time.Time  `json:"created_at"`
	UserCount         int64      `json:"user_count"`
	InterventionCount int64      `json:"intervention_count"`
}

type themeSnapshot struct {
	ID                uint       `json:"id"`
	Designation       string     `json:"designation"`
	Actif             bool       `json:"actif"`
	DateArchivage     *time.Time `json:"date_archivage"`
	CreatedAt         time.Time  `json:"created_at"`
	InterventionCount int64      `json:"intervention_count"`
}

// ArchivableEntityStore snapshots and hides rows of the archivable tables.
// The password hash never enters a user snapshot.
type ArchivableEntityStore struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewArchivableEntityStore(db *gorm.DB, logger logger.Interface) archive.EntityStore {
	return &ArchivableEntityStore{db: db, logger: logger}
}

func (s *ArchivableEntityStore) Snapshot(ctx context.Context, table archive.Table, id uint) (json.RawMessage, *time.Time, error) {
	tx := db.GetTxFromContext(ctx, s.db)

	var (
		snapshot   any
		archivedAt *time.Time
		err        error
	)

	switch table {
	case archive.TableInterventions:
		snapshot, archivedAt, err = s.interventionSnapshot(tx, id)
	case archive.TableUsers:
		snapshot, archivedAt, err = s.userSnapshot(tx, id)
	case archive.TableCommunes:
		snapshot, archivedAt, err = s.communeSnapshot(tx, id)
	case archive.TableThemes:
		snapshot, archivedAt, err = s.themeSnapshot(tx, id)
	default:
		return nil, nil, errors.NewValidationError("Table non archivable", table.String())
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, errors.NewNotFoundError("Entité introuvable", fmt.Sprintf("%s #%d", table, id))
		}
		s.logger.Errorw("failed to snapshot entity", "table", table, "id", id, "error", err)
		return nil, nil, fmt.Errorf("failed to snapshot %s %d: %w", table, id, err)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode %s snapshot: %w", table, err)
	}
	return data, archivedAt, nil
}

// SetArchivedAt writes only date_archivage so the row's other columns,
// updated_at included, stay untouched across an archive/restore round trip.
// Stamping is conditional on the row being live: of two concurrent archive
// transactions only one matches, the other gets AlreadyArchived and rolls
// back its archive record.
func (s *ArchivableEntityStore) SetArchivedAt(ctx context.Context, table archive.Table, id uint, at *time.Time) error {
	if !table.IsValid() {
		return errors.NewValidationError("Table non archivable", table.String())
	}

	tx := db.GetTxFromContext(ctx, s.db)

	query := tx.Table(table.String()).Where("id = ?", id)
	var value any
	if at != nil {
		value = at.UTC()
		query = query.Where("date_archivage IS NULL")
	}

	result := query.UpdateColumn("date_archivage", value)
	if result.Error != nil {
		s.logger.Errorw("failed to set archive stamp", "table", table, "id", id, "error", result.Error)
		return fmt.Errorf("failed to update %s %d: %w", table, id, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if at != nil {
		var count int64
		if err := tx.Table(table.String()).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check %s %d: %w", table, id, err)
		}
		if count > 0 {
			return errors.NewAlreadyArchivedError("Cette entité est déjà archivée", fmt.Sprintf("%s #%d", table, id))
		}
	}
	return errors.NewNotFoundError("Entité introuvable", fmt.Sprintf("%s #%d", table, id))
}

func (s *ArchivableEntityStore) interventionSnapshot(tx *gorm.DB, id uint) (any, *time.Time, error) {
	var m models.InterventionModel
	if err := tx.Preload("Commune").Preload("Theme").Preload("Demandeur").Preload("Juriste").First(&m, id).Error; err != nil {
		return nil, nil, err
	}

	snap := interventionSnapshot{
		ID:            m.ID,
		Titre:         m.Titre,
		Description:   m.Description,
		Reponse:       m.Reponse,
		Notes:         m.Notes,
		Satisfaction:  m.Satisfaction,
		Urgent:        m.Urgent,
		DemandeurID:   m.DemandeurID,
		JuristeID:     m.JuristeID,
		CommuneID:     m.CommuneID,
		ThemeID:       m.ThemeID,
		DateQuestion:  m.DateQuestion.UTC(),
		DateReponse:   m.DateReponse,
		DateArchivage: m.DateArchivage,
	}
	if m.Commune != nil {
		snap.Commune = &partySnapshot{ID: m.Commune.ID, Nom: m.Commune.Nom}
	}
	if m.Theme != nil {
		snap.Theme = &partySnapshot{ID: m.Theme.ID, Nom: m.Theme.Designation}
	}
	if m.Demandeur != nil {
		snap.Demandeur = &partySnapshot{ID: m.Demandeur.ID, Nom: m.Demandeur.Nom, Prenom: m.Demandeur.Prenom}
	}
	if m.Juriste != nil {
		snap.Juriste = &partySnapshot{ID: m.Juriste.ID, Nom: m.Juriste.Nom, Prenom: m.Juriste.Prenom}
	}
	return snap, m.DateArchivage, nil
}

func (s *ArchivableEntityStore) userSnapshot(tx *gorm.DB, id uint) (any, *time.Time, error) {
	var m models.UserModel
	if err := tx.First(&m, id).Error; err != nil {
		return nil, nil, err
	}

	snap := userSnapshot{
		ID:            m.ID,
		Nom:           m.Nom,
		Prenom:        m.Prenom,
		Email:         m.Email,
		Role:          m.Role,
		CommuneID:     m.CommuneID,
		Actif:         m.Actif,
		DateArchivage: m.DateArchivage,
		CreatedAt:     m.CreatedAt.UTC(),
	}
	if m.CommuneID != nil {
		var c models.CommuneModel
		err := tx.Select("id", "nom").First(&c, *m.CommuneID).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, nil, err
		}
		if err == nil {
			snap.Commune = &partySnapshot{ID: c.ID, Nom: c.Nom}
		}
	}
	return snap, m.DateArchivage, nil
}

func (s *ArchivableEntityStore) communeSnapshot(tx *gorm.DB, id uint) (any, *time.Time, error) {
	var row models.CommuneWithCounts
	err := communeCountsQuery(tx).Where("communes.id = ?", id).Take(&row).Error
	if err != nil {
		return nil, nil, err
	}

	return communeSnapshot{
		ID:                row.ID,
		Nom:               row.Nom,
		Actif:             row.Actif,
		DateArchivage:     row.DateArchivage,
		CreatedAt:         row.CreatedAt.UTC(),
		UserCount:         row.UserCount,
		InterventionCount: row.InterventionCount,
	}, row.DateArchivage, nil
}

func (s *ArchivableEntityStore) themeSnapshot(tx *gorm.DB, id uint) (any, *time.Time, error) {
	var row models.ThemeWithCounts
	err := themeCountsQuery(tx).Where("themes.id = ?", id).Take(&row).Error
	if err != nil {
		return nil, nil, err
	}

	return themeSnapshot{
		ID:                row.ID,
		Designation:       row.Designation,
		Actif:             row.Actif,
		DateArchivage:     row.DateArchivage,
		CreatedAt:         row.CreatedAt.UTC(),
		InterventionCount: row.InterventionCount,
	}, row.DateArchivage, nil
}
