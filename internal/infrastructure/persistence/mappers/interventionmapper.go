package mappers

import (
	"fmt"

	"tag/internal/domain/intervention"
	"tag/internal/infrastructure/persistence/models"
)

// InterventionMapper converts between intervention entities and models.
type InterventionMapper interface {
	ToModel(i *intervention.Intervention) *models.InterventionModel
	ToEntity(model *models.InterventionModel) (*intervention.Intervention, error)
	ToEntities(list []*models.InterventionModel) ([]*intervention.Intervention, error)
}

type InterventionMapperImpl struct{}

func NewInterventionMapper() InterventionMapper {
	return &InterventionMapperImpl{}
}

func (m *InterventionMapperImpl) ToModel(i *intervention.Intervention) *models.InterventionModel {
	return &models.InterventionModel{
		ID:            i.ID(),
		Titre:         i.Titre(),
		Description:   i.Description(),
		Reponse:       i.Reponse(),
		Notes:         i.Notes(),
		Satisfaction:  i.Satisfaction(),
		Urgent:        i.Urgent(),
		DemandeurID:   i.DemandeurID(),
		JuristeID:     i.JuristeID(),
		CommuneID:     i.CommuneID(),
		ThemeID:       i.ThemeID(),
		DateQuestion:  i.DateQuestion(),
		DateReponse:   i.DateReponse(),
		DateArchivage: i.DateArchivage(),
	}
}

func (m *InterventionMapperImpl) ToEntity(model *models.InterventionModel) (*intervention.Intervention, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := intervention.ReconstructIntervention(
		model.ID,
		model.Titre,
		model.Description,
		model.Reponse,
		model.Notes,
		model.Satisfaction,
		model.Urgent,
		model.DemandeurID,
		model.JuristeID,
		model.CommuneID,
		model.ThemeID,
		model.DateQuestion.UTC(),
		utcPtr(model.DateReponse),
		utcPtr(model.DateArchivage),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct intervention %d: %w", model.ID, err)
	}

	entity.AttachRelations(
		communeParty(model.Commune),
		themeParty(model.Theme),
		userParty(model.Demandeur),
		userParty(model.Juriste),
	)
	return entity, nil
}

func (m *InterventionMapperImpl) ToEntities(list []*models.InterventionModel) ([]*intervention.Intervention, error) {
	out := make([]*intervention.Intervention, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func communeParty(c *models.CommuneModel) *intervention.Party {
	if c == nil {
		return nil
	}
	return &intervention.Party{ID: c.ID, Name: c.Nom}
}

func themeParty(t *models.ThemeModel) *intervention.Party {
	if t == nil {
		return nil
	}
	return &intervention.Party{ID: t.ID, Name: t.Designation}
}

func userParty(u *models.UserModel) *intervention.Party {
	if u == nil {
		return nil
	}
	actif := u.Actif
	return &intervention.Party{ID: u.ID, Name: u.Nom, Prenom: u.Prenom, Actif: &actif}
}
