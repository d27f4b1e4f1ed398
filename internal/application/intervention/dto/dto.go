package dto

import (
	"time"

	commondto "tag/internal/application/common/dto"
	"tag/internal/domain/intervention"
	"tag/internal/shared/utils"
)

// InterventionQuery carries the listing query string as received.
type InterventionQuery struct {
	Search             string `form:"search"`
	Status             string `form:"status"`
	Theme              string `form:"theme"`
	Commune            string `form:"commune"`
	DateDebut          string `form:"dateDebut"`
	DateFin            string `form:"dateFin"`
	DateQuestionDebut  string `form:"dateQuestionDebut"`
	DateQuestionFin    string `form:"dateQuestionFin"`
	DateArchivageDebut string `form:"dateArchivageDebut"`
	DateArchivageFin   string `form:"dateArchivageFin"`
	Page               string `form:"page"`
	Limit              string `form:"limit"`
	Sort               string `form:"sort"`
	Order              string `form:"order"`
}

type InterventionDTO struct {
	ID            uint                     `json:"id"`
	Titre         string                   `json:"titre"`
	Description   string                   `json:"description"`
	Reponse       *string                  `json:"reponse"`
	ReponseHTML   string                   `json:"reponse_html,omitempty"`
	Notes         *string                  `json:"notes,omitempty"`
	Satisfaction  *int                     `json:"satisfaction"`
	Urgent        bool                     `json:"urgent"`
	Status        string                   `json:"status"`
	DemandeurID   uint                     `json:"demandeur_id"`
	JuristeID     *uint                    `json:"juriste_id"`
	CommuneID     uint                     `json:"commune_id"`
	ThemeID       uint                     `json:"theme_id"`
	DateQuestion  time.Time                `json:"date_question"`
	DateReponse   *time.Time               `json:"date_reponse"`
	DateArchivage *time.Time               `json:"date_archivage"`
	Commune       *commondto.CommuneRefDTO `json:"commune,omitempty"`
	Theme         *commondto.ThemeRefDTO   `json:"theme,omitempty"`
	Demandeur     *commondto.PersonRefDTO  `json:"demandeur,omitempty"`
	Juriste       *commondto.PersonRefDTO  `json:"juriste,omitempty"`
}

type InterventionListDTO struct {
	Interventions []InterventionDTO `json:"interventions"`
	Pagination    utils.PageInfo    `json:"pagination"`
}

// ToInterventionDTO maps an intervention. Internal notes are only carried
// when showNotes is set.
func ToInterventionDTO(i *intervention.Intervention, showNotes bool) InterventionDTO {
	d := InterventionDTO{
		ID:            i.ID(),
		Titre:         i.Titre(),
		Description:   i.Description(),
		Reponse:       i.Reponse(),
		Satisfaction:  i.Satisfaction(),
		Urgent:        i.Urgent(),
		Status:        i.Status().String(),
		DemandeurID:   i.DemandeurID(),
		JuristeID:     i.JuristeID(),
		CommuneID:     i.CommuneID(),
		ThemeID:       i.ThemeID(),
		DateQuestion:  i.DateQuestion(),
		DateReponse:   i.DateReponse(),
		DateArchivage: i.DateArchivage(),
	}
	if showNotes {
		d.Notes = i.Notes()
	}

	if c := i.Commune(); c != nil {
		d.Commune = &commondto.CommuneRefDTO{ID: c.ID, Nom: c.Name}
	}
	if t := i.Theme(); t != nil {
		d.Theme = &commondto.ThemeRefDTO{ID: t.ID, Designation: t.Name}
	}
	d.Demandeur = toPersonRef(i.Demandeur())
	d.Juriste = toPersonRef(i.Juriste())

	return d
}

func toPersonRef(p *intervention.Party) *commondto.PersonRefDTO {
	if p == nil {
		return nil
	}
	ref := &commondto.PersonRefDTO{ID: p.ID, Nom: p.Name, Prenom: p.Prenom}
	if p.Actif != nil {
		ref.Actif = *p.Actif
	}
	return ref
}

func ToInterventionDTOs(list []*intervention.Intervention, showNotes bool) []InterventionDTO {
	out := make([]InterventionDTO, 0, len(list))
	for _, i := range list {
		out = append(out, ToInterventionDTO(i, showNotes))
	}
	return out
}
