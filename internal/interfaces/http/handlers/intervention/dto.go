package intervention

import (
	"tag/internal/application/intervention/usecases"
	"tag/internal/shared/authorization"
)

type CreateInterventionRequest struct {
	Titre       string `json:"titre" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Urgent      bool   `json:"urgent"`
	ThemeID     uint   `json:"theme_id" binding:"required"`
}

func (r *CreateInterventionRequest) ToCommand(actor authorization.Actor) usecases.CreateInterventionCommand {
	return usecases.CreateInterventionCommand{
		Actor:       actor,
		Titre:       r.Titre,
		Description: r.Description,
		Urgent:      r.Urgent,
		ThemeID:     r.ThemeID,
	}
}

type AnswerInterventionRequest struct {
	Reponse string  `json:"reponse" binding:"required"`
	Notes   *string `json:"notes"`
}

// Satisfaction is range-checked by the domain so the error carries the
// French message; binding only requires presence.
type RateInterventionRequest struct {
	Satisfaction *int `json:"satisfaction" binding:"required"`
}
