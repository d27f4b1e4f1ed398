package usecases

import (
	"context"
	"strings"

	"tag/internal/application/common/access"
	"tag/internal/application/intervention/dto"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/goroutine"
	"tag/internal/shared/logger"
	"tag/internal/shared/services/markdown"
)

type AnswerInterventionCommand struct {
	Actor          authorization.Actor
	InterventionID uint
	Reponse        string
	Notes          *string
}

type AnswerInterventionUseCase struct {
	interventionRepo intervention.Repository
	userRepo         user.Repository
	policy           permission.Policy
	renderer         markdown.Renderer
	notifier         AnswerNotifier
	logger           logger.Interface
}

func NewAnswerInterventionUseCase(
	interventionRepo intervention.Repository,
	userRepo user.Repository,
	policy permission.Policy,
	renderer markdown.Renderer,
	notifier AnswerNotifier,
	logger logger.Interface,
) *AnswerInterventionUseCase {
	return &AnswerInterventionUseCase{
		interventionRepo: interventionRepo,
		userRepo:         userRepo,
		policy:           policy,
		renderer:         renderer,
		notifier:         notifier,
		logger:           logger,
	}
}

func (uc *AnswerInterventionUseCase) Execute(ctx context.Context, cmd AnswerInterventionCommand) (*dto.InterventionDTO, error) {
	uc.logger.Infow("executing answer intervention use case",
		"intervention_id", cmd.InterventionID,
		"user_id", cmd.Actor.UserID)

	i, err := loadIntervention(ctx, uc.interventionRepo, uc.logger, cmd.InterventionID)
	if err != nil {
		return nil, err
	}

	if err := access.Require(uc.policy, cmd.Actor, permission.ResourceIntervention, permission.ActionAnswer, i.IsRequestedBy(cmd.Actor.UserID)); err != nil {
		return nil, err
	}

	notes := cmd.Notes
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}
	if err := i.Answer(cmd.Actor.UserID, cmd.Reponse, notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.interventionRepo.SaveAnswer(ctx, i); err != nil {
		uc.logger.Errorw("failed to save answer", "intervention_id", i.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save answer")
	}

	uc.logger.Infow("intervention answered", "intervention_id", i.ID(), "juriste_id", cmd.Actor.UserID)

	uc.notify(i)

	return detailDTO(i, cmd.Actor, uc.renderer, uc.logger), nil
}

// notify mails the requester in the background. Failures are only logged.
func (uc *AnswerInterventionUseCase) notify(i *intervention.Intervention) {
	if uc.notifier == nil {
		return
	}
	interventionID, demandeurID, titre := i.ID(), i.DemandeurID(), i.Titre()

	goroutine.SafeGo(uc.logger, "answer-notification", func() {
		requester, err := uc.userRepo.GetByID(context.Background(), demandeurID)
		if err != nil || requester == nil {
			uc.logger.Warnw("answer notification skipped: requester not found",
				"intervention_id", interventionID, "demandeur_id", demandeurID, "error", err)
			return
		}

		notice := AnswerNotice{
			To:             requester.Email(),
			RecipientName:  requester.FullName(),
			InterventionID: interventionID,
			Titre:          titre,
		}
		if err := uc.notifier.NotifyAnswer(notice); err != nil {
			uc.logger.Warnw("failed to send answer notification",
				"intervention_id", interventionID, "error", err)
		}
	})
}
