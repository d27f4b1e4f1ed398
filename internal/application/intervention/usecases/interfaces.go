package usecases

import (
	"context"

	"tag/internal/application/intervention/dto"
)

// AnswerNotice tells a requester their question was answered.
type AnswerNotice struct {
	To             string
	RecipientName  string
	InterventionID uint
	Titre          string
}

// AnswerNotifier delivers AnswerNotice messages, typically by e-mail.
type AnswerNotifier interface {
	NotifyAnswer(notice AnswerNotice) error
}

type ListInterventionsExecutor interface {
	Execute(ctx context.Context, query ListInterventionsQuery) (*dto.InterventionListDTO, error)
}

type CreateInterventionExecutor interface {
	Execute(ctx context.Context, cmd CreateInterventionCommand) (*dto.InterventionDTO, error)
}

type GetInterventionExecutor interface {
	Execute(ctx context.Context, query GetInterventionQuery) (*dto.InterventionDTO, error)
}

type AnswerInterventionExecutor interface {
	Execute(ctx context.Context, cmd AnswerInterventionCommand) (*dto.InterventionDTO, error)
}

type RateInterventionExecutor interface {
	Execute(ctx context.Context, cmd RateInterventionCommand) (*dto.InterventionDTO, error)
}
