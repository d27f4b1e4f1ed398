package adapters

import (
	"tag/internal/application/intervention/usecases"
	"tag/internal/infrastructure/email"
)

// AnswerNotifierAdapter adapts email.Sender to usecases.AnswerNotifier.
type AnswerNotifierAdapter struct {
	sender email.Sender
}

func NewAnswerNotifierAdapter(sender email.Sender) *AnswerNotifierAdapter {
	return &AnswerNotifierAdapter{sender: sender}
}

func (a *AnswerNotifierAdapter) NotifyAnswer(notice usecases.AnswerNotice) error {
	return a.sender.SendAnswerNotification(email.AnswerMessage{
		To:             notice.To,
		RecipientName:  notice.RecipientName,
		InterventionID: notice.InterventionID,
		Titre:          notice.Titre,
	})
}
