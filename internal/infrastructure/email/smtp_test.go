package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tag/internal/shared/config"
)

func TestNewSender(t *testing.T) {
	_, isNoop := NewSender(config.EmailConfig{}, "").(NoopEmailService)
	assert.True(t, isNoop)

	s := NewSender(config.EmailConfig{SMTPHost: "mail.local", SMTPPort: 1025, FromAddress: "noreply@tag.local"}, "http://tag.local")
	smtp, ok := s.(*SMTPEmailService)
	assert.True(t, ok)
	assert.Equal(t, "http://tag.local", smtp.baseURL)
}

func TestNoopEmailService(t *testing.T) {
	assert.NoError(t, NoopEmailService{}.SendAnswerNotification(AnswerMessage{To: "a@b.fr"}))
}
