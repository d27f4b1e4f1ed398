package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag/internal/application/intervention/usecases"
	"tag/internal/infrastructure/auth"
	"tag/internal/infrastructure/email"
	"tag/internal/shared/authorization"
)

type recordingSender struct {
	got []email.AnswerMessage
}

func (s *recordingSender) SendAnswerNotification(msg email.AnswerMessage) error {
	s.got = append(s.got, msg)
	return nil
}

func TestAnswerNotifierAdapter(t *testing.T) {
	sender := &recordingSender{}
	adapter := NewAnswerNotifierAdapter(sender)

	require.NoError(t, adapter.NotifyAnswer(usecases.AnswerNotice{
		To:             "claire@st-etienne.fr",
		RecipientName:  "Claire Martin",
		InterventionID: 12,
		Titre:          "Permis de construire",
	}))

	require.Len(t, sender.got, 1)
	assert.Equal(t, "claire@st-etienne.fr", sender.got[0].To)
	assert.Equal(t, uint(12), sender.got[0].InterventionID)
}

func TestTokenIssuerAdapter(t *testing.T) {
	jwt := auth.NewJWTService("test-secret", 60)
	adapter := NewTokenIssuerAdapter(jwt)

	token, err := adapter.Issue(7, authorization.RoleJuriste)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := jwt.Verify(token.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, authorization.RoleJuriste, claims.Role)
}
