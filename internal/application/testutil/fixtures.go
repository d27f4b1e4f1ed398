package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tag/internal/domain/intervention"
	"tag/internal/domain/user"
	"tag/internal/shared/authorization"
)

// NewIntervention returns a persisted-looking intervention requested by demandeurID.
func NewIntervention(t *testing.T, id, demandeurID uint) *intervention.Intervention {
	t.Helper()
	i, err := intervention.ReconstructIntervention(
		id, "Permis de construire", "Extension d'un garage",
		nil, nil, nil, false,
		demandeurID, nil, 1, 1,
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), nil, nil,
	)
	require.NoError(t, err)
	return i
}

func NewUser(t *testing.T, id uint, role authorization.UserRole, communeID *uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Martin", "Claire", "claire@st-etienne.fr", "hash", role, communeID, true, nil, time.Now().UTC())
	require.NoError(t, err)
	return u
}
