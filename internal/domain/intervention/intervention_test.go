package intervention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidIntervention(t *testing.T) *Intervention {
	t.Helper()
	i, err := NewIntervention("Permis de construire", "Délai d'instruction ?", false, 10, 3, 4)
	require.NoError(t, err)
	return i
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name         string
		reponse      *string
		satisfaction *int
		want         Status
	}{
		{"no answer", nil, nil, StatusPending},
		{"answered without rating", strPtr("oui"), nil, StatusAnswered},
		{"answered and rated", strPtr("oui"), intPtr(4), StatusClosed},
		{"rating without answer stays pending", nil, intPtr(4), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.reponse, tt.satisfaction)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	s, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = ParseStatusFilter("all")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = ParseStatusFilter("repondu")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, StatusAnswered, *s)

	_, err = ParseStatusFilter("closed")
	assert.Error(t, err)
}

func TestNewIntervention_Validation(t *testing.T) {
	tests := []struct {
		name        string
		titre       string
		description string
		demandeur   uint
		commune     uint
		theme       uint
	}{
		{"empty titre", "  ", "desc", 1, 1, 1},
		{"empty description", "titre", "", 1, 1, 1},
		{"missing demandeur", "titre", "desc", 0, 1, 1},
		{"missing commune", "titre", "desc", 1, 0, 1},
		{"missing theme", "titre", "desc", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntervention(tt.titre, tt.description, false, tt.demandeur, tt.commune, tt.theme)
			assert.Error(t, err)
		})
	}
}

func TestIntervention_Lifecycle(t *testing.T) {
	i := newValidIntervention(t)
	assert.Equal(t, StatusPending, i.Status())

	// rating before an answer is refused
	assert.Error(t, i.Rate(3))

	require.NoError(t, i.Answer(7, "  Oui, sous conditions.  ", nil))
	assert.Equal(t, StatusAnswered, i.Status())
	assert.Equal(t, "Oui, sous conditions.", *i.Reponse())
	require.NotNil(t, i.JuristeID())
	assert.Equal(t, uint(7), *i.JuristeID())
	assert.NotNil(t, i.DateReponse())

	assert.Error(t, i.Rate(0))
	assert.Error(t, i.Rate(6))
	require.NoError(t, i.Rate(5))
	assert.Equal(t, StatusClosed, i.Status())

	// rating is accepted once
	assert.Error(t, i.Rate(4))

	// a second answer keeps the rating
	require.NoError(t, i.Answer(7, "Précision", nil))
	assert.Equal(t, StatusClosed, i.Status())
}

func TestIntervention_ArchivedIsReadOnly(t *testing.T) {
	archivedAt := time.Now().UTC()
	i, err := ReconstructIntervention(1, "t", "d", nil, nil, nil, false, 10, nil, 3, 4, time.Now().UTC(), nil, &archivedAt)
	require.NoError(t, err)

	assert.True(t, i.IsArchived())
	assert.Error(t, i.Answer(7, "oui", nil))
}

func TestReconstructIntervention_RejectsBadSatisfaction(t *testing.T) {
	_, err := ReconstructIntervention(1, "t", "d", strPtr("r"), nil, intPtr(9), false, 10, nil, 3, 4, time.Now().UTC(), nil, nil)
	assert.Error(t, err)

	_, err = ReconstructIntervention(0, "t", "d", nil, nil, nil, false, 10, nil, 3, 4, time.Now().UTC(), nil, nil)
	assert.Error(t, err)
}

func TestNewFilter_ArchiveDateOnlyInArchiveMode(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := DateRange{From: &from}

	live := NewFilter(false, WithArchiveDate(r))
	assert.True(t, live.ArchiveDate().IsZero())

	archived := NewFilter(true, WithArchiveDate(r))
	assert.False(t, archived.ArchiveDate().IsZero())
	assert.True(t, archived.Archived())
}

func TestFilter_IsImmutable(t *testing.T) {
	tokens := []string{"permis", "urbanisme"}
	f := NewFilter(false, WithSearchTokens(tokens), WithDemandeur(10))

	tokens[0] = "changed"
	got := f.SearchTokens()
	assert.Equal(t, []string{"permis", "urbanisme"}, got)

	got[1] = "changed"
	assert.Equal(t, []string{"permis", "urbanisme"}, f.SearchTokens())

	d := f.DemandeurID()
	*d = 99
	assert.Equal(t, uint(10), *f.DemandeurID())
}

func TestOrderField_IsValid(t *testing.T) {
	assert.True(t, OrderByDateQuestion.IsValid())
	assert.False(t, OrderField("password_hash").IsValid())
	assert.Equal(t, Order{Field: OrderByDateQuestion, Desc: true}, DefaultOrder())
}
