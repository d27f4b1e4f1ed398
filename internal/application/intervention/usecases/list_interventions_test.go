package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag/internal/application/intervention/dto"
	"tag/internal/application/testutil"
	"tag/internal/domain/intervention"
	"tag/internal/shared/logger"
)

func TestListInterventions_CommuneHidesNotesAndOthersRequests(t *testing.T) {
	notes := "interne"
	answered, err := intervention.ReconstructIntervention(4, "t", "d", strPtr("oui"), &notes, nil, false, 5, nil, 1, 1, testutil.NewIntervention(t, 1, 5).DateQuestion(), nil, nil)
	require.NoError(t, err)

	var seen intervention.Filter
	repo := &testutil.MockInterventionRepository{
		CountFunc: func(ctx context.Context, f intervention.Filter) (int64, error) { return 1, nil },
		ListFunc: func(ctx context.Context, f intervention.Filter, opts intervention.ListOptions) ([]*intervention.Intervention, error) {
			seen = f
			return []*intervention.Intervention{answered}, nil
		},
	}
	log := logger.NewNopLogger()
	uc := NewListInterventionsUseCase(newBuilder(t), NewFindInterventionsUseCase(repo, log), log)

	result, err := uc.Execute(context.Background(), ListInterventionsQuery{
		Params: dto.InterventionQuery{Commune: "99"},
		Actor:  testutil.Commune(5),
	})
	require.NoError(t, err)
	require.Len(t, result.Interventions, 1)
	assert.Nil(t, result.Interventions[0].Notes)
	assert.Equal(t, "repondu", result.Interventions[0].Status)
	assert.Equal(t, uint(5), *seen.DemandeurID())
	assert.Equal(t, 1, result.Pagination.Pages)

	staff, err := uc.Execute(context.Background(), ListInterventionsQuery{Actor: testutil.Juriste(2)})
	require.NoError(t, err)
	require.NotNil(t, staff.Interventions[0].Notes)
	assert.Equal(t, "interne", *staff.Interventions[0].Notes)
}

func strPtr(s string) *string { return &s }
