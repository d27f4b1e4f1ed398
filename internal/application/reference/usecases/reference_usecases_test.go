package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag/internal/application/testutil"
	"tag/internal/domain/commune"
	"tag/internal/domain/theme"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	"tag/internal/shared/logger"
)

func TestListCommunes_AllRoles(t *testing.T) {
	repo := &testutil.MockCommuneRepository{
		ListLiveFunc: func(context.Context) ([]*commune.Commune, error) {
			return []*commune.Commune{
				commune.ReconstructCommune(2, "Lyon", true, nil, 1, 4),
				commune.ReconstructCommune(1, "Saint-Étienne", false, nil, 2, 0),
			}, nil
		},
	}
	uc := NewListCommunesUseCase(repo, testutil.NewPolicy(t), logger.NewNopLogger())

	for _, actor := range []authorization.Actor{testutil.Admin(1), testutil.Juriste(2), testutil.Commune(3)} {
		list, err := uc.Execute(context.Background(), actor)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Lyon", list[0].Nom)
		assert.Equal(t, int64(4), list[0].InterventionCount)
		assert.False(t, list[1].Actif)
	}
}

func TestCreateCommune(t *testing.T) {
	var created *commune.Commune
	repo := &testutil.MockCommuneRepository{
		ExistsByNomFunc: func(_ context.Context, nom string) (bool, error) {
			return nom == "Lyon", nil
		},
		CreateFunc: func(_ context.Context, c *commune.Commune) error {
			created = c
			return c.SetID(9)
		},
	}
	uc := NewCreateCommuneUseCase(repo, testutil.NewPolicy(t), logger.NewNopLogger())
	ctx := context.Background()

	result, err := uc.Execute(ctx, CreateCommuneCommand{Actor: testutil.Admin(1), Nom: "  Firminy "})
	require.NoError(t, err)
	assert.Equal(t, uint(9), result.ID)
	assert.Equal(t, "Firminy", result.Nom)
	assert.True(t, result.Actif)
	require.NotNil(t, created)

	_, err = uc.Execute(ctx, CreateCommuneCommand{Actor: testutil.Admin(1), Nom: "Lyon"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))

	_, err = uc.Execute(ctx, CreateCommuneCommand{Actor: testutil.Admin(1), Nom: "  "})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, CreateCommuneCommand{Actor: testutil.Juriste(2), Nom: "Roanne"})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestSetCommuneActif(t *testing.T) {
	stored := commune.ReconstructCommune(4, "Roanne", true, nil, 0, 0)
	updates := 0
	repo := &testutil.MockCommuneRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*commune.Commune, error) {
			if id == 4 {
				return stored, nil
			}
			return nil, nil
		},
		UpdateFunc: func(context.Context, *commune.Commune) error {
			updates++
			return nil
		},
	}
	uc := NewSetCommuneActifUseCase(repo, testutil.NewPolicy(t), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SetCommuneActifCommand{Actor: testutil.Admin(1), CommuneID: 4, Actif: false})
	require.NoError(t, err)
	assert.False(t, result.Actif)
	assert.Equal(t, 1, updates)

	_, err = uc.Execute(context.Background(), SetCommuneActifCommand{Actor: testutil.Admin(1), CommuneID: 5})
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 1, updates)
}

func TestThemes(t *testing.T) {
	stored := theme.ReconstructTheme(3, "Urbanisme", true, nil, 12)
	repo := &testutil.MockThemeRepository{
		ListLiveFunc: func(context.Context) ([]*theme.Theme, error) {
			return []*theme.Theme{stored}, nil
		},
		ExistsByDesignationFunc: func(_ context.Context, d string) (bool, error) {
			return d == "Urbanisme", nil
		},
		CreateFunc: func(_ context.Context, th *theme.Theme) error {
			return th.SetID(7)
		},
		GetByIDFunc: func(_ context.Context, id uint) (*theme.Theme, error) {
			if id == 3 {
				return stored, nil
			}
			return nil, nil
		},
	}
	policy := testutil.NewPolicy(t)
	log := logger.NewNopLogger()
	ctx := context.Background()

	list, err := NewListThemesUseCase(repo, policy, log).Execute(ctx, testutil.Commune(5))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(12), list[0].InterventionCount)

	create := NewCreateThemeUseCase(repo, policy, log)
	created, err := create.Execute(ctx, CreateThemeCommand{Actor: testutil.Admin(1), Designation: "Fiscalité"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)

	_, err = create.Execute(ctx, CreateThemeCommand{Actor: testutil.Admin(1), Designation: "Urbanisme"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))

	toggled, err := NewSetThemeActifUseCase(repo, policy, log).Execute(ctx, SetThemeActifCommand{Actor: testutil.Admin(1), ThemeID: 3, Actif: false})
	require.NoError(t, err)
	assert.False(t, toggled.Actif)

	_, err = NewSetThemeActifUseCase(repo, policy, log).Execute(ctx, SetThemeActifCommand{Actor: testutil.Commune(5), ThemeID: 3})
	assert.True(t, errors.IsForbiddenError(err))
}
