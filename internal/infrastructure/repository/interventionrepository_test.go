package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag/internal/domain/intervention"
	sharedlogger "tag/internal/shared/logger"
)

func listIDs(t *testing.T, repo intervention.Repository, f intervention.Filter) []uint {
	t.Helper()
	list, err := repo.List(context.Background(), f, intervention.ListOptions{Limit: 100, Order: intervention.DefaultOrder()})
	require.NoError(t, err)

	ids := make([]uint, 0, len(list))
	for _, i := range list {
		ids = append(ids, i.ID())
	}
	return ids
}

func TestInterventionRepository_StatusFilter(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())

	pending := seedIntervention(t, database, interventionSeed{titre: "pending", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba})
	answered := seedIntervention(t, database, interventionSeed{titre: "answered", reponse: strPtr("oui"), demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba})
	closed := seedIntervention(t, database, interventionSeed{titre: "closed", reponse: strPtr("oui"), satisfaction: intPtr(4), demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba})

	tests := []struct {
		status intervention.Status
		want   []uint
	}{
		{intervention.StatusPending, []uint{pending}},
		{intervention.StatusAnswered, []uint{answered}},
		{intervention.StatusClosed, []uint{closed}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			f := intervention.NewFilter(false, intervention.WithStatus(tt.status))
			ids := listIDs(t, repo, f)
			assert.Equal(t, tt.want, ids)

			list, err := repo.List(context.Background(), f, intervention.ListOptions{Limit: 10})
			require.NoError(t, err)
			for _, i := range list {
				assert.Equal(t, tt.status, i.Status())
			}
		})
	}

	total, err := repo.Count(context.Background(), intervention.NewFilter(false))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestInterventionRepository_Search(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())

	permis := seedIntervention(t, database, interventionSeed{titre: "Permis de construire", description: "Extension d'un garage", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba})
	recrutement := seedIntervention(t, database, interventionSeed{titre: "Recrutement", description: "Contrat saisonnier", notes: strPtr("garage municipal"), demandeur: fx.demandeurB, commune: fx.communeB, theme: fx.themeRH})
	taux := seedIntervention(t, database, interventionSeed{titre: "Taux à 100% ?", description: "Indemnité", demandeur: fx.demandeurB, commune: fx.communeB, theme: fx.themeRH})
	equipement := seedIntervention(t, database, interventionSeed{titre: "Équipement sportif", description: "Gymnase", demandeur: fx.demandeurB, commune: fx.communeB, theme: fx.themeRH})

	tests := []struct {
		name   string
		tokens []string
		want   []uint
	}{
		{"titre", []string{"permis"}, []uint{permis}},
		{"one token across description and notes", []string{"garage"}, []uint{recrutement, permis}},
		{"tokens are ANDed", []string{"garage", "contrat"}, []uint{recrutement}},
		{"commune name", []string{"lyon"}, []uint{equipement, taux, recrutement}},
		{"accented titre", []string{"équipement"}, []uint{equipement}},
		{"accented commune name", []string{"étienne"}, []uint{permis}},
		{"accented word inside text", []string{"indemnité"}, []uint{taux}},
		{"theme designation", []string{"urbanisme"}, []uint{permis}},
		{"percent is literal", []string{"100%"}, []uint{taux}},
		{"underscore is literal", []string{"a_b"}, []uint{}},
		{"no match", []string{"piscine"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := listIDs(t, repo, intervention.NewFilter(false, intervention.WithSearchTokens(tt.tokens)))
			assert.Equal(t, tt.want, ids)

			total, err := repo.Count(context.Background(), intervention.NewFilter(false, intervention.WithSearchTokens(tt.tokens)))
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
		})
	}
}

func TestInterventionRepository_DateRangeIsInclusive(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	atStart := seedIntervention(t, database, interventionSeed{titre: "start", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba, dateQuestion: start})
	atEnd := seedIntervention(t, database, interventionSeed{titre: "end", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba, dateQuestion: end})
	seedIntervention(t, database, interventionSeed{titre: "before", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba, dateQuestion: start.Add(-time.Millisecond)})
	seedIntervention(t, database, interventionSeed{titre: "after", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba, dateQuestion: end.Add(time.Millisecond)})

	f := intervention.NewFilter(false, intervention.WithQuestionDate(intervention.DateRange{From: &start, To: &end}))
	assert.Equal(t, []uint{atEnd, atStart}, listIDs(t, repo, f))
}

func TestInterventionRepository_LiveAndArchivedAreExclusive(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())

	archivedAt := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	live := seedIntervention(t, database, interventionSeed{titre: "live", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba})
	archived := seedIntervention(t, database, interventionSeed{titre: "archived", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba, archivedAt: &archivedAt})

	assert.Equal(t, []uint{live}, listIDs(t, repo, intervention.NewFilter(false)))
	assert.Equal(t, []uint{archived}, listIDs(t, repo, intervention.NewFilter(true)))

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	f := intervention.NewFilter(true, intervention.WithArchiveDate(intervention.DateRange{From: &from}))
	assert.Empty(t, listIDs(t, repo, f))
}

func TestInterventionRepository_ReferenceAndDemandeurFilters(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())

	a := seedIntervention(t, database, interventionSeed{titre: "a", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba})
	b := seedIntervention(t, database, interventionSeed{titre: "b", demandeur: fx.demandeurB, commune: fx.communeB, theme: fx.themeRH})

	assert.Equal(t, []uint{a}, listIDs(t, repo, intervention.NewFilter(false, intervention.WithDemandeur(fx.demandeurA))))
	assert.Equal(t, []uint{b}, listIDs(t, repo, intervention.NewFilter(false, intervention.WithCommune(fx.communeB))))
	assert.Equal(t, []uint{a}, listIDs(t, repo, intervention.NewFilter(false, intervention.WithTheme(fx.themeUrba))))
	assert.Empty(t, listIDs(t, repo, intervention.NewFilter(false, intervention.WithTheme(fx.themeUrba), intervention.WithDemandeur(fx.demandeurB))))
}

func TestInterventionRepository_ListPagesAndIncludes(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 5; i++ {
		ids = append(ids, seedIntervention(t, database, interventionSeed{
			titre: "q", demandeur: fx.demandeurA, commune: fx.communeA, theme: fx.themeUrba,
			dateQuestion: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	ctx := context.Background()
	page2, err := repo.List(ctx, intervention.NewFilter(false), intervention.ListOptions{
		Offset: 2, Limit: 2, Include: intervention.DefaultInclude(), Order: intervention.DefaultOrder(),
	})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, ids[2], page2[0].ID())
	assert.Equal(t, ids[1], page2[1].ID())

	first := page2[0]
	require.NotNil(t, first.Commune())
	assert.Equal(t, "Saint-Étienne", first.Commune().Name)
	require.NotNil(t, first.Theme())
	assert.Equal(t, "Urbanisme", first.Theme().Name)
	require.NotNil(t, first.Demandeur())
	assert.Equal(t, "Claire", first.Demandeur().Prenom)
	require.NotNil(t, first.Demandeur().Actif)
	assert.True(t, *first.Demandeur().Actif)
	assert.Nil(t, first.Juriste())

	bare, err := repo.List(ctx, intervention.NewFilter(false), intervention.ListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, bare, 1)
	assert.Nil(t, bare[0].Commune())
}

func TestInterventionRepository_CreateAndAnswer(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())
	ctx := context.Background()

	i, err := intervention.NewIntervention("Marché public", "Seuils ?", true, fx.demandeurA, fx.communeA, fx.themeUrba)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, i))
	require.NotZero(t, i.ID())

	require.NoError(t, i.Answer(fx.juriste, "Voir le code de la commande publique.", strPtr("interne")))
	require.NoError(t, repo.SaveAnswer(ctx, i))

	got, err := repo.GetByID(ctx, i.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, intervention.StatusAnswered, got.Status())
	assert.Equal(t, "interne", *got.Notes())
	require.NotNil(t, got.Juriste())
	assert.Equal(t, "Durand", got.Juriste().Name)
	assert.True(t, got.Urgent())

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInterventionRepository_StaleWritesKeepSatisfaction(t *testing.T) {
	database := setupTestDB(t)
	fx := seedReferences(t, database)
	repo := NewInterventionRepository(database, sharedlogger.NewNopLogger())
	ctx := context.Background()

	i, err := intervention.NewIntervention("Voirie", "Nids-de-poule", false, fx.demandeurA, fx.communeA, fx.themeUrba)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, i))
	require.NoError(t, i.Answer(fx.juriste, "Première réponse", nil))
	require.NoError(t, repo.SaveAnswer(ctx, i))

	rater, err := repo.GetByID(ctx, i.ID())
	require.NoError(t, err)
	answerer, err := repo.GetByID(ctx, i.ID())
	require.NoError(t, err)
	otherRater, err := repo.GetByID(ctx, i.ID())
	require.NoError(t, err)

	require.NoError(t, rater.Rate(4))
	require.NoError(t, repo.SaveRating(ctx, rater))

	require.NoError(t, answerer.Answer(fx.juriste, "Réponse corrigée", nil))
	require.NoError(t, repo.SaveAnswer(ctx, answerer))

	require.NoError(t, otherRater.Rate(1))
	err = repo.SaveRating(ctx, otherRater)
	assert.ErrorIs(t, err, intervention.ErrAlreadyRated)

	got, err := repo.GetByID(ctx, i.ID())
	require.NoError(t, err)
	require.NotNil(t, got.Satisfaction())
	assert.Equal(t, 4, *got.Satisfaction())
	assert.Equal(t, "Réponse corrigée", *got.Reponse())
}
