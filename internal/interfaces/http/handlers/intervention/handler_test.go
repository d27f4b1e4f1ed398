package intervention

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag/internal/application/intervention/dto"
	"tag/internal/application/intervention/usecases"
	"tag/internal/interfaces/http/handlers/testutil"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	sharedlogger "tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type mockListUC struct {
	got    usecases.ListInterventionsQuery
	result *dto.InterventionListDTO
	err    error
}

func (m *mockListUC) Execute(_ context.Context, q usecases.ListInterventionsQuery) (*dto.InterventionListDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockCreateUC struct {
	got    usecases.CreateInterventionCommand
	result *dto.InterventionDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateInterventionCommand) (*dto.InterventionDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.InterventionDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetInterventionQuery) (*dto.InterventionDTO, error) {
	return m.result, m.err
}

type mockAnswerUC struct {
	got    usecases.AnswerInterventionCommand
	result *dto.InterventionDTO
	err    error
}

func (m *mockAnswerUC) Execute(_ context.Context, cmd usecases.AnswerInterventionCommand) (*dto.InterventionDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRateUC struct {
	got    usecases.RateInterventionCommand
	result *dto.InterventionDTO
	err    error
}

func (m *mockRateUC) Execute(_ context.Context, cmd usecases.RateInterventionCommand) (*dto.InterventionDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mocks struct {
	list   *mockListUC
	create *mockCreateUC
	get    *mockGetUC
	answer *mockAnswerUC
	rate   *mockRateUC
}

func newTestHandler() (*Handler, *mocks) {
	m := &mocks{
		list:   &mockListUC{},
		create: &mockCreateUC{},
		get:    &mockGetUC{},
		answer: &mockAnswerUC{},
		rate:   &mockRateUC{},
	}
	return NewHandler(m.list, m.create, m.get, m.answer, m.rate, sharedlogger.NewNopLogger()), m
}

func TestListInterventions_Envelope(t *testing.T) {
	h, m := newTestHandler()
	m.list.result = &dto.InterventionListDTO{
		Interventions: []dto.InterventionDTO{{ID: 3, Titre: "Voirie"}},
		Pagination:    utils.PageInfo{Page: 2, Limit: 1, Total: 4, Pages: 4},
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/interventions", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleCommune)
	testutil.SetQueryParams(c, map[string]string{"search": "permis voirie", "page": "2", "limit": "1", "status": "repondu"})

	h.ListInterventions(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Interventions []dto.InterventionDTO `json:"interventions"`
		Pagination    utils.PageInfo        `json:"pagination"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	require.Len(t, body.Interventions, 1)
	assert.Equal(t, uint(3), body.Interventions[0].ID)
	assert.Equal(t, 4, body.Pagination.Pages)

	assert.False(t, m.list.got.Archived)
	assert.Equal(t, "permis voirie", m.list.got.Params.Search)
	assert.Equal(t, "repondu", m.list.got.Params.Status)
	assert.Equal(t, "2", m.list.got.Params.Page)
	assert.Equal(t, authorization.Actor{UserID: 7, Role: authorization.RoleCommune}, m.list.got.Actor)
}

func TestListArchivedInterventions_PassesArchiveFlag(t *testing.T) {
	h, m := newTestHandler()
	m.list.result = &dto.InterventionListDTO{Interventions: []dto.InterventionDTO{}}

	c, w := testutil.NewTestContext(http.MethodGet, "/interventions/archives", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleJuriste)
	testutil.SetQueryParams(c, map[string]string{"dateArchivageDebut": "2024-01-01"})

	h.ListArchivedInterventions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, m.list.got.Archived)
	assert.Equal(t, "2024-01-01", m.list.got.Params.DateArchivageDebut)
}

func TestListInterventions_ValidationError(t *testing.T) {
	h, m := newTestHandler()
	m.list.err = errors.NewValidationError("Date invalide")

	c, w := testutil.NewTestContext(http.MethodGet, "/interventions", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	h.ListInterventions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Date invalide", resp.Error.Message)
}

func TestListInterventions_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/interventions", nil)

	h.ListInterventions(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateIntervention(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		ucErr      error
		wantStatus int
	}{
		{"created", map[string]interface{}{"titre": "Marché", "description": "Seuils ?", "theme_id": 2, "urgent": true}, nil, http.StatusCreated},
		{"missing titre", map[string]interface{}{"description": "x", "theme_id": 2}, nil, http.StatusBadRequest},
		{"forbidden role", map[string]interface{}{"titre": "a", "description": "b", "theme_id": 2}, errors.NewForbiddenError("Accès refusé"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.create.result = &dto.InterventionDTO{ID: 1}
			m.create.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/interventions", tt.body)
			testutil.SetAuthContext(c, 4, authorization.RoleCommune)

			h.CreateIntervention(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "Marché", m.create.got.Titre)
				assert.True(t, m.create.got.Urgent)
				assert.Equal(t, uint(2), m.create.got.ThemeID)
				assert.Equal(t, uint(4), m.create.got.Actor.UserID)
			}
		})
	}
}

func TestGetIntervention(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ucErr      error
		wantStatus int
	}{
		{"found", "5", nil, http.StatusOK},
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"zero id", "0", nil, http.StatusBadRequest},
		{"not found", "9", errors.NewNotFoundError("Intervention introuvable"), http.StatusNotFound},
		{"other commune", "9", errors.NewForbiddenError("Accès refusé"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.get.result = &dto.InterventionDTO{ID: 5}
			m.get.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodGet, "/interventions/"+tt.id, nil)
			testutil.SetAuthContext(c, 4, authorization.RoleCommune)
			testutil.SetURLParam(c, "id", tt.id)

			h.GetIntervention(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAnswerIntervention_ForwardsNotes(t *testing.T) {
	h, m := newTestHandler()
	m.answer.result = &dto.InterventionDTO{ID: 5, Status: "repondu"}

	c, w := testutil.NewTestContext(http.MethodPut, "/interventions/5/reponse", map[string]interface{}{
		"reponse": "Voir l'article L2122-22.",
		"notes":   "interne",
	})
	testutil.SetAuthContext(c, 2, authorization.RoleJuriste)
	testutil.SetURLParam(c, "id", "5")

	h.AnswerIntervention(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), m.answer.got.InterventionID)
	require.NotNil(t, m.answer.got.Notes)
	assert.Equal(t, "interne", *m.answer.got.Notes)
}

func TestRateIntervention(t *testing.T) {
	h, m := newTestHandler()
	m.rate.result = &dto.InterventionDTO{ID: 5}

	c, w := testutil.NewTestContext(http.MethodPut, "/interventions/5/satisfaction", map[string]interface{}{"satisfaction": 4})
	testutil.SetAuthContext(c, 4, authorization.RoleCommune)
	testutil.SetURLParam(c, "id", "5")

	h.RateIntervention(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, m.rate.got.Satisfaction)

	c, w = testutil.NewTestContext(http.MethodPut, "/interventions/5/satisfaction", map[string]interface{}{})
	testutil.SetAuthContext(c, 4, authorization.RoleCommune)
	testutil.SetURLParam(c, "id", "5")

	h.RateIntervention(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
