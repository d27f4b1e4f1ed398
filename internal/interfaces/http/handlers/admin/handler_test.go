package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	refdto "tag/internal/application/reference/dto"
	refusecases "tag/internal/application/reference/usecases"
	userdto "tag/internal/application/user/dto"
	userusecases "tag/internal/application/user/usecases"
	"tag/internal/interfaces/http/handlers/testutil"
	"tag/internal/shared/authorization"
	"tag/internal/shared/errors"
	sharedlogger "tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type mockListUsersUC struct {
	got    userusecases.ListUsersQuery
	result *userdto.UserListDTO
	err    error
}

func (m *mockListUsersUC) Execute(_ context.Context, q userusecases.ListUsersQuery) (*userdto.UserListDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockCreateUserUC struct {
	got    userusecases.CreateUserCommand
	result *userdto.UserDTO
	err    error
}

func (m *mockCreateUserUC) Execute(_ context.Context, cmd userusecases.CreateUserCommand) (*userdto.UserDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockSetUserActifUC struct {
	got    userusecases.SetUserActifCommand
	result *userdto.UserDTO
	err    error
}

func (m *mockSetUserActifUC) Execute(_ context.Context, cmd userusecases.SetUserActifCommand) (*userdto.UserDTO, error) {
	m.got = cmd
	return m.result, m.err
}

func TestListUsers_Envelope(t *testing.T) {
	list := &mockListUsersUC{result: &userdto.UserListDTO{
		Users:      []userdto.UserDTO{{ID: 1, Email: "admin@tag.fr"}},
		Pagination: utils.PageInfo{Page: 1, Limit: 10, Total: 1, Pages: 1},
	}}
	h := NewUserHandler(list, &mockCreateUserUC{}, &mockSetUserActifUC{}, sharedlogger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/users", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetQueryParams(c, map[string]string{"role": "juriste", "search": "durand"})

	h.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"users":[`)
	assert.Equal(t, "juriste", list.got.Role)
	assert.Equal(t, "durand", list.got.Search)
	assert.Equal(t, utils.Pagination{Page: 1, Limit: 10}, list.got.Pagination)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		ucErr      error
		wantStatus int
	}{
		{
			name:       "created",
			body:       map[string]interface{}{"nom": "Martin", "prenom": "Claire", "email": "claire@lyon.fr", "password": "motdepasse", "role": "commune", "commune_id": 2},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid email",
			body:       map[string]interface{}{"nom": "Martin", "prenom": "Claire", "email": "claire", "password": "motdepasse", "role": "commune"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate",
			body:       map[string]interface{}{"nom": "Martin", "prenom": "Claire", "email": "claire@lyon.fr", "password": "motdepasse", "role": "juriste"},
			ucErr:      errors.NewConflictError("Un compte existe déjà avec cet email"),
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := &mockCreateUserUC{result: &userdto.UserDTO{ID: 5}, err: tt.ucErr}
			h := NewUserHandler(&mockListUsersUC{}, create, &mockSetUserActifUC{}, sharedlogger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/users", tt.body)
			testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

			h.CreateUser(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.name == "created" {
				require.NotNil(t, create.got.CommuneID)
				assert.Equal(t, uint(2), *create.got.CommuneID)
				assert.Equal(t, "commune", create.got.Role)
			}
		})
	}
}

func TestSetUserActif(t *testing.T) {
	set := &mockSetUserActifUC{result: &userdto.UserDTO{ID: 3}}
	h := NewUserHandler(&mockListUsersUC{}, &mockCreateUserUC{}, set, sharedlogger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/users/3/actif", map[string]bool{"actif": false})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "3")

	h.SetUserActif(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), set.got.UserID)
	assert.False(t, set.got.Actif)

	c, w = testutil.NewTestContext(http.MethodPatch, "/users/3/actif", map[string]string{})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "3")

	h.SetUserActif(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type fakeReference struct {
	communes      []refdto.CommuneDTO
	themes        []refdto.ThemeDTO
	createdNom    string
	createdDesign string
	communeActif  *refusecases.SetCommuneActifCommand
	themeActif    *refusecases.SetThemeActifCommand
	err           error
}

type listCommunesFunc func(context.Context, authorization.Actor) ([]refdto.CommuneDTO, error)

func (f listCommunesFunc) Execute(ctx context.Context, a authorization.Actor) ([]refdto.CommuneDTO, error) {
	return f(ctx, a)
}

type createCommuneFunc func(context.Context, refusecases.CreateCommuneCommand) (*refdto.CommuneDTO, error)

func (f createCommuneFunc) Execute(ctx context.Context, cmd refusecases.CreateCommuneCommand) (*refdto.CommuneDTO, error) {
	return f(ctx, cmd)
}

type setCommuneActifFunc func(context.Context, refusecases.SetCommuneActifCommand) (*refdto.CommuneDTO, error)

func (f setCommuneActifFunc) Execute(ctx context.Context, cmd refusecases.SetCommuneActifCommand) (*refdto.CommuneDTO, error) {
	return f(ctx, cmd)
}

type listThemesFunc func(context.Context, authorization.Actor) ([]refdto.ThemeDTO, error)

func (f listThemesFunc) Execute(ctx context.Context, a authorization.Actor) ([]refdto.ThemeDTO, error) {
	return f(ctx, a)
}

type createThemeFunc func(context.Context, refusecases.CreateThemeCommand) (*refdto.ThemeDTO, error)

func (f createThemeFunc) Execute(ctx context.Context, cmd refusecases.CreateThemeCommand) (*refdto.ThemeDTO, error) {
	return f(ctx, cmd)
}

type setThemeActifFunc func(context.Context, refusecases.SetThemeActifCommand) (*refdto.ThemeDTO, error)

func (f setThemeActifFunc) Execute(ctx context.Context, cmd refusecases.SetThemeActifCommand) (*refdto.ThemeDTO, error) {
	return f(ctx, cmd)
}

func (f *fakeReference) handler() *ReferenceHandler {
	return NewReferenceHandler(
		listCommunesFunc(func(context.Context, authorization.Actor) ([]refdto.CommuneDTO, error) {
			return f.communes, f.err
		}),
		createCommuneFunc(func(_ context.Context, cmd refusecases.CreateCommuneCommand) (*refdto.CommuneDTO, error) {
			f.createdNom = cmd.Nom
			return &refdto.CommuneDTO{ID: 1, Nom: cmd.Nom, Actif: true}, f.err
		}),
		setCommuneActifFunc(func(_ context.Context, cmd refusecases.SetCommuneActifCommand) (*refdto.CommuneDTO, error) {
			f.communeActif = &cmd
			return &refdto.CommuneDTO{ID: cmd.CommuneID, Actif: cmd.Actif}, f.err
		}),
		listThemesFunc(func(context.Context, authorization.Actor) ([]refdto.ThemeDTO, error) {
			return f.themes, f.err
		}),
		createThemeFunc(func(_ context.Context, cmd refusecases.CreateThemeCommand) (*refdto.ThemeDTO, error) {
			f.createdDesign = cmd.Designation
			return &refdto.ThemeDTO{ID: 1, Designation: cmd.Designation, Actif: true}, f.err
		}),
		setThemeActifFunc(func(_ context.Context, cmd refusecases.SetThemeActifCommand) (*refdto.ThemeDTO, error) {
			f.themeActif = &cmd
			return &refdto.ThemeDTO{ID: cmd.ThemeID, Actif: cmd.Actif}, f.err
		}),
		sharedlogger.NewNopLogger(),
	)
}

func TestReferenceHandler_Communes(t *testing.T) {
	f := &fakeReference{communes: []refdto.CommuneDTO{{ID: 1, Nom: "Lyon", UserCount: 2}}}
	h := f.handler()

	c, w := testutil.NewTestContext(http.MethodGet, "/communes", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleJuriste)
	h.ListCommunes(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lyon")

	c, w = testutil.NewTestContext(http.MethodPost, "/communes", map[string]string{"nom": "Vienne"})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	h.CreateCommune(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Vienne", f.createdNom)

	c, w = testutil.NewTestContext(http.MethodPatch, "/communes/4/actif", map[string]bool{"actif": true})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "4")
	h.SetCommuneActif(c)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.communeActif)
	assert.Equal(t, uint(4), f.communeActif.CommuneID)
	assert.True(t, f.communeActif.Actif)
}

func TestReferenceHandler_Themes(t *testing.T) {
	f := &fakeReference{themes: []refdto.ThemeDTO{{ID: 1, Designation: "Urbanisme"}}}
	h := f.handler()

	c, w := testutil.NewTestContext(http.MethodGet, "/themes", nil)
	testutil.SetAuthContext(c, 4, authorization.RoleCommune)
	h.ListThemes(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Urbanisme")

	c, w = testutil.NewTestContext(http.MethodPost, "/themes", map[string]string{})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	h.CreateTheme(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodPatch, "/themes/x/actif", map[string]bool{"actif": true})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "x")
	h.SetThemeActif(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, f.themeActif)
}

func TestReferenceHandler_Forbidden(t *testing.T) {
	f := &fakeReference{err: errors.NewForbiddenError("Accès refusé")}
	h := f.handler()

	c, w := testutil.NewTestContext(http.MethodPost, "/communes", map[string]string{"nom": "Vienne"})
	testutil.SetAuthContext(c, 4, authorization.RoleCommune)
	h.CreateCommune(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
