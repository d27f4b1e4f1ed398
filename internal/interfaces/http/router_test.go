package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tag/internal/infrastructure/auth"
	"tag/internal/infrastructure/config"
	dbdriver "tag/internal/infrastructure/database"
	"tag/internal/infrastructure/persistence/models"
	sharedConfig "tag/internal/shared/config"
	"tag/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine    *gin.Engine
	themeID   uint
	password  string
	uploadDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(dbdriver.SQLiteDialector(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))

	const password = "motdepasse"
	hash, err := auth.NewBcryptPasswordHasher(4).Hash(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	commune := &models.CommuneModel{Nom: "Grenoble", Actif: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(commune).Error)
	theme := &models.ThemeModel{Designation: "Urbanisme", Actif: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(theme).Error)
	require.NoError(t, db.Create(&models.UserModel{
		Nom: "Petit", Prenom: "Anne", Email: "anne@grenoble.fr", PasswordHash: hash,
		Role: "commune", CommuneID: &commune.ID, Actif: true, CreatedAt: now, UpdatedAt: now,
	}).Error)

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{Timezone: "UTC"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "router-test-secret", AccessExpMinutes: 5},
		},
		Upload: sharedConfig.UploadConfig{Dir: filepath.Join(t.TempDir(), "uploads"), MaxFileSize: "5MiB", MaxFiles: 5},
	}

	router, err := NewRouter(db, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	router.SetupRoutes()

	return &testServer{engine: router.GetEngine(), themeID: theme.ID, password: password, uploadDir: cfg.Upload.Dir}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()

	w := s.do(t, nethttp.MethodPost, "/auth/login", "", map[string]string{
		"email":    "anne@grenoble.fr",
		"password": s.password,
	})
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, nethttp.MethodGet, "/health", "", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/auth/me", "/interventions", "/archives", "/communes"} {
		w := s.do(t, nethttp.MethodGet, path, "", nil)
		assert.Equal(t, nethttp.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_WrongPassword(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, nethttp.MethodPost, "/auth/login", "", map[string]string{
		"email":    "anne@grenoble.fr",
		"password": "mauvais-mot",
	})
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestRouter_CommuneCreatesAndListsOwnIntervention(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, nethttp.MethodPost, "/interventions", token, map[string]any{
		"titre":       "Permis de construire",
		"description": "Délai d'instruction ?",
		"theme_id":    s.themeID,
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, nethttp.MethodGet, "/interventions?status=en_attente", token, nil)
	require.Equal(t, nethttp.StatusOK, w.Code, w.Body.String())

	var list struct {
		Interventions []struct {
			Titre  string `json:"titre"`
			Status string `json:"status"`
		} `json:"interventions"`
		Pagination struct {
			Total int64 `json:"total"`
			Pages int64 `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Interventions, 1)
	assert.Equal(t, "Permis de construire", list.Interventions[0].Titre)
	assert.Equal(t, "en_attente", list.Interventions[0].Status)
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Equal(t, int64(1), list.Pagination.Pages)
}

func TestRouter_CommuneCannotArchive(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, nethttp.MethodPost, "/archives/themes/1", token, map[string]string{"reason": "doublon"})
	assert.Equal(t, nethttp.StatusForbidden, w.Code)

	w = s.do(t, nethttp.MethodGet, "/users", token, nil)
	assert.Equal(t, nethttp.StatusForbidden, w.Code)
}

func (s *testServer) upload(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	png := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="files"; filename="plan.png"`)
	h.Set("Content-Type", "image/png")
	pw, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = pw.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(nethttp.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) storedFiles(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(s.uploadDir)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}

func TestRouter_UploadRejectedByHandlerLeavesNoFile(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.upload(t, "/interventions/abc/pieces-jointes", token)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code, w.Body.String())
	assert.Zero(t, s.storedFiles(t))

	w = s.upload(t, "/interventions/999/pieces-jointes", token)
	assert.Equal(t, nethttp.StatusNotFound, w.Code, w.Body.String())
	assert.Zero(t, s.storedFiles(t))
}

func TestRouter_UploadKeepsFileOnSuccess(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(t, nethttp.MethodPost, "/interventions", token, map[string]any{
		"titre":       "Voirie",
		"description": "Nids-de-poule",
		"theme_id":    s.themeID,
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())

	w = s.upload(t, "/interventions/1/pieces-jointes", token)
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, s.storedFiles(t))
}
