package attachment

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag/internal/application/attachment/dto"
	"tag/internal/application/attachment/usecases"
	"tag/internal/domain/attachment"
	"tag/internal/interfaces/http/handlers/testutil"
	"tag/internal/shared/authorization"
	"tag/internal/shared/constants"
	"tag/internal/shared/errors"
	sharedlogger "tag/internal/shared/logger"
)

type mockUploadUC struct {
	got    usecases.UploadAttachmentsCommand
	result *dto.UploadResultDTO
	err    error
}

func (m *mockUploadUC) Execute(_ context.Context, cmd usecases.UploadAttachmentsCommand) (*dto.UploadResultDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListUC struct {
	result []dto.AttachmentDTO
	err    error
}

func (m *mockListUC) Execute(_ context.Context, _ usecases.ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	return m.result, m.err
}

type mockDownloadUC struct {
	result *dto.DownloadDTO
	err    error
}

func (m *mockDownloadUC) Execute(_ context.Context, _ usecases.DownloadAttachmentQuery) (*dto.DownloadDTO, error) {
	return m.result, m.err
}

type mockDeleteUC struct {
	got usecases.DeleteAttachmentCommand
	err error
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteAttachmentCommand) error {
	m.got = cmd
	return m.err
}

func newTestHandler() (*Handler, *mockUploadUC, *mockListUC, *mockDownloadUC, *mockDeleteUC) {
	up, ls, dl, del := &mockUploadUC{}, &mockListUC{}, &mockDownloadUC{}, &mockDeleteUC{}
	return NewHandler(up, ls, dl, del, sharedlogger.NewNopLogger()), up, ls, dl, del
}

func TestUpload_ForwardsStoredFiles(t *testing.T) {
	h, up, _, _, _ := newTestHandler()
	up.result = &dto.UploadResultDTO{
		Message:     "2 fichier(s) ajouté(s) avec succès",
		Attachments: []dto.AttachmentDTO{{ID: 1}, {ID: 2}},
	}

	stored := []attachment.StoredFile{
		{OriginalName: "plan.pdf", StoredName: "a.pdf", Path: "/tmp/a.pdf"},
		{OriginalName: "photo.png", StoredName: "b.png", Path: "/tmp/b.png"},
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/interventions/3/pieces-jointes", nil)
	testutil.SetAuthContext(c, 4, authorization.RoleCommune)
	testutil.SetURLParam(c, "id", "3")
	c.Set(constants.ContextKeyUploads, stored)

	h.Upload(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "2 fichier(s) ajouté(s) avec succès", resp.Message)
	assert.Equal(t, uint(3), up.got.InterventionID)
	assert.Equal(t, stored, up.got.Files)
}

func TestUpload_UseCaseError(t *testing.T) {
	h, up, _, _, _ := newTestHandler()
	up.err = errors.NewNotFoundError("Intervention introuvable")

	c, w := testutil.NewTestContext(http.MethodPost, "/interventions/3/pieces-jointes", nil)
	testutil.SetAuthContext(c, 4, authorization.RoleCommune)
	testutil.SetURLParam(c, "id", "3")

	h.Upload(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList(t *testing.T) {
	h, _, ls, _, _ := newTestHandler()
	ls.result = []dto.AttachmentDTO{{ID: 9, NomOriginal: "plan.pdf"}}

	c, w := testutil.NewTestContext(http.MethodGet, "/interventions/3/pieces-jointes", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleJuriste)
	testutil.SetURLParam(c, "id", "3")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "plan.pdf")
}

func TestDownload_UsesOriginalName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stored.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	h, _, _, dl, _ := newTestHandler()
	dl.result = &dto.DownloadDTO{FilePath: path, OriginalName: "compte rendu.pdf"}

	c, w := testutil.NewTestContext(http.MethodGet, "/pieces-jointes/9/download", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleJuriste)
	testutil.SetURLParam(c, "id", "9")

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "compte rendu.pdf")
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestDownload_MissingFile(t *testing.T) {
	h, _, _, dl, _ := newTestHandler()
	dl.err = errors.NewNotFoundError("Fichier introuvable")

	c, w := testutil.NewTestContext(http.MethodGet, "/pieces-jointes/9/download", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleJuriste)
	testutil.SetURLParam(c, "id", "9")

	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ucErr      error
		wantStatus int
	}{
		{"deleted", "9", nil, http.StatusNoContent},
		{"bad id", "x", nil, http.StatusBadRequest},
		{"forbidden", "9", errors.NewForbiddenError("Accès refusé"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, _, del := newTestHandler()
			del.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodDelete, "/pieces-jointes/"+tt.id, nil)
			testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
			testutil.SetURLParam(c, "id", tt.id)

			h.Delete(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
