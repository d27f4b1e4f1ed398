package testutil

import (
	"context"
	"encoding/json"
	"time"

	"tag/internal/domain/archive"
	"tag/internal/domain/attachment"
	"tag/internal/domain/commune"
	"tag/internal/domain/intervention"
	"tag/internal/domain/theme"
	"tag/internal/domain/user"
)

// MockInterventionRepository implements intervention.Repository with
// overridable function fields. Unset fields return zero values.
type MockInterventionRepository struct {
	CreateFunc     func(ctx context.Context, i *intervention.Intervention) error
	SaveAnswerFunc func(ctx context.Context, i *intervention.Intervention) error
	SaveRatingFunc func(ctx context.Context, i *intervention.Intervention) error
	GetByIDFunc    func(ctx context.Context, id uint) (*intervention.Intervention, error)
	CountFunc      func(ctx context.Context, filter intervention.Filter) (int64, error)
	ListFunc       func(ctx context.Context, filter intervention.Filter, opts intervention.ListOptions) ([]*intervention.Intervention, error)
}

func (m *MockInterventionRepository) Create(ctx context.Context, i *intervention.Intervention) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return nil
}

func (m *MockInterventionRepository) SaveAnswer(ctx context.Context, i *intervention.Intervention) error {
	if m.SaveAnswerFunc != nil {
		return m.SaveAnswerFunc(ctx, i)
	}
	return nil
}

func (m *MockInterventionRepository) SaveRating(ctx context.Context, i *intervention.Intervention) error {
	if m.SaveRatingFunc != nil {
		return m.SaveRatingFunc(ctx, i)
	}
	return nil
}

func (m *MockInterventionRepository) GetByID(ctx context.Context, id uint) (*intervention.Intervention, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockInterventionRepository) Count(ctx context.Context, filter intervention.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *MockInterventionRepository) List(ctx context.Context, filter intervention.Filter, opts intervention.ListOptions) ([]*intervention.Intervention, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, opts)
	}
	return nil, nil
}

type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type MockCommuneRepository struct {
	CreateFunc      func(ctx context.Context, c *commune.Commune) error
	UpdateFunc      func(ctx context.Context, c *commune.Commune) error
	GetByIDFunc     func(ctx context.Context, id uint) (*commune.Commune, error)
	ExistsByNomFunc func(ctx context.Context, nom string) (bool, error)
	ListLiveFunc    func(ctx context.Context) ([]*commune.Commune, error)
}

func (m *MockCommuneRepository) Create(ctx context.Context, c *commune.Commune) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCommuneRepository) Update(ctx context.Context, c *commune.Commune) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *MockCommuneRepository) GetByID(ctx context.Context, id uint) (*commune.Commune, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommuneRepository) ExistsByNom(ctx context.Context, nom string) (bool, error) {
	if m.ExistsByNomFunc != nil {
		return m.ExistsByNomFunc(ctx, nom)
	}
	return false, nil
}

func (m *MockCommuneRepository) ListLive(ctx context.Context) ([]*commune.Commune, error) {
	if m.ListLiveFunc != nil {
		return m.ListLiveFunc(ctx)
	}
	return nil, nil
}

type MockThemeRepository struct {
	CreateFunc              func(ctx context.Context, t *theme.Theme) error
	UpdateFunc              func(ctx context.Context, t *theme.Theme) error
	GetByIDFunc             func(ctx context.Context, id uint) (*theme.Theme, error)
	ExistsByDesignationFunc func(ctx context.Context, designation string) (bool, error)
	ListLiveFunc            func(ctx context.Context) ([]*theme.Theme, error)
}

func (m *MockThemeRepository) Create(ctx context.Context, t *theme.Theme) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *MockThemeRepository) Update(ctx context.Context, t *theme.Theme) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *MockThemeRepository) GetByID(ctx context.Context, id uint) (*theme.Theme, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockThemeRepository) ExistsByDesignation(ctx context.Context, designation string) (bool, error) {
	if m.ExistsByDesignationFunc != nil {
		return m.ExistsByDesignationFunc(ctx, designation)
	}
	return false, nil
}

func (m *MockThemeRepository) ListLive(ctx context.Context) ([]*theme.Theme, error) {
	if m.ListLiveFunc != nil {
		return m.ListLiveFunc(ctx)
	}
	return nil, nil
}

type MockAttachmentRepository struct {
	CreateFunc             func(ctx context.Context, a *attachment.Attachment) error
	GetByIDFunc            func(ctx context.Context, id uint) (*attachment.Attachment, error)
	ListByInterventionFunc func(ctx context.Context, interventionID uint) ([]*attachment.Attachment, error)
	DeleteFunc             func(ctx context.Context, id uint) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, a *attachment.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *MockAttachmentRepository) GetByID(ctx context.Context, id uint) (*attachment.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) ListByIntervention(ctx context.Context, interventionID uint) ([]*attachment.Attachment, error) {
	if m.ListByInterventionFunc != nil {
		return m.ListByInterventionFunc(ctx, interventionID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockArchiveRepository struct {
	CreateFunc       func(ctx context.Context, r *archive.Record) error
	FindActiveFunc   func(ctx context.Context, table archive.Table, entityID uint) (*archive.Record, error)
	MarkRestoredFunc func(ctx context.Context, r *archive.Record) error
	ListFunc         func(ctx context.Context, table archive.Table, offset, limit int) ([]*archive.Record, int64, error)
}

func (m *MockArchiveRepository) Create(ctx context.Context, r *archive.Record) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *MockArchiveRepository) FindActive(ctx context.Context, table archive.Table, entityID uint) (*archive.Record, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, table, entityID)
	}
	return nil, nil
}

func (m *MockArchiveRepository) MarkRestored(ctx context.Context, r *archive.Record) error {
	if m.MarkRestoredFunc != nil {
		return m.MarkRestoredFunc(ctx, r)
	}
	return nil
}

func (m *MockArchiveRepository) List(ctx context.Context, table archive.Table, offset, limit int) ([]*archive.Record, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, table, offset, limit)
	}
	return nil, 0, nil
}

type MockEntityStore struct {
	SnapshotFunc      func(ctx context.Context, table archive.Table, id uint) (json.RawMessage, *time.Time, error)
	SetArchivedAtFunc func(ctx context.Context, table archive.Table, id uint, at *time.Time) error
}

func (m *MockEntityStore) Snapshot(ctx context.Context, table archive.Table, id uint) (json.RawMessage, *time.Time, error) {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx, table, id)
	}
	return json.RawMessage(`{}`), nil, nil
}

func (m *MockEntityStore) SetArchivedAt(ctx context.Context, table archive.Table, id uint, at *time.Time) error {
	if m.SetArchivedAtFunc != nil {
		return m.SetArchivedAtFunc(ctx, table, id, at)
	}
	return nil
}

// MockFileStore records removals. Files listed in Present exist.
type MockFileStore struct {
	Present    map[string]bool
	Removed    []string
	RemoveFunc func(path string) error
}

func (m *MockFileStore) Exists(path string) (bool, error) {
	return m.Present[path], nil
}

func (m *MockFileStore) Remove(path string) error {
	m.Removed = append(m.Removed, path)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	delete(m.Present, path)
	return nil
}
