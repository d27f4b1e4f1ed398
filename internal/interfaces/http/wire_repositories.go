package http

import (
	"tag/internal/domain/archive"
	"tag/internal/domain/attachment"
	"tag/internal/domain/commune"
	"tag/internal/domain/intervention"
	"tag/internal/domain/theme"
	"tag/internal/domain/user"
	"tag/internal/infrastructure/repository"
	"tag/internal/shared/db"
)

// repositories holds every persistence adapter.
type repositories struct {
	userRepo         user.Repository
	communeRepo      commune.Repository
	themeRepo        theme.Repository
	interventionRepo intervention.Repository
	attachmentRepo   attachment.Repository
	archiveRepo      archive.Repository
	entityStore      archive.EntityStore
	txManager        *db.TransactionManager
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:         repository.NewUserRepository(c.db, c.log),
		communeRepo:      repository.NewCommuneRepository(c.db, c.log),
		themeRepo:        repository.NewThemeRepository(c.db, c.log),
		interventionRepo: repository.NewInterventionRepository(c.db, c.log),
		attachmentRepo:   repository.NewAttachmentRepository(c.db, c.log),
		archiveRepo:      repository.NewArchiveRepository(c.db, c.log),
		entityStore:      repository.NewArchivableEntityStore(c.db, c.log),
		txManager:        db.NewTransactionManager(c.db),
	}
}
