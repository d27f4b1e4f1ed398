package http

import (
	"tag/internal/interfaces/http/handlers"
	adminHandlers "tag/internal/interfaces/http/handlers/admin"
	archiveHandlers "tag/internal/interfaces/http/handlers/archive"
	attachmentHandlers "tag/internal/interfaces/http/handlers/attachment"
	interventionHandlers "tag/internal/interfaces/http/handlers/intervention"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	authHandler         *handlers.AuthHandler
	interventionHandler *interventionHandlers.Handler
	attachmentHandler   *attachmentHandlers.Handler
	archiveHandler      *archiveHandlers.Handler
	userHandler         *adminHandlers.UserHandler
	referenceHandler    *adminHandlers.ReferenceHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	}

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(pinger, c.log),
		authHandler:   handlers.NewAuthHandler(u.login, u.getMe, c.log),
		interventionHandler: interventionHandlers.NewHandler(
			u.listInterventions, u.createIntervention, u.getIntervention,
			u.answerIntervention, u.rateIntervention, c.log,
		),
		attachmentHandler: attachmentHandlers.NewHandler(
			u.uploadAttachments, u.listAttachments, u.downloadAttachment, u.deleteAttachment, c.log,
		),
		archiveHandler: archiveHandlers.NewHandler(
			u.archiveEntity, u.restoreEntity, u.checkStatus, u.listArchives, c.log,
		),
		userHandler: adminHandlers.NewUserHandler(u.listUsers, u.createUser, u.setUserActif, c.log),
		referenceHandler: adminHandlers.NewReferenceHandler(
			u.listCommunes, u.createCommune, u.setCommuneActif,
			u.listThemes, u.createTheme, u.setThemeActif, c.log,
		),
	}
}
