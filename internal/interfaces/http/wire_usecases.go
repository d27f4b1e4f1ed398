package http

import (
	archiveUsecases "tag/internal/application/archive/usecases"
	attachmentUsecases "tag/internal/application/attachment/usecases"
	interventionUsecases "tag/internal/application/intervention/usecases"
	referenceUsecases "tag/internal/application/reference/usecases"
	userUsecases "tag/internal/application/user/usecases"
	"tag/internal/interfaces/adapters"
	"tag/internal/shared/biztime"
)

// allUseCases holds every application use case.
type allUseCases struct {
	// Auth & users
	login        *userUsecases.LoginUseCase
	getMe        *userUsecases.GetMeUseCase
	createUser   *userUsecases.CreateUserUseCase
	listUsers    *userUsecases.ListUsersUseCase
	setUserActif *userUsecases.SetUserActifUseCase

	// Interventions
	listInterventions  *interventionUsecases.ListInterventionsUseCase
	createIntervention *interventionUsecases.CreateInterventionUseCase
	getIntervention    *interventionUsecases.GetInterventionUseCase
	answerIntervention *interventionUsecases.AnswerInterventionUseCase
	rateIntervention   *interventionUsecases.RateInterventionUseCase

	// Attachments
	uploadAttachments  *attachmentUsecases.UploadAttachmentsUseCase
	listAttachments    *attachmentUsecases.ListAttachmentsUseCase
	downloadAttachment *attachmentUsecases.DownloadAttachmentUseCase
	deleteAttachment   *attachmentUsecases.DeleteAttachmentUseCase

	// Archives
	archiveEntity *archiveUsecases.ArchiveEntityUseCase
	restoreEntity *archiveUsecases.RestoreEntityUseCase
	checkStatus   *archiveUsecases.CheckStatusUseCase
	listArchives  *archiveUsecases.ListArchivesUseCase

	// Reference tables
	listCommunes    *referenceUsecases.ListCommunesUseCase
	createCommune   *referenceUsecases.CreateCommuneUseCase
	setCommuneActif *referenceUsecases.SetCommuneActifUseCase
	listThemes      *referenceUsecases.ListThemesUseCase
	createTheme     *referenceUsecases.CreateThemeUseCase
	setThemeActif   *referenceUsecases.SetThemeActifUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	tokens := adapters.NewTokenIssuerAdapter(c.jwtSvc)
	notifier := adapters.NewAnswerNotifierAdapter(c.mailer)
	cleaner := attachmentUsecases.NewFileCleaner(c.files, c.log)

	filterBuilder := interventionUsecases.NewFilterBuilder(c.policy, biztime.Location())
	finder := interventionUsecases.NewFindInterventionsUseCase(r.interventionRepo, c.log)

	c.ucs = &allUseCases{
		login:        userUsecases.NewLoginUseCase(r.userRepo, c.hasher, tokens, c.log),
		getMe:        userUsecases.NewGetMeUseCase(r.userRepo, c.log),
		createUser:   userUsecases.NewCreateUserUseCase(r.userRepo, r.communeRepo, c.hasher, c.policy, c.log),
		listUsers:    userUsecases.NewListUsersUseCase(r.userRepo, c.policy, c.log),
		setUserActif: userUsecases.NewSetUserActifUseCase(r.userRepo, c.policy, c.log),

		listInterventions:  interventionUsecases.NewListInterventionsUseCase(filterBuilder, finder, c.log),
		createIntervention: interventionUsecases.NewCreateInterventionUseCase(r.interventionRepo, r.userRepo, r.themeRepo, c.policy, c.log),
		getIntervention:    interventionUsecases.NewGetInterventionUseCase(r.interventionRepo, c.policy, c.renderer, c.log),
		answerIntervention: interventionUsecases.NewAnswerInterventionUseCase(r.interventionRepo, r.userRepo, c.policy, c.renderer, notifier, c.log),
		rateIntervention:   interventionUsecases.NewRateInterventionUseCase(r.interventionRepo, c.policy, c.log),

		uploadAttachments:  attachmentUsecases.NewUploadAttachmentsUseCase(r.attachmentRepo, r.interventionRepo, cleaner, c.policy, c.log),
		listAttachments:    attachmentUsecases.NewListAttachmentsUseCase(r.attachmentRepo, r.interventionRepo, c.policy, c.log),
		downloadAttachment: attachmentUsecases.NewDownloadAttachmentUseCase(r.attachmentRepo, r.interventionRepo, c.files, c.policy, c.log),
		deleteAttachment:   attachmentUsecases.NewDeleteAttachmentUseCase(r.attachmentRepo, r.interventionRepo, c.files, c.policy, c.log),

		archiveEntity: archiveUsecases.NewArchiveEntityUseCase(r.archiveRepo, r.entityStore, r.txManager, c.policy, c.log),
		restoreEntity: archiveUsecases.NewRestoreEntityUseCase(r.archiveRepo, r.entityStore, r.txManager, c.policy, c.log),
		checkStatus:   archiveUsecases.NewCheckStatusUseCase(r.archiveRepo, r.entityStore, c.policy, c.log),
		listArchives:  archiveUsecases.NewListArchivesUseCase(r.archiveRepo, c.policy, c.log),

		listCommunes:    referenceUsecases.NewListCommunesUseCase(r.communeRepo, c.policy, c.log),
		createCommune:   referenceUsecases.NewCreateCommuneUseCase(r.communeRepo, c.policy, c.log),
		setCommuneActif: referenceUsecases.NewSetCommuneActifUseCase(r.communeRepo, c.policy, c.log),
		listThemes:      referenceUsecases.NewListThemesUseCase(r.themeRepo, c.policy, c.log),
		createTheme:     referenceUsecases.NewCreateThemeUseCase(r.themeRepo, c.policy, c.log),
		setThemeActif:   referenceUsecases.NewSetThemeActifUseCase(r.themeRepo, c.policy, c.log),
	}
}
