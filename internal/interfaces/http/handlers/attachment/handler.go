package attachment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/application/attachment/usecases"
	"tag/internal/interfaces/http/handlers/common"
	"tag/internal/interfaces/http/middleware"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type Handler struct {
	uploadUC   usecases.UploadAttachmentsExecutor
	listUC     usecases.ListAttachmentsExecutor
	downloadUC usecases.DownloadAttachmentExecutor
	deleteUC   usecases.DeleteAttachmentExecutor
	logger     logger.Interface
}

func NewHandler(
	uploadUC usecases.UploadAttachmentsExecutor,
	listUC usecases.ListAttachmentsExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	deleteUC usecases.DeleteAttachmentExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		uploadUC:   uploadUC,
		listUC:     listUC,
		downloadUC: downloadUC,
		deleteUC:   deleteUC,
		logger:     log,
	}
}

// Upload handles POST /interventions/:id/pieces-jointes
// The upload middleware has already validated and stored the files.
//
//	@Summary	Attach files to an intervention
//	@Tags		attachments
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int		true	"Intervention ID"
//	@Param		files	formData	file	true	"JPEG, PNG or PDF files"
//	@Success	201		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	413		{object}	utils.APIResponse
//	@Router		/interventions/{id}/pieces-jointes [post]
func (h *Handler) Upload(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadAttachmentsCommand{
		Actor:          actor,
		InterventionID: id,
		Files:          middleware.UploadedFiles(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Attachments, result.Message)
}

// List handles GET /interventions/:id/pieces-jointes
//
//	@Summary	List the files of an intervention
//	@Tags		attachments
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		int	true	"Intervention ID"
//	@Success	200	{object}	utils.APIResponse
//	@Failure	403	{object}	utils.APIResponse
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/interventions/{id}/pieces-jointes [get]
func (h *Handler) List(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		Actor:          actor,
		InterventionID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Download handles GET /pieces-jointes/:id/download
//
//	@Summary	Download a file
//	@Tags		attachments
//	@Produce	application/octet-stream
//	@Security	Bearer
//	@Param		id	path	int	true	"Attachment ID"
//	@Success	200	{file}	binary
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/pieces-jointes/{id}/download [get]
func (h *Handler) Download(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "pièce jointe")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		Actor:        actor,
		AttachmentID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(result.FilePath, result.OriginalName)
}

// Delete handles DELETE /pieces-jointes/:id
//
//	@Summary	Delete a file
//	@Tags		attachments
//	@Security	Bearer
//	@Param		id	path	int	true	"Attachment ID"
//	@Success	204
//	@Failure	403	{object}	utils.APIResponse
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/pieces-jointes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "pièce jointe")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		Actor:        actor,
		AttachmentID: id,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("attachment deleted", "attachment_id", id, "user_id", actor.UserID)
	utils.NoContentResponse(c)
}
