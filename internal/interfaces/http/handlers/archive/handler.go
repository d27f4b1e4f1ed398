package archive

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/application/archive/usecases"
	"tag/internal/interfaces/http/handlers/common"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type ArchiveRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type Handler struct {
	archiveUC usecases.ArchiveEntityExecutor
	restoreUC usecases.RestoreEntityExecutor
	statusUC  usecases.CheckStatusExecutor
	listUC    usecases.ListArchivesExecutor
	logger    logger.Interface
}

func NewHandler(
	archiveUC usecases.ArchiveEntityExecutor,
	restoreUC usecases.RestoreEntityExecutor,
	statusUC usecases.CheckStatusExecutor,
	listUC usecases.ListArchivesExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		archiveUC: archiveUC,
		restoreUC: restoreUC,
		statusUC:  statusUC,
		listUC:    listUC,
		logger:    log,
	}
}

// Archive handles POST /archives/:table/:id
//
//	@Summary	Archive an entity
//	@Tags		archives
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		table	path		string			true	"interventions, users, communes or themes"
//	@Param		id		path		int				true	"Entity ID"
//	@Param		request	body		ArchiveRequest	false	"Reason"
//	@Success	201		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	404		{object}	utils.APIResponse
//	@Failure	410		{object}	utils.APIResponse
//	@Router		/archives/{table}/{id} [post]
func (h *Handler) Archive(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ArchiveRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.BindingError(err))
			return
		}
	}

	result, err := h.archiveUC.Execute(c.Request.Context(), usecases.ArchiveEntityCommand{
		Actor:    actor,
		Table:    c.Param("table"),
		EntityID: id,
		Reason:   req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Entité archivée")
}

// Restore handles POST /archives/:table/:id/restore
//
//	@Summary	Restore an archived entity
//	@Tags		archives
//	@Produce	json
//	@Security	Bearer
//	@Param		table	path		string	true	"interventions, users, communes or themes"
//	@Param		id		path		int		true	"Entity ID"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/archives/{table}/{id}/restore [post]
func (h *Handler) Restore(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.restoreUC.Execute(c.Request.Context(), usecases.RestoreEntityCommand{
		Actor:    actor,
		Table:    c.Param("table"),
		EntityID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entité restaurée", result)
}

// Status handles GET /archives/:table/:id/status
//
//	@Summary	Archive status of an entity
//	@Tags		archives
//	@Produce	json
//	@Security	Bearer
//	@Param		table	path		string	true	"interventions, users, communes or themes"
//	@Param		id		path		int		true	"Entity ID"
//	@Success	200		{object}	dto.ArchiveStatusDTO
//	@Router		/archives/{table}/{id}/status [get]
func (h *Handler) Status(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.CheckStatusQuery{
		Actor:    actor,
		Table:    c.Param("table"),
		EntityID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// List handles GET /archives
//
//	@Summary	List archive records, newest first
//	@Tags		archives
//	@Produce	json
//	@Security	Bearer
//	@Param		table	query		string	false	"Restrict to one table, or all"
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		limit	query		int		false	"Page size"		default(10)
//	@Success	200		{object}	dto.ArchiveListDTO
//	@Router		/archives [get]
func (h *Handler) List(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListArchivesQuery{
		Actor:      actor,
		Table:      c.Query("table"),
		Pagination: utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "archives", result.Archives, result.Pagination)
}
