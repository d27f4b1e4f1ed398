package intervention

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/application/intervention/dto"
	"tag/internal/application/intervention/usecases"
	"tag/internal/interfaces/http/handlers/common"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type Handler struct {
	listUC   usecases.ListInterventionsExecutor
	createUC usecases.CreateInterventionExecutor
	getUC    usecases.GetInterventionExecutor
	answerUC usecases.AnswerInterventionExecutor
	rateUC   usecases.RateInterventionExecutor
	logger   logger.Interface
}

func NewHandler(
	listUC usecases.ListInterventionsExecutor,
	createUC usecases.CreateInterventionExecutor,
	getUC usecases.GetInterventionExecutor,
	answerUC usecases.AnswerInterventionExecutor,
	rateUC usecases.RateInterventionExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		listUC:   listUC,
		createUC: createUC,
		getUC:    getUC,
		answerUC: answerUC,
		rateUC:   rateUC,
		logger:   log,
	}
}

// ListInterventions handles GET /interventions
//
//	@Summary		List live interventions
//	@Description	Filtered, paginated listing scoped to the caller's role
//	@Tags			interventions
//	@Produce		json
//	@Security		Bearer
//	@Param			search				query		string	false	"Free-text search, space separated tokens"
//	@Param			status				query		string	false	"en_attente, repondu or termine"
//	@Param			theme				query		string	false	"Theme id"
//	@Param			commune				query		string	false	"Commune id (ignored for commune users)"
//	@Param			dateDebut			query		string	false	"Question date lower bound (YYYY-MM-DD)"
//	@Param			dateFin				query		string	false	"Question date upper bound (YYYY-MM-DD)"
//	@Param			page				query		int		false	"Page number"	default(1)
//	@Param			limit				query		int		false	"Page size"		default(10)
//	@Param			sort				query		string	false	"Sort field"
//	@Param			order				query		string	false	"ASC or DESC"
//	@Success		200					{object}	dto.InterventionListDTO
//	@Failure		400					{object}	utils.APIResponse
//	@Failure		401					{object}	utils.APIResponse
//	@Router			/interventions [get]
func (h *Handler) ListInterventions(c *gin.Context) {
	h.list(c, false)
}

// ListArchivedInterventions handles GET /interventions/archives
//
//	@Summary		List archived interventions
//	@Tags			interventions
//	@Produce		json
//	@Security		Bearer
//	@Param			dateArchivageDebut	query		string	false	"Archive date lower bound (YYYY-MM-DD)"
//	@Param			dateArchivageFin	query		string	false	"Archive date upper bound (YYYY-MM-DD)"
//	@Param			page				query		int		false	"Page number"	default(1)
//	@Param			limit				query		int		false	"Page size"		default(10)
//	@Success		200					{object}	dto.InterventionListDTO
//	@Failure		403					{object}	utils.APIResponse
//	@Router			/interventions/archives [get]
func (h *Handler) ListArchivedInterventions(c *gin.Context) {
	h.list(c, true)
}

func (h *Handler) list(c *gin.Context, archived bool) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	var params dto.InterventionQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListInterventionsQuery{
		Params:   params,
		Archived: archived,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "interventions", result.Interventions, result.Pagination)
}

// CreateIntervention handles POST /interventions
//
//	@Summary	Ask a question
//	@Tags		interventions
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		request	body		CreateInterventionRequest	true	"Question"
//	@Success	201		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	403		{object}	utils.APIResponse
//	@Router		/interventions [post]
func (h *Handler) CreateIntervention(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	var req CreateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create intervention", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Intervention créée")
}

// GetIntervention handles GET /interventions/:id
//
//	@Summary	Get an intervention
//	@Tags		interventions
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		int	true	"Intervention ID"
//	@Success	200	{object}	utils.APIResponse
//	@Failure	403	{object}	utils.APIResponse
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/interventions/{id} [get]
func (h *Handler) GetIntervention(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetInterventionQuery{
		Actor:          actor,
		InterventionID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AnswerIntervention handles PUT /interventions/:id/reponse
//
//	@Summary	Answer a question
//	@Tags		interventions
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int							true	"Intervention ID"
//	@Param		request	body		AnswerInterventionRequest	true	"Answer"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	403		{object}	utils.APIResponse
//	@Failure	404		{object}	utils.APIResponse
//	@Router		/interventions/{id}/reponse [put]
func (h *Handler) AnswerIntervention(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AnswerInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.answerUC.Execute(c.Request.Context(), usecases.AnswerInterventionCommand{
		Actor:          actor,
		InterventionID: id,
		Reponse:        req.Reponse,
		Notes:          req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Réponse enregistrée", result)
}

// RateIntervention handles PUT /interventions/:id/satisfaction
//
//	@Summary	Rate an answer
//	@Tags		interventions
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int						true	"Intervention ID"
//	@Param		request	body		RateInterventionRequest	true	"Satisfaction from 1 to 5"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	403		{object}	utils.APIResponse
//	@Router		/interventions/{id}/satisfaction [put]
func (h *Handler) RateIntervention(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.rateUC.Execute(c.Request.Context(), usecases.RateInterventionCommand{
		Actor:          actor,
		InterventionID: id,
		Satisfaction:   *req.Satisfaction,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Satisfaction enregistrée", result)
}
