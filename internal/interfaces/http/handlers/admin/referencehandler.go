package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/application/reference/usecases"
	"tag/internal/interfaces/http/handlers/common"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

// ReferenceHandler serves the commune and theme lookup tables.
type ReferenceHandler struct {
	listCommunesUC    usecases.ListCommunesExecutor
	createCommuneUC   usecases.CreateCommuneExecutor
	setCommuneActifUC usecases.SetCommuneActifExecutor
	listThemesUC      usecases.ListThemesExecutor
	createThemeUC     usecases.CreateThemeExecutor
	setThemeActifUC   usecases.SetThemeActifExecutor
	logger            logger.Interface
}

func NewReferenceHandler(
	listCommunesUC usecases.ListCommunesExecutor,
	createCommuneUC usecases.CreateCommuneExecutor,
	setCommuneActifUC usecases.SetCommuneActifExecutor,
	listThemesUC usecases.ListThemesExecutor,
	createThemeUC usecases.CreateThemeExecutor,
	setThemeActifUC usecases.SetThemeActifExecutor,
	log logger.Interface,
) *ReferenceHandler {
	return &ReferenceHandler{
		listCommunesUC:    listCommunesUC,
		createCommuneUC:   createCommuneUC,
		setCommuneActifUC: setCommuneActifUC,
		listThemesUC:      listThemesUC,
		createThemeUC:     createThemeUC,
		setThemeActifUC:   setThemeActifUC,
		logger:            log,
	}
}

// ListCommunes handles GET /communes
//
//	@Summary	List live communes with usage counts
//	@Tags		communes
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse
//	@Router		/communes [get]
func (h *ReferenceHandler) ListCommunes(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.listCommunesUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCommune handles POST /communes
//
//	@Summary	Create a commune
//	@Tags		communes
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		request	body		CreateCommuneRequest	true	"Commune"
//	@Success	201		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/communes [post]
func (h *ReferenceHandler) CreateCommune(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	var req CreateCommuneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createCommuneUC.Execute(c.Request.Context(), usecases.CreateCommuneCommand{
		Actor: actor,
		Nom:   req.Nom,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Commune créée")
}

// SetCommuneActif handles PATCH /communes/:id/actif
//
//	@Summary	Enable or disable a commune
//	@Tags		communes
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int				true	"Commune ID"
//	@Param		request	body		SetActifRequest	true	"Flag"
//	@Success	200		{object}	utils.APIResponse
//	@Router		/communes/{id}/actif [patch]
func (h *ReferenceHandler) SetCommuneActif(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, actif, ok := bindActif(c, "commune")
	if !ok {
		return
	}

	result, err := h.setCommuneActifUC.Execute(c.Request.Context(), usecases.SetCommuneActifCommand{
		Actor:     actor,
		CommuneID: id,
		Actif:     actif,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListThemes handles GET /themes
//
//	@Summary	List live themes with usage counts
//	@Tags		themes
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse
//	@Router		/themes [get]
func (h *ReferenceHandler) ListThemes(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.listThemesUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTheme handles POST /themes
//
//	@Summary	Create a theme
//	@Tags		themes
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		request	body		CreateThemeRequest	true	"Theme"
//	@Success	201		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/themes [post]
func (h *ReferenceHandler) CreateTheme(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	var req CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createThemeUC.Execute(c.Request.Context(), usecases.CreateThemeCommand{
		Actor:       actor,
		Designation: req.Designation,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Thème créé")
}

// SetThemeActif handles PATCH /themes/:id/actif
//
//	@Summary	Enable or disable a theme
//	@Tags		themes
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int				true	"Theme ID"
//	@Param		request	body		SetActifRequest	true	"Flag"
//	@Success	200		{object}	utils.APIResponse
//	@Router		/themes/{id}/actif [patch]
func (h *ReferenceHandler) SetThemeActif(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, actif, ok := bindActif(c, "theme")
	if !ok {
		return
	}

	result, err := h.setThemeActifUC.Execute(c.Request.Context(), usecases.SetThemeActifCommand{
		Actor:   actor,
		ThemeID: id,
		Actif:   actif,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func bindActif(c *gin.Context, entity string) (uint, bool, bool) {
	id, err := utils.ParseIDParam(c, "id", entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false, false
	}

	var req SetActifRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return 0, false, false
	}
	return id, *req.Actif, true
}
