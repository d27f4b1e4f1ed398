package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/application/user/usecases"
	"tag/internal/interfaces/http/handlers/common"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

// UserHandler serves account management.
type UserHandler struct {
	listUC     usecases.ListUsersExecutor
	createUC   usecases.CreateUserExecutor
	setActifUC usecases.SetUserActifExecutor
	logger     logger.Interface
}

func NewUserHandler(
	listUC usecases.ListUsersExecutor,
	createUC usecases.CreateUserExecutor,
	setActifUC usecases.SetUserActifExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUC:     listUC,
		createUC:   createUC,
		setActifUC: setActifUC,
		logger:     log,
	}
}

// ListUsers handles GET /users
//
//	@Summary	List user accounts
//	@Tags		users
//	@Produce	json
//	@Security	Bearer
//	@Param		role	query		string	false	"admin, juriste or commune"
//	@Param		search	query		string	false	"Name or email"
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		limit	query		int		false	"Page size"		default(10)
//	@Success	200		{object}	utils.APIResponse
//	@Failure	403		{object}	utils.APIResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Actor:      actor,
		Role:       c.Query("role"),
		Search:     c.Query("search"),
		Pagination: utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "users", result.Users, result.Pagination)
}

// CreateUser handles POST /users
//
//	@Summary	Create a user account
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		request	body		CreateUserRequest	true	"Account"
//	@Success	201		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Actor:     actor,
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		CommuneID: req.CommuneID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Utilisateur créé")
}

// SetUserActif handles PATCH /users/:id/actif
//
//	@Summary	Enable or disable an account
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int				true	"User ID"
//	@Param		request	body		SetActifRequest	true	"Flag"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	404		{object}	utils.APIResponse
//	@Router		/users/{id}/actif [patch]
func (h *UserHandler) SetUserActif(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	id, actif, ok := bindActif(c, "user")
	if !ok {
		return
	}

	result, err := h.setActifUC.Execute(c.Request.Context(), usecases.SetUserActifCommand{
		Actor:  actor,
		UserID: id,
		Actif:  actif,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
