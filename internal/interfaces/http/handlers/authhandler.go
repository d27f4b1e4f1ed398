package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/application/user/usecases"
	"tag/internal/interfaces/http/handlers/common"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	loginUC usecases.LoginExecutor
	getMeUC usecases.GetMeExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, getMeUC usecases.GetMeExecutor, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		getMeUC: getMeUC,
		logger:  log,
	}
}

// Login handles POST /auth/login
//
//	@Summary	Log in with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	401		{object}	utils.APIResponse
//	@Failure	403		{object}	utils.APIResponse
//	@Failure	429		{object}	utils.APIResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("login failed", "ip", c.ClientIP(), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Connexion réussie", result)
}

// GetCurrentUser handles GET /auth/me
//
//	@Summary	Current user profile
//	@Tags		auth
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse
//	@Failure	401	{object}	utils.APIResponse
//	@Router		/auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := common.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.getMeUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
