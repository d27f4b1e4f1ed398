// Package common provides shared HTTP handler utilities.
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/shared/authorization"
	"tag/internal/shared/utils"
)

// RequireActor returns the authenticated caller, or writes a 401 and
// reports false when the auth middleware did not run.
func RequireActor(c *gin.Context) (authorization.Actor, bool) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentification requise")
		return authorization.Actor{}, false
	}
	return actor, true
}
