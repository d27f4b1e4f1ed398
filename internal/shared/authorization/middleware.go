package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tag/internal/shared/constants"
	"tag/internal/shared/utils"
)

// ActorFromContext reads the identity the auth middleware stored on c.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return Actor{}, false
	}
	id, ok := userID.(uint)
	if !ok {
		return Actor{}, false
	}
	return Actor{UserID: id, Role: UserRole(c.GetString(constants.ContextKeyUserRole))}, true
}

// RequireRoles rejects callers whose role is not listed.
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c.GetString(constants.ContextKeyUserRole))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		utils.ErrorResponse(c, http.StatusForbidden, "Accès refusé")
		c.Abort()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(RoleAdmin)
}
