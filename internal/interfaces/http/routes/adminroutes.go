package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "tag/internal/interfaces/http/handlers/admin"
	"tag/internal/interfaces/http/middleware"
	"tag/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for account and reference-table routes.
type AdminRouteConfig struct {
	UserHandler      *adminHandlers.UserHandler
	ReferenceHandler *adminHandlers.ReferenceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupAdminRoutes configures user, commune and theme routes. Account
// management is admin only; listing communes and themes is open to every role.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.POST("", cfg.UserHandler.CreateUser)
		users.PATCH("/:id/actif", cfg.UserHandler.SetUserActif)
	}

	communes := engine.Group("/communes")
	communes.Use(cfg.AuthMiddleware.RequireAuth())
	{
		communes.GET("", cfg.ReferenceHandler.ListCommunes)
		communes.POST("", cfg.ReferenceHandler.CreateCommune)
		communes.PATCH("/:id/actif", cfg.ReferenceHandler.SetCommuneActif)
	}

	themes := engine.Group("/themes")
	themes.Use(cfg.AuthMiddleware.RequireAuth())
	{
		themes.GET("", cfg.ReferenceHandler.ListThemes)
		themes.POST("", cfg.ReferenceHandler.CreateTheme)
		themes.PATCH("/:id/actif", cfg.ReferenceHandler.SetThemeActif)
	}
}
