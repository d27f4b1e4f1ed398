package routes

import (
	"github.com/gin-gonic/gin"

	archiveHandlers "tag/internal/interfaces/http/handlers/archive"
	"tag/internal/interfaces/http/middleware"
)

// ArchiveRouteConfig holds dependencies for archive routes.
type ArchiveRouteConfig struct {
	ArchiveHandler *archiveHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupArchiveRoutes configures archive and restore routes.
func SetupArchiveRoutes(engine *gin.Engine, cfg *ArchiveRouteConfig) {
	archives := engine.Group("/archives")
	archives.Use(cfg.AuthMiddleware.RequireAuth())
	{
		archives.GET("", cfg.ArchiveHandler.List)
		archives.POST("/:table/:id", cfg.ArchiveHandler.Archive)
		archives.POST("/:table/:id/restore", cfg.ArchiveHandler.Restore)
		archives.GET("/:table/:id/status", cfg.ArchiveHandler.Status)
	}
}
