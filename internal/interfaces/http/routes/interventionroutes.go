package routes

import (
	"github.com/gin-gonic/gin"

	attachmentHandlers "tag/internal/interfaces/http/handlers/attachment"
	interventionHandlers "tag/internal/interfaces/http/handlers/intervention"
	"tag/internal/interfaces/http/middleware"
)

// InterventionRouteConfig holds dependencies for intervention and attachment routes.
type InterventionRouteConfig struct {
	InterventionHandler *interventionHandlers.Handler
	AttachmentHandler   *attachmentHandlers.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	UploadMiddleware    *middleware.UploadMiddleware
}

// SetupInterventionRoutes configures intervention routes. Role checks happen
// in the use cases against the policy table.
func SetupInterventionRoutes(engine *gin.Engine, cfg *InterventionRouteConfig) {
	interventions := engine.Group("/interventions")
	interventions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		interventions.GET("", cfg.InterventionHandler.ListInterventions)
		// registered before /:id so "archives" is not parsed as an id
		interventions.GET("/archives", cfg.InterventionHandler.ListArchivedInterventions)
		interventions.POST("", cfg.InterventionHandler.CreateIntervention)
		interventions.GET("/:id", cfg.InterventionHandler.GetIntervention)
		interventions.PUT("/:id/reponse", cfg.InterventionHandler.AnswerIntervention)
		interventions.PUT("/:id/satisfaction", cfg.InterventionHandler.RateIntervention)

		interventions.POST("/:id/pieces-jointes", cfg.UploadMiddleware.Handle(), cfg.AttachmentHandler.Upload)
		interventions.GET("/:id/pieces-jointes", cfg.AttachmentHandler.List)
	}

	attachments := engine.Group("/pieces-jointes")
	attachments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:id/download", cfg.AttachmentHandler.Download)
		attachments.DELETE("/:id", cfg.AttachmentHandler.Delete)
	}
}
