package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"tag/internal/infrastructure/config"
	"tag/internal/interfaces/http/middleware"
	"tag/internal/interfaces/http/routes"
	"tag/internal/shared/logger"

	_ "tag/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
	cfg       *config.Config
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{engine: c.engine, container: c, cfg: cfg}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		LoginLimiter:   c.loginLimiter,
	})

	routes.SetupInterventionRoutes(r.engine, &routes.InterventionRouteConfig{
		InterventionHandler: c.hdlrs.interventionHandler,
		AttachmentHandler:   c.hdlrs.attachmentHandler,
		AuthMiddleware:      c.authMiddleware,
		UploadMiddleware:    c.uploadMiddleware,
	})

	routes.SetupArchiveRoutes(r.engine, &routes.ArchiveRouteConfig{
		ArchiveHandler: c.hdlrs.archiveHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		UserHandler:      c.hdlrs.userHandler,
		ReferenceHandler: c.hdlrs.referenceHandler,
		AuthMiddleware:   c.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown releases resources held by the router's dependencies.
func (r *Router) Shutdown(ctx context.Context) {
	r.container.Shutdown(ctx)
}
