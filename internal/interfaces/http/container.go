package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"tag/internal/infrastructure/auth"
	"tag/internal/infrastructure/config"
	"tag/internal/infrastructure/email"
	infraPermission "tag/internal/infrastructure/permission"
	"tag/internal/infrastructure/ratelimit"
	"tag/internal/infrastructure/storage"
	"tag/internal/interfaces/http/middleware"
	"tag/internal/shared/biztime"
	"tag/internal/shared/logger"
	"tag/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, wires them together and releases them on Shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Infrastructure services
	policy   *infraPermission.Enforcer
	jwtSvc   *auth.JWTService
	hasher   *auth.BcryptPasswordHasher
	files    *storage.LocalStorage
	mailer   email.Sender
	renderer markdown.Renderer

	// Middlewares
	authMiddleware   *middleware.AuthMiddleware
	loginLimiter     *middleware.RateLimiter
	uploadMiddleware *middleware.UploadMiddleware
}

// NewContainer builds every dependency. Redis is optional: without it login
// attempts are not rate limited.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	if err := c.initMiddlewares(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if err := biztime.Init(c.cfg.Server.Timezone); err != nil {
		return err
	}

	enforcer, err := infraPermission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create policy enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed policies: %w", err)
	}
	c.policy = enforcer

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.files = storage.NewLocalStorage(c.cfg.Upload.Dir)
	c.mailer = email.NewSender(c.cfg.Email, c.cfg.Server.BaseURL)
	c.renderer = markdown.NewRenderer()

	if c.cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := ratelimit.NewRedisClient(ctx, &c.cfg.Redis)
		if err != nil {
			c.log.Warnw("redis unavailable, login rate limiting disabled", "addr", c.cfg.Redis.GetAddr(), "error", err)
		} else {
			c.redis = client
		}
	}

	return nil
}

func (c *Container) initMiddlewares() error {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	if c.redis != nil {
		c.loginLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis, "tag:ratelimit"),
			"login",
			c.cfg.Redis.LoginLimit,
			time.Duration(c.cfg.Redis.LoginWindowSeconds)*time.Second,
			c.log,
		)
	}

	upload, err := middleware.NewUploadMiddleware(c.files, c.cfg.Upload, c.log)
	if err != nil {
		return fmt.Errorf("invalid upload configuration: %w", err)
	}
	c.uploadMiddleware = upload

	return nil
}

// Shutdown releases connections held by the container.
func (c *Container) Shutdown(_ context.Context) {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
