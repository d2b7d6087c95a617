package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/handler"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
)

// Registrar registers a handler's routes on a route group
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config wires the HTTP surface together
type Config struct {
	Env       string
	HTTP      config.HTTPConfig
	Logger    *zap.Logger
	Validator middleware.AccessValidator

	AuthHandler   *handler.AuthHandler
	SystemHandler *handler.SystemHandler

	// Protected registers behind JWT authentication
	Protected []Registrar
}

// New builds the gin engine with the full middleware chain and all
// routes under /api/v1. Login, refresh and the health probes stay
// public; everything else requires a valid access token.
func New(cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(cfg.Logger),
		logger.GinMiddleware(cfg.Logger),
		middleware.Secure(),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
	}

	api := engine.Group("/api/v1")

	cfg.SystemHandler.RegisterRoutes(api)

	public := api.Group("")
	if cfg.HTTP.AuthRateLimitEnabled {
		// credential endpoints get a tighter limit than the rest of the API
		public.Use(middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)))
	}
	cfg.AuthHandler.RegisterPublicRoutes(public)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(cfg.Validator, cfg.Logger))
	cfg.AuthHandler.RegisterRoutes(protected)
	for _, registrar := range cfg.Protected {
		registrar.RegisterRoutes(protected)
	}

	return engine
}
