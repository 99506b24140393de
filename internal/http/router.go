package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/metrics"
	"github.com/guttosm/delivery-service/internal/middleware"
	"github.com/guttosm/delivery-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit          int
	RateWindow         time.Duration
	RequestTimeout     time.Duration
	APIKeys            map[string]bool
	EnableAuth         bool
	EnableIdempotency  bool
	CORSOrigins        []string
	SwaggerUser        string
	SwaggerPass        string
	AdminRole          string
	PersistRequestLogs bool
	SettingsService    service.DeliverySettingsService
	LoggingService     service.LoggingService
	TokenVerifier      service.TokenVerifier

	userLimiter *middleware.ShardedRateLimiter
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
		AdminRole:      "admin",
	}
}

// Router is the configured gin engine plus the background workers its middleware started.
type Router struct {
	*gin.Engine
	closers []func()
}

// Close stops the rate limiter and idempotency cache cleanup loops.
func (r *Router) Close() {
	for _, closeFn := range r.closers {
		closeFn()
	}
	r.closers = nil
}

// NewRouter creates and configures the Gin router for the delivery service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	r := &Router{Engine: gin.New()}

	configureGlobalMiddleware(r, &cfg)
	registerInfrastructureRoutes(r.Engine, healthHandler, &cfg)

	api := r.Group("/api")
	configureAPIMiddleware(r, api, &cfg)

	if handler != nil {
		NewDeliveryRoutes(handler).RegisterPublicRoutes(api)
	}
	registerAdminRoutes(r, api, handler, &cfg)

	return r
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(r *Router, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", middleware.IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.PersistRequestLogs),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.closers = append(r.closers, limiter.Stop)
		r.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(r *Router, api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		r.closers = append(r.closers, idempotencyCfg.Cache.Stop)
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}

// registerAdminRoutes registers settings and audit routes for the services that are configured.
func registerAdminRoutes(r *Router, api *gin.RouterGroup, handler *Handler, cfg *RouterConfig) {
	var settingsHandler *SettingsHandler
	if cfg.SettingsService != nil {
		var onUpdate func()
		if handler != nil {
			onUpdate = handler.InvalidateSettingsCache
		}
		settingsHandler = NewSettingsHandler(cfg.SettingsService, onUpdate)
	}

	var auditHandler *AuditHandler
	if cfg.LoggingService != nil {
		auditHandler = NewAuditHandler(cfg.LoggingService)
	}

	if cfg.EnableAuth && cfg.TokenVerifier != nil && cfg.RateLimit > 0 {
		cfg.userLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.closers = append(r.closers, cfg.userLimiter.Stop)
	}

	NewAdminRoutes(settingsHandler, auditHandler).RegisterProtectedRoutes(api, cfg)
}
