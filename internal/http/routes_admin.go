package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/logger"
	"github.com/guttosm/delivery-service/internal/middleware"
)

// AdminRoutes registers the settings and audit endpoints.
type AdminRoutes struct {
	settingsHandler *SettingsHandler
	auditHandler    *AuditHandler
}

// NewAdminRoutes creates a new AdminRoutes instance. Either handler may be nil.
func NewAdminRoutes(settingsHandler *SettingsHandler, auditHandler *AuditHandler) *AdminRoutes {
	return &AdminRoutes{
		settingsHandler: settingsHandler,
		auditHandler:    auditHandler,
	}
}

// RegisterProtectedRoutes registers the admin endpoints behind the configured authentication.
func (r *AdminRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if r.settingsHandler == nil && r.auditHandler == nil {
		return
	}

	guard := adminGuard(cfg)
	if !cfg.EnableAuth {
		log := logger.Component("router")
		log.Warn().
			Bool("settings", r.settingsHandler != nil).
			Bool("audit", r.auditHandler != nil).
			Msg("Admin routes mounted without authentication; set AUTH_ENABLED=true to protect them")
	}

	if r.settingsHandler != nil {
		settings := rg.Group("/delivery/settings", guard...)
		settings.GET("", r.settingsHandler.GetActiveSettings)
		settings.PUT("", r.settingsHandler.UpdateSettings)
		settings.GET("/history", r.settingsHandler.ListSettings)
	}

	if r.auditHandler != nil {
		admin := rg.Group("/admin", guard...)
		admin.GET("/audit", r.auditHandler.ListAuditLogs)
	}
}

// adminGuard picks bearer JWT with a role check when a token verifier is set,
// otherwise API keys. Nothing is enforced when auth is disabled.
func adminGuard(cfg *RouterConfig) []gin.HandlerFunc {
	if !cfg.EnableAuth {
		return nil
	}

	if cfg.TokenVerifier != nil {
		guard := []gin.HandlerFunc{middleware.JWTAuth(cfg.TokenVerifier)}
		if cfg.AdminRole != "" {
			guard = append(guard, middleware.RequireRole(cfg.AdminRole))
		}
		if cfg.userLimiter != nil {
			guard = append(guard, cfg.userLimiter.UserRateLimit())
		}
		return guard
	}

	return []gin.HandlerFunc{middleware.APIKeyAuth(cfg.APIKeys)}
}
