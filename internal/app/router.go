// Package app provides router configuration.
package app

import (
	"github.com/guttosm/delivery-service/config"
	"github.com/guttosm/delivery-service/internal/http"
	"github.com/guttosm/delivery-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	calculator service.DeliveryCalculator,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var settingsService service.DeliverySettingsService
	var loggingService service.LoggingService
	if dbComponents != nil {
		settingsService = dbComponents.SettingsService
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(calculator, settingsService,
		http.WithSettingsCacheTTL(cfg.Delivery.SettingsCacheTTL))
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		}
		if dbComponents.SettingsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(SettingsCircuitName, dbComponents.SettingsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(LogsCircuitName, dbComponents.LogsCircuitBreaker)
		}
	}

	var verifier service.TokenVerifier
	if cfg.Auth.JWTSecretKey != "" {
		verifier = service.NewHMACTokenVerifier(cfg.Auth.JWTSecretKey, service.WithIssuer(cfg.Auth.JWTIssuer))
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		RequestTimeout:     cfg.Server.RequestTimeout,
		EnableAuth:         cfg.Auth.Enabled,
		APIKeys:            cfg.Auth.APIKeys,
		AdminRole:          cfg.Auth.AdminRole,
		EnableIdempotency:  true,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		PersistRequestLogs: loggingService != nil,
		SettingsService:    settingsService,
		LoggingService:     loggingService,
		TokenVerifier:      verifier,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
