// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/delivery-service/config"
	"github.com/guttosm/delivery-service/internal/circuitbreaker"
	"github.com/guttosm/delivery-service/internal/metrics"
	"github.com/guttosm/delivery-service/internal/repository"
	"github.com/guttosm/delivery-service/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Circuit breaker names, also used as readiness check keys.
const (
	SettingsCircuitName = "mongodb_settings"
	LogsCircuitName     = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	SettingsService        service.DeliverySettingsService
	LoggingService         service.LoggingService
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// InitializeDatabase connects to MongoDB and creates the settings and audit services.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, defaultThreshold decimal.Decimal) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	return newDatabaseComponents(db, cfg, defaultThreshold)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig, defaultThreshold decimal.Decimal) *DatabaseComponents {
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays > 0 {
		if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
		}
	}

	settingsCB := newCircuitBreaker(cfg, SettingsCircuitName)
	logsCB := newCircuitBreaker(cfg, LogsCircuitName)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	settingsRepo := repository.NewDeliverySettingsRepositoryWithCircuitBreaker(repository.NewDeliverySettingsRepository(db), settingsCB)

	settingsService := service.NewDeliverySettingsService(settingsRepo)
	if err := seedDefaultSettings(settingsService, defaultThreshold); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default delivery settings")
	}

	return &DatabaseComponents{
		DB:                     db,
		SettingsService:        settingsService,
		LoggingService:         service.NewLoggingService(logsRepo),
		SettingsCircuitBreaker: settingsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))

	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange:    recordCircuitState,
	})
}

func recordCircuitState(name string, from, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
	log.Warn().
		Str("circuit", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}

// seedDefaultSettings persists the first settings version when none exists.
func seedDefaultSettings(svc service.DeliverySettingsService, threshold decimal.Decimal) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := svc.EnsureDefault(ctx, threshold)
	return err
}
