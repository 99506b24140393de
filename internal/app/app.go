// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/guttosm/delivery-service/config"
	"github.com/guttosm/delivery-service/internal/http"
	"github.com/guttosm/delivery-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// App is the wired application: the HTTP router plus everything that must be
// released on shutdown.
type App struct {
	Router   *http.Router
	Database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	// Logger first, other components log during startup.
	InitializeLogger(cfg.Log)

	serviceComponents := InitializeServices(cfg.Delivery)
	dbComponents := InitializeDatabase(cfg.Database, cfg.Delivery.FreeDeliveryThreshold)

	if dbComponents != nil && dbComponents.LoggingService != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(serviceComponents.Calculator, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Database: dbComponents,
	}
}

// Close stops background workers, flushes pending audit entries and
// disconnects from MongoDB. Safe to call more than once.
func (a *App) Close() {
	if a.Router != nil {
		a.Router.Close()
	}

	middleware.StopAsyncLogger()

	if a.Database != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Database.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
		a.Database = nil
	}
}
