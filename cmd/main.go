// Package main is the entry point for the delivery-service application.
//
// @title           Delivery Service API
// @version         1.0.0
// @description     API for pricing UK deliveries by postcode zone, parcel weight and delivery speed.
//
//	Orders at or above the free-delivery threshold ship free on every option.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/delivery-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the admin endpoints. Used when no JWT secret is configured.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token signed with JWT_SECRET_KEY. Format: "Bearer {token}"
//
// @tag.name        Delivery
// @tag.description Delivery fee quotes, option menus and zone lookups
//
// @tag.name        Delivery Settings
// @tag.description Versioned free-delivery threshold
//
// @tag.name        Admin
// @tag.description Audit trail
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/delivery-service/docs" // swagger docs

	"github.com/guttosm/delivery-service/config"
	"github.com/guttosm/delivery-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		application.Close()
		log.Fatal().Err(err).Msg("Server error")
	}
}
