// Package app provides service initialization.
package app

import (
	"github.com/guttosm/delivery-service/config"
	"github.com/guttosm/delivery-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.DeliveryCalculator
}

// InitializeServices initializes the pricing engine. The configured threshold
// is the fallback used whenever persisted settings are unavailable.
func InitializeServices(cfg config.DeliveryConfig) *ServiceComponents {
	calculator := service.NewDeliveryCalculatorService(
		service.WithFreeDeliveryThreshold(cfg.FreeDeliveryThreshold),
	)

	return &ServiceComponents{
		Calculator: calculator,
	}
}
