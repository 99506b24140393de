package http

import (
	"github.com/gin-gonic/gin"
)

// DeliveryRoutes registers the public pricing endpoints.
type DeliveryRoutes struct {
	handler *Handler
}

// NewDeliveryRoutes creates a new DeliveryRoutes instance.
func NewDeliveryRoutes(handler *Handler) *DeliveryRoutes {
	return &DeliveryRoutes{handler: handler}
}

// RegisterPublicRoutes registers the pricing and zone endpoints under /delivery.
func (r *DeliveryRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	delivery := rg.Group("/delivery")
	delivery.POST("/calculate", r.handler.CalculateDelivery)
	delivery.GET("/options", r.handler.DeliveryOptions)
	delivery.GET("/zones", r.handler.Zones)
	delivery.GET("/zones/lookup", r.handler.LookupZone)
}
