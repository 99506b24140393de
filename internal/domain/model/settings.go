package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliverySettings is one persisted version of the runtime-tunable pricing settings.
// Exactly one version is active at a time.
type DeliverySettings struct {
	ID                    string
	FreeDeliveryThreshold decimal.Decimal
	Active                bool
	Version               int
	CreatedAt             time.Time
	UpdatedAt             time.Time
	CreatedBy             string
}
