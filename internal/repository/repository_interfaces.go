package repository

import (
	"context"

	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// DeliverySettingsRepositoryInterface defines the interface for delivery settings repository operations.
type DeliverySettingsRepositoryInterface interface {
	GetActive(ctx context.Context) (*model.DeliverySettings, error)
	Create(ctx context.Context, threshold decimal.Decimal, createdBy string) (*model.DeliverySettings, error)
	List(ctx context.Context, limit int) ([]model.DeliverySettings, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ DeliverySettingsRepositoryInterface = (*DeliverySettingsRepository)(nil)
	_ DeliverySettingsRepositoryInterface = (*DeliverySettingsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface             = (*LogsRepository)(nil)
	_ LogsRepositoryInterface             = (*LogsRepositoryWithCircuitBreaker)(nil)
)
