package repository

import (
	"context"
	"errors"

	"github.com/guttosm/delivery-service/internal/circuitbreaker"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// guarded runs fn through cb and returns its result.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// DeliverySettingsRepositoryWithCircuitBreaker wraps a settings repository with circuit breaker protection.
type DeliverySettingsRepositoryWithCircuitBreaker struct {
	repo           DeliverySettingsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDeliverySettingsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewDeliverySettingsRepositoryWithCircuitBreaker(repo DeliverySettingsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *DeliverySettingsRepositoryWithCircuitBreaker {
	return &DeliverySettingsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active settings. While the circuit is open it reports
// no active settings so callers price with the configured default.
func (r *DeliverySettingsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*model.DeliverySettings, error) {
	result, err := guarded(ctx, r.circuitBreaker, func() (*model.DeliverySettings, error) {
		return r.repo.GetActive(ctx)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Create stores a new settings version with circuit breaker protection.
func (r *DeliverySettingsRepositoryWithCircuitBreaker) Create(ctx context.Context, threshold decimal.Decimal, createdBy string) (*model.DeliverySettings, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.DeliverySettings, error) {
		return r.repo.Create(ctx, threshold, createdBy)
	})
}

// List returns settings versions with circuit breaker protection.
func (r *DeliverySettingsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.DeliverySettings, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.DeliverySettings, error) {
		return r.repo.List(ctx, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *DeliverySettingsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a log entry. Writes are dropped silently while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores log entries. Writes are dropped silently while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
