package service

import (
	"context"
	"errors"

	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/logger"
	"github.com/guttosm/delivery-service/internal/repository"
	"github.com/shopspring/decimal"
)

// ErrRepositoryNotConfigured is returned when the service has no backing store.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// SystemActor is recorded as the author of settings created at startup.
const SystemActor = "system"

// DeliverySettingsService manages persisted delivery settings versions.
type DeliverySettingsService interface {
	GetActive(ctx context.Context) (*model.DeliverySettings, error)
	Create(ctx context.Context, threshold decimal.Decimal, createdBy string) (*model.DeliverySettings, error)
	List(ctx context.Context, limit int) ([]model.DeliverySettings, error)
	EnsureDefault(ctx context.Context, threshold decimal.Decimal) (*model.DeliverySettings, error)
}

// DeliverySettingsServiceImpl implements DeliverySettingsService.
type DeliverySettingsServiceImpl struct {
	repo repository.DeliverySettingsRepositoryInterface
}

// NewDeliverySettingsService creates a settings service. A nil repo yields a
// service whose every call returns ErrRepositoryNotConfigured.
func NewDeliverySettingsService(repo repository.DeliverySettingsRepositoryInterface) DeliverySettingsService {
	return &DeliverySettingsServiceImpl{repo: repo}
}

func (s *DeliverySettingsServiceImpl) GetActive(ctx context.Context) (*model.DeliverySettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetActive(ctx)
}

func (s *DeliverySettingsServiceImpl) Create(ctx context.Context, threshold decimal.Decimal, createdBy string) (*model.DeliverySettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if createdBy == "" {
		createdBy = SystemActor
	}
	return s.repo.Create(ctx, threshold.Round(2), createdBy)
}

func (s *DeliverySettingsServiceImpl) List(ctx context.Context, limit int) ([]model.DeliverySettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

// EnsureDefault returns the active settings, creating a first version from
// threshold when none exists.
func (s *DeliverySettingsServiceImpl) EnsureDefault(ctx context.Context, threshold decimal.Decimal) (*model.DeliverySettings, error) {
	active, err := s.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return active, nil
	}

	created, err := s.Create(ctx, threshold, SystemActor)
	if errors.Is(err, repository.ErrVersionConflict) {
		// Another instance seeded first.
		return s.GetActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	log := logger.Component("settings")
	log.Info().
		Int("version", created.Version).
		Str("free_delivery_threshold", created.FreeDeliveryThreshold.StringFixed(2)).
		Msg("Seeded default delivery settings")
	return created, nil
}
