// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/delivery-service/internal/domain/dto"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockDeliveryCalculator struct {
	mock.Mock
}

func (m *MockDeliveryCalculator) Classify(postcode string) (model.ZoneID, model.DeliveryZone) {
	args := m.Called(postcode)
	return args.Get(0).(model.ZoneID), args.Get(1).(model.DeliveryZone)
}

func (m *MockDeliveryCalculator) Calculate(in model.QuoteInput) model.DeliveryQuote {
	args := m.Called(in)
	return args.Get(0).(model.DeliveryQuote)
}

func (m *MockDeliveryCalculator) CalculateWithThreshold(in model.QuoteInput, threshold decimal.Decimal) model.DeliveryQuote {
	args := m.Called(in, threshold)
	return args.Get(0).(model.DeliveryQuote)
}

func (m *MockDeliveryCalculator) ListOptions(in model.QuoteInput) model.DeliveryOptionsMenu {
	args := m.Called(in)
	return args.Get(0).(model.DeliveryOptionsMenu)
}

func (m *MockDeliveryCalculator) ListOptionsWithThreshold(in model.QuoteInput, threshold decimal.Decimal) model.DeliveryOptionsMenu {
	args := m.Called(in, threshold)
	return args.Get(0).(model.DeliveryOptionsMenu)
}

func (m *MockDeliveryCalculator) Zones() []model.ZoneInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.ZoneInfo)
}

func (m *MockDeliveryCalculator) FreeDeliveryThreshold() decimal.Decimal {
	args := m.Called()
	return args.Get(0).(decimal.Decimal)
}

type MockDeliverySettingsService struct {
	mock.Mock
}

func (m *MockDeliverySettingsService) GetActive(ctx context.Context) (*model.DeliverySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeliverySettings), args.Error(1)
}

func (m *MockDeliverySettingsService) Create(ctx context.Context, threshold decimal.Decimal, createdBy string) (*model.DeliverySettings, error) {
	args := m.Called(ctx, threshold, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeliverySettings), args.Error(1)
}

func (m *MockDeliverySettingsService) List(ctx context.Context, limit int) ([]model.DeliverySettings, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliverySettings), args.Error(1)
}

func (m *MockDeliverySettingsService) EnsureDefault(ctx context.Context, threshold decimal.Decimal) (*model.DeliverySettings, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeliverySettings), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}
