//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/delivery-service/config"
	"github.com/guttosm/delivery-service/internal/circuitbreaker"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSeedDefaultSettings(t *testing.T) {
	threshold := decimal.NewFromInt(75)
	matchesThreshold := mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(threshold) })

	tests := []struct {
		name      string
		setupMock func(*mocks.MockDeliverySettingsService)
		wantError bool
	}{
		{
			name: "seeds configured threshold",
			setupMock: func(m *mocks.MockDeliverySettingsService) {
				m.On("EnsureDefault", mock.Anything, matchesThreshold).
					Return(&model.DeliverySettings{Version: 1, FreeDeliveryThreshold: threshold, Active: true}, nil).Once()
			},
		},
		{
			name: "repository error",
			setupMock: func(m *mocks.MockDeliverySettingsService) {
				m.On("EnsureDefault", mock.Anything, matchesThreshold).Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockDeliverySettingsService{}
			tt.setupMock(svc)

			err := seedDefaultSettings(svc, threshold)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}, decimal.NewFromInt(100)))
}

func TestNewCircuitBreaker(t *testing.T) {
	cb := newCircuitBreaker(config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 1,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}, SettingsCircuitName)

	assert.Equal(t, SettingsCircuitName, cb.Name())
	assert.False(t, cb.IsOpen())

	_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })
	assert.True(t, cb.IsOpen())
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
}

func TestDatabaseComponents_CloseWithoutConnection(t *testing.T) {
	var nilComponents *DatabaseComponents
	assert.NoError(t, nilComponents.Close(context.Background()))
	assert.NoError(t, (&DatabaseComponents{}).Close(context.Background()))
}
