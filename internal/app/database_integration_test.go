//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/delivery-service/config"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func databaseConfig(uri, dbName string) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            uri,
		DatabaseName:                   dbName,
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(uri, sanitizeDBNameForApp(t.Name())), decimal.NewFromInt(100))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.SettingsService)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.SettingsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
		assert.NoError(t, components.DB.Check())
	})

	t.Run("seeds default settings only once", func(t *testing.T) {
		t.Parallel()
		cfg := databaseConfig(uri, sanitizeDBNameForApp(t.Name()))

		first := InitializeDatabase(cfg, decimal.RequireFromString("49.99"))
		require.NotNil(t, first)
		defer func() { _ = first.Close(ctx) }()

		second := InitializeDatabase(cfg, decimal.NewFromInt(10))
		require.NotNil(t, second)
		defer func() { _ = second.Close(ctx) }()

		history, err := second.SettingsService.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "49.99", history[0].FreeDeliveryThreshold.StringFixed(2))
		assert.True(t, history[0].Active)
	})

	t.Run("logging service persists through the circuit breaker", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(uri, sanitizeDBNameForApp(t.Name())), decimal.NewFromInt(100))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		err := components.LoggingService.CreateLog(ctx, &model.LogEntry{
			Level:      "info",
			Message:    "Delivery fee calculated",
			ActionType: model.ActionDeliveryCalculate,
			RequestID:  "req-app-1",
		})
		require.NoError(t, err)

		count, err := components.LoggingService.CountLogs(ctx, model.LogQueryOptions{RequestID: "req-app-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.False(t, components.LogsCircuitBreaker.IsOpen())
	})
}
