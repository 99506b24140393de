//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("collections are bound", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, DeliverySettingsCollection, db.DeliverySettings.Name())
		assert.Equal(t, LogsCollection, db.Logs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		assert.NoError(t, db.HealthCheck(pingCtx))
		assert.NoError(t, db.Check())
	})

	t.Run("indexes are created", func(t *testing.T) {
		cursor, err := db.DeliverySettings.Indexes().List(ctx)
		require.NoError(t, err)

		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		unique := false
		for _, idx := range indexes {
			if isUnique, ok := idx["unique"].(bool); ok && isUnique {
				unique = true
			}
		}
		assert.True(t, unique, "expected a unique index on version")
	})

	t.Run("set logs TTL is repeatable", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30))
		assert.NoError(t, db.SetLogsTTL(ctx, 30))
	})
}

func TestNewMongoDB_InvalidURI(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 500 * time.Millisecond

	db, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}
