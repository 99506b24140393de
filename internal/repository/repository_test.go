//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeliverySettingsDocument_ToModel(t *testing.T) {
	amount, err := primitive.ParseDecimal128("74.99")
	require.NoError(t, err)

	id := primitive.NewObjectID()
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	doc := DeliverySettingsDocument{
		ID:                    id,
		FreeDeliveryThreshold: amount,
		Active:                true,
		Version:               3,
		CreatedAt:             created,
		UpdatedAt:             created,
		CreatedBy:             "admin@example.com",
	}

	settings, err := doc.ToModel()
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), settings.ID)
	assert.Equal(t, "74.99", settings.FreeDeliveryThreshold.StringFixed(2))
	assert.True(t, settings.Active)
	assert.Equal(t, 3, settings.Version)
	assert.Equal(t, created, settings.CreatedAt)
	assert.Equal(t, "admin@example.com", settings.CreatedBy)
}

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name string
		opts LogQueryOptions
		want bson.M
	}{
		{
			name: "empty",
			opts: LogQueryOptions{Limit: 10, Skip: 5},
			want: bson.M{},
		},
		{
			name: "equality fields",
			opts: LogQueryOptions{RequestID: "r", ActionType: "delivery_options", Level: "info", Method: "GET"},
			want: bson.M{"request_id": "r", "action_type": "delivery_options", "level": "info", "method": "GET"},
		},
		{
			name: "path is escaped",
			opts: LogQueryOptions{Path: "/api/v1/delivery.options"},
			want: bson.M{"path": bson.M{"$regex": `/api/v1/delivery\.options`, "$options": "i"}},
		},
		{
			name: "start only",
			opts: LogQueryOptions{StartTime: &start},
			want: bson.M{"timestamp": bson.M{"$gte": start}},
		},
		{
			name: "range",
			opts: LogQueryOptions{StartTime: &start, EndTime: &end},
			want: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.filter())
		})
	}
}
