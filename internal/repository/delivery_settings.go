package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrVersionConflict is returned when another writer created the same settings version first.
var ErrVersionConflict = errors.New("delivery settings version conflict")

// DeliverySettingsDocument is the stored form of a delivery settings version.
// Money is stored as Decimal128 so thresholds round-trip exactly.
type DeliverySettingsDocument struct {
	ID                    primitive.ObjectID   `bson:"_id,omitempty"`
	FreeDeliveryThreshold primitive.Decimal128 `bson:"free_delivery_threshold"`
	Active                bool                 `bson:"active"`
	Version               int                  `bson:"version"`
	CreatedAt             time.Time            `bson:"created_at"`
	UpdatedAt             time.Time            `bson:"updated_at"`
	CreatedBy             string               `bson:"created_by,omitempty"`
}

// ToModel converts the document to its domain form.
func (d *DeliverySettingsDocument) ToModel() (model.DeliverySettings, error) {
	threshold, err := decimal.NewFromString(d.FreeDeliveryThreshold.String())
	if err != nil {
		return model.DeliverySettings{}, fmt.Errorf("decode free_delivery_threshold %q: %w", d.FreeDeliveryThreshold.String(), err)
	}

	return model.DeliverySettings{
		ID:                    d.ID.Hex(),
		FreeDeliveryThreshold: threshold,
		Active:                d.Active,
		Version:               d.Version,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
		CreatedBy:             d.CreatedBy,
	}, nil
}

// DeliverySettingsRepository stores versioned delivery settings.
type DeliverySettingsRepository struct {
	collection *mongo.Collection
}

// NewDeliverySettingsRepository creates a new delivery settings repository.
func NewDeliverySettingsRepository(db *MongoDB) *DeliverySettingsRepository {
	return &DeliverySettingsRepository{
		collection: db.DeliverySettings,
	}
}

// GetActive returns the newest active version, or nil when none exists.
func (r *DeliverySettingsRepository) GetActive(ctx context.Context) (*model.DeliverySettings, error) {
	var doc DeliverySettingsDocument
	err := r.collection.FindOne(
		ctx,
		bson.M{"active": true},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	settings, err := doc.ToModel()
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create stores a new active version and deactivates every older one.
//
// The new version is inserted before the old ones are deactivated, so a reader
// always finds an active version. The unique index on version turns a
// concurrent Create into ErrVersionConflict.
func (r *DeliverySettingsRepository) Create(ctx context.Context, threshold decimal.Decimal, createdBy string) (*model.DeliverySettings, error) {
	amount, err := primitive.ParseDecimal128(threshold.String())
	if err != nil {
		return nil, fmt.Errorf("encode free_delivery_threshold: %w", err)
	}

	version, err := r.latestVersion(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := DeliverySettingsDocument{
		ID:                    primitive.NewObjectID(),
		FreeDeliveryThreshold: amount,
		Active:                true,
		Version:               version + 1,
		CreatedAt:             now,
		UpdatedAt:             now,
		CreatedBy:             createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true, "_id": bson.M{"$ne": doc.ID}},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}

	settings, err := doc.ToModel()
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// List returns versions newest first. A limit of zero or less returns all of them.
func (r *DeliverySettingsRepository) List(ctx context.Context, limit int) ([]model.DeliverySettings, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []DeliverySettingsDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	settings := make([]model.DeliverySettings, 0, len(docs))
	for i := range docs {
		s, err := docs[i].ToModel()
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}

func (r *DeliverySettingsRepository) latestVersion(ctx context.Context) (int, error) {
	var doc DeliverySettingsDocument
	err := r.collection.FindOne(
		ctx,
		bson.M{},
		options.FindOne().
			SetSort(bson.D{{Key: "version", Value: -1}}).
			SetProjection(bson.M{"version": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Version, nil
}
