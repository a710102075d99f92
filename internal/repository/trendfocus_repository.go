package repository

import (
	"context"
	"fmt"
	"time"

	"talent-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TrendFocusRepository struct {
	collection *mongo.Collection
}

// NewTrendFocusRepository creates a new trend focus repository instance
func NewTrendFocusRepository(database *mongo.Database, collection string) *TrendFocusRepository {
	return &TrendFocusRepository{
		collection: database.Collection(collection),
	}
}

// InitializeIndexes creates MongoDB indexes; the partial unique index on
// (engineer_id, trend_id, status=active) makes concurrent duplicate adds fail
// with a duplicate key error instead of creating a second active focus.
func (r *TrendFocusRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetTrendFocusIndexes())
	if err != nil {
		return fmt.Errorf("failed to create trend focus indexes: %w", err)
	}
	return nil
}

// Create inserts a new trend focus
func (r *TrendFocusRepository) Create(ctx context.Context, focus *models.TrendFocus) (*models.TrendFocus, error) {
	if focus.ID.IsZero() {
		focus.ID = bson.NewObjectID()
	}
	now := time.Now()
	focus.CreatedAt = now
	focus.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, focus)
	if err != nil {
		return nil, err
	}
	return focus, nil
}

// IsDuplicateActiveFocus reports whether an insert failed because an active
// focus already exists for the same (engineer, trend) pair
func IsDuplicateActiveFocus(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// GetByID retrieves a trend focus by its ID
func (r *TrendFocusRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.TrendFocus, error) {
	var focus models.TrendFocus
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&focus)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trend focus by ID: %w", err)
	}
	return &focus, nil
}

// GetActiveByEngineerAndTrend retrieves the active focus for a (engineer,
// trend) pair, if any
func (r *TrendFocusRepository) GetActiveByEngineerAndTrend(ctx context.Context, engineerID bson.ObjectID, trendID string) (*models.TrendFocus, error) {
	filter := bson.M{
		"engineer_id": engineerID,
		"trend_id":    trendID,
		"status":      models.FocusActive,
	}

	var focus models.TrendFocus
	err := r.collection.FindOne(ctx, filter).Decode(&focus)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active trend focus: %w", err)
	}
	return &focus, nil
}

// GetByEngineer retrieves an engineer's focuses, optionally filtered by
// status, ordered by creation time ascending
func (r *TrendFocusRepository) GetByEngineer(ctx context.Context, engineerID bson.ObjectID, status models.FocusStatus) ([]*models.TrendFocus, error) {
	filter := bson.M{"engineer_id": engineerID}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list trend focuses: %w", err)
	}
	defer cursor.Close(ctx)

	var focuses []*models.TrendFocus
	if err := cursor.All(ctx, &focuses); err != nil {
		return nil, fmt.Errorf("failed to decode trend focuses: %w", err)
	}
	return focuses, nil
}

// Update applies progress/status changes to a focus
func (r *TrendFocusRepository) Update(ctx context.Context, id bson.ObjectID, fields bson.M) (*models.TrendFocus, error) {
	fields["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var focus models.TrendFocus
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&focus)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trend focus: %w", err)
	}
	return &focus, nil
}

// DeleteByIDs removes focuses by id list; used by duplicate cleanup
func (r *TrendFocusRepository) DeleteByIDs(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete trend focuses: %w", err)
	}
	return result.DeletedCount, nil
}
