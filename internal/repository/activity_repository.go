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

type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new learning activity repository instance
func NewActivityRepository(database *mongo.Database, collection string) *ActivityRepository {
	return &ActivityRepository{
		collection: database.Collection(collection),
	}
}

// InitializeIndexes creates MongoDB indexes for optimal performance
func (r *ActivityRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetLearningActivityIndexes())
	if err != nil {
		return fmt.Errorf("failed to create activity indexes: %w", err)
	}
	return nil
}

// Create appends a learning activity; the log is append-only
func (r *ActivityRepository) Create(ctx context.Context, activity *models.LearningActivity) (*models.LearningActivity, error) {
	if activity.ID.IsZero() {
		activity.ID = bson.NewObjectID()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to create learning activity: %w", err)
	}
	return activity, nil
}

// GetRecentByEngineer retrieves the latest activities for an engineer
func (r *ActivityRepository) GetRecentByEngineer(ctx context.Context, engineerID bson.ObjectID, limit int64) ([]*models.LearningActivity, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"engineer_id": engineerID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []*models.LearningActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

// DurationStats aggregates logged learning time for an engineer
type DurationStats struct {
	TotalMinutes int64
	Count        int64
}

// GetDurationStats sums activity durations since a cutoff; a zero cutoff
// aggregates the whole history
func (r *ActivityRepository) GetDurationStats(ctx context.Context, engineerID bson.ObjectID, since time.Time) (*DurationStats, error) {
	match := bson.M{"engineer_id": engineerID}
	if !since.IsZero() {
		match["created_at"] = bson.M{"$gte": since}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":           nil,
			"total_minutes": bson.M{"$sum": "$duration_minutes"},
			"count":         bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activities: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalMinutes int64 `bson:"total_minutes"`
		Count        int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode activity stats: %w", err)
	}

	stats := &DurationStats{}
	if len(results) > 0 {
		stats.TotalMinutes = results[0].TotalMinutes
		stats.Count = results[0].Count
	}
	return stats, nil
}
