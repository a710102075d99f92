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

type RecommendationRepository struct {
	collection *mongo.Collection
}

// NewRecommendationRepository creates a new recommendation repository instance
func NewRecommendationRepository(database *mongo.Database, collection string) *RecommendationRepository {
	return &RecommendationRepository{
		collection: database.Collection(collection),
	}
}

// InitializeIndexes creates MongoDB indexes for optimal performance
func (r *RecommendationRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetRecommendationIndexes())
	if err != nil {
		return fmt.Errorf("failed to create recommendation indexes: %w", err)
	}
	return nil
}

// ReplaceForEngineer wholesale replaces an engineer's recommendations inside
// a transaction so readers never observe the deleted-but-not-reinserted gap.
func (r *RecommendationRepository) ReplaceForEngineer(ctx context.Context, engineerID bson.ObjectID, recs []models.TrendRecommendation) error {
	now := time.Now()
	docs := make([]any, 0, len(recs))
	for i := range recs {
		recs[i].ID = bson.NewObjectID()
		recs[i].EngineerID = engineerID
		recs[i].CreatedAt = now
		docs = append(docs, recs[i])
	}

	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		if _, err := r.collection.DeleteMany(txCtx, bson.M{"engineer_id": engineerID}); err != nil {
			return nil, err
		}
		if len(docs) > 0 {
			if _, err := r.collection.InsertMany(txCtx, docs); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace recommendations: %w", err)
	}
	return nil
}

// GetByEngineer retrieves an engineer's recommendations ordered by rank
func (r *RecommendationRepository) GetByEngineer(ctx context.Context, engineerID bson.ObjectID) ([]*models.TrendRecommendation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"engineer_id": engineerID},
		options.Find().SetSort(bson.D{{Key: "rank", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []*models.TrendRecommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return recs, nil
}
