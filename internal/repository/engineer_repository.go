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

type EngineerRepository struct {
	collection *mongo.Collection
}

// NewEngineerRepository creates a new engineer repository instance
func NewEngineerRepository(database *mongo.Database, collection string) *EngineerRepository {
	return &EngineerRepository{
		collection: database.Collection(collection),
	}
}

// InitializeIndexes creates MongoDB indexes for optimal performance
func (r *EngineerRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetEngineerIndexes())
	if err != nil {
		return fmt.Errorf("failed to create engineer indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an engineer by ID
func (r *EngineerRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Engineer, error) {
	var engineer models.Engineer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&engineer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get engineer by ID: %w", err)
	}
	return &engineer, nil
}

// GetByEmail retrieves an engineer by email
func (r *EngineerRepository) GetByEmail(ctx context.Context, email string) (*models.Engineer, error) {
	var engineer models.Engineer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&engineer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get engineer by email: %w", err)
	}
	return &engineer, nil
}

// UpsertByEmail creates the engineer on first submission and overwrites the
// derived profile fields on resubmission, preserving the id.
func (r *EngineerRepository) UpsertByEmail(ctx context.Context, engineer *models.Engineer) (*models.Engineer, error) {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":               engineer.Name,
			"residence_address":  engineer.ResidenceAddress,
			"primary_role":       engineer.PrimaryRole,
			"experience_level":   engineer.ExperienceLevel,
			"professional_field": engineer.ProfessionalField,
			"updated_at":         now,
		},
		"$setOnInsert": bson.M{
			"email":      engineer.Email,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.Engineer
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": engineer.Email}, update, opts).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert engineer: %w", err)
	}
	return &saved, nil
}
