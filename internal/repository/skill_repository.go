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

type SkillRepository struct {
	collection *mongo.Collection
}

// NewSkillRepository creates a new skill repository instance
func NewSkillRepository(database *mongo.Database, collection string) *SkillRepository {
	return &SkillRepository{
		collection: database.Collection(collection),
	}
}

// InitializeIndexes creates MongoDB indexes for optimal performance
func (r *SkillRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetSkillIndexes())
	if err != nil {
		return fmt.Errorf("failed to create skill indexes: %w", err)
	}
	return nil
}

// EnsureSkill returns the canonical skill for a name, creating it with the
// given category when it does not exist yet. Skills are deduplicated by name
// across all engineers. The second return reports whether the skill was
// created by this call.
func (r *SkillRepository) EnsureSkill(ctx context.Context, name string, category models.SkillCategory) (*models.Skill, bool, error) {
	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"name":       name,
			"category":   category,
			"created_at": now,
			"updated_at": now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"name": name}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to ensure skill %q: %w", name, err)
	}
	created := result.UpsertedID != nil

	var skill models.Skill
	if err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&skill); err != nil {
		return nil, false, fmt.Errorf("failed to load skill %q: %w", name, err)
	}
	return &skill, created, nil
}

// GetByName retrieves a skill by its canonical name
func (r *SkillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&skill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill by name: %w", err)
	}
	return &skill, nil
}
