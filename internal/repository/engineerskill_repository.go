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

type EngineerSkillRepository struct {
	collection *mongo.Collection
}

// NewEngineerSkillRepository creates a new engineer skill repository instance
func NewEngineerSkillRepository(database *mongo.Database, collection string) *EngineerSkillRepository {
	return &EngineerSkillRepository{
		collection: database.Collection(collection),
	}
}

// InitializeIndexes creates MongoDB indexes for optimal performance
func (r *EngineerSkillRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetEngineerSkillIndexes())
	if err != nil {
		return fmt.Errorf("failed to create engineer skill indexes: %w", err)
	}
	return nil
}

// Upsert records an engineer's skill at a level; resubmitting the same skill
// updates the level instead of duplicating the association.
func (r *EngineerSkillRepository) Upsert(ctx context.Context, engineerID, skillID bson.ObjectID, skillName string, level models.ProficiencyLevel) error {
	now := time.Now()
	filter := bson.M{
		"engineer_id": engineerID,
		"skill_id":    skillID,
	}
	update := bson.M{
		"$set": bson.M{
			"skill_name": skillName,
			"level":      level,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert engineer skill %q: %w", skillName, err)
	}
	return nil
}

// GetByEngineer retrieves all skill associations for an engineer
func (r *EngineerSkillRepository) GetByEngineer(ctx context.Context, engineerID bson.ObjectID) ([]*models.EngineerSkill, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"engineer_id": engineerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list engineer skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []*models.EngineerSkill
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode engineer skills: %w", err)
	}
	return skills, nil
}

// DeleteByEngineer removes every skill association for an engineer; used when
// a CV resubmission overwrites the skill list.
func (r *EngineerSkillRepository) DeleteByEngineer(ctx context.Context, engineerID bson.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"engineer_id": engineerID})
	if err != nil {
		return fmt.Errorf("failed to delete engineer skills: %w", err)
	}
	return nil
}

// CountByEngineer returns the number of recorded skills for an engineer
func (r *EngineerSkillRepository) CountByEngineer(ctx context.Context, engineerID bson.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"engineer_id": engineerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count engineer skills: %w", err)
	}
	return count, nil
}
