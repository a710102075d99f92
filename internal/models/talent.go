package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ProficiencyLevel is the 4-level proficiency ordinal used across the service
type ProficiencyLevel string

const (
	LevelBeginner     ProficiencyLevel = "beginner"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelConfirmed    ProficiencyLevel = "confirmed"
	LevelExpert       ProficiencyLevel = "expert"
)

// SkillCategory is the closed set of coarse skill categories
type SkillCategory string

const (
	CategoryProgrammingLanguages SkillCategory = "Programming Languages"
	CategoryFrontendFrameworks   SkillCategory = "Frontend Frameworks"
	CategoryBackendFrameworks    SkillCategory = "Backend Frameworks"
	CategoryDevOpsCloud          SkillCategory = "DevOps & Cloud"
	CategoryDatabases            SkillCategory = "Databases"
	CategoryBusinessMarketing    SkillCategory = "Business & Marketing"
	CategoryOther                SkillCategory = "Other"
)

// Engineer represents a candidate whose CV has been processed.
// Created on first CV submission; resubmission overwrites name/address/skills
// but preserves the id.
type Engineer struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string        `bson:"name" json:"name"`
	Email             string        `bson:"email" json:"email"`
	ResidenceAddress  string        `bson:"residence_address,omitempty" json:"residence_address,omitempty"`
	PrimaryRole       string        `bson:"primary_role,omitempty" json:"primary_role,omitempty"`
	ExperienceLevel   string        `bson:"experience_level,omitempty" json:"experience_level,omitempty"`
	ProfessionalField string        `bson:"professional_field,omitempty" json:"professional_field,omitempty"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updated_at"`
}

// Skill is a canonical skill entity, deduplicated by name across all engineers
type Skill struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string        `bson:"name" json:"name"`
	Category  SkillCategory `bson:"category" json:"category"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// EngineerSkill associates an engineer with a skill at a proficiency level.
// The skill name is denormalized for dashboard queries and overlap scoring.
type EngineerSkill struct {
	ID         bson.ObjectID    `bson:"_id,omitempty" json:"id,omitempty"`
	EngineerID bson.ObjectID    `bson:"engineer_id" json:"engineer_id"`
	SkillID    bson.ObjectID    `bson:"skill_id" json:"skill_id"`
	SkillName  string           `bson:"skill_name" json:"skill_name"`
	Level      ProficiencyLevel `bson:"level" json:"level"`
	CreatedAt  time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `bson:"updated_at" json:"updated_at"`
}

// GetEngineerIndexes returns MongoDB indexes for the engineers collection
func GetEngineerIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "professional_field", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "created_at", Value: -1},
			},
		},
	}
}

// GetSkillIndexes returns MongoDB indexes for the skills collection
func GetSkillIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
			},
		},
	}
}

// GetEngineerSkillIndexes returns MongoDB indexes for the engineer_skills collection
func GetEngineerSkillIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "engineer_id", Value: 1},
				{Key: "skill_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "engineer_id", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "skill_id", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "level", Value: 1},
			},
		},
	}
}
