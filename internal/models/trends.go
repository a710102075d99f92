package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// TrendCategory is the closed trend taxonomy used by the catalog and the
// industry-to-category relevance mapping
type TrendCategory string

const (
	TrendAIMachineLearning   TrendCategory = "AI & Machine Learning"
	TrendFrontendDevelopment TrendCategory = "Frontend Development"
	TrendBackendDevelopment  TrendCategory = "Backend Development"
	TrendDevOpsCloud         TrendCategory = "DevOps & Cloud"
	TrendDataEngineering     TrendCategory = "Data Engineering"
	TrendMobileDevelopment   TrendCategory = "Mobile Development"
	TrendCybersecurity       TrendCategory = "Cybersecurity"
	TrendBlockchain          TrendCategory = "Blockchain"
	TrendLowCode             TrendCategory = "Low-Code/No-Code"
	TrendQuantumComputing    TrendCategory = "Quantum Computing"
)

// FocusStatus tracks the lifecycle of a trend focus
type FocusStatus string

const (
	FocusActive    FocusStatus = "active"
	FocusCompleted FocusStatus = "completed"
	FocusPaused    FocusStatus = "paused"
	FocusDropped   FocusStatus = "dropped"
)

// FocusPriority is the declared urgency of a trend focus
type FocusPriority string

const (
	PriorityHigh   FocusPriority = "high"
	PriorityMedium FocusPriority = "medium"
	PriorityLow    FocusPriority = "low"
)

// Trend is an externally-sourced technology topic with market metadata.
// Trends are AI-generated or served from the static fallback catalog; they are
// not authored by end users.
type Trend struct {
	ID          string        `bson:"trend_id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Category    TrendCategory `bson:"category" json:"category"`
	Popularity  string        `bson:"popularity" json:"popularity"`
	Skills      []string      `bson:"skills" json:"skills"`
	JobOpenings int           `bson:"job_openings" json:"job_openings"`
	SalaryRange string        `bson:"salary_range" json:"salary_range"`
	GrowthRate  string        `bson:"growth_rate" json:"growth_rate"`
	TimeToLearn string        `bson:"time_to_learn" json:"time_to_learn"`
}

// TrendFocus is an engineer's active commitment to learn a specific trend
type TrendFocus struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EngineerID      bson.ObjectID `bson:"engineer_id" json:"engineer_id"`
	TrendID         string        `bson:"trend_id" json:"trend_id"`
	TrendName       string        `bson:"trend_name" json:"trend_name"`
	Category        TrendCategory `bson:"category" json:"category"`
	Reason          string        `bson:"reason,omitempty" json:"reason,omitempty"`
	Priority        FocusPriority `bson:"priority" json:"priority"`
	TargetDate      *time.Time    `bson:"target_date,omitempty" json:"target_date,omitempty"`
	ProgressPercent int           `bson:"progress_percent" json:"progress_percent"`
	Status          FocusStatus   `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// TrendRecommendation is a scored suggestion generated for an engineer.
// Recommendations are wholesale replaced on each regeneration.
type TrendRecommendation struct {
	ID                    bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EngineerID            bson.ObjectID `bson:"engineer_id" json:"engineer_id"`
	TrendID               string        `bson:"trend_id" json:"trend_id"`
	TrendName             string        `bson:"trend_name" json:"trend_name"`
	Category              TrendCategory `bson:"category" json:"category"`
	RelevanceScore        int           `bson:"relevance_score" json:"relevance_score"`
	MarketAlignmentScore  int           `bson:"market_alignment_score" json:"market_alignment_score"`
	CareerImpactScore     int           `bson:"career_impact_score" json:"career_impact_score"`
	MatchingSkills        []string      `bson:"matching_skills" json:"matching_skills"`
	MissingSkills         []string      `bson:"missing_skills" json:"missing_skills"`
	EstimatedLearningTime string        `bson:"estimated_learning_time,omitempty" json:"estimated_learning_time,omitempty"`
	Reasoning             string        `bson:"reasoning,omitempty" json:"reasoning,omitempty"`
	Rank                  int           `bson:"rank" json:"rank"`
	CreatedAt             time.Time     `bson:"created_at" json:"created_at"`
}

// LearningActivity is an append-only log entry of learning time spent
type LearningActivity struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EngineerID        bson.ObjectID `bson:"engineer_id" json:"engineer_id"`
	TrendID           string        `bson:"trend_id,omitempty" json:"trend_id,omitempty"`
	ActivityType      string        `bson:"activity_type" json:"activity_type"`
	Description       string        `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes   int           `bson:"duration_minutes" json:"duration_minutes"`
	SkillsGained      []string      `bson:"skills_gained,omitempty" json:"skills_gained,omitempty"`
	CompletionPercent int           `bson:"completion_percent" json:"completion_percent"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
}

// GetTrendFocusIndexes returns MongoDB indexes for the trend_focuses collection.
// The partial unique index guarantees at most one active focus per
// (engineer, trend) pair; concurrent adds surface as duplicate key errors.
func GetTrendFocusIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "engineer_id", Value: 1},
				{Key: "trend_id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": string(FocusActive)}),
		},
		{
			Keys: bson.D{
				{Key: "engineer_id", Value: 1},
				{Key: "status", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "created_at", Value: 1},
			},
		},
	}
}

// GetRecommendationIndexes returns MongoDB indexes for the trend_recommendations collection
func GetRecommendationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "engineer_id", Value: 1},
				{Key: "rank", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "created_at", Value: -1},
			},
		},
	}
}

// GetLearningActivityIndexes returns MongoDB indexes for the learning_activities collection
func GetLearningActivityIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "engineer_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "trend_id", Value: 1},
			},
		},
	}
}
