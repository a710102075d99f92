package models

import "time"

// OnboardingRequest is the CV submission payload
type OnboardingRequest struct {
	CVText string `json:"cv_text"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// ContactInfo is the structured contact block the assessment step extracts
type ContactInfo struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// AssessedSkill is a (skill, level) pair as reported by the AI assessment
type AssessedSkill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// AssessmentData is the structured output of the AI CV assessment.
// Field names follow the assessment JSON contract consumed by the frontend.
type AssessmentData struct {
	TechnicalSkills      []AssessedSkill `json:"technicalSkills"`
	SoftSkills           []string        `json:"softSkills"`
	Strengths            []string        `json:"strengths"`
	ImprovementAreas     []string        `json:"improvementAreas"`
	ExtractedContactInfo ContactInfo     `json:"extractedContactInfo"`
}

// EmployeeSummary is the condensed engineer block in the onboarding response
type EmployeeSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	ExperienceLevel  string `json:"experience_level"`
	ResidenceAddress string `json:"residence_address"`
	SkillsCount      int    `json:"skills_count"`
}

// OnboardingResponse is the CV onboarding response body
type OnboardingResponse struct {
	Success           bool            `json:"success"`
	Message           string          `json:"message"`
	Employee          EmployeeSummary `json:"employee"`
	AssessmentSummary string          `json:"assessment_summary"`
	AssessmentData    AssessmentData  `json:"assessment_data"`
}

// AddFocusRequest is the payload for declaring a new trend focus
type AddFocusRequest struct {
	EngineerID string        `json:"engineer_id"`
	TrendID    string        `json:"trend_id"`
	TrendName  string        `json:"trend_name"`
	Category   TrendCategory `json:"category"`
	Reason     string        `json:"reason,omitempty"`
	Priority   FocusPriority `json:"priority,omitempty"`
	TargetDate *time.Time    `json:"target_date,omitempty"`
}

// UpdateFocusRequest updates progress and/or status of an existing focus
type UpdateFocusRequest struct {
	ProgressPercent *int         `json:"progress_percent,omitempty"`
	Status          *FocusStatus `json:"status,omitempty"`
}

// ActivityRequest is the payload for logging a learning activity
type ActivityRequest struct {
	EngineerID        string   `json:"engineer_id"`
	TrendID           string   `json:"trend_id,omitempty"`
	ActivityType      string   `json:"activity_type"`
	Description       string   `json:"description,omitempty"`
	DurationMinutes   int      `json:"duration_minutes"`
	SkillsGained      []string `json:"skills_gained,omitempty"`
	CompletionPercent int      `json:"completion_percent"`
}

// ProgressSummary aggregates learning statistics for the dashboard
type ProgressSummary struct {
	TotalLearningHours  float64 `json:"total_learning_hours"`
	WeeklyLearningHours float64 `json:"weekly_learning_hours"`
	ActiveFocusCount    int     `json:"active_focus_count"`
	CompletedFocusCount int     `json:"completed_focus_count"`
	ActivitiesLogged    int     `json:"activities_logged"`
}

// SkillChartEntry is a single slice of the skill development chart
type SkillChartEntry struct {
	Category   SkillCategory `json:"category"`
	SkillCount int           `json:"skill_count"`
}

// LearningGoal is a focus projected into a goal line for the dashboard
type LearningGoal struct {
	TrendName       string        `json:"trend_name"`
	Priority        FocusPriority `json:"priority"`
	TargetDate      *time.Time    `json:"target_date,omitempty"`
	ProgressPercent int           `json:"progress_percent"`
}

// DashboardResponse is the trend dashboard response body
type DashboardResponse struct {
	EngineerID            string                 `json:"engineer_id"`
	EngineerInfo          *Engineer              `json:"engineer_info"`
	ActiveTrends          []*TrendFocus          `json:"active_trends"`
	Recommendations       []*TrendRecommendation `json:"recommendations"`
	RecentActivities      []*LearningActivity    `json:"recent_activities"`
	LearningGoals         []LearningGoal         `json:"learning_goals"`
	ProgressSummary       ProgressSummary        `json:"progress_summary"`
	SkillDevelopmentChart []SkillChartEntry      `json:"skill_development_chart"`
}

// CatalogResponse is the trend catalog endpoint body
type CatalogResponse struct {
	Trends []Trend `json:"trends"`
}
