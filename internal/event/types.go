package event

import "talent-service/internal/models"

const (
	// Engineer events
	EventTypeEngineerOnboarded = "engineer.onboarded"
	EventTypeEngineerUpdated   = "engineer.updated"

	// Skill events
	EventTypeSkillCreated = "skill.created"

	// Trend focus events
	EventTypeFocusCreated   = "trend.focus.created"
	EventTypeFocusUpdated   = "trend.focus.updated"
	EventTypeFocusCompleted = "trend.focus.completed"

	// Learning activity events
	EventTypeActivityLogged = "learning.activity.logged"

	// Incoming activity events pushed by sibling services
	EventTypeInputActivity = "input.activity"

	// System events
	EventTypeServiceStarted = "system.service.started"
	EventTypeServiceStopped = "system.service.stopped"
)

// EngineerEvent represents engineer lifecycle events
type EngineerEvent struct {
	EventType         string `json:"eventType"`
	EngineerID        string `json:"engineerId"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	ProfessionalField string `json:"professionalField,omitempty"`
	SkillsCount       int    `json:"skillsCount"`
	Timestamp         int64  `json:"timestamp"`
}

// SkillEvent announces a newly canonicalized skill
type SkillEvent struct {
	EventType string `json:"eventType"`
	SkillID   string `json:"skillId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Timestamp int64  `json:"timestamp"`
}

// FocusEvent represents trend focus lifecycle events
type FocusEvent struct {
	EventType  string               `json:"eventType"`
	FocusID    string               `json:"focusId"`
	EngineerID string               `json:"engineerId"`
	TrendID    string               `json:"trendId"`
	TrendName  string               `json:"trendName"`
	Priority   models.FocusPriority `json:"priority,omitempty"`
	Status     models.FocusStatus   `json:"status"`
	Timestamp  int64                `json:"timestamp"`
}

// ActivityEvent represents a logged learning activity
type ActivityEvent struct {
	EventType       string   `json:"eventType"`
	ActivityID      string   `json:"activityId,omitempty"`
	EngineerID      string   `json:"engineerId"`
	TrendID         string   `json:"trendId,omitempty"`
	ActivityType    string   `json:"activityType"`
	DurationMinutes int      `json:"durationMinutes"`
	SkillsGained    []string `json:"skillsGained,omitempty"`
	Timestamp       int64    `json:"timestamp"`
}

// InputActivityEvent is the payload sibling services publish to have a
// learning activity recorded on an engineer's timeline
type InputActivityEvent struct {
	EventType         string   `json:"eventType"`
	EngineerID        string   `json:"engineerId"`
	TrendID           string   `json:"trendId,omitempty"`
	ActivityType      string   `json:"activityType"`
	Description       string   `json:"description,omitempty"`
	DurationMinutes   int      `json:"durationMinutes"`
	SkillsGained      []string `json:"skillsGained,omitempty"`
	CompletionPercent int      `json:"completionPercent"`
	Source            string   `json:"source,omitempty"`
	Timestamp         int64    `json:"timestamp"`
}

// SystemEvent represents service lifecycle events
type SystemEvent struct {
	EventType   string `json:"eventType"`
	ServiceName string `json:"serviceName"`
	Message     string `json:"message,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}
