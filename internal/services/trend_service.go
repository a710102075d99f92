package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"talent-service/internal/classify"
	"talent-service/internal/event"
	"talent-service/internal/models"
	"talent-service/internal/repository"
	"talent-service/internal/trends"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrInvalidID      = errors.New("invalid id")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateFocus = errors.New("an active focus already exists for this trend")
)

// TrendService covers trend focuses, the dashboard and recommendation
// regeneration
type TrendService struct {
	engineerRepo       *repository.EngineerRepository
	engineerSkillRepo  *repository.EngineerSkillRepository
	focusRepo          *repository.TrendFocusRepository
	recommendationRepo *repository.RecommendationRepository
	activityRepo       *repository.ActivityRepository
	recommender        *trends.Recommender
	publisher          event.Publisher
}

func NewTrendService(
	engineerRepo *repository.EngineerRepository,
	engineerSkillRepo *repository.EngineerSkillRepository,
	focusRepo *repository.TrendFocusRepository,
	recommendationRepo *repository.RecommendationRepository,
	activityRepo *repository.ActivityRepository,
	recommender *trends.Recommender,
	publisher event.Publisher,
) *TrendService {
	return &TrendService{
		engineerRepo:       engineerRepo,
		engineerSkillRepo:  engineerSkillRepo,
		focusRepo:          focusRepo,
		recommendationRepo: recommendationRepo,
		activityRepo:       activityRepo,
		recommender:        recommender,
		publisher:          publisher,
	}
}

// GetDashboard assembles the engineer's trend dashboard
func (s *TrendService) GetDashboard(ctx context.Context, engineerID string) (*models.DashboardResponse, error) {
	id, err := bson.ObjectIDFromHex(engineerID)
	if err != nil {
		return nil, ErrInvalidID
	}

	engineer, err := s.engineerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load engineer: %w", err)
	}
	if engineer == nil {
		return nil, ErrNotFound
	}

	activeFocuses, err := s.focusRepo.GetByEngineer(ctx, id, models.FocusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to load active focuses: %w", err)
	}

	completedFocuses, err := s.focusRepo.GetByEngineer(ctx, id, models.FocusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed focuses: %w", err)
	}

	recommendations, err := s.recommendationRepo.GetByEngineer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}

	recentActivities, err := s.activityRepo.GetRecentByEngineer(ctx, id, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activities: %w", err)
	}

	totalStats, err := s.activityRepo.GetDurationStats(ctx, id, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate learning time: %w", err)
	}
	weeklyStats, err := s.activityRepo.GetDurationStats(ctx, id, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly learning time: %w", err)
	}

	engineerSkills, err := s.engineerSkillRepo.GetByEngineer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load engineer skills: %w", err)
	}

	goals := make([]models.LearningGoal, 0, len(activeFocuses))
	for _, focus := range activeFocuses {
		goals = append(goals, models.LearningGoal{
			TrendName:       focus.TrendName,
			Priority:        focus.Priority,
			TargetDate:      focus.TargetDate,
			ProgressPercent: focus.ProgressPercent,
		})
	}

	return &models.DashboardResponse{
		EngineerID:       engineerID,
		EngineerInfo:     engineer,
		ActiveTrends:     activeFocuses,
		Recommendations:  recommendations,
		RecentActivities: recentActivities,
		LearningGoals:    goals,
		ProgressSummary: models.ProgressSummary{
			TotalLearningHours:  float64(totalStats.TotalMinutes) / 60,
			WeeklyLearningHours: float64(weeklyStats.TotalMinutes) / 60,
			ActiveFocusCount:    len(activeFocuses),
			CompletedFocusCount: len(completedFocuses),
			ActivitiesLogged:    int(totalStats.Count),
		},
		SkillDevelopmentChart: buildSkillChart(engineerSkills),
	}, nil
}

// buildSkillChart counts an engineer's skills per category, in category
// declaration order
func buildSkillChart(skills []*models.EngineerSkill) []models.SkillChartEntry {
	counts := make(map[models.SkillCategory]int)
	for _, skill := range skills {
		counts[classify.CategorizeSkill(skill.SkillName)]++
	}

	order := []models.SkillCategory{
		models.CategoryProgrammingLanguages, models.CategoryFrontendFrameworks,
		models.CategoryBackendFrameworks, models.CategoryDevOpsCloud,
		models.CategoryDatabases, models.CategoryBusinessMarketing,
		models.CategoryOther,
	}

	chart := make([]models.SkillChartEntry, 0, len(counts))
	for _, category := range order {
		if counts[category] > 0 {
			chart = append(chart, models.SkillChartEntry{
				Category:   category,
				SkillCount: counts[category],
			})
		}
	}
	return chart
}

// AddFocus declares a new active trend focus. A second active focus on the
// same trend is rejected with ErrDuplicateFocus, returning the focus that
// already exists so callers can surface it.
func (s *TrendService) AddFocus(ctx context.Context, req *models.AddFocusRequest) (*models.TrendFocus, error) {
	id, err := bson.ObjectIDFromHex(req.EngineerID)
	if err != nil {
		return nil, ErrInvalidID
	}

	engineer, err := s.engineerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load engineer: %w", err)
	}
	if engineer == nil {
		return nil, ErrNotFound
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	focus, err := s.focusRepo.Create(ctx, &models.TrendFocus{
		EngineerID:      id,
		TrendID:         req.TrendID,
		TrendName:       req.TrendName,
		Category:        req.Category,
		Reason:          req.Reason,
		Priority:        priority,
		TargetDate:      req.TargetDate,
		ProgressPercent: 0,
		Status:          models.FocusActive,
	})
	if err != nil {
		if repository.IsDuplicateActiveFocus(err) {
			existing, lookupErr := s.focusRepo.GetActiveByEngineerAndTrend(ctx, id, req.TrendID)
			if lookupErr != nil {
				log.Printf("Failed to load existing focus for trend %s: %v", req.TrendID, lookupErr)
			}
			return existing, ErrDuplicateFocus
		}
		return nil, fmt.Errorf("failed to create trend focus: %w", err)
	}

	s.publishFocusEvent(event.EventTypeFocusCreated, focus)
	return focus, nil
}

// UpdateFocus applies progress and/or status changes. Progress is clamped to
// [0, 100]; reaching 100 marks the focus completed.
func (s *TrendService) UpdateFocus(ctx context.Context, focusID string, req *models.UpdateFocusRequest) (*models.TrendFocus, error) {
	id, err := bson.ObjectIDFromHex(focusID)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields := bson.M{}
	if req.ProgressPercent != nil {
		progress := ClampPercent(*req.ProgressPercent)
		fields["progress_percent"] = progress
		if progress == 100 {
			fields["status"] = models.FocusCompleted
		}
	}
	if req.Status != nil {
		switch *req.Status {
		case models.FocusActive, models.FocusCompleted, models.FocusPaused, models.FocusDropped:
			fields["status"] = *req.Status
		default:
			return nil, fmt.Errorf("unknown focus status %q", *req.Status)
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	focus, err := s.focusRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update trend focus: %w", err)
	}
	if focus == nil {
		return nil, ErrNotFound
	}

	eventType := event.EventTypeFocusUpdated
	if focus.Status == models.FocusCompleted {
		eventType = event.EventTypeFocusCompleted
	}
	s.publishFocusEvent(eventType, focus)
	return focus, nil
}

// ClampPercent bounds a progress value to [0, 100]
func ClampPercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// CleanupDuplicateFocuses removes redundant active focuses that predate the
// unique index, keeping the oldest per trend. Returns the number removed.
func (s *TrendService) CleanupDuplicateFocuses(ctx context.Context, engineerID string) (int64, error) {
	id, err := bson.ObjectIDFromHex(engineerID)
	if err != nil {
		return 0, ErrInvalidID
	}

	focuses, err := s.focusRepo.GetByEngineer(ctx, id, models.FocusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to load active focuses: %w", err)
	}

	duplicateIDs := DuplicateFocusIDs(focuses)
	if len(duplicateIDs) == 0 {
		return 0, nil
	}
	return s.focusRepo.DeleteByIDs(ctx, duplicateIDs)
}

// DuplicateFocusIDs returns the ids of all but the first focus per trend.
// Input must be ordered by creation time ascending so the oldest survives.
func DuplicateFocusIDs(focuses []*models.TrendFocus) []bson.ObjectID {
	seen := make(map[string]bool)
	var duplicates []bson.ObjectID
	for _, focus := range focuses {
		if seen[focus.TrendID] {
			duplicates = append(duplicates, focus.ID)
			continue
		}
		seen[focus.TrendID] = true
	}
	return duplicates
}

// RegenerateRecommendations rebuilds and persists the engineer's
// recommendation set, wholesale replacing the previous one.
func (s *TrendService) RegenerateRecommendations(ctx context.Context, engineerID string) ([]*models.TrendRecommendation, error) {
	id, err := bson.ObjectIDFromHex(engineerID)
	if err != nil {
		return nil, ErrInvalidID
	}

	engineer, err := s.engineerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load engineer: %w", err)
	}
	if engineer == nil {
		return nil, ErrNotFound
	}

	engineerSkills, err := s.engineerSkillRepo.GetByEngineer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load engineer skills: %w", err)
	}
	skillNames := make([]string, 0, len(engineerSkills))
	for _, skill := range engineerSkills {
		skillNames = append(skillNames, skill.SkillName)
	}

	activeFocuses, err := s.focusRepo.GetByEngineer(ctx, id, models.FocusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to load active focuses: %w", err)
	}
	goals := make([]string, 0, len(activeFocuses))
	for _, focus := range activeFocuses {
		goals = append(goals, focus.TrendName)
	}

	weeklyStats, err := s.activityRepo.GetDurationStats(ctx, id, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly learning time: %w", err)
	}

	recs := s.recommender.Assemble(trends.RecommendationInput{
		Skills:      skillNames,
		Field:       engineer.ProfessionalField,
		Goals:       goals,
		WeeklyHours: int(weeklyStats.TotalMinutes / 60),
	})

	if err := s.recommendationRepo.ReplaceForEngineer(ctx, id, recs); err != nil {
		return nil, err
	}
	return s.recommendationRepo.GetByEngineer(ctx, id)
}

func (s *TrendService) publishFocusEvent(eventType string, focus *models.TrendFocus) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishFocusEvent(&event.FocusEvent{
		EventType:  eventType,
		FocusID:    focus.ID.Hex(),
		EngineerID: focus.EngineerID.Hex(),
		TrendID:    focus.TrendID,
		TrendName:  focus.TrendName,
		Priority:   focus.Priority,
		Status:     focus.Status,
		Timestamp:  time.Now().Unix(),
	})
	if err != nil {
		log.Printf("Failed to publish focus event %s: %v", eventType, err)
	}
}
