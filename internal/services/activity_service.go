package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"talent-service/internal/event"
	"talent-service/internal/models"
	"talent-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ActivityService appends learning activities and keeps related focus
// progress moving
type ActivityService struct {
	engineerRepo *repository.EngineerRepository
	activityRepo *repository.ActivityRepository
	focusRepo    *repository.TrendFocusRepository
	publisher    event.Publisher
}

func NewActivityService(
	engineerRepo *repository.EngineerRepository,
	activityRepo *repository.ActivityRepository,
	focusRepo *repository.TrendFocusRepository,
	publisher event.Publisher,
) *ActivityService {
	return &ActivityService{
		engineerRepo: engineerRepo,
		activityRepo: activityRepo,
		focusRepo:    focusRepo,
		publisher:    publisher,
	}
}

// LogActivity appends an activity to the engineer's timeline. When the
// activity names a trend, the matching active focus progress is advanced to
// the reported completion if it is further along.
func (s *ActivityService) LogActivity(ctx context.Context, req *models.ActivityRequest) (*models.LearningActivity, error) {
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

	if req.DurationMinutes < 0 {
		return nil, fmt.Errorf("duration must not be negative")
	}

	activity, err := s.activityRepo.Create(ctx, &models.LearningActivity{
		EngineerID:        id,
		TrendID:           req.TrendID,
		ActivityType:      req.ActivityType,
		Description:       req.Description,
		DurationMinutes:   req.DurationMinutes,
		SkillsGained:      req.SkillsGained,
		CompletionPercent: ClampPercent(req.CompletionPercent),
	})
	if err != nil {
		return nil, err
	}

	if req.TrendID != "" && activity.CompletionPercent > 0 {
		s.advanceFocusProgress(ctx, id, req.TrendID, activity.CompletionPercent)
	}

	if s.publisher != nil {
		err := s.publisher.PublishActivityEvent(&event.ActivityEvent{
			EventType:       event.EventTypeActivityLogged,
			ActivityID:      activity.ID.Hex(),
			EngineerID:      req.EngineerID,
			TrendID:         req.TrendID,
			ActivityType:    req.ActivityType,
			DurationMinutes: req.DurationMinutes,
			SkillsGained:    req.SkillsGained,
			Timestamp:       time.Now().Unix(),
		})
		if err != nil {
			log.Printf("Failed to publish activity event: %v", err)
		}
	}

	return activity, nil
}

// advanceFocusProgress is best-effort; a missing focus or update failure never
// fails the activity log
func (s *ActivityService) advanceFocusProgress(ctx context.Context, engineerID bson.ObjectID, trendID string, completion int) {
	focus, err := s.focusRepo.GetActiveByEngineerAndTrend(ctx, engineerID, trendID)
	if err != nil {
		log.Printf("Failed to look up focus for trend %s: %v", trendID, err)
		return
	}
	if focus == nil || focus.ProgressPercent >= completion {
		return
	}

	fields := bson.M{"progress_percent": completion}
	if completion == 100 {
		fields["status"] = models.FocusCompleted
	}
	if _, err := s.focusRepo.Update(ctx, focus.ID, fields); err != nil {
		log.Printf("Failed to advance focus progress for trend %s: %v", trendID, err)
	}
}

// RecordExternalActivity handles activity events delivered over the message
// bus by sibling services
func (s *ActivityService) RecordExternalActivity(ctx context.Context, ev *event.InputActivityEvent) error {
	_, err := s.LogActivity(ctx, &models.ActivityRequest{
		EngineerID:        ev.EngineerID,
		TrendID:           ev.TrendID,
		ActivityType:      ev.ActivityType,
		Description:       ev.Description,
		DurationMinutes:   ev.DurationMinutes,
		SkillsGained:      ev.SkillsGained,
		CompletionPercent: ev.CompletionPercent,
	})
	return err
}
