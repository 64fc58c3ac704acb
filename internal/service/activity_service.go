package service

import (
	"context"
	"log"

	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

// ActivityService records and lists audit trail entries.
type ActivityService interface {
	// Record appends an activity entry. Recording is best-effort: failures
	// are logged server-side and never fail the triggering request.
	Record(ctx context.Context, userID uint, action model.ActivityType, ip, metadata string)
	ListByUser(ctx context.Context, userID uint, q repository.ListQuery) ([]model.ActivityLog, error)
	List(ctx context.Context, q repository.ListQuery) ([]model.ActivityLog, error)
}

type activityService struct {
	repo repository.ActivityLogRepository
}

// NewActivityService builds an ActivityService.
func NewActivityService(repo repository.ActivityLogRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Record(ctx context.Context, userID uint, action model.ActivityType, ip, metadata string) {
	entry := &model.ActivityLog{
		UserID:    userID,
		Action:    action,
		IPAddress: ip,
		Metadata:  metadata,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("activity log %s for user %d: %v", action, userID, err)
	}
}

func (s *activityService) ListByUser(ctx context.Context, userID uint, q repository.ListQuery) ([]model.ActivityLog, error) {
	return s.repo.ListByUser(ctx, userID, q)
}

func (s *activityService) List(ctx context.Context, q repository.ListQuery) ([]model.ActivityLog, error) {
	return s.repo.List(ctx, q)
}
