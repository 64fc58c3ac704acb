package repository

import (
	"context"

	"gorm.io/gorm"

	"adminpanel/internal/model"
)

// ActivityLogRepository defines activity log persistence. The log is
// append-only: entries are created and listed, never updated or deleted.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	List(ctx context.Context, q ListQuery) ([]model.ActivityLog, error)
	ListByUser(ctx context.Context, userID uint, q ListQuery) ([]model.ActivityLog, error)
}

type activityLogRepository struct {
	store *Store[model.ActivityLog]
	db    *gorm.DB
}

// NewActivityLogRepository builds a GORM-backed activity log repository.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{store: NewStore[model.ActivityLog](db), db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	return r.store.Create(ctx, entry)
}

func (r *activityLogRepository) List(ctx context.Context, q ListQuery) ([]model.ActivityLog, error) {
	q.OrderColumn = "timestamp"
	return r.store.List(ctx, q)
}

func (r *activityLogRepository) ListByUser(ctx context.Context, userID uint, q ListQuery) ([]model.ActivityLog, error) {
	q = q.Clamp()
	var entries []model.ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
