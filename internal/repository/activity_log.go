// internal/repository/activity_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository handles database operations for activity logs
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{
		db: db,
	}
}

// Create inserts a new activity log entry
func (r *ActivityLogRepository) Create(ctx context.Context, log *model.ActivityLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity log: %w", result.Error)
	}

	return nil
}

// QueryParams holds parameters for querying activity logs
type QueryParams struct {
	ActionType string
	EntityType string
	EntityID   string
	ActorID    string
	Result     *bool
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
}

// Query retrieves activity logs based on the provided query parameters
func (r *ActivityLogRepository) Query(ctx context.Context, params QueryParams) ([]model.ActivityLog, int64, error) {
	var logs []model.ActivityLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.ActivityLog{})

	// Apply filters
	if params.ActionType != "" {
		query = query.Where("action_type = ?", params.ActionType)
	}
	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}
	if params.EntityID != "" {
		query = query.Where("entity_id = ?", params.EntityID)
	}
	if params.ActorID != "" {
		query = query.Where("actor_id = ?", params.ActorID)
	}
	if params.Result != nil {
		query = query.Where("result = ?", *params.Result)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	// Get total count for pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	// Apply pagination
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100) // Default limit
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	// Execute query with pagination and ordering
	result := query.Order("timestamp DESC").Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query activity logs: %w", result.Error)
	}

	return logs, count, nil
}
