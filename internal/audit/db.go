package audit

import (
	"context"
	"fmt"

	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/google/uuid"
)

// DatabaseLogger persists audit entries via the activity log repository.
type DatabaseLogger struct {
	repo *repository.ActivityLogRepository
}

// NewDatabaseLogger creates a new DatabaseLogger
func NewDatabaseLogger(repo *repository.ActivityLogRepository) *DatabaseLogger {
	return &DatabaseLogger{repo: repo}
}

// LogAuthzDecision implements Logger.LogAuthzDecision
func (l *DatabaseLogger) LogAuthzDecision(
	ctx context.Context,
	actorID uuid.UUID,
	weddingID uuid.UUID,
	allowed bool,
	contextData map[string]interface{},
) error {
	entry := newEntry(ctx, model.ActionAuthorizeWedding, actorID)
	entry.EntityType = "wedding"
	entry.EntityID = weddingID.String()
	entry.Result = boolPtr(allowed)
	entry.Context = contextData

	if err := l.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("logging authz decision: %w", err)
	}
	return nil
}

// LogCheckinScan implements Logger.LogCheckinScan
func (l *DatabaseLogger) LogCheckinScan(
	ctx context.Context,
	actorID uuid.UUID,
	weddingID uuid.UUID,
	guestID uuid.UUID,
	fresh bool,
) error {
	entry := newEntry(ctx, model.ActionCheckin, actorID)
	entry.EntityType = "guest"
	entry.EntityID = guestID.String()
	entry.Result = boolPtr(fresh)
	entry.Context = model.JSONMap{"wedding_id": weddingID.String()}

	if err := l.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("logging checkin scan: %w", err)
	}
	return nil
}

// LogGuestEvent implements Logger.LogGuestEvent
func (l *DatabaseLogger) LogGuestEvent(
	ctx context.Context,
	action string,
	actorID uuid.UUID,
	guestID uuid.UUID,
) error {
	entry := newEntry(ctx, action, actorID)
	entry.EntityType = "guest"
	entry.EntityID = guestID.String()

	if err := l.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("logging guest event: %w", err)
	}
	return nil
}
