package audit

import (
	"context"

	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/google/uuid"
)

// Logger defines the interface for auditing operations
type Logger interface {
	// LogAuthzDecision logs a tenant authorization decision for a wedding
	LogAuthzDecision(
		ctx context.Context,
		actorID uuid.UUID,
		weddingID uuid.UUID,
		allowed bool,
		contextData map[string]interface{},
	) error

	// LogCheckinScan logs a QR token scan at the event
	LogCheckinScan(
		ctx context.Context,
		actorID uuid.UUID,
		weddingID uuid.UUID,
		guestID uuid.UUID,
		fresh bool,
	) error

	// LogGuestEvent logs a guest creation or deletion
	LogGuestEvent(
		ctx context.Context,
		action string,
		actorID uuid.UUID,
		guestID uuid.UUID,
	) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogAuthzDecision implements Logger.LogAuthzDecision
func (l *NoOpLogger) LogAuthzDecision(
	ctx context.Context,
	actorID uuid.UUID,
	weddingID uuid.UUID,
	allowed bool,
	contextData map[string]interface{},
) error {
	return nil
}

// LogCheckinScan implements Logger.LogCheckinScan
func (l *NoOpLogger) LogCheckinScan(
	ctx context.Context,
	actorID uuid.UUID,
	weddingID uuid.UUID,
	guestID uuid.UUID,
	fresh bool,
) error {
	return nil
}

// LogGuestEvent implements Logger.LogGuestEvent
func (l *NoOpLogger) LogGuestEvent(
	ctx context.Context,
	action string,
	actorID uuid.UUID,
	guestID uuid.UUID,
) error {
	return nil
}

// requestInfoKey is the context key for HTTP request metadata.
type requestInfoKey struct{}

// RequestInfo carries request metadata into audit entries.
type RequestInfo struct {
	RequestID string
	ClientIP  string
	UserAgent string
}

// WithRequestInfo attaches request metadata to the context so database
// loggers can record it without holding the *http.Request.
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFromContext extracts request metadata, zero when absent.
func RequestInfoFromContext(ctx context.Context) RequestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info
}

func boolPtr(b bool) *bool { return &b }

func newEntry(ctx context.Context, actionType string, actorID uuid.UUID) *model.ActivityLog {
	info := RequestInfoFromContext(ctx)
	return &model.ActivityLog{
		ActionType: actionType,
		ActorID:    actorID.String(),
		RequestID:  info.RequestID,
		ClientIP:   info.ClientIP,
		UserAgent:  info.UserAgent,
	}
}
