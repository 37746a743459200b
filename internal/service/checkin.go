// internal/service/checkin.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/audit"
	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/google/uuid"
)

// CheckinService resolves scanned QR tokens to guests and flips them to
// checked_in exactly once. Concurrent scans of the same token race on a
// conditional update; the loser reads back the winner's record.
type CheckinService struct {
	guests repository.GuestRepositoryIface
	audit  audit.Logger
}

func NewCheckinService(guests repository.GuestRepositoryIface, auditLogger audit.Logger) *CheckinService {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	return &CheckinService{
		guests: guests,
		audit:  auditLogger,
	}
}

// CheckinResult carries the guest snapshot after a scan. Fresh reports
// whether this scan performed the transition.
type CheckinResult struct {
	Guest *model.Guest
	Fresh bool
}

// CheckIn resolves token within the authorized wedding and marks the
// guest checked in. Tokens from other weddings behave like unknown
// tokens. A repeated scan returns the existing record together with
// ErrAlreadyCheckedIn and leaves checked_in_at untouched.
func (s *CheckinService) CheckIn(ctx context.Context, authz *auth.Authorization, token string) (*CheckinResult, error) {
	if token == "" {
		return nil, domain.ErrTokenNotFound
	}

	guest, err := s.guests.FindByTokenAndWedding(ctx, token, authz.WeddingID())
	if err != nil {
		return nil, err
	}

	if guest.Status == model.StatusCheckedIn {
		s.logScan(ctx, authz, guest.ID, false)
		return &CheckinResult{Guest: guest}, domain.ErrAlreadyCheckedIn
	}

	now := time.Now().UTC()
	applied, err := s.guests.MarkCheckedIn(ctx, guest.ID, authz.WeddingID(), now)
	if err != nil {
		return nil, err
	}

	if !applied {
		// Lost the race to another scanner.
		current, err := s.guests.FindByIDAndWedding(ctx, guest.ID, authz.WeddingID())
		if err != nil {
			return nil, err
		}
		s.logScan(ctx, authz, guest.ID, false)
		return &CheckinResult{Guest: current}, domain.ErrAlreadyCheckedIn
	}

	guest.Status = model.StatusCheckedIn
	guest.CheckedInAt = &now
	s.logScan(ctx, authz, guest.ID, true)

	return &CheckinResult{Guest: guest, Fresh: true}, nil
}

func (s *CheckinService) logScan(ctx context.Context, authz *auth.Authorization, guestID uuid.UUID, fresh bool) {
	if err := s.audit.LogCheckinScan(ctx, authz.CallerID(), authz.WeddingID(), guestID, fresh); err != nil {
		slog.WarnContext(ctx, "failed to record checkin scan", "error", err, "guest", guestID)
	}
}
