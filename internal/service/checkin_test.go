package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/audit"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/mocks"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	wedding := testWedding()
	authz := grantAccess(t, ctrl, callerID, wedding)

	guestID := uuid.New()
	pendingGuest := func() *model.Guest {
		return &model.Guest{
			ID:        guestID,
			WeddingID: wedding.ID,
			Name:      "Jane Doe",
			Status:    model.StatusConfirmedRSVP,
			QRToken:   "tok-abc",
		}
	}

	t.Run("first scan flips the guest to checked_in", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		gomock.InOrder(
			guestRepo.EXPECT().
				FindByTokenAndWedding(gomock.Any(), "tok-abc", wedding.ID).
				Return(pendingGuest(), nil),
			guestRepo.EXPECT().
				MarkCheckedIn(gomock.Any(), guestID, wedding.ID, gomock.Any()).
				Return(true, nil),
		)

		svc := service.NewCheckinService(guestRepo, nil)
		result, err := svc.CheckIn(context.Background(), authz, "tok-abc")

		assert.NoError(t, err)
		assert.True(t, result.Fresh)
		assert.Equal(t, model.StatusCheckedIn, result.Guest.Status)
		assert.NotNil(t, result.Guest.CheckedInAt)
	})

	t.Run("repeat scan reports the original record", func(t *testing.T) {
		checkedInAt := time.Date(2026, 6, 1, 17, 30, 0, 0, time.UTC)
		already := pendingGuest()
		already.Status = model.StatusCheckedIn
		already.CheckedInAt = &checkedInAt

		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		guestRepo.EXPECT().
			FindByTokenAndWedding(gomock.Any(), "tok-abc", wedding.ID).
			Return(already, nil)

		svc := service.NewCheckinService(guestRepo, nil)
		result, err := svc.CheckIn(context.Background(), authz, "tok-abc")

		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
		assert.False(t, result.Fresh)
		assert.Equal(t, &checkedInAt, result.Guest.CheckedInAt, "timestamp survives repeat scans")
	})

	t.Run("losing the race reads back the winner", func(t *testing.T) {
		checkedInAt := time.Date(2026, 6, 1, 17, 30, 0, 0, time.UTC)

		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		gomock.InOrder(
			guestRepo.EXPECT().
				FindByTokenAndWedding(gomock.Any(), "tok-abc", wedding.ID).
				Return(pendingGuest(), nil),
			guestRepo.EXPECT().
				MarkCheckedIn(gomock.Any(), guestID, wedding.ID, gomock.Any()).
				Return(false, nil),
			guestRepo.EXPECT().
				FindByIDAndWedding(gomock.Any(), guestID, wedding.ID).
				DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*model.Guest, error) {
					g := pendingGuest()
					g.Status = model.StatusCheckedIn
					g.CheckedInAt = &checkedInAt
					return g, nil
				}),
		)

		svc := service.NewCheckinService(guestRepo, nil)
		result, err := svc.CheckIn(context.Background(), authz, "tok-abc")

		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
		assert.Equal(t, &checkedInAt, result.Guest.CheckedInAt)
	})

	t.Run("a failing audit store does not block the scan", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		gomock.InOrder(
			guestRepo.EXPECT().
				FindByTokenAndWedding(gomock.Any(), "tok-abc", wedding.ID).
				Return(pendingGuest(), nil),
			guestRepo.EXPECT().
				MarkCheckedIn(gomock.Any(), guestID, wedding.ID, gomock.Any()).
				Return(true, nil),
		)

		svc := service.NewCheckinService(guestRepo, failingAuditLogger{&audit.NoOpLogger{}})
		result, err := svc.CheckIn(context.Background(), authz, "tok-abc")

		assert.NoError(t, err)
		assert.True(t, result.Fresh)
	})

	t.Run("unknown token", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		guestRepo.EXPECT().
			FindByTokenAndWedding(gomock.Any(), "tok-zzz", wedding.ID).
			Return(nil, domain.ErrTokenNotFound)

		svc := service.NewCheckinService(guestRepo, nil)
		_, err := svc.CheckIn(context.Background(), authz, "tok-zzz")

		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("empty token never reaches the repository", func(t *testing.T) {
		svc := service.NewCheckinService(mocks.NewMockGuestRepositoryIface(ctrl), nil)
		_, err := svc.CheckIn(context.Background(), authz, "")

		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})
}

// failingAuditLogger rejects every scan entry.
type failingAuditLogger struct{ *audit.NoOpLogger }

func (failingAuditLogger) LogCheckinScan(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, bool) error {
	return errors.New("audit store unavailable")
}
