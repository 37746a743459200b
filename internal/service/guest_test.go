package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/mocks"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://localhost:3000"

// grantAccess runs a real guard over mocked repositories so the tests
// hold a genuine Authorization for the wedding.
func grantAccess(t *testing.T, ctrl *gomock.Controller, callerID uuid.UUID, wedding *model.Wedding) *auth.Authorization {
	t.Helper()

	profiles := mocks.NewMockProfileRepositoryIface(ctrl)
	weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

	orgID := wedding.OrganizationID
	profiles.EXPECT().FindByUser(gomock.Any(), callerID).
		Return(&model.Profile{ID: callerID, OrganizationID: &orgID, Role: model.RoleOwner}, nil)
	weddings.EXPECT().FindByID(gomock.Any(), wedding.ID).Return(wedding, nil)

	authz, err := auth.NewGuard(profiles, weddings, nil).
		AuthorizeWedding(context.Background(), callerID, wedding.ID)
	if err != nil {
		t.Fatalf("granting access: %v", err)
	}
	return authz
}

func testWedding() *model.Wedding {
	return &model.Wedding{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Rina dan Budi",
		Slug:           "rina-dan-budi",
	}
}

func TestGuestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	wedding := testWedding()
	authz := grantAccess(t, ctrl, callerID, wedding)

	t.Run("issues a token and starts pending", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)

		var created *model.Guest
		guestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *model.Guest) error {
				g.ID = uuid.New()
				created = g
				return nil
			})

		svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
		guest, err := svc.Create(context.Background(), authz, service.GuestInput{Name: "Jane Doe"})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, guest.Status)
		assert.Equal(t, wedding.ID, guest.WeddingID)
		assert.Len(t, guest.QRToken, 64)
		assert.Nil(t, guest.Contact)
		assert.Same(t, created, guest)
	})

	t.Run("tokens are unique across guests", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		guestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
		first, err := svc.Create(context.Background(), authz, service.GuestInput{Name: "Jane Doe"})
		assert.NoError(t, err)
		second, err := svc.Create(context.Background(), authz, service.GuestInput{Name: "John Doe"})
		assert.NoError(t, err)

		assert.NotEqual(t, first.QRToken, second.QRToken)
	})

	t.Run("rejects a one character name", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)

		svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
		for _, name := range []string{"J", "é"} {
			_, err := svc.Create(context.Background(), authz, service.GuestInput{Name: name})

			verr, ok := domain.AsValidationError(err)
			assert.True(t, ok, "name %q", name)
			assert.Equal(t, "Nama minimal 2 karakter", verr.Fields["name"])
		}
	})

	t.Run("blank contact is stored as null", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		guestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		blank := "   "
		svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
		guest, err := svc.Create(context.Background(), authz, service.GuestInput{Name: "Jane Doe", Contact: &blank})

		assert.NoError(t, err)
		assert.Nil(t, guest.Contact)
	})
}

func TestGuestUpdateKeepsTokenAndStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	wedding := testWedding()
	authz := grantAccess(t, ctrl, callerID, wedding)

	guestID := uuid.New()
	contact := "jane@example.com"
	stored := &model.Guest{
		ID:        guestID,
		WeddingID: wedding.ID,
		Name:      "Jane D.",
		Contact:   &contact,
		Status:    model.StatusConfirmedRSVP,
		QRToken:   "original-token",
	}

	guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
	gomock.InOrder(
		guestRepo.EXPECT().
			UpdateDetails(gomock.Any(), guestID, wedding.ID, "Jane Doe", &contact).
			Return(nil),
		guestRepo.EXPECT().
			FindByIDAndWedding(gomock.Any(), guestID, wedding.ID).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*model.Guest, error) {
				updated := *stored
				updated.Name = "Jane Doe"
				return &updated, nil
			}),
	)

	svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
	guest, err := svc.Update(context.Background(), authz, guestID, service.GuestInput{Name: "Jane Doe", Contact: &contact})

	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", guest.Name)
	assert.Equal(t, "original-token", guest.QRToken, "token never changes after issuance")
	assert.Equal(t, model.StatusConfirmedRSVP, guest.Status, "edits do not touch status")
}

func TestGuestUpdateUnknownGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	wedding := testWedding()
	authz := grantAccess(t, ctrl, callerID, wedding)

	guestID := uuid.New()
	guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
	guestRepo.EXPECT().
		UpdateDetails(gomock.Any(), guestID, wedding.ID, "Jane Doe", nil).
		Return(domain.ErrGuestNotFound)

	svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
	_, err := svc.Update(context.Background(), authz, guestID, service.GuestInput{Name: "Jane Doe"})

	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
}

func TestExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	wedding := testWedding()
	authz := grantAccess(t, ctrl, callerID, wedding)

	t.Run("zero guests yields the header only", func(t *testing.T) {
		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		guestRepo.EXPECT().FindByWedding(gomock.Any(), wedding.ID).Return(nil, nil)

		svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
		csv, err := svc.ExportCSV(context.Background(), authz)

		assert.NoError(t, err)
		assert.Equal(t, service.CSVHeader, csv)
	})

	t.Run("one row per guest with the raw token", func(t *testing.T) {
		contact := "jane@example.com"
		guests := []model.Guest{
			{ID: uuid.New(), Name: "Jane Doe", Contact: &contact, Status: model.StatusCheckedIn, QRToken: "tok-1"},
			{ID: uuid.New(), Name: "John Doe", Status: model.StatusPending, QRToken: "tok-2"},
		}

		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		guestRepo.EXPECT().FindByWedding(gomock.Any(), wedding.ID).Return(guests, nil)

		svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
		csv, err := svc.ExportCSV(context.Background(), authz)

		assert.NoError(t, err)
		lines := strings.Split(csv, "\n")
		assert.Len(t, lines, 3)
		assert.Equal(t, service.CSVHeader, lines[0])
		assert.Equal(t,
			`"Jane Doe","jane@example.com","checked_in","http://localhost:3000/invite/rina-dan-budi?guest_id=`+guests[0].ID.String()+`","tok-1"`,
			lines[1])
		assert.Equal(t,
			`"John Doe","","pending","http://localhost:3000/invite/rina-dan-budi?guest_id=`+guests[1].ID.String()+`","tok-2"`,
			lines[2])
	})

	t.Run("quotes inside fields are doubled", func(t *testing.T) {
		guests := []model.Guest{
			{ID: uuid.New(), Name: `Jane "JJ" Doe`, Status: model.StatusPending, QRToken: "tok"},
		}

		guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
		guestRepo.EXPECT().FindByWedding(gomock.Any(), wedding.ID).Return(guests, nil)

		svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
		csv, err := svc.ExportCSV(context.Background(), authz)

		assert.NoError(t, err)
		assert.Contains(t, csv, `"Jane ""JJ"" Doe"`)
	})
}

func TestInviteURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	wedding := testWedding()
	authz := grantAccess(t, ctrl, callerID, wedding)

	guestID := uuid.New()
	svc := service.NewGuestService(mocks.NewMockGuestRepositoryIface(ctrl), nil, nil, nil, testBaseURL)

	assert.Equal(t,
		"http://localhost:3000/invite/rina-dan-budi?guest_id="+guestID.String(),
		svc.InviteURL(authz, guestID))
}

func TestGuestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	wedding := testWedding()
	authz := grantAccess(t, ctrl, callerID, wedding)

	guestID := uuid.New()
	guestRepo := mocks.NewMockGuestRepositoryIface(ctrl)
	guestRepo.EXPECT().Delete(gomock.Any(), guestID, wedding.ID).Return(nil)

	svc := service.NewGuestService(guestRepo, nil, nil, nil, testBaseURL)
	assert.NoError(t, svc.Delete(context.Background(), authz, guestID))
}
