package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/handler"
	"github.com/annassetiawan/tamumu-app/internal/mocks"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newInviteRouter(h *handler.InviteHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/invite/{slug}", h.ShowHandler)
	r.Post("/invite/{slug}/rsvp", h.RSVPHandler)
	return r
}

func TestShowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wedding := &model.Wedding{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Rina dan Budi",
		Slug:           "rina-dan-budi",
	}
	contact := "jane@example.com"
	guest := &model.Guest{
		ID:        uuid.New(),
		WeddingID: wedding.ID,
		Name:      "Jane Doe",
		Contact:   &contact,
		Status:    model.StatusPending,
		QRToken:   "tok-super-secret",
	}

	t.Run("no credentials needed, no secrets leaked", func(t *testing.T) {
		guests := mocks.NewMockGuestRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		weddings.EXPECT().FindBySlug(gomock.Any(), wedding.Slug).Return(wedding, nil)
		guests.EXPECT().FindByIDAndWedding(gomock.Any(), guest.ID, wedding.ID).Return(guest, nil)

		h := handler.NewInviteHandler(service.NewRSVPService(guests, weddings))

		req := httptest.NewRequest(http.MethodGet, "/invite/rina-dan-budi?guest_id="+guest.ID.String(), nil)
		rec := httptest.NewRecorder()
		newInviteRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Jane Doe")
		assert.NotContains(t, body, "tok-super-secret")
		assert.NotContains(t, body, "jane@example.com")
	})

	t.Run("unknown slug answers 404", func(t *testing.T) {
		guests := mocks.NewMockGuestRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		weddings.EXPECT().FindBySlug(gomock.Any(), "no-such-wedding").
			Return(nil, domain.ErrWeddingNotFound)

		h := handler.NewInviteHandler(service.NewRSVPService(guests, weddings))

		req := httptest.NewRequest(http.MethodGet, "/invite/no-such-wedding", nil)
		rec := httptest.NewRecorder()
		newInviteRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRSVPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wedding := &model.Wedding{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Rina dan Budi",
		Slug:           "rina-dan-budi",
	}
	guestID := uuid.New()

	t.Run("confirms attendance", func(t *testing.T) {
		guests := mocks.NewMockGuestRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		gomock.InOrder(
			weddings.EXPECT().FindBySlug(gomock.Any(), wedding.Slug).Return(wedding, nil),
			guests.EXPECT().FindByIDAndWedding(gomock.Any(), guestID, wedding.ID).
				Return(&model.Guest{ID: guestID, WeddingID: wedding.ID, Name: "Jane D.", Status: model.StatusPending}, nil),
			guests.EXPECT().MarkRSVP(gomock.Any(), guestID, wedding.ID, "Jane Doe", gomock.Any(), gomock.Any()).
				Return(true, nil),
			guests.EXPECT().FindByIDAndWedding(gomock.Any(), guestID, wedding.ID).
				Return(&model.Guest{ID: guestID, WeddingID: wedding.ID, Name: "Jane Doe", Status: model.StatusConfirmedRSVP}, nil),
		)

		h := handler.NewInviteHandler(service.NewRSVPService(guests, weddings))

		req := httptest.NewRequest(http.MethodPost,
			"/invite/rina-dan-budi/rsvp?guest_id="+guestID.String(),
			strings.NewReader(`{"name":"Jane Doe","message":"Kami pasti datang!"}`))
		rec := httptest.NewRecorder()
		newInviteRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.RSVPResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.StatusConfirmedRSVP, resp.Guest.Status)
	})

	t.Run("missing guest_id answers 400", func(t *testing.T) {
		h := handler.NewInviteHandler(service.NewRSVPService(
			mocks.NewMockGuestRepositoryIface(ctrl),
			mocks.NewMockWeddingRepositoryIface(ctrl),
		))

		req := httptest.NewRequest(http.MethodPost, "/invite/rina-dan-budi/rsvp",
			strings.NewReader(`{"name":"Jane Doe"}`))
		rec := httptest.NewRecorder()
		newInviteRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short name answers 400 with the field message", func(t *testing.T) {
		h := handler.NewInviteHandler(service.NewRSVPService(
			mocks.NewMockGuestRepositoryIface(ctrl),
			mocks.NewMockWeddingRepositoryIface(ctrl),
		))

		req := httptest.NewRequest(http.MethodPost,
			"/invite/rina-dan-budi/rsvp?guest_id="+guestID.String(),
			strings.NewReader(`{"name":"J"}`))
		rec := httptest.NewRecorder()
		newInviteRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp handler.ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Nama minimal 2 karakter", resp.Fields["name"])
	})
}
