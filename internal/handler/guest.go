// internal/handler/guest.go
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/middleware"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

type GuestHandler struct {
	guestService *service.GuestService
	guard        *auth.Guard
}

func NewGuestHandler(guestService *service.GuestService, guard *auth.Guard) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
		guard:        guard,
	}
}

type GuestResponse struct {
	BaseResponse
	Guest     *model.Guest `json:"guest"`
	InviteURL string       `json:"invite_url,omitempty"`
}

type GuestListResponse struct {
	BaseResponse
	Guests []model.Guest `json:"guests"`
}

func (h *GuestHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	authz, ok := h.authorize(w, r)
	if !ok {
		return
	}

	guests, err := h.guestService.List(r.Context(), authz)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, GuestListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Guests:       guests,
	})
}

func (h *GuestHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	authz, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var input service.GuestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	guest, err := h.guestService.Create(r.Context(), authz, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, GuestResponse{
		BaseResponse: BaseResponse{Ok: true},
		Guest:        guest,
		InviteURL:    h.guestService.InviteURL(authz, guest.ID),
	})
}

func (h *GuestHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	authz, guestID, ok := h.authorizeGuest(w, r)
	if !ok {
		return
	}

	var input service.GuestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	guest, err := h.guestService.Update(r.Context(), authz, guestID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, GuestResponse{
		BaseResponse: BaseResponse{Ok: true},
		Guest:        guest,
	})
}

func (h *GuestHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	authz, guestID, ok := h.authorizeGuest(w, r)
	if !ok {
		return
	}

	if err := h.guestService.Delete(r.Context(), authz, guestID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// ExportHandler streams the guest list as CSV for the dashboard's
// download button.
func (h *GuestHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	authz, ok := h.authorize(w, r)
	if !ok {
		return
	}

	csv, err := h.guestService.ExportCSV(r.Context(), authz)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	filename := fmt.Sprintf("tamu-%s.csv", authz.WeddingSlug())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}

func (h *GuestHandler) SendInviteHandler(w http.ResponseWriter, r *http.Request) {
	authz, guestID, ok := h.authorizeGuest(w, r)
	if !ok {
		return
	}

	if err := h.guestService.SendInvitation(r.Context(), authz, guestID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": "Undangan terkirim",
	})
}

// QRHandler renders the guest's check-in token as a PNG for printing
// on physical invitations.
func (h *GuestHandler) QRHandler(w http.ResponseWriter, r *http.Request) {
	authz, guestID, ok := h.authorizeGuest(w, r)
	if !ok {
		return
	}

	guest, err := h.guestService.Get(r.Context(), authz, guestID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	png, err := qrcode.Encode(guest.QRToken, qrcode.Medium, 256)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *GuestHandler) authorize(w http.ResponseWriter, r *http.Request) (*auth.Authorization, bool) {
	weddingID, err := uuid.Parse(chi.URLParam(r, "weddingID"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, domain.ErrWeddingNotFound.Error())
		return nil, false
	}

	authz, err := h.guard.AuthorizeWedding(r.Context(), middleware.UserID(r.Context()), weddingID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return nil, false
	}

	return authz, true
}

func (h *GuestHandler) authorizeGuest(w http.ResponseWriter, r *http.Request) (*auth.Authorization, uuid.UUID, bool) {
	authz, ok := h.authorize(w, r)
	if !ok {
		return nil, uuid.Nil, false
	}

	guestID, err := uuid.Parse(chi.URLParam(r, "guestID"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, domain.ErrGuestNotFound.Error())
		return nil, uuid.Nil, false
	}

	return authz, guestID, true
}
