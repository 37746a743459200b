// internal/handler/invite.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InviteHandler serves the public invitation endpoints. No auth: the
// wedding slug plus the guest id from the personal link are the only
// credentials an invitee has.
type InviteHandler struct {
	rsvpService *service.RSVPService
}

func NewInviteHandler(rsvpService *service.RSVPService) *InviteHandler {
	return &InviteHandler{rsvpService: rsvpService}
}

type InvitationResponse struct {
	BaseResponse
	Invitation *service.InvitationView `json:"invitation"`
}

func (h *InviteHandler) ShowHandler(w http.ResponseWriter, r *http.Request) {
	weddingSlug := chi.URLParam(r, "slug")

	var guestID *uuid.UUID
	if raw := r.URL.Query().Get("guest_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			guestID = &id
		}
	}

	view, err := h.rsvpService.Invitation(r.Context(), weddingSlug, guestID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InvitationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Invitation:   view,
	})
}

type RSVPResponse struct {
	BaseResponse
	Guest *service.PublicGuest `json:"guest"`
}

func (h *InviteHandler) RSVPHandler(w http.ResponseWriter, r *http.Request) {
	weddingSlug := chi.URLParam(r, "slug")

	guestID, err := uuid.Parse(r.URL.Query().Get("guest_id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "guest_id is required")
		return
	}

	var input service.RSVPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	guest, err := h.rsvpService.SubmitRSVP(r.Context(), weddingSlug, guestID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, RSVPResponse{
		BaseResponse: BaseResponse{Ok: true},
		Guest:        guest,
	})
}
