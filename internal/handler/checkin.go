// internal/handler/checkin.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/middleware"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CheckinHandler struct {
	checkinService *service.CheckinService
	guard          *auth.Guard
}

func NewCheckinHandler(checkinService *service.CheckinService, guard *auth.Guard) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
		guard:          guard,
	}
}

type CheckinRequest struct {
	Token string `json:"token"`
}

type CheckinResponse struct {
	BaseResponse
	Guest            *model.Guest `json:"guest"`
	AlreadyCheckedIn bool         `json:"already_checked_in"`
	Message          string       `json:"message,omitempty"`
}

// ScanHandler resolves a scanned QR token within the caller's wedding.
// A token scanned twice answers 200 with already_checked_in set so the
// scanner app can show a warning instead of an error screen.
func (h *CheckinHandler) ScanHandler(w http.ResponseWriter, r *http.Request) {
	weddingID, err := uuid.Parse(chi.URLParam(r, "weddingID"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, domain.ErrWeddingNotFound.Error())
		return
	}

	authz, err := h.guard.AuthorizeWedding(r.Context(), middleware.UserID(r.Context()), weddingID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var req CheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	result, err := h.checkinService.CheckIn(r.Context(), authz, req.Token)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			respondWithJSON(w, http.StatusOK, CheckinResponse{
				BaseResponse:     BaseResponse{Ok: true},
				Guest:            result.Guest,
				AlreadyCheckedIn: true,
				Message:          domain.ErrAlreadyCheckedIn.Error(),
			})
			return
		}
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CheckinResponse{
		BaseResponse: BaseResponse{Ok: true},
		Guest:        result.Guest,
	})
}
