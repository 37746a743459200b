// internal/handler/wedding.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/middleware"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WeddingHandler struct {
	weddingService *service.WeddingService
	guard          *auth.Guard
}

func NewWeddingHandler(weddingService *service.WeddingService, guard *auth.Guard) *WeddingHandler {
	return &WeddingHandler{
		weddingService: weddingService,
		guard:          guard,
	}
}

type WeddingResponse struct {
	BaseResponse
	Wedding *model.Wedding `json:"wedding"`
}

type WeddingListResponse struct {
	BaseResponse
	Weddings []model.Wedding `json:"weddings"`
}

func (h *WeddingHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	weddings, err := h.weddingService.ListForUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WeddingListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Weddings:     weddings,
	})
}

func (h *WeddingHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.WeddingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	wedding, err := h.weddingService.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, WeddingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Wedding:      wedding,
	})
}

func (h *WeddingHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	authz, ok := h.authorize(w, r)
	if !ok {
		return
	}

	wedding, err := h.weddingService.Get(r.Context(), authz)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WeddingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Wedding:      wedding,
	})
}

func (h *WeddingHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	authz, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var input service.WeddingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	wedding, err := h.weddingService.Update(r.Context(), authz, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WeddingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Wedding:      wedding,
	})
}

func (h *WeddingHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	authz, ok := h.authorize(w, r)
	if !ok {
		return
	}

	if err := h.weddingService.Delete(r.Context(), authz); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type SlugPreviewResponse struct {
	BaseResponse
	Slug string `json:"slug"`
}

// SlugPreviewHandler lets the dashboard show the slug a name would get
// before the wedding is saved.
func (h *WeddingHandler) SlugPreviewHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	respondWithJSON(w, http.StatusOK, SlugPreviewResponse{
		BaseResponse: BaseResponse{Ok: true},
		Slug:         h.weddingService.SuggestSlug(name),
	})
}

// authorize resolves the {weddingID} route param through the tenant
// guard. On failure it writes the response and reports false.
func (h *WeddingHandler) authorize(w http.ResponseWriter, r *http.Request) (*auth.Authorization, bool) {
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
