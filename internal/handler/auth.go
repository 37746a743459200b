// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/middleware"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	userService  *service.UserService
	cacheService *service.CacheService
}

func NewAuthHandler(userService *service.UserService, cacheService *service.CacheService) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		cacheService: cacheService,
	}
}

type RegisterResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// RegisterHandler serves GET for a registration nonce and POST to
// create the account together with its organization and owner profile.
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if r.Method == http.MethodGet {
		nonce, err := h.userService.GenerateNonce(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to generate nonce")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{"nonce": nonce})
		return
	}

	nonce := r.URL.Query().Get("nonce")
	if nonce == "" {
		respondWithError(w, http.StatusBadRequest, "Nonce is required")
		return
	}

	if err := h.userService.ConsumeNonce(r.Context(), nonce); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid or expired nonce")
		return
	}

	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Register(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user,omitempty"`
	Token string      `json:"token,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Authenticate(r.Context(), input)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			slog.ErrorContext(r.Context(), "User login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	expiration := time.Now().Add(-1 * time.Hour)
	cookie := http.Cookie{Name: "token", Value: "", Expires: expiration}

	http.SetCookie(w, &cookie)

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "User logged out successfully"})
}

type MeResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
}

// MeHandler returns the caller's organization, loading weddings along
// with it so the dashboard renders in one round trip.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	org, err := h.userService.CurrentOrganization(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organization: org,
	})
}
