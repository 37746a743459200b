// internal/service/user.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/config"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/email"
	"github.com/annassetiawan/tamumu-app/internal/email/mailer"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	profileRepo    repository.ProfileRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   *email.Service
	cacheService   *CacheService
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	profileRepo repository.ProfileRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *email.Service,
	cacheService *CacheService,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		profileRepo:    profileRepo,
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		cacheService:   cacheService,
		config:         config,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
}

type RegisterOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GenerateNonce creates a one-time registration nonce and stores it for
// later consumption.
func (s *UserService) GenerateNonce(ctx context.Context) (string, error) {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating random nonce: %w", err)
	}

	encoded := hex.EncodeToString(nonce)
	if err := s.cacheService.Set(ctx, encoded, true); err != nil {
		return "", fmt.Errorf("storing nonce: %w", err)
	}

	return encoded, nil
}

// ConsumeNonce validates and burns a registration nonce.
func (s *UserService) ConsumeNonce(ctx context.Context, nonce string) error {
	ok, err := s.cacheService.CheckNonce(ctx, nonce)
	if err != nil {
		return fmt.Errorf("checking nonce: %w", err)
	}
	if !ok {
		return domain.ErrInvalidNonce
	}
	return nil
}

// Register creates the user account together with its organization and
// owner profile, mirroring what the managed backend used to do with a
// database trigger.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := s.validateRegisterInput(input); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hashedPassword,
	}

	if err := tx.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:    fmt.Sprintf("%s's Organization", input.FullName),
		OwnerID: user.ID,
	}

	if err := tx.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}

	profile := &model.Profile{
		ID:             user.ID,
		OrganizationID: &org.ID,
		Role:           model.RoleOwner,
	}

	if err := tx.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	// A failed welcome email should not abort a completed registration.
	if s.emailService != nil {
		dashboardURL := s.config.BaseURL + "/dashboard"
		if err := mailer.SendWelcomeEmail(s.emailService, user.Email, user.FullName, dashboardURL); err != nil {
			slog.WarnContext(ctx, "failed to send welcome email", "error", err, "user", user.ID)
		}
	}

	return &RegisterOutput{
		User:  user,
		Token: token,
	}, nil
}

// Authenticate verifies user credentials and returns a token
func (s *UserService) Authenticate(ctx context.Context, input LoginInput) (*RegisterOutput, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{
		User:  user,
		Token: token,
	}, nil
}

// CurrentOrganization resolves the caller's organization via their profile.
func (s *UserService) CurrentOrganization(ctx context.Context, userID uuid.UUID) (*model.Organization, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	profile, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoOrganization
		}
		return nil, err
	}

	if profile.OrganizationID == nil {
		return nil, domain.ErrNoOrganization
	}

	org, err := s.orgRepo.FindByID(ctx, *profile.OrganizationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoOrganization
		}
		return nil, err
	}

	return org, nil
}

func (s *UserService) validateRegisterInput(input RegisterInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Email":
			fields["email"] = "Email tidak valid"
		case "Password":
			fields["password"] = "Password minimal 6 karakter"
		case "FullName":
			fields["full_name"] = "Nama minimal 2 karakter"
		}
	}

	return &domain.ValidationError{Fields: fields}
}
