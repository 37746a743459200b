package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/mocks"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCacheService() *service.CacheService {
	return service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: time.Minute,
	})
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	input := service.RegisterInput{
		Email:    "rina@example.com",
		Password: "secret123",
		FullName: "Rina Wijaya",
	}

	t.Run("creates user, organization and owner profile", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		profileRepo := mocks.NewMockProfileRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		userID := uuid.New()
		orgID := uuid.New()

		userRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		gomock.InOrder(
			userRepo.EXPECT().FindByEmail(gomock.Any(), input.Email).
				Return(nil, domain.ErrUserNotFound),
			tx.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u *model.User) error {
					u.ID = userID
					assert.NotEqual(t, input.Password, u.PasswordHash)
					return nil
				}),
			tx.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, o *model.Organization) error {
					o.ID = orgID
					assert.Equal(t, "Rina Wijaya's Organization", o.Name)
					assert.Equal(t, userID, o.OwnerID)
					return nil
				}),
			tx.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *model.Profile) error {
					assert.Equal(t, userID, p.ID)
					assert.Equal(t, orgID, *p.OrganizationID)
					assert.Equal(t, model.RoleOwner, p.Role)
					return nil
				}),
		)

		svc := service.NewUserService(userRepo, profileRepo, orgRepo, hasher, tokenManager, nil, newCacheService(), nil)
		output, err := svc.Register(context.Background(), input)

		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, userID, output.User.ID)
	})

	t.Run("failed profile insert rolls everything back", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		userRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		gomock.InOrder(
			userRepo.EXPECT().FindByEmail(gomock.Any(), input.Email).
				Return(nil, domain.ErrUserNotFound),
			tx.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil),
			tx.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(nil),
			tx.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
				Return(errors.New("profiles_pkey violation")),
			// Rollback undoes the user and organization inserts too;
			// Commit must never run.
			tx.EXPECT().Rollback().Return(nil),
		)

		svc := service.NewUserService(userRepo, nil, nil, hasher, tokenManager, nil, newCacheService(), nil)
		_, err := svc.Register(context.Background(), input)

		assert.Error(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		userRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Rollback().Return(nil)
		userRepo.EXPECT().FindByEmail(gomock.Any(), input.Email).
			Return(&model.User{ID: uuid.New(), Email: input.Email}, nil)

		svc := service.NewUserService(userRepo, nil, nil, hasher, tokenManager, nil, newCacheService(), nil)
		_, err := svc.Register(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("input validation", func(t *testing.T) {
		svc := service.NewUserService(nil, nil, nil, hasher, tokenManager, nil, newCacheService(), nil)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "not-an-email",
			Password: "123",
			FullName: "R",
		})

		verr, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "Email tidak valid", verr.Fields["email"])
		assert.Equal(t, "Password minimal 6 karakter", verr.Fields["password"])
		assert.Equal(t, "Nama minimal 2 karakter", verr.Fields["full_name"])
	})
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	hashed, _ := hasher.Hash("correct_password")
	user := &model.User{
		ID:           uuid.New(),
		Email:        "rina@example.com",
		FullName:     "Rina Wijaya",
		PasswordHash: hashed,
	}

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewUserService(userRepo, nil, nil, hasher, tokenManager, nil, newCacheService(), nil)
		output, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewUserService(userRepo, nil, nil, hasher, tokenManager, nil, newCacheService(), nil)
		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong_password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reads like a bad password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := service.NewUserService(userRepo, nil, nil, hasher, tokenManager, nil, newCacheService(), nil)
		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestNonceLifecycle(t *testing.T) {
	svc := service.NewUserService(nil, nil, nil, auth.NewPasswordHasher(), auth.NewTokenManager("test_secret", time.Hour), nil, newCacheService(), nil)

	nonce, err := svc.GenerateNonce(context.Background())
	assert.NoError(t, err)
	assert.Len(t, nonce, 64)

	assert.NoError(t, svc.ConsumeNonce(context.Background(), nonce))
	assert.ErrorIs(t, svc.ConsumeNonce(context.Background(), "never-issued"), domain.ErrInvalidNonce)
}
