package auth_test

import (
	"context"
	"testing"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/mocks"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthorizeWedding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	orgA := uuid.New()
	orgB := uuid.New()

	profileInA := &model.Profile{ID: callerID, OrganizationID: &orgA, Role: model.RoleOwner}

	wedding := &model.Wedding{
		ID:             uuid.New(),
		OrganizationID: orgA,
		Name:           "Rina dan Budi",
		Slug:           "rina-dan-budi",
	}

	t.Run("caller's organization owns the wedding", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		profiles.EXPECT().FindByUser(gomock.Any(), callerID).Return(profileInA, nil)
		weddings.EXPECT().FindByID(gomock.Any(), wedding.ID).Return(wedding, nil)

		guard := auth.NewGuard(profiles, weddings, nil)
		authz, err := guard.AuthorizeWedding(context.Background(), callerID, wedding.ID)

		assert.NoError(t, err)
		assert.Equal(t, orgA, authz.OrganizationID())
		assert.Equal(t, wedding.ID, authz.WeddingID())
		assert.Equal(t, "rina-dan-budi", authz.WeddingSlug())
		assert.Equal(t, callerID, authz.CallerID())
	})

	t.Run("unauthenticated caller", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		guard := auth.NewGuard(profiles, weddings, nil)
		authz, err := guard.AuthorizeWedding(context.Background(), uuid.Nil, wedding.ID)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.Nil(t, authz)
	})

	t.Run("caller without a profile", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		profiles.EXPECT().FindByUser(gomock.Any(), callerID).Return(nil, domain.ErrNotFound)

		guard := auth.NewGuard(profiles, weddings, nil)
		_, err := guard.AuthorizeWedding(context.Background(), callerID, wedding.ID)

		assert.ErrorIs(t, err, domain.ErrNoOrganization)
	})

	t.Run("caller without an organization", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		profiles.EXPECT().FindByUser(gomock.Any(), callerID).
			Return(&model.Profile{ID: callerID}, nil)

		guard := auth.NewGuard(profiles, weddings, nil)
		_, err := guard.AuthorizeWedding(context.Background(), callerID, wedding.ID)

		assert.ErrorIs(t, err, domain.ErrNoOrganization)
	})

	t.Run("wedding does not exist", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		missingID := uuid.New()
		profiles.EXPECT().FindByUser(gomock.Any(), callerID).Return(profileInA, nil)
		weddings.EXPECT().FindByID(gomock.Any(), missingID).Return(nil, domain.ErrWeddingNotFound)

		guard := auth.NewGuard(profiles, weddings, nil)
		_, err := guard.AuthorizeWedding(context.Background(), callerID, missingID)

		assert.ErrorIs(t, err, domain.ErrWeddingNotFound)
	})

	t.Run("wedding owned by another organization", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepositoryIface(ctrl)
		weddings := mocks.NewMockWeddingRepositoryIface(ctrl)

		foreign := &model.Wedding{
			ID:             uuid.New(),
			OrganizationID: orgB,
			Slug:           "other-wedding",
		}

		profiles.EXPECT().FindByUser(gomock.Any(), callerID).Return(profileInA, nil)
		weddings.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(foreign, nil)

		guard := auth.NewGuard(profiles, weddings, nil)
		_, err := guard.AuthorizeWedding(context.Background(), callerID, foreign.ID)

		// A foreign wedding reads exactly like a missing one.
		assert.ErrorIs(t, err, domain.ErrWeddingNotFound)
	})
}
