// internal/repository/profile.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepositoryIface interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}

// FindByUser looks up the profile keyed by the user's id.
func (r *ProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	return &profile, nil
}
