// internal/repository/wedding.go
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

type WeddingRepositoryIface interface {
	Create(ctx context.Context, wedding *model.Wedding) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Wedding, error)
	FindBySlug(ctx context.Context, slug string) (*model.Wedding, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Wedding, error)
	Update(ctx context.Context, wedding *model.Wedding) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WeddingRepository struct {
	db *gorm.DB
}

func NewWeddingRepository(db *gorm.DB) *WeddingRepository {
	return &WeddingRepository{db: db}
}

func (r *WeddingRepository) Create(ctx context.Context, wedding *model.Wedding) error {
	result := r.db.WithContext(ctx).Create(wedding)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("failed to create wedding: %w", result.Error)
	}
	return nil
}

func (r *WeddingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Wedding, error) {
	var wedding model.Wedding
	result := r.db.WithContext(ctx).First(&wedding, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWeddingNotFound
		}
		return nil, fmt.Errorf("failed to find wedding: %w", result.Error)
	}
	return &wedding, nil
}

func (r *WeddingRepository) FindBySlug(ctx context.Context, slug string) (*model.Wedding, error) {
	var wedding model.Wedding
	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&wedding)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWeddingNotFound
		}
		return nil, fmt.Errorf("failed to find wedding by slug: %w", result.Error)
	}
	return &wedding, nil
}

// FindByOrganization returns the organization's weddings, newest first.
func (r *WeddingRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Wedding, error) {
	var weddings []model.Wedding
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&weddings)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find weddings: %w", result.Error)
	}
	return weddings, nil
}

func (r *WeddingRepository) Update(ctx context.Context, wedding *model.Wedding) error {
	result := r.db.WithContext(ctx).Save(wedding)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("failed to update wedding: %w", result.Error)
	}
	return nil
}

// Delete removes the wedding and all of its guests in one transaction.
func (r *WeddingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wedding_id = ?", id).Delete(&model.Guest{}).Error; err != nil {
			return fmt.Errorf("deleting wedding guests: %w", err)
		}

		if err := tx.Delete(&model.Wedding{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting wedding: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
