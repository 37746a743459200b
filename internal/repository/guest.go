// internal/repository/guest.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestRepositoryIface interface {
	Create(ctx context.Context, guest *model.Guest) error
	FindByWedding(ctx context.Context, weddingID uuid.UUID) ([]model.Guest, error)
	FindByIDAndWedding(ctx context.Context, id, weddingID uuid.UUID) (*model.Guest, error)
	FindByTokenAndWedding(ctx context.Context, token string, weddingID uuid.UUID) (*model.Guest, error)
	UpdateDetails(ctx context.Context, id, weddingID uuid.UUID, name string, contact *string) error
	MarkRSVP(ctx context.Context, id, weddingID uuid.UUID, name string, message *string, at time.Time) (bool, error)
	MarkCheckedIn(ctx context.Context, id, weddingID uuid.UUID, at time.Time) (bool, error)
	Delete(ctx context.Context, id, weddingID uuid.UUID) error
}

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(ctx context.Context, guest *model.Guest) error {
	result := r.db.WithContext(ctx).Create(guest)
	if result.Error != nil {
		return fmt.Errorf("failed to create guest: %w", result.Error)
	}
	return nil
}

// FindByWedding returns the wedding's guests in creation order.
func (r *GuestRepository) FindByWedding(ctx context.Context, weddingID uuid.UUID) ([]model.Guest, error) {
	var guests []model.Guest
	result := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("created_at ASC").
		Find(&guests)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find guests: %w", result.Error)
	}
	return guests, nil
}

func (r *GuestRepository) FindByIDAndWedding(ctx context.Context, id, weddingID uuid.UUID) (*model.Guest, error) {
	var guest model.Guest
	result := r.db.WithContext(ctx).
		Where("id = ? AND wedding_id = ?", id, weddingID).
		First(&guest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to find guest: %w", result.Error)
	}
	return &guest, nil
}

// FindByTokenAndWedding resolves a guest by the conjunction of its QR
// token and wedding id. A token valid for one wedding never resolves
// against another wedding's lookup.
func (r *GuestRepository) FindByTokenAndWedding(ctx context.Context, token string, weddingID uuid.UUID) (*model.Guest, error) {
	var guest model.Guest
	result := r.db.WithContext(ctx).
		Where("qr_token = ? AND wedding_id = ?", token, weddingID).
		First(&guest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to find guest by token: %w", result.Error)
	}
	return &guest, nil
}

// UpdateDetails rewrites name and contact only. Status, token and the
// timestamps are never touched on this path. The update is scoped by
// (id, wedding_id) so a caller-supplied mismatch updates nothing.
func (r *GuestRepository) UpdateDetails(ctx context.Context, id, weddingID uuid.UUID, name string, contact *string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Where("id = ? AND wedding_id = ?", id, weddingID).
		Updates(map[string]interface{}{
			"name":    name,
			"contact": contact,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update guest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

// MarkRSVP records an RSVP submission. The conditional WHERE keeps a
// checked-in guest from being regressed to confirmed_rsvp by a late
// form resubmission; the returned bool reports whether the row changed.
func (r *GuestRepository) MarkRSVP(ctx context.Context, id, weddingID uuid.UUID, name string, message *string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Where("id = ? AND wedding_id = ? AND status <> ?", id, weddingID, model.StatusCheckedIn).
		Updates(map[string]interface{}{
			"name":         name,
			"status":       model.StatusConfirmedRSVP,
			"rsvp_message": message,
			"rsvp_at":      at,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to record rsvp: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkCheckedIn performs the terminal transition as a single conditional
// update so concurrent scans of the same token yield at most one fresh
// check-in. Returns false when the guest was already checked in.
func (r *GuestRepository) MarkCheckedIn(ctx context.Context, id, weddingID uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Where("id = ? AND wedding_id = ? AND status <> ?", id, weddingID, model.StatusCheckedIn).
		Updates(map[string]interface{}{
			"status":        model.StatusCheckedIn,
			"checked_in_at": at,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to check in guest: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete is idempotent in effect: deleting an absent guest is not an error.
func (r *GuestRepository) Delete(ctx context.Context, id, weddingID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND wedding_id = ?", id, weddingID).
		Delete(&model.Guest{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete guest: %w", result.Error)
	}
	return nil
}
