// internal/repository/repository.go
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions. The Create
// methods run on the transaction's own connection, so a failure in any
// step rolls the earlier ones back with it.
type Transaction interface {
	Commit() error
	Rollback() error

	CreateUser(ctx context.Context, user *model.User) error
	CreateOrganization(ctx context.Context, org *model.Organization) error
	CreateProfile(ctx context.Context, profile *model.Profile) error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// CreateUser inserts a user inside the transaction.
func (t *gormTransaction) CreateUser(ctx context.Context, user *model.User) error {
	if err := t.tx.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateOrganization inserts an organization inside the transaction.
func (t *gormTransaction) CreateOrganization(ctx context.Context, org *model.Organization) error {
	if err := t.tx.WithContext(ctx).Create(org).Error; err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

// CreateProfile inserts a profile inside the transaction.
func (t *gormTransaction) CreateProfile(ctx context.Context, profile *model.Profile) error {
	if err := t.tx.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}
