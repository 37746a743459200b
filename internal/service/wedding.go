// internal/service/wedding.go
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/annassetiawan/tamumu-app/internal/slug"
	"github.com/google/uuid"
)

var slugCharset = regexp.MustCompile(`^[a-z0-9-]+$`)

type WeddingService struct {
	repo        repository.WeddingRepositoryIface
	profileRepo repository.ProfileRepositoryIface
}

func NewWeddingService(repo repository.WeddingRepositoryIface, profileRepo repository.ProfileRepositoryIface) *WeddingService {
	return &WeddingService{
		repo:        repo,
		profileRepo: profileRepo,
	}
}

type WeddingInput struct {
	Name         string     `json:"name"`
	WeddingDate  *time.Time `json:"wedding_date"`
	Slug         string     `json:"slug"`
	Venue        *string    `json:"venue"`
	VenueAddress *string    `json:"venue_address"`
}

// Create inserts a wedding owned by the caller's organization. A
// duplicate slug surfaces as domain.ErrSlugTaken, never as a silent
// overwrite.
func (s *WeddingService) Create(ctx context.Context, callerID uuid.UUID, input WeddingInput) (*model.Wedding, error) {
	orgID, err := s.callerOrganization(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if err := validateWeddingInput(input); err != nil {
		return nil, err
	}

	wedding := &model.Wedding{
		OrganizationID: orgID,
		Name:           input.Name,
		WeddingDate:    input.WeddingDate,
		Slug:           input.Slug,
		Venue:          input.Venue,
		VenueAddress:   input.VenueAddress,
	}

	if err := s.repo.Create(ctx, wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

// Update rewrites the wedding's editable fields. The owning
// organization is immutable: it is never taken from input.
func (s *WeddingService) Update(ctx context.Context, authz *auth.Authorization, input WeddingInput) (*model.Wedding, error) {
	if err := validateWeddingInput(input); err != nil {
		return nil, err
	}

	wedding, err := s.repo.FindByID(ctx, authz.WeddingID())
	if err != nil {
		return nil, err
	}

	wedding.Name = input.Name
	wedding.WeddingDate = input.WeddingDate
	wedding.Slug = input.Slug
	wedding.Venue = input.Venue
	wedding.VenueAddress = input.VenueAddress

	if err := s.repo.Update(ctx, wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

// Delete removes the wedding; its guests go down with it.
func (s *WeddingService) Delete(ctx context.Context, authz *auth.Authorization) error {
	return s.repo.Delete(ctx, authz.WeddingID())
}

// ListForUser returns the weddings of the caller's organization.
func (s *WeddingService) ListForUser(ctx context.Context, callerID uuid.UUID) ([]model.Wedding, error) {
	orgID, err := s.callerOrganization(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByOrganization(ctx, orgID)
}

// Get fetches the wedding the authorization was issued for.
func (s *WeddingService) Get(ctx context.Context, authz *auth.Authorization) (*model.Wedding, error) {
	return s.repo.FindByID(ctx, authz.WeddingID())
}

// SuggestSlug derives a URL key from a display name for the dashboard form.
func (s *WeddingService) SuggestSlug(name string) string {
	return slug.Generate(name)
}

func (s *WeddingService) callerOrganization(ctx context.Context, callerID uuid.UUID) (uuid.UUID, error) {
	if callerID == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	profile, err := s.profileRepo.FindByUser(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrNoOrganization
		}
		return uuid.Nil, fmt.Errorf("resolving caller profile: %w", err)
	}

	if profile.OrganizationID == nil {
		return uuid.Nil, domain.ErrNoOrganization
	}

	return *profile.OrganizationID, nil
}

func validateWeddingInput(input WeddingInput) error {
	fields := make(map[string]string)

	if utf8.RuneCountInString(input.Name) < 3 {
		fields["name"] = "Nama acara minimal 3 karakter"
	}

	switch {
	case len(input.Slug) < slug.MinLength:
		fields["slug"] = "Slug minimal 3 karakter"
	case !slugCharset.MatchString(input.Slug):
		fields["slug"] = "Slug hanya boleh huruf kecil, angka, dan dash"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
