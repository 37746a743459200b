// internal/auth/guard.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/annassetiawan/tamumu-app/internal/audit"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/google/uuid"
)

// Authorization proves that the tenant check for one wedding succeeded.
// The fields are unexported so only the Guard can construct a value;
// service mutations that take *Authorization cannot be reached without
// the check having happened first.
type Authorization struct {
	organizationID uuid.UUID
	weddingID      uuid.UUID
	weddingSlug    string
	callerID       uuid.UUID
}

func (a *Authorization) OrganizationID() uuid.UUID { return a.organizationID }
func (a *Authorization) WeddingID() uuid.UUID      { return a.weddingID }
func (a *Authorization) WeddingSlug() string       { return a.weddingSlug }
func (a *Authorization) CallerID() uuid.UUID       { return a.callerID }

// Guard decides whether a caller's organization owns a wedding. It is
// read-only and re-derives the ownership chain on every call; results
// must never be cached across requests.
type Guard struct {
	profiles repository.ProfileRepositoryIface
	weddings repository.WeddingRepositoryIface
	audit    audit.Logger
}

func NewGuard(profiles repository.ProfileRepositoryIface, weddings repository.WeddingRepositoryIface, auditLogger audit.Logger) *Guard {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	return &Guard{
		profiles: profiles,
		weddings: weddings,
		audit:    auditLogger,
	}
}

// AuthorizeWedding verifies that callerID's organization owns weddingID.
// A wedding that does not exist and a wedding owned by another tenant
// both come back as domain.ErrWeddingNotFound, so callers cannot tell
// the two apart.
func (g *Guard) AuthorizeWedding(ctx context.Context, callerID, weddingID uuid.UUID) (*Authorization, error) {
	if callerID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	profile, err := g.profiles.FindByUser(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoOrganization
		}
		return nil, fmt.Errorf("resolving caller profile: %w", err)
	}

	if profile.OrganizationID == nil {
		return nil, domain.ErrNoOrganization
	}

	wedding, err := g.weddings.FindByID(ctx, weddingID)
	if err != nil {
		if errors.Is(err, domain.ErrWeddingNotFound) {
			g.logDecision(ctx, callerID, weddingID, false, "wedding missing")
			return nil, domain.ErrWeddingNotFound
		}
		return nil, fmt.Errorf("resolving wedding: %w", err)
	}

	if wedding.OrganizationID != *profile.OrganizationID {
		g.logDecision(ctx, callerID, weddingID, false, "organization mismatch")
		return nil, domain.ErrWeddingNotFound
	}

	g.logDecision(ctx, callerID, weddingID, true, "")

	return &Authorization{
		organizationID: wedding.OrganizationID,
		weddingID:      wedding.ID,
		weddingSlug:    wedding.Slug,
		callerID:       callerID,
	}, nil
}

func (g *Guard) logDecision(ctx context.Context, callerID, weddingID uuid.UUID, allowed bool, reason string) {
	var contextData map[string]interface{}
	if reason != "" {
		contextData = map[string]interface{}{"reason": reason}
	}

	if err := g.audit.LogAuthzDecision(ctx, callerID, weddingID, allowed, contextData); err != nil {
		slog.WarnContext(ctx, "failed to record authorization decision", "error", err)
	}
}
