// internal/service/guest.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/annassetiawan/tamumu-app/internal/audit"
	"github.com/annassetiawan/tamumu-app/internal/auth"
	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/email"
	"github.com/annassetiawan/tamumu-app/internal/email/mailer"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CSVHeader is the fixed first line of a guest export.
const CSVHeader = "Nama,Kontak,Status,Link Undangan,QR Token"

type GuestService struct {
	repo         repository.GuestRepositoryIface
	weddingRepo  repository.WeddingRepositoryIface
	audit        audit.Logger
	emailService *email.Service
	baseURL      string
	validate     *validator.Validate
}

func NewGuestService(
	repo repository.GuestRepositoryIface,
	weddingRepo repository.WeddingRepositoryIface,
	auditLogger audit.Logger,
	emailService *email.Service,
	baseURL string,
) *GuestService {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	return &GuestService{
		repo:         repo,
		weddingRepo:  weddingRepo,
		audit:        auditLogger,
		emailService: emailService,
		baseURL:      baseURL,
		validate:     validator.New(),
	}
}

type GuestInput struct {
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
}

// Create persists a new guest in status pending with a freshly issued
// QR token. The token exists before the row ever does.
func (s *GuestService) Create(ctx context.Context, authz *auth.Authorization, input GuestInput) (*model.Guest, error) {
	if err := validateGuestName(input.Name); err != nil {
		return nil, err
	}

	guest := &model.Guest{
		WeddingID: authz.WeddingID(),
		Name:      input.Name,
		Contact:   normalizeContact(input.Contact),
		Status:    model.StatusPending,
		QRToken:   generateGuestToken(),
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, err
	}

	s.logGuestEvent(ctx, model.ActionGuestCreate, authz.CallerID(), guest.ID)

	return guest, nil
}

// Update rewrites name and contact only. Status and token survive any
// input the caller supplies.
func (s *GuestService) Update(ctx context.Context, authz *auth.Authorization, guestID uuid.UUID, input GuestInput) (*model.Guest, error) {
	if err := validateGuestName(input.Name); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDetails(ctx, guestID, authz.WeddingID(), input.Name, normalizeContact(input.Contact)); err != nil {
		return nil, err
	}

	return s.repo.FindByIDAndWedding(ctx, guestID, authz.WeddingID())
}

// Delete removes the guest; deleting one that is already gone is fine.
func (s *GuestService) Delete(ctx context.Context, authz *auth.Authorization, guestID uuid.UUID) error {
	if err := s.repo.Delete(ctx, guestID, authz.WeddingID()); err != nil {
		return err
	}

	s.logGuestEvent(ctx, model.ActionGuestDelete, authz.CallerID(), guestID)

	return nil
}

// List returns the wedding's guests in creation order.
func (s *GuestService) List(ctx context.Context, authz *auth.Authorization) ([]model.Guest, error) {
	return s.repo.FindByWedding(ctx, authz.WeddingID())
}

// Get fetches a single guest scoped to the authorized wedding.
func (s *GuestService) Get(ctx context.Context, authz *auth.Authorization, guestID uuid.UUID) (*model.Guest, error) {
	return s.repo.FindByIDAndWedding(ctx, guestID, authz.WeddingID())
}

// ExportCSV renders the guest list as CSV: a fixed header plus one
// quoted row per guest in creation order, with the invitation link and
// the raw token.
func (s *GuestService) ExportCSV(ctx context.Context, authz *auth.Authorization) (string, error) {
	guests, err := s.repo.FindByWedding(ctx, authz.WeddingID())
	if err != nil {
		return "", err
	}

	return GuestsCSV(guests, authz.WeddingSlug(), s.baseURL), nil
}

// GuestsCSV renders a guest list in the export format. Shared with
// tamumuctl's export-guests command.
func GuestsCSV(guests []model.Guest, weddingSlug, baseURL string) string {
	var b strings.Builder
	b.WriteString(CSVHeader)

	for _, guest := range guests {
		contact := ""
		if guest.Contact != nil {
			contact = *guest.Contact
		}

		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			csvQuote(guest.Name),
			csvQuote(contact),
			csvQuote(string(guest.Status)),
			csvQuote(fmt.Sprintf("%s/invite/%s?guest_id=%s", baseURL, weddingSlug, guest.ID)),
			csvQuote(guest.QRToken),
		}, ","))
	}

	return b.String()
}

// SendInvitation emails the guest their personal invitation link. It
// requires the guest's contact to be an email address.
func (s *GuestService) SendInvitation(ctx context.Context, authz *auth.Authorization, guestID uuid.UUID) error {
	if s.emailService == nil {
		return fmt.Errorf("email delivery is not configured")
	}

	guest, err := s.repo.FindByIDAndWedding(ctx, guestID, authz.WeddingID())
	if err != nil {
		return err
	}

	if guest.Contact == nil || s.validate.Var(*guest.Contact, "email") != nil {
		return domain.NewValidationError("contact", "Kontak tamu bukan alamat email")
	}

	wedding, err := s.weddingRepo.FindByID(ctx, authz.WeddingID())
	if err != nil {
		return err
	}

	inviteURL := s.inviteURL(wedding.Slug, guest.ID)
	if err := mailer.SendGuestInvitation(s.emailService, *guest.Contact, guest.Name, wedding.Name, inviteURL); err != nil {
		return fmt.Errorf("sending guest invitation: %w", err)
	}

	return nil
}

// InviteURL exposes the invitation link for a guest, as printed on QR
// cards and in the CSV export.
func (s *GuestService) InviteURL(authz *auth.Authorization, guestID uuid.UUID) string {
	return s.inviteURL(authz.WeddingSlug(), guestID)
}

func (s *GuestService) inviteURL(weddingSlug string, guestID uuid.UUID) string {
	return fmt.Sprintf("%s/invite/%s?guest_id=%s", s.baseURL, weddingSlug, guestID)
}

func (s *GuestService) logGuestEvent(ctx context.Context, action string, actorID, guestID uuid.UUID) {
	if err := s.audit.LogGuestEvent(ctx, action, actorID, guestID); err != nil {
		slog.WarnContext(ctx, "failed to record guest event", "error", err, "action", action)
	}
}

func validateGuestName(name string) error {
	if utf8.RuneCountInString(name) < 2 {
		return domain.NewValidationError("name", "Nama minimal 2 karakter")
	}
	return nil
}

func normalizeContact(contact *string) *string {
	if contact == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*contact)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// csvQuote wraps a field in double quotes, doubling interior quotes.
func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// generateGuestToken creates the guest's opaque check-in credential.
func generateGuestToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(err) // This should never happen
	}
	return hex.EncodeToString(bytes)
}
