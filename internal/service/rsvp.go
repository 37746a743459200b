// internal/service/rsvp.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/domain"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/google/uuid"
)

// RSVPService backs the public invitation page. None of its operations
// require authentication; guests are identified by the guest id baked
// into their personal invitation link.
type RSVPService struct {
	guests   repository.GuestRepositoryIface
	weddings repository.WeddingRepositoryIface
}

func NewRSVPService(guests repository.GuestRepositoryIface, weddings repository.WeddingRepositoryIface) *RSVPService {
	return &RSVPService{
		guests:   guests,
		weddings: weddings,
	}
}

// PublicWedding is the wedding as shown to unauthenticated invitees.
type PublicWedding struct {
	Name         string     `json:"name"`
	WeddingDate  *time.Time `json:"wedding_date"`
	Slug         string     `json:"slug"`
	Venue        *string    `json:"venue"`
	VenueAddress *string    `json:"venue_address"`
}

// PublicGuest is the guest as shown on their own invitation. The QR
// token and contact stay private.
type PublicGuest struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Status      model.GuestStatus `json:"status"`
	RSVPMessage *string           `json:"rsvp_message"`
	RSVPAt      *time.Time        `json:"rsvp_at"`
	CheckedInAt *time.Time        `json:"checked_in_at"`
}

type InvitationView struct {
	Wedding PublicWedding `json:"wedding"`
	Guest   *PublicGuest  `json:"guest,omitempty"`
}

type RSVPInput struct {
	Name    string  `json:"name"`
	Message *string `json:"message"`
}

// Invitation returns the public invitation data for a wedding slug.
// Guest details are included only when guestID belongs to that wedding;
// a mismatched id simply yields no guest block.
func (s *RSVPService) Invitation(ctx context.Context, weddingSlug string, guestID *uuid.UUID) (*InvitationView, error) {
	wedding, err := s.weddings.FindBySlug(ctx, weddingSlug)
	if err != nil {
		return nil, err
	}

	view := &InvitationView{
		Wedding: PublicWedding{
			Name:         wedding.Name,
			WeddingDate:  wedding.WeddingDate,
			Slug:         wedding.Slug,
			Venue:        wedding.Venue,
			VenueAddress: wedding.VenueAddress,
		},
	}

	if guestID != nil {
		guest, err := s.guests.FindByIDAndWedding(ctx, *guestID, wedding.ID)
		switch {
		case err == nil:
			view.Guest = publicGuest(guest)
		case !errors.Is(err, domain.ErrGuestNotFound):
			return nil, err
		}
	}

	return view, nil
}

// SubmitRSVP records an invitee's confirmation: status moves to
// confirmed_rsvp, the name is overwritten (the invitee may correct it)
// and the RSVP time is stamped. A guest who has already been checked in
// keeps their status and check-in timestamp; the resubmission reads
// back the current snapshot instead of regressing the record.
func (s *RSVPService) SubmitRSVP(ctx context.Context, weddingSlug string, guestID uuid.UUID, input RSVPInput) (*PublicGuest, error) {
	if err := validateGuestName(input.Name); err != nil {
		return nil, err
	}

	wedding, err := s.weddings.FindBySlug(ctx, weddingSlug)
	if err != nil {
		return nil, err
	}

	if _, err := s.guests.FindByIDAndWedding(ctx, guestID, wedding.ID); err != nil {
		return nil, err
	}

	message := input.Message
	if message != nil && strings.TrimSpace(*message) == "" {
		message = nil
	}

	if _, err := s.guests.MarkRSVP(ctx, guestID, wedding.ID, input.Name, message, time.Now().UTC()); err != nil {
		return nil, err
	}

	guest, err := s.guests.FindByIDAndWedding(ctx, guestID, wedding.ID)
	if err != nil {
		return nil, err
	}

	return publicGuest(guest), nil
}

func publicGuest(guest *model.Guest) *PublicGuest {
	return &PublicGuest{
		ID:          guest.ID,
		Name:        guest.Name,
		Status:      guest.Status,
		RSVPMessage: guest.RSVPMessage,
		RSVPAt:      guest.RSVPAt,
		CheckedInAt: guest.CheckedInAt,
	}
}
