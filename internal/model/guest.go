// internal/model/guest.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type GuestStatus string

const (
	// StatusPending is set at creation, before the invitee has responded.
	StatusPending GuestStatus = "pending"
	// StatusConfirmedRSVP is set when the invitee submits the public RSVP form.
	StatusConfirmedRSVP GuestStatus = "confirmed_rsvp"
	// StatusCheckedIn is terminal, set once the guest's token is scanned at the event.
	StatusCheckedIn GuestStatus = "checked_in"
)

// Guest status only ever advances pending -> confirmed_rsvp -> checked_in.
// QRToken is issued once at creation and never rewritten.
type Guest struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WeddingID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"wedding_id"`
	Name        string      `gorm:"type:text;not null" json:"name"`
	Contact     *string     `gorm:"type:text" json:"contact"`
	Status      GuestStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	QRToken     string      `gorm:"type:text;uniqueIndex;not null" json:"qr_token"`
	RSVPMessage *string     `gorm:"type:text" json:"rsvp_message"`
	RSVPAt      *time.Time  `gorm:"type:timestamptz" json:"rsvp_at"`
	CheckedInAt *time.Time  `gorm:"type:timestamptz" json:"checked_in_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
