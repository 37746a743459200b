// internal/model/wedding.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Wedding struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null" json:"organization_id"`
	Name           string     `gorm:"type:text;not null" json:"name"`
	WeddingDate    *time.Time `gorm:"type:timestamptz" json:"wedding_date"`
	Slug           string     `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Venue          *string    `gorm:"type:text" json:"venue"`
	VenueAddress   *string    `gorm:"type:text" json:"venue_address"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Guests []Guest `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE" json:"-"`
}
